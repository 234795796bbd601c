// Copyright (c) 2025, The barplan Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package units

import "sort"

// BaseVolume is the volume unit with factor 1. It is the last-resort target
// unit when no better choice is known.
const BaseVolume = "ml"

// unitFactors maps a unit symbol to its size in base units.
// Lookups are exact and case-sensitive.
var unitFactors = map[string]float64{
	// volume (base = ml)
	"ml":     1,
	"cl":     10,
	"dl":     100,
	"liter":  1000,
	"oz":     29.5735,
	"pint":   473.176,
	"quart":  946.353,
	"gallon": 3785.41,
	// mass (base = g)
	"g":  1,
	"kg": 1000,
	"lb": 453.592,
	// bar measures
	"dash":  0.92,
	"drop":  0.05,
	"pinch": 0.36,
	"tsp":   4.2,
	"tbsp":  12.6,
}

// Entry is one row of the conversion table.
type Entry struct {
	Unit   string  `json:"unit" yaml:"unit"`
	Factor float64 `json:"factor" yaml:"factor"`
}

// Factor returns the size of unit in base units, or 1 when the unit is unknown.
func Factor(unit string) float64 {
	if f, ok := unitFactors[unit]; ok {
		return f
	}
	return 1
}

// Known reports whether unit has an entry in the table.
func Known(unit string) bool {
	_, ok := unitFactors[unit]
	return ok
}

// Convert expresses amount, given in unit from, in unit to.
func Convert(amount float64, from, to string) float64 {
	return amount * Factor(from) / Factor(to)
}

// Table returns a copy of the conversion table sorted by unit symbol.
func Table() []Entry {
	out := make([]Entry, 0, len(unitFactors))
	for u, f := range unitFactors {
		out = append(out, Entry{Unit: u, Factor: f})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Unit < out[j].Unit })
	return out
}

// Supported returns the known unit symbols sorted alphabetically.
func Supported() []string {
	table := Table()
	out := make([]string, len(table))
	for i, e := range table {
		out[i] = e.Unit
	}
	return out
}
