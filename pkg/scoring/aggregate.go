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

package scoring

import (
	"github.com/barplan/barplan/pkg/model"
	"github.com/barplan/barplan/pkg/units"
)

// AggregateUsage totals the ingredient usage of every committed recipe, each
// scaled by its own batch multiplier.
//
// Each ingredient is summed in a single target unit: the inventory's unit
// when the project stocks it, otherwise the unit the plan uses most often for
// it (ties go to the first one seen), otherwise units.BaseVolume. The result
// is for reporting only and does not affect scoring.
func AggregateUsage(committed model.CommittedUsage, inv model.Inventory) Usage {
	targets := targetUnits(committed, inv)

	out := make(Usage, len(targets))
	for _, c := range committed {
		for _, ci := range c.Recipe.Ingredients {
			k := ci.Key()
			t, ok := out[k]
			if !ok {
				t = UsageTotal{Name: displayName(k, ci.Name, inv), Unit: targets[k]}
			}
			t.Total += units.Convert(ci.Amount*c.BatchMultiplier, ci.Unit, t.Unit)
			out[k] = t
		}
	}
	return out
}

// targetUnits picks the reporting unit for every ingredient the plan uses.
func targetUnits(committed model.CommittedUsage, inv model.Inventory) map[string]string {
	stocked := make(map[string]string, len(inv.Ingredients))
	for _, q := range inv.Ingredients {
		if _, ok := stocked[q.Key()]; !ok {
			stocked[q.Key()] = q.Unit
		}
	}

	type tally struct {
		counts map[string]int
		order  []string
	}
	tallies := make(map[string]*tally)
	for _, c := range committed {
		for _, ci := range c.Recipe.Ingredients {
			k := ci.Key()
			tl, ok := tallies[k]
			if !ok {
				tl = &tally{counts: make(map[string]int)}
				tallies[k] = tl
			}
			if ci.Unit == "" {
				continue
			}
			if tl.counts[ci.Unit] == 0 {
				tl.order = append(tl.order, ci.Unit)
			}
			tl.counts[ci.Unit]++
		}
	}

	out := make(map[string]string, len(tallies))
	for k, tl := range tallies {
		if u, ok := stocked[k]; ok {
			out[k] = u
			continue
		}
		best, bestCount := units.BaseVolume, 0
		for _, u := range tl.order {
			if tl.counts[u] > bestCount {
				best, bestCount = u, tl.counts[u]
			}
		}
		out[k] = best
	}
	return out
}

func displayName(key, fallback string, inv model.Inventory) string {
	for _, q := range inv.Ingredients {
		if q.Key() == key {
			return q.Name
		}
	}
	return fallback
}
