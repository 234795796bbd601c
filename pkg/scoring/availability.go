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
	"math"

	"github.com/barplan/barplan/pkg/model"
	"github.com/barplan/barplan/pkg/units"
)

// ResolveAvailability returns the stock left for every inventory ingredient,
// keyed by normalized name and expressed in the inventory's unit.
//
// In ModePlanning the usage of every committed recipe (scaled by its batch
// multiplier and converted into the inventory unit) is subtracted, floored at
// zero. In ModePreview the stocked amount is returned unchanged. Ingredients
// used by the plan but not stocked are not part of the result.
//
// The result is computed from scratch on every call.
func ResolveAvailability(inv model.Inventory, committed model.CommittedUsage, mode Mode) Availability {
	stock := mergeByKey(inv.Ingredients)
	out := make(Availability, len(stock))
	for _, s := range stock {
		a := Available{
			Name:      s.name,
			Stocked:   s.amount,
			Remaining: s.amount,
			Unit:      s.unit,
		}
		if mode == ModePlanning {
			a.Remaining = math.Max(0, s.amount-committedAmount(s.key, s.unit, committed))
		}
		out[s.key] = a
	}
	return out
}

// committedAmount sums what the plan uses of key, in unit.
func committedAmount(key, unit string, committed model.CommittedUsage) float64 {
	var used float64
	for _, c := range committed {
		for _, ci := range c.Recipe.Ingredients {
			if ci.Key() != key {
				continue
			}
			used += units.Convert(ci.Amount*c.BatchMultiplier, ci.Unit, unit)
		}
	}
	return used
}
