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
	"fmt"

	"github.com/barplan/barplan/pkg/model"
	"github.com/barplan/barplan/pkg/units"
)

// MatchIngredients compares a recipe's requirements, scaled by
// batchMultiplier, with the inventory's resolved availability.
//
// The score is the requirement-weighted mean of the per-ingredient match
// ratios, times 100. Recipe ingredients the inventory does not stock at all
// are reported as missing details but carry no weight in the score; when no
// stocked ingredient carries weight the score is 0.
func MatchIngredients(
	recipeIngredients []model.Quantity,
	inv model.Inventory,
	batchMultiplier float64,
	committed model.CommittedUsage,
	mode Mode,
) IngredientResult {
	if len(recipeIngredients) == 0 || len(inv.Ingredients) == 0 {
		return IngredientResult{Details: []MatchDetail{}}
	}

	avail := ResolveAvailability(inv, committed, mode)
	required := mergeByKey(recipeIngredients)

	details := make([]MatchDetail, 0, len(required))
	var totalMatch, totalWeight float64

	for _, ri := range required {
		scaled := ri.amount * batchMultiplier

		a, ok := avail[ri.key]
		if !ok {
			details = append(details, MatchDetail{
				IngredientName:       ri.name,
				Unit:                 ri.unit,
				RequiredInTargetUnit: scaled,
				Percent:              MissingLabel,
				Missing:              true,
			})
			continue
		}

		need := units.Convert(scaled, ri.unit, a.Unit)
		have := a.Remaining
		if mode == ModePreview {
			have = a.Stocked
		}
		ratio := matchRatio(have, need)

		totalMatch += ratio * need
		totalWeight += need

		details = append(details, MatchDetail{
			IngredientName:        ri.name,
			Unit:                  a.Unit,
			RequiredInTargetUnit:  need,
			AvailableInTargetUnit: have,
			MatchRatio:            ratio,
			Percent:               formatPercent(ratio),
		})
	}

	var score float64
	if totalWeight > 0 {
		score = 100 * totalMatch / totalWeight
	}
	return IngredientResult{Score: score, Details: details}
}

// matchRatio is the covered share of a requirement, capped at 1.
// A zero requirement is always satisfied.
func matchRatio(available, required float64) float64 {
	if required == 0 || available >= required {
		return 1
	}
	return available / required
}

func formatPercent(ratio float64) string {
	return fmt.Sprintf("%.1f%%", ratio*100)
}
