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

import "github.com/barplan/barplan/pkg/model"

// ScoreRecipe blends the flavor and ingredient scores of recipe against inv
// using the inventory's priority weights. batchMultiplier overrides the
// recipe's stored multiplier for this call only.
func ScoreRecipe(
	recipe model.Recipe,
	inv model.Inventory,
	batchMultiplier float64,
	committed model.CommittedUsage,
	mode Mode,
) Result {
	flavorWeight := inv.Priority.FlavorWeight / 100
	ingredientWeight := inv.Priority.IngredientWeight / 100

	flavor := MatchFlavors(recipe.FlavorTags, inv.FlavorTags)
	ingredients := MatchIngredients(recipe.Ingredients, inv, batchMultiplier, committed, mode)

	return Result{
		Score:       flavorWeight*flavor.Score + ingredientWeight*ingredients.Score,
		Flavor:      flavor,
		Ingredients: ingredients,
	}
}
