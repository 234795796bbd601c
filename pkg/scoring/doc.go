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

// Package scoring computes how well a cocktail recipe fits a project's
// inventory.
//
// # Overview
//
// The final score (0 to 100) blends two dimensions using the project's
// priority weights:
//
//   - Flavor match: share of the project's target flavor tags the recipe hits.
//   - Ingredient match: quantity-weighted share of the recipe's requirements
//     the stock can cover, after unit conversion and after subtracting what
//     the plan's committed recipes already use.
//
// # Modes
//
// ModePlanning subtracts committed usage before matching a new candidate.
// ModePreview matches against the raw stocked amounts; it is used when showing
// details for a recipe that is already part of the plan, where its own usage
// must not be subtracted from itself.
//
// # Guarantees
//
// Every function in this package is pure: no I/O, no logging, no package
// state, no caching. Inputs are never modified. Identical inputs always give
// identical outputs, so callers may score in parallel without coordination.
// Malformed inputs are not rejected here; use the pkg/model constructors at
// the boundary.
//
// # Usage
//
//	res := scoring.ScoreRecipe(recipe, inventory, 2, plan, scoring.ModePlanning)
//	fmt.Printf("%.1f\n", res.Score)
//	for _, d := range res.Ingredients.Details {
//	    fmt.Println(d.IngredientName, d.Percent)
//	}
package scoring
