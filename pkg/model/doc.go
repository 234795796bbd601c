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

// Package model defines the value objects the scoring engine consumes:
// quantities, recipes, inventories, priority weights and the committed plan.
//
// Data entering barplan from files or other collaborators is converted into
// these types through the New* constructors, which fail fast on malformed
// input (blank names, negative or non-finite amounts, priority weights that do
// not add up to 100). Once constructed the values are treated as immutable;
// the scoring functions never modify them.
//
// Ingredient identity is the normalized name returned by Quantity.Key:
// "Lime Juice", " lime juice" and "LIME JUICE" are the same ingredient.
package model
