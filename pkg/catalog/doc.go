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

// Package catalog loads recipes and projects from YAML or JSON documents.
//
// Recipes are served through the RecipeSource port and projects through
// ProjectSource. The file-backed implementations read a document once,
// pass every record through the model constructors and keep the result in
// memory; they are read-only and safe for concurrent use.
//
// # Recipe documents
//
//	recipes:
//	  - id: daiquiri
//	    name: Daiquiri
//	    category: sour
//	    flavorTags: [sour, sweet]
//	    batchMultiplier: 1
//	    ingredients:
//	      - {name: White Rum, amount: 60, unit: ml}
//	      - {name: Lime Juice, amount: 25, unit: ml}
//
// Recipes without an id get a UUID derived from their name, so the same file
// always yields the same IDs. Duplicate IDs are rejected.
//
// # Project documents
//
//	name: Summer Menu
//	flavorTags: [sour, fresh]
//	priority: {flavorWeight: 40, ingredientWeight: 60}
//	ingredients:
//	  - {name: White Rum, amount: 700, unit: ml}
//	plan:
//	  - {recipeId: daiquiri, batchMultiplier: 2}
//
// Plan entries reference recipes by ID and are resolved in declared order.
// A project without a priority uses the weights passed by the caller.
package catalog
