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

package catalog

import (
	"context"

	"github.com/barplan/barplan/pkg/model"
)

// RecipeSource provides read access to a recipe catalog.
type RecipeSource interface {
	// List returns every recipe in catalog order.
	List(ctx context.Context) ([]model.Recipe, error)
	// Get returns the recipe with the given ID or a NOT_FOUND error.
	Get(ctx context.Context, id string) (model.Recipe, error)
	// Search returns the recipes matching q in catalog order.
	Search(ctx context.Context, q Query) ([]model.Recipe, error)
}

// ProjectSource provides a project's inventory and committed plan.
type ProjectSource interface {
	Project(ctx context.Context) (*Project, error)
}

// Project is a loaded project: what it stocks and what it already committed to.
type Project struct {
	Inventory model.Inventory
	Plan      model.CommittedUsage
}

// Query filters recipes. Empty fields match everything.
type Query struct {
	// Text matches a case-insensitive substring of the recipe name.
	Text string
	// Category matches the recipe category, ignoring case.
	Category string
	// Tags must all be present on the recipe.
	Tags []string
}

// RecipeDocument is the on-disk form of a recipe catalog.
type RecipeDocument struct {
	Recipes []RecipeRecord `json:"recipes" yaml:"recipes"`
}

// RecipeRecord is one raw recipe entry.
type RecipeRecord struct {
	ID              string           `json:"id,omitempty" yaml:"id,omitempty"`
	Name            string           `json:"name" yaml:"name"`
	Category        string           `json:"category,omitempty" yaml:"category,omitempty"`
	FlavorTags      []string         `json:"flavorTags,omitempty" yaml:"flavorTags,omitempty"`
	BatchMultiplier float64          `json:"batchMultiplier,omitempty" yaml:"batchMultiplier,omitempty"`
	Ingredients     []model.Quantity `json:"ingredients" yaml:"ingredients"`
}

// ProjectDocument is the on-disk form of a project.
type ProjectDocument struct {
	Name        string           `json:"name" yaml:"name"`
	FlavorTags  []string         `json:"flavorTags,omitempty" yaml:"flavorTags,omitempty"`
	Priority    *model.Priority  `json:"priority,omitempty" yaml:"priority,omitempty"`
	Ingredients []model.Quantity `json:"ingredients" yaml:"ingredients"`
	Plan        []PlanRecord     `json:"plan,omitempty" yaml:"plan,omitempty"`
}

// PlanRecord commits a catalog recipe to a project's plan.
// A zero BatchMultiplier takes the recipe's own.
type PlanRecord struct {
	RecipeID        string  `json:"recipeId" yaml:"recipeId"`
	BatchMultiplier float64 `json:"batchMultiplier,omitempty" yaml:"batchMultiplier,omitempty"`
}
