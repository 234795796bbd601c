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

package model

import (
	"fmt"
	"math"
	"strings"

	apperrors "github.com/barplan/barplan/pkg/errors"
)

// DefaultBatchMultiplier is used when a recipe does not set one.
const DefaultBatchMultiplier = 1.0

// Recipe is a cocktail definition. BatchMultiplier is applied at score time
// and is never folded into Ingredients.
type Recipe struct {
	ID              string     `json:"id" yaml:"id"`
	Name            string     `json:"name" yaml:"name" validate:"required"`
	Category        string     `json:"category,omitempty" yaml:"category,omitempty"`
	FlavorTags      []string   `json:"flavorTags,omitempty" yaml:"flavorTags,omitempty"`
	Ingredients     []Quantity `json:"ingredients" yaml:"ingredients" validate:"dive"`
	BatchMultiplier float64    `json:"batchMultiplier" yaml:"batchMultiplier" validate:"gte=1"`
}

// RecipeOption is a functional option for NewRecipe.
type RecipeOption func(*Recipe)

// WithID sets the recipe identifier.
func WithID(id string) RecipeOption {
	return func(r *Recipe) {
		r.ID = strings.TrimSpace(id)
	}
}

// WithCategory sets the recipe category (e.g. "sour", "highball").
func WithCategory(category string) RecipeOption {
	return func(r *Recipe) {
		r.Category = strings.TrimSpace(category)
	}
}

// WithFlavorTags sets the recipe flavor tags. Tags are normalized.
func WithFlavorTags(tags ...string) RecipeOption {
	return func(r *Recipe) {
		r.FlavorTags = NormalizeTags(tags)
	}
}

// WithBatchMultiplier sets the default number of batches. Zero keeps the default.
func WithBatchMultiplier(m float64) RecipeOption {
	return func(r *Recipe) {
		if m != 0 {
			r.BatchMultiplier = m
		}
	}
}

// NewRecipe builds a validated Recipe. Ingredients are copied so later changes
// to the caller's slice do not leak into the recipe.
func NewRecipe(name string, ingredients []Quantity, opts ...RecipeOption) (Recipe, error) {
	r := Recipe{
		Name:            strings.TrimSpace(name),
		Ingredients:     append([]Quantity(nil), ingredients...),
		BatchMultiplier: DefaultBatchMultiplier,
	}
	for _, opt := range opts {
		opt(&r)
	}

	ctx := map[string]any{"recipe": r.Name, "id": r.ID}
	if r.Name == "" {
		return Recipe{}, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"invalid recipe: name is required", ctx)
	}
	for i, q := range r.Ingredients {
		if err := q.Validate(); err != nil {
			return Recipe{}, apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
				fmt.Sprintf("invalid recipe: ingredient %d", i), err, ctx)
		}
	}
	if math.IsNaN(r.BatchMultiplier) || math.IsInf(r.BatchMultiplier, 0) {
		return Recipe{}, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"invalid recipe: batch multiplier must be a finite number", ctx)
	}
	if err := validateStruct(r, "recipe", ctx); err != nil {
		return Recipe{}, err
	}
	return r, nil
}
