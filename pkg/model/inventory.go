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

// weightTotal is the sum every Priority must reach.
const weightTotal = 100.0

const weightTolerance = 1e-9

// Priority splits the final score between the flavor and ingredient
// dimensions. Both weights are percentages and add up to 100.
type Priority struct {
	FlavorWeight     float64 `json:"flavorWeight" yaml:"flavorWeight" koanf:"flavor_weight" validate:"gte=0,lte=100"`
	IngredientWeight float64 `json:"ingredientWeight" yaml:"ingredientWeight" koanf:"ingredient_weight" validate:"gte=0,lte=100"`
}

// NewPriority builds a Priority and checks that the weights add up to 100.
func NewPriority(flavorWeight, ingredientWeight float64) (Priority, error) {
	p := Priority{FlavorWeight: flavorWeight, IngredientWeight: ingredientWeight}
	if err := p.Validate(); err != nil {
		return Priority{}, err
	}
	return p, nil
}

// Validate checks the weight ranges and their sum.
func (p Priority) Validate() error {
	ctx := map[string]any{"flavorWeight": p.FlavorWeight, "ingredientWeight": p.IngredientWeight}
	if math.IsNaN(p.FlavorWeight) || math.IsNaN(p.IngredientWeight) {
		return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"invalid priority: weights must be numbers", ctx)
	}
	if err := validateStruct(p, "priority", ctx); err != nil {
		return err
	}
	if sum := p.FlavorWeight + p.IngredientWeight; math.Abs(sum-weightTotal) > weightTolerance {
		return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid priority: weights must add up to 100, got %g", sum), ctx)
	}
	return nil
}

// Inventory is a project's target flavor profile and stocked ingredients.
type Inventory struct {
	Name        string     `json:"name,omitempty" yaml:"name,omitempty"`
	FlavorTags  []string   `json:"flavorTags,omitempty" yaml:"flavorTags,omitempty"`
	Ingredients []Quantity `json:"ingredients" yaml:"ingredients"`
	Priority    Priority   `json:"priority" yaml:"priority"`
}

// NewInventory builds a validated Inventory. Flavor tags are normalized and the
// ingredient slice is copied.
func NewInventory(name string, flavorTags []string, ingredients []Quantity, priority Priority) (Inventory, error) {
	inv := Inventory{
		Name:        strings.TrimSpace(name),
		FlavorTags:  NormalizeTags(flavorTags),
		Ingredients: append([]Quantity(nil), ingredients...),
		Priority:    priority,
	}
	ctx := map[string]any{"project": inv.Name}
	for i, q := range inv.Ingredients {
		if err := q.Validate(); err != nil {
			return Inventory{}, apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
				fmt.Sprintf("invalid inventory: ingredient %d", i), err, ctx)
		}
	}
	if err := priority.Validate(); err != nil {
		return Inventory{}, apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
			"invalid inventory", err, ctx)
	}
	return inv, nil
}

// Commitment is a recipe accepted into a project's plan at a batch multiplier.
type Commitment struct {
	Recipe          Recipe  `json:"recipe" yaml:"recipe"`
	BatchMultiplier float64 `json:"batchMultiplier" yaml:"batchMultiplier"`
}

// CommittedUsage is the ordered list of commitments already in a plan.
type CommittedUsage []Commitment

// Includes reports whether the plan commits the recipe with the given ID.
func (c CommittedUsage) Includes(recipeID string) bool {
	for _, cm := range c {
		if cm.Recipe.ID == recipeID {
			return true
		}
	}
	return false
}

// NewCommitment builds a Commitment. A zero multiplier takes the recipe's own.
func NewCommitment(r Recipe, batchMultiplier float64) (Commitment, error) {
	if batchMultiplier == 0 {
		batchMultiplier = r.BatchMultiplier
	}
	if math.IsNaN(batchMultiplier) || math.IsInf(batchMultiplier, 0) || batchMultiplier < DefaultBatchMultiplier {
		return Commitment{}, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"invalid commitment: batch multiplier must be a finite number >= 1",
			map[string]any{"recipe": r.ID, "batchMultiplier": batchMultiplier})
	}
	return Commitment{Recipe: r, BatchMultiplier: batchMultiplier}, nil
}
