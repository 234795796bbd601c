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
	"sort"
	"strings"
)

// Mode selects how ingredient availability is resolved.
type Mode int

const (
	// ModePlanning subtracts committed usage from stock.
	ModePlanning Mode = iota
	// ModePreview uses stocked amounts as-is.
	ModePreview
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModePlanning:
		return "planning"
	case ModePreview:
		return "preview"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses a mode name. Empty selects ModePlanning.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "planning", "plan":
		return ModePlanning, nil
	case "preview", "audit":
		return ModePreview, nil
	default:
		return ModePlanning, fmt.Errorf("invalid scoring mode: %s", s)
	}
}

// MissingLabel is the Percent value of a detail whose ingredient is not stocked.
const MissingLabel = "missing"

// FlavorResult is the output of MatchFlavors.
type FlavorResult struct {
	Score       float64  `json:"score" yaml:"score"`
	MatchedTags []string `json:"matchedTags" yaml:"matchedTags"`
}

// MatchDetail describes how one recipe ingredient matched the inventory.
// Amounts are expressed in Unit, which is the inventory's unit for stocked
// ingredients and the recipe's own unit for missing ones.
type MatchDetail struct {
	IngredientName        string  `json:"ingredientName" yaml:"ingredientName"`
	Unit                  string  `json:"unit,omitempty" yaml:"unit,omitempty"`
	RequiredInTargetUnit  float64 `json:"requiredInTargetUnit" yaml:"requiredInTargetUnit"`
	AvailableInTargetUnit float64 `json:"availableInTargetUnit" yaml:"availableInTargetUnit"`
	MatchRatio            float64 `json:"matchRatio" yaml:"matchRatio"`
	Percent               string  `json:"percent" yaml:"percent"`
	Missing               bool    `json:"missing,omitempty" yaml:"missing,omitempty"`
}

// IngredientResult is the output of MatchIngredients.
type IngredientResult struct {
	Score   float64       `json:"score" yaml:"score"`
	Details []MatchDetail `json:"details" yaml:"details"`
}

// Result is the output of ScoreRecipe.
type Result struct {
	Score       float64          `json:"score" yaml:"score"`
	Flavor      FlavorResult     `json:"flavor" yaml:"flavor"`
	Ingredients IngredientResult `json:"ingredients" yaml:"ingredients"`
}

// Available is the resolved stock of one inventory ingredient.
type Available struct {
	Name      string  `json:"name" yaml:"name"`
	Stocked   float64 `json:"stocked" yaml:"stocked"`
	Remaining float64 `json:"remaining" yaml:"remaining"`
	Unit      string  `json:"unit" yaml:"unit"`
}

// Availability maps a normalized ingredient name to its resolved stock.
type Availability map[string]Available

// UsageTotal is the aggregated plan usage of one ingredient.
type UsageTotal struct {
	Name  string  `json:"name" yaml:"name"`
	Total float64 `json:"total" yaml:"total"`
	Unit  string  `json:"unit" yaml:"unit"`
}

// Usage maps a normalized ingredient name to its aggregated plan usage.
type Usage map[string]UsageTotal

// Lines returns the usage totals ordered by normalized name.
func (u Usage) Lines() []UsageTotal {
	keys := make([]string, 0, len(u))
	for k := range u {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]UsageTotal, 0, len(keys))
	for _, k := range keys {
		out = append(out, u[k])
	}
	return out
}
