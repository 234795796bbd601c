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

package planner

import (
	"context"
	"log/slog"

	apperrors "github.com/barplan/barplan/pkg/errors"
	"github.com/barplan/barplan/pkg/header"
	"github.com/barplan/barplan/pkg/model"
	"github.com/barplan/barplan/pkg/scoring"
	"github.com/barplan/barplan/pkg/units"
)

// ShortfallLine is an amount that must be acquired before a recipe can be made.
type ShortfallLine struct {
	Name    string  `json:"name" yaml:"name"`
	Needed  float64 `json:"needed" yaml:"needed"`
	Unit    string  `json:"unit,omitempty" yaml:"unit,omitempty"`
	Missing bool    `json:"missing,omitempty" yaml:"missing,omitempty"`
}

// ShortfallReport is the shopping list for one recipe at one batch multiplier.
type ShortfallReport struct {
	header.Header `json:",inline" yaml:",inline"`

	Project         string          `json:"project,omitempty" yaml:"project,omitempty"`
	Recipe          RecipeRef       `json:"recipe" yaml:"recipe"`
	Mode            string          `json:"mode" yaml:"mode"`
	BatchMultiplier float64         `json:"batchMultiplier" yaml:"batchMultiplier"`
	Score           float64         `json:"score" yaml:"score"`
	Lines           []ShortfallLine `json:"lines" yaml:"lines"`
}

// Shortfall lists every detail that is not fully covered. Needed is the
// uncovered part of the requirement in the detail's unit; a missing
// ingredient needs its whole requirement.
func Shortfall(details []scoring.MatchDetail) []ShortfallLine {
	out := make([]ShortfallLine, 0, len(details))
	for _, d := range details {
		if d.MatchRatio >= 1 {
			continue
		}
		needed := d.RequiredInTargetUnit
		if !d.Missing {
			needed -= d.AvailableInTargetUnit
		}
		out = append(out, ShortfallLine{
			Name:    d.IngredientName,
			Needed:  needed,
			Unit:    d.Unit,
			Missing: d.Missing,
		})
	}
	return out
}

// shortfallOf is Shortfall for a scored recipe. Scoring reports no details
// when the project stocks nothing, so every requirement is listed as missing
// in that case.
func shortfallOf(r model.Recipe, inv model.Inventory, batchMultiplier float64, details []scoring.MatchDetail) []ShortfallLine {
	if len(inv.Ingredients) > 0 || len(r.Ingredients) == 0 {
		return Shortfall(details)
	}

	out := make([]ShortfallLine, 0, len(r.Ingredients))
	index := make(map[string]int, len(r.Ingredients))
	for _, q := range r.Ingredients {
		if i, ok := index[q.Key()]; ok {
			out[i].Needed += units.Convert(q.Amount*batchMultiplier, q.Unit, out[i].Unit)
			continue
		}
		index[q.Key()] = len(out)
		out = append(out, ShortfallLine{
			Name:    q.Name,
			Needed:  q.Amount * batchMultiplier,
			Unit:    q.Unit,
			Missing: true,
		})
	}
	return out
}

// ShortfallFor scores recipe against inv and returns what is still needed to
// make it at batchMultiplier. A zero multiplier uses the recipe's own.
func (p *Planner) ShortfallFor(ctx context.Context, recipe model.Recipe, inv model.Inventory, batchMultiplier float64, committed model.CommittedUsage) (*ShortfallReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.FromContext(err)
	}

	m, err := resolveMultiplier(recipe, batchMultiplier)
	if err != nil {
		return nil, err
	}

	res := scoring.ScoreRecipe(recipe, inv, m, committed, p.mode)
	lines := shortfallOf(recipe, inv, m, res.Ingredients.Details)

	slog.Debug("computed shortfall",
		slog.String("recipe", recipe.Name),
		slog.Float64("multiplier", m),
		slog.Int("lines", len(lines)),
	)

	return &ShortfallReport{
		Header:          p.newHeader(header.KindShortfallReport, inv.Name),
		Project:         inv.Name,
		Recipe:          refOf(recipe),
		Mode:            p.mode.String(),
		BatchMultiplier: m,
		Score:           res.Score,
		Lines:           lines,
	}, nil
}
