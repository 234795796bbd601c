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
	"time"

	apperrors "github.com/barplan/barplan/pkg/errors"
	"github.com/barplan/barplan/pkg/header"
	"github.com/barplan/barplan/pkg/model"
	"github.com/barplan/barplan/pkg/scoring"
)

// ScoreReport is the compatibility of one recipe with a project.
type ScoreReport struct {
	header.Header `json:",inline" yaml:",inline"`

	Project         string                   `json:"project,omitempty" yaml:"project,omitempty"`
	Recipe          RecipeRef                `json:"recipe" yaml:"recipe"`
	Mode            string                   `json:"mode" yaml:"mode"`
	BatchMultiplier float64                  `json:"batchMultiplier" yaml:"batchMultiplier"`
	Score           float64                  `json:"score" yaml:"score"`
	Feasible        bool                     `json:"feasible" yaml:"feasible"`
	Flavor          scoring.FlavorResult     `json:"flavor" yaml:"flavor"`
	Ingredients     scoring.IngredientResult `json:"ingredients" yaml:"ingredients"`
	Shortfall       []ShortfallLine          `json:"shortfall,omitempty" yaml:"shortfall,omitempty"`
}

// Score scores recipe against inv at batchMultiplier. A zero multiplier uses
// the recipe's own. The report is feasible when nothing is short.
func (p *Planner) Score(ctx context.Context, recipe model.Recipe, inv model.Inventory, batchMultiplier float64, committed model.CommittedUsage) (*ScoreReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.FromContext(err)
	}

	m, err := resolveMultiplier(recipe, batchMultiplier)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	res := scoring.ScoreRecipe(recipe, inv, m, committed, p.mode)
	short := shortfallOf(recipe, inv, m, res.Ingredients.Details)
	scoreDuration.Observe(time.Since(start).Seconds())

	feasible := len(short) == 0
	observeResult(feasible)

	slog.Debug("scored recipe",
		slog.String("recipe", recipe.Name),
		slog.String("mode", p.mode.String()),
		slog.Float64("multiplier", m),
		slog.Float64("score", res.Score),
		slog.Bool("feasible", feasible),
	)

	return &ScoreReport{
		Header:          p.newHeader(header.KindScoreReport, inv.Name),
		Project:         inv.Name,
		Recipe:          refOf(recipe),
		Mode:            p.mode.String(),
		BatchMultiplier: m,
		Score:           res.Score,
		Feasible:        feasible,
		Flavor:          res.Flavor,
		Ingredients:     res.Ingredients,
		Shortfall:       short,
	}, nil
}
