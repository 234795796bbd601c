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
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/barplan/barplan/pkg/errors"
	"github.com/barplan/barplan/pkg/header"
	"github.com/barplan/barplan/pkg/model"
	"github.com/barplan/barplan/pkg/scoring"
)

// RankedRecipe is one row of a RankingReport.
type RankedRecipe struct {
	Rank            int      `json:"rank" yaml:"rank"`
	RecipeRef       `json:",inline" yaml:",inline"`
	BatchMultiplier float64  `json:"batchMultiplier" yaml:"batchMultiplier"`
	Score           float64  `json:"score" yaml:"score"`
	FlavorScore     float64  `json:"flavorScore" yaml:"flavorScore"`
	IngredientScore float64  `json:"ingredientScore" yaml:"ingredientScore"`
	MatchedTags     []string `json:"matchedTags,omitempty" yaml:"matchedTags,omitempty"`
	Missing         []string `json:"missing,omitempty" yaml:"missing,omitempty"`
	Feasible        bool     `json:"feasible" yaml:"feasible"`
}

// RankingReport lists candidate recipes from best to worst match.
type RankingReport struct {
	header.Header `json:",inline" yaml:",inline"`

	Project    string         `json:"project,omitempty" yaml:"project,omitempty"`
	Mode       string         `json:"mode" yaml:"mode"`
	Candidates int            `json:"candidates" yaml:"candidates"`
	Recipes    []RankedRecipe `json:"recipes" yaml:"recipes"`
}

// Rank scores every recipe against inv, each at its own batch multiplier, and
// orders them by score (highest first), then name, then ID. When limit is
// positive only the first limit entries are returned.
func (p *Planner) Rank(ctx context.Context, recipes []model.Recipe, inv model.Inventory, committed model.CommittedUsage, limit int) (*RankingReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.FromContext(err)
	}

	start := time.Now()
	defer func() {
		rankDuration.Observe(time.Since(start).Seconds())
	}()
	rankCandidatesTotal.Add(float64(len(recipes)))

	ranked := make([]RankedRecipe, len(recipes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for i, r := range recipes {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			m := r.BatchMultiplier
			if m == 0 {
				m = model.DefaultBatchMultiplier
			}
			res := scoring.ScoreRecipe(r, inv, m, committed, p.mode)
			short := shortfallOf(r, inv, m, res.Ingredients.Details)
			feasible := len(short) == 0
			observeResult(feasible)
			ranked[i] = RankedRecipe{
				RecipeRef:       refOf(r),
				BatchMultiplier: m,
				Score:           res.Score,
				FlavorScore:     res.Flavor.Score,
				IngredientScore: res.Ingredients.Score,
				MatchedTags:     res.Flavor.MatchedTags,
				Missing:         missingNames(short),
				Feasible:        feasible,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, apperrors.FromContext(err)
	}
	// the loop may stop early without any goroutine failing
	if err := ctx.Err(); err != nil {
		return nil, apperrors.FromContext(err)
	}

	sortRanked(ranked)
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	if limit > 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}

	slog.Debug("ranked recipes",
		slog.String("project", inv.Name),
		slog.Int("candidates", len(recipes)),
		slog.Int("returned", len(ranked)),
		slog.Duration("duration", time.Since(start)),
	)

	return &RankingReport{
		Header:     p.newHeader(header.KindRankingReport, inv.Name),
		Project:    inv.Name,
		Mode:       p.mode.String(),
		Candidates: len(recipes),
		Recipes:    ranked,
	}, nil
}

func sortRanked(ranked []RankedRecipe) {
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.ID < b.ID
	})
}

func missingNames(lines []ShortfallLine) []string {
	var out []string
	for _, l := range lines {
		if l.Missing {
			out = append(out, l.Name)
		}
	}
	return out
}
