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
	"fmt"
	"math"

	"github.com/barplan/barplan/pkg/defaults"
	apperrors "github.com/barplan/barplan/pkg/errors"
	"github.com/barplan/barplan/pkg/header"
	"github.com/barplan/barplan/pkg/model"
	"github.com/barplan/barplan/pkg/scoring"
)

// Planner produces score, ranking, shortfall and usage reports.
type Planner struct {
	concurrency int
	mode        scoring.Mode
	version     string
}

// Option is a functional option for configuring Planner instances.
type Option func(*Planner)

// WithConcurrency sets how many candidates Rank scores in parallel.
// Values are clamped to [1, defaults.MaxRankConcurrency].
func WithConcurrency(n int) Option {
	return func(p *Planner) {
		switch {
		case n < 1:
			p.concurrency = 1
		case n > defaults.MaxRankConcurrency:
			p.concurrency = defaults.MaxRankConcurrency
		default:
			p.concurrency = n
		}
	}
}

// WithMode selects planning or preview availability.
func WithMode(mode scoring.Mode) Option {
	return func(p *Planner) {
		p.mode = mode
	}
}

// WithVersion sets the tool version recorded in report metadata.
func WithVersion(version string) Option {
	return func(p *Planner) {
		p.version = version
	}
}

// New creates a Planner with the provided functional options.
func New(opts ...Option) *Planner {
	p := &Planner{
		concurrency: defaults.RankConcurrency,
		mode:        scoring.ModePlanning,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Mode returns the availability mode used by the Planner.
func (p *Planner) Mode() scoring.Mode {
	return p.mode
}

// Concurrency returns the ranking parallelism.
func (p *Planner) Concurrency() int {
	return p.concurrency
}

// RecipeRef identifies the recipe a report is about.
type RecipeRef struct {
	ID       string `json:"id,omitempty" yaml:"id,omitempty"`
	Name     string `json:"name" yaml:"name"`
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
}

func refOf(r model.Recipe) RecipeRef {
	return RecipeRef{ID: r.ID, Name: r.Name, Category: r.Category}
}

func (p *Planner) newHeader(kind header.Kind, project string) header.Header {
	return header.New(kind, header.WithProject(project), header.WithVersion(p.version))
}

// resolveMultiplier returns the multiplier to score with: the requested one,
// or the recipe's own when zero is requested.
func resolveMultiplier(r model.Recipe, requested float64) (float64, error) {
	m := requested
	if m == 0 {
		m = r.BatchMultiplier
	}
	if m == 0 {
		m = defaults.BatchMultiplier
	}
	if math.IsNaN(m) || math.IsInf(m, 0) || m < defaults.BatchMultiplier {
		return 0, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid batch multiplier %g: must be a finite number >= 1", m),
			map[string]any{"recipe": r.ID})
	}
	return m, nil
}
