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
)

// PlanEntry is one commitment of the plan as shown in a UsageReport.
type PlanEntry struct {
	RecipeRef       `json:",inline" yaml:",inline"`
	BatchMultiplier float64 `json:"batchMultiplier" yaml:"batchMultiplier"`
}

// UsageLine is the total plan consumption of one ingredient. For stocked
// ingredients Unit is the inventory unit and Stocked/Remaining are set.
type UsageLine struct {
	Name      string  `json:"name" yaml:"name"`
	Used      float64 `json:"used" yaml:"used"`
	Unit      string  `json:"unit" yaml:"unit"`
	InStock   bool    `json:"inStock" yaml:"inStock"`
	Stocked   float64 `json:"stocked,omitempty" yaml:"stocked,omitempty"`
	Remaining float64 `json:"remaining,omitempty" yaml:"remaining,omitempty"`
	Overdrawn bool    `json:"overdrawn,omitempty" yaml:"overdrawn,omitempty"`
}

// UsageReport totals what a project's plan consumes.
type UsageReport struct {
	header.Header `json:",inline" yaml:",inline"`

	Project string      `json:"project,omitempty" yaml:"project,omitempty"`
	Plan    []PlanEntry `json:"plan" yaml:"plan"`
	Lines   []UsageLine `json:"lines" yaml:"lines"`
}

// Usage aggregates the ingredient consumption of the committed recipes and
// compares it with the project's stock. The report is informational and
// does not depend on the planner mode.
func (p *Planner) Usage(ctx context.Context, committed model.CommittedUsage, inv model.Inventory) (*UsageReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.FromContext(err)
	}

	totals := scoring.AggregateUsage(committed, inv).Lines()
	avail := scoring.ResolveAvailability(inv, committed, scoring.ModePlanning)

	lines := make([]UsageLine, 0, len(totals))
	for _, t := range totals {
		l := UsageLine{Name: t.Name, Used: t.Total, Unit: t.Unit}
		if a, ok := avail[model.NormalizeName(t.Name)]; ok {
			l.InStock = true
			l.Stocked = a.Stocked
			l.Remaining = a.Remaining
			l.Overdrawn = t.Total > a.Stocked
		}
		lines = append(lines, l)
	}

	plan := make([]PlanEntry, 0, len(committed))
	for _, c := range committed {
		plan = append(plan, PlanEntry{RecipeRef: refOf(c.Recipe), BatchMultiplier: c.BatchMultiplier})
	}

	slog.Debug("aggregated plan usage",
		slog.String("project", inv.Name),
		slog.Int("commitments", len(plan)),
		slog.Int("ingredients", len(lines)),
	)

	return &UsageReport{
		Header:  p.newHeader(header.KindUsageReport, inv.Name),
		Project: inv.Name,
		Plan:    plan,
		Lines:   lines,
	}, nil
}
