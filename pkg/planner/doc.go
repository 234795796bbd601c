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

// Package planner turns scoring results into reports for a project.
//
// A Planner scores one candidate recipe (Score), ranks a catalog of
// candidates (Rank), lists what must be bought to make a recipe
// (ShortfallFor) and totals what the project's plan consumes (Usage).
// Every report embeds a header.Header so it serializes as a self-describing
// document.
//
// # Usage
//
//	p := planner.New(
//		planner.WithConcurrency(8),
//		planner.WithMode(scoring.ModePlanning),
//		planner.WithVersion(version),
//	)
//	report, err := p.Rank(ctx, recipes, inv, plan, 10)
//
// # Modes
//
// In scoring.ModePlanning the stock already committed to the plan is
// subtracted before matching. scoring.ModePreview matches against the full
// stock, which is how an audit of an already committed recipe is done.
//
// # Concurrency
//
// Rank fans out across candidates with golang.org/x/sync/errgroup, bounded by
// the configured concurrency. Inputs are shared read-only; every goroutine
// writes only its own result slot. Planner values are safe for concurrent use.
//
// # Metrics
//
// Scoring latency, ranking latency, ranked candidate counts and score
// outcomes are exported through the default Prometheus registry:
//
//   - barplan_score_duration_seconds
//   - barplan_score_results_total{result="feasible|partial"}
//   - barplan_rank_duration_seconds
//   - barplan_rank_candidates_total
package planner
