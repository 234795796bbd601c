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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultFeasible = "feasible"
	resultPartial  = "partial"
)

var (
	scoreDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "barplan_score_duration_seconds",
			Help:    "Time taken to score a single recipe against a project",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	scoreResultsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "barplan_score_results_total",
			Help: "Total number of scored recipes by outcome",
		},
		[]string{"result"}, // feasible or partial
	)

	rankDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "barplan_rank_duration_seconds",
			Help:    "Time taken to rank a set of candidate recipes",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	rankCandidatesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "barplan_rank_candidates_total",
			Help: "Total number of candidate recipes submitted for ranking",
		},
	)
)

func observeResult(feasible bool) {
	if feasible {
		scoreResultsTotal.WithLabelValues(resultFeasible).Inc()
		return
	}
	scoreResultsTotal.WithLabelValues(resultPartial).Inc()
}
