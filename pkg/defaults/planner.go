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

package defaults

// Scoring defaults applied when a project or the configuration leaves them unset.
const (
	// FlavorWeight is the flavor share of the final score, in percent.
	FlavorWeight = 50.0

	// IngredientWeight is the ingredient share of the final score, in percent.
	// FlavorWeight + IngredientWeight must equal 100.
	IngredientWeight = 50.0

	// BatchMultiplier is the number of batches scored when none is requested.
	BatchMultiplier = 1.0
)

// Ranking defaults.
const (
	// RankConcurrency is the number of candidates scored in parallel.
	RankConcurrency = 8

	// MaxRankConcurrency caps the configurable parallelism.
	MaxRankConcurrency = 64

	// RankLimit is the number of ranked candidates returned; 0 returns all.
	RankLimit = 0
)

// Configuration and output defaults.
const (
	// EnvPrefix is the prefix of environment variables read by the config loader.
	EnvPrefix = "BARPLAN_"

	// OutputFormat is the report format used when none is requested.
	OutputFormat = "yaml"

	// LogLevel is the log level used when neither flag, config nor env sets one.
	LogLevel = "info"
)
