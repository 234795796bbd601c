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

import "time"

// CLI timeouts for command-line operations.
const (
	// CommandTimeout bounds a whole CLI command, loading included.
	CommandTimeout = 2 * time.Minute

	// LoadTimeout bounds reading and validating catalog documents.
	// Should be less than CommandTimeout to leave room for scoring and output.
	LoadTimeout = 30 * time.Second
)

// Planner timeouts for scoring operations.
const (
	// RankTimeout is the default budget for ranking a full catalog.
	RankTimeout = 60 * time.Second

	// ScoreTimeout is the default budget for scoring a single recipe.
	ScoreTimeout = 5 * time.Second
)
