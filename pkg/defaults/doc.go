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

// Package defaults provides centralized configuration constants for barplan.
//
// Timeouts, scoring weights, ranking parallelism and output settings live here
// so that the config loader, planner and CLI agree on the same values.
//
// # Usage
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.LoadTimeout)
//	defer cancel()
//
// # Guidelines
//
//   - LoadTimeout < CommandTimeout
//   - FlavorWeight + IngredientWeight == 100
//   - 1 <= RankConcurrency <= MaxRankConcurrency
package defaults
