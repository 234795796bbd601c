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

// Package config loads barplan settings from defaults, a YAML file and the
// environment, in increasing order of precedence.
//
// # Sources
//
//  1. Built-in defaults (pkg/defaults)
//  2. A YAML file: the explicit path, else $BARPLAN_CONFIG, else the first of
//     DefaultConfigPaths that exists
//  3. BARPLAN_* environment variables
//
// # File format
//
//	scoring:
//	  mode: planning
//	  priority:
//	    flavor_weight: 40
//	    ingredient_weight: 60
//	rank:
//	  concurrency: 8
//	  limit: 10
//	  timeout: 1m
//	catalog:
//	  recipes: recipes.yaml
//	  project: project.yaml
//	  load_timeout: 30s
//	output:
//	  format: yaml
//	log:
//	  level: info
//
// # Environment
//
// Every key has an environment variable named after its path, for example
// BARPLAN_SCORING_PRIORITY_FLAVOR_WEIGHT or BARPLAN_RANK_CONCURRENCY.
// Unknown BARPLAN_ variables are ignored.
//
// The loaded Config is validated with go-playground/validator; the priority
// weights must add up to 100.
package config
