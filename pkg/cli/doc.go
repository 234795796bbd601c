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

// Package cli implements the barplan command-line interface.
//
// # Commands
//
//	barplan score     --recipes F --project F --recipe ID [--multiplier N] [--preview]
//	barplan rank      --recipes F --project F [--limit N] [--search T] [--category C] [--tag T]...
//	barplan shortfall --recipes F --project F --recipe ID [--multiplier N]
//	barplan usage     --recipes F --project F
//	barplan units
//
// Every command accepts --output/-o (default stdout) and --format/-t
// (yaml, json or table). --recipe takes an ID or a unique recipe name.
//
// # Global Flags
//
//	--config     YAML config file (env BARPLAN_CONFIG)
//	--log-level  debug, info, warn or error (env LOG_LEVEL)
//
// Flags win over the config file, which wins over built-in defaults. Paths to
// the recipe catalog and the project can be set in the config file under
// catalog.recipes and catalog.project.
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, invalid documents, unknown recipe)
//	2  Context canceled or timeout
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/barplan/barplan/pkg/cli.version=1.0.0'"
package cli
