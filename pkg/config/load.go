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

package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/barplan/barplan/pkg/defaults"
	apperrors "github.com/barplan/barplan/pkg/errors"
)

// PathEnvVar overrides the config file location when no path is given.
const PathEnvVar = defaults.EnvPrefix + "CONFIG"

// DefaultConfigPaths lists the files searched, in order, when neither a path
// nor PathEnvVar is set. The first existing file is used.
var DefaultConfigPaths = []string{
	"barplan.yaml",
	"barplan.yml",
	".barplan.yaml",
}

// envKeys maps environment variable suffixes to config paths. Paths contain
// underscores, so they cannot be derived by splitting the name.
var envKeys = map[string]string{
	"SCORING_MODE":                       "scoring.mode",
	"SCORING_PRIORITY_FLAVOR_WEIGHT":     "scoring.priority.flavor_weight",
	"SCORING_PRIORITY_INGREDIENT_WEIGHT": "scoring.priority.ingredient_weight",
	"RANK_CONCURRENCY":                   "rank.concurrency",
	"RANK_LIMIT":                         "rank.limit",
	"RANK_TIMEOUT":                       "rank.timeout",
	"CATALOG_RECIPES":                    "catalog.recipes",
	"CATALOG_PROJECT":                    "catalog.project",
	"CATALOG_LOAD_TIMEOUT":               "catalog.load_timeout",
	"OUTPUT_FORMAT":                      "output.format",
	"LOG_LEVEL":                          "log.level",
}

// envTransform maps BARPLAN_* variables to config paths. Unknown variables
// map to "" and are skipped.
func envTransform(key string) string {
	return envKeys[strings.TrimPrefix(key, defaults.EnvPrefix)]
}

// Load layers defaults, the config file and the environment into a
// validated Config. An explicit path must exist; searched paths are optional.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to load config defaults", err)
	}

	configPath, err := findConfigFile(path)
	if err != nil {
		return nil, err
	}
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
				"failed to load config file", err, map[string]any{"path": configPath})
		}
		slog.Debug("loaded config file", slog.String("path", configPath))
	}

	if err := k.Load(env.Provider(defaults.EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "failed to load environment variables", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "failed to unmarshal configuration", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// findConfigFile resolves the config file to read, or "" for none.
func findConfigFile(path string) (string, error) {
	explicit := strings.TrimSpace(path)
	if explicit == "" {
		explicit = strings.TrimSpace(os.Getenv(PathEnvVar))
	}
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", apperrors.WrapWithContext(apperrors.ErrCodeNotFound,
				fmt.Sprintf("config file %q not found", explicit), err, map[string]any{"path": explicit})
		}
		return explicit, nil
	}

	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", nil
}
