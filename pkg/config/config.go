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
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/barplan/barplan/pkg/defaults"
	apperrors "github.com/barplan/barplan/pkg/errors"
	"github.com/barplan/barplan/pkg/model"
	"github.com/barplan/barplan/pkg/scoring"
	"github.com/barplan/barplan/pkg/serializer"
)

// Config holds all barplan settings.
type Config struct {
	Scoring ScoringConfig `koanf:"scoring"`
	Rank    RankConfig    `koanf:"rank"`
	Catalog CatalogConfig `koanf:"catalog"`
	Output  OutputConfig  `koanf:"output"`
	Log     LogConfig     `koanf:"log"`
}

// ScoringConfig controls how recipes are scored.
type ScoringConfig struct {
	// Mode is "planning" or "preview".
	Mode string `koanf:"mode" validate:"oneof=planning preview"`
	// Priority is used for projects that do not declare their own.
	Priority model.Priority `koanf:"priority"`
}

// RankConfig controls candidate ranking.
type RankConfig struct {
	Concurrency int           `koanf:"concurrency" validate:"gte=1,lte=64"`
	Limit       int           `koanf:"limit" validate:"gte=0"`
	Timeout     time.Duration `koanf:"timeout" validate:"gt=0"`
}

// CatalogConfig points at the input documents.
type CatalogConfig struct {
	Recipes     string        `koanf:"recipes"`
	Project     string        `koanf:"project"`
	LoadTimeout time.Duration `koanf:"load_timeout" validate:"gt=0"`
}

// OutputConfig controls report output.
type OutputConfig struct {
	Format string `koanf:"format" validate:"oneof=yaml json table"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `koanf:"level" validate:"oneof=debug info warn warning error"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Scoring: ScoringConfig{
			Mode: scoring.ModePlanning.String(),
			Priority: model.Priority{
				FlavorWeight:     defaults.FlavorWeight,
				IngredientWeight: defaults.IngredientWeight,
			},
		},
		Rank: RankConfig{
			Concurrency: defaults.RankConcurrency,
			Limit:       defaults.RankLimit,
			Timeout:     defaults.RankTimeout,
		},
		Catalog: CatalogConfig{
			LoadTimeout: defaults.LoadTimeout,
		},
		Output: OutputConfig{
			Format: defaults.OutputFormat,
		},
		Log: LogConfig{
			Level: defaults.LogLevel,
		},
	}
}

// ScoringMode returns the parsed scoring mode.
func (c *Config) ScoringMode() scoring.Mode {
	m, err := scoring.ParseMode(c.Scoring.Mode)
	if err != nil {
		return scoring.ModePlanning
	}
	return m
}

// OutputFormat returns the parsed output format.
func (c *Config) OutputFormat() serializer.Format {
	f, err := serializer.ParseFormat(c.Output.Format)
	if err != nil {
		return serializer.FormatYAML
	}
	return f
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// Validate checks field ranges and the priority weights.
func (c *Config) Validate() error {
	c.Scoring.Mode = strings.ToLower(strings.TrimSpace(c.Scoring.Mode))
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))

	if err := getValidator().Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "invalid configuration", err)
		}
		msgs := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			msgs = append(msgs, describe(fe))
		}
		return apperrors.New(apperrors.ErrCodeInvalidRequest,
			"invalid configuration: "+strings.Join(msgs, "; "))
	}

	if err := c.Scoring.Priority.Validate(); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "invalid configuration: scoring.priority", err)
	}
	return nil
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", fe.Namespace(), fe.Param(), fe.Value())
	case "gte", "gt", "lte":
		return fmt.Sprintf("%s must be %s %s, got %v", fe.Namespace(), fe.Tag(), fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Namespace(), fe.Tag())
	}
}
