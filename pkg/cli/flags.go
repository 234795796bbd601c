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

package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/barplan/barplan/pkg/catalog"
	apperrors "github.com/barplan/barplan/pkg/errors"
	"github.com/barplan/barplan/pkg/model"
	"github.com/barplan/barplan/pkg/planner"
	"github.com/barplan/barplan/pkg/scoring"
	"github.com/barplan/barplan/pkg/serializer"
)

// Flags are built per command so parsed values never leak between commands.

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Usage:   fmt.Sprintf("Output format (supported: %v); defaults to the config value", serializer.SupportedFormats()),
	}
}

func recipesFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "recipes",
		Aliases: []string{"r"},
		Usage:   "Path to the recipe catalog (YAML or JSON)",
	}
}

func projectFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "project",
		Aliases: []string{"p"},
		Usage:   "Path to the project document (YAML or JSON)",
	}
}

func recipeFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "recipe",
		Usage:    "Recipe ID or unique name",
		Required: true,
	}
}

func multiplierFlag() cli.Flag {
	return &cli.FloatFlag{
		Name:    "multiplier",
		Aliases: []string{"m"},
		Usage:   "Batch multiplier (default: the recipe's own)",
	}
}

func previewFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "preview",
		Usage: "Match against the full stock, ignoring what the plan already committed",
	}
}

// parseOutputFormat returns the --format value as a serializer.Format.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	return serializer.ParseFormat(cmd.String("format"))
}

// outputFormat is the --format flag when set, else the configured format.
func (s *state) outputFormat(cmd *cli.Command) (serializer.Format, error) {
	if cmd.IsSet("format") {
		return parseOutputFormat(cmd)
	}
	return s.cfg.OutputFormat(), nil
}

// mode is preview when --preview is set, else the configured mode.
func (s *state) mode(cmd *cli.Command) scoring.Mode {
	if cmd.Bool("preview") {
		return scoring.ModePreview
	}
	return s.cfg.ScoringMode()
}

// recipeMode is the mode for scoring one recipe against the project. A recipe
// the plan already commits is scored in preview mode, otherwise its own
// committed usage would be subtracted from the stock it is matched against.
func (s *state) recipeMode(cmd *cli.Command, recipe model.Recipe, plan model.CommittedUsage) scoring.Mode {
	mode := s.mode(cmd)
	if mode == scoring.ModePlanning && plan.Includes(recipe.ID) {
		slog.Info("recipe is already in the plan, scoring against full stock",
			slog.String("recipe", recipe.ID),
			slog.String("mode", scoring.ModePreview.String()))
		return scoring.ModePreview
	}
	return mode
}

func (s *state) newPlanner(mode scoring.Mode) *planner.Planner {
	p := planner.New(
		planner.WithConcurrency(s.cfg.Rank.Concurrency),
		planner.WithMode(mode),
		planner.WithVersion(version),
	)
	slog.Debug("planner ready",
		slog.String("mode", p.Mode().String()),
		slog.Int("concurrency", p.Concurrency()))
	return p
}

// pathOr returns the flag value when set, else the configured fallback.
func pathOr(cmd *cli.Command, flag, fallback string) (string, error) {
	if v := cmd.String(flag); v != "" {
		return v, nil
	}
	if fallback != "" {
		return fallback, nil
	}
	return "", apperrors.New(apperrors.ErrCodeInvalidRequest,
		fmt.Sprintf("--%s is required (or set it in the config file)", flag))
}

// loadInputs reads the recipe catalog and the project within the configured
// load timeout.
func (s *state) loadInputs(ctx context.Context, cmd *cli.Command) (*catalog.MemoryStore, *catalog.Project, error) {
	recipesPath, err := pathOr(cmd, "recipes", s.cfg.Catalog.Recipes)
	if err != nil {
		return nil, nil, err
	}
	projectPath, err := pathOr(cmd, "project", s.cfg.Catalog.Project)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Catalog.LoadTimeout)
	defer cancel()

	store, err := catalog.LoadRecipes(ctx, recipesPath)
	if err != nil {
		return nil, nil, err
	}

	project, err := catalog.NewFileProject(projectPath, store, s.cfg.Scoring.Priority).Project(ctx)
	if err != nil {
		return nil, nil, err
	}
	return store, project, nil
}

// writeReport serializes report to the --output destination.
func (s *state) writeReport(ctx context.Context, cmd *cli.Command, report any) error {
	outFormat, err := s.outputFormat(cmd)
	if err != nil {
		return err
	}

	ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
	defer func() {
		if err := ser.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	return ser.Serialize(ctx, report)
}
