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
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	apperrors "github.com/barplan/barplan/pkg/errors"
	"github.com/barplan/barplan/pkg/header"
	"github.com/barplan/barplan/pkg/planner"
	"github.com/barplan/barplan/pkg/units"
)

var (
	recipesPath = filepath.Join("testdata", "recipes.yaml")
	projectPath = filepath.Join("testdata", "project.yaml")
)

// run executes the CLI with args and returns the report written to a temp file.
func run(t *testing.T, args ...string) ([]byte, error) {
	t.Helper()
	out := filepath.Join(t.TempDir(), "report.out")
	full := append([]string{name}, args...)
	full = append(full, "--output", out)
	if err := newRootCmd().Run(context.Background(), full); err != nil {
		return nil, err
	}
	return os.ReadFile(out)
}

func TestScoreCommand(t *testing.T) {
	data, err := run(t, "score", "-r", recipesPath, "-p", projectPath, "--recipe", "daiquiri", "-t", "json")
	require.NoError(t, err)

	var report planner.ScoreReport
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, header.KindScoreReport, report.Kind)
	assert.Equal(t, "Daiquiri", report.Recipe.Name)
	assert.Equal(t, "planning", report.Mode)
	assert.True(t, report.Feasible)
	// flavor 50 (sour of sour+fresh), ingredients 100, weights 40/60
	assert.InDelta(t, 80, report.Score, 1e-9)
}

func TestScoreCommand_ByNameWithMultiplier(t *testing.T) {
	data, err := run(t, "score", "-r", recipesPath, "-p", projectPath, "--recipe", "Mojito", "-m", "3")
	require.NoError(t, err)

	var report planner.ScoreReport
	require.NoError(t, yaml.Unmarshal(data, &report))
	assert.InDelta(t, 3, report.BatchMultiplier, 1e-9)
	assert.False(t, report.Feasible)
	assert.NotEmpty(t, report.Shortfall)
}

func TestScoreCommand_Preview(t *testing.T) {
	// the committed margarita uses 150 of the 200 ml of lime juice
	planning, err := run(t, "score", "-r", recipesPath, "-p", projectPath, "--recipe", "daiquiri", "-m", "3", "-t", "json")
	require.NoError(t, err)
	preview, err := run(t, "score", "-r", recipesPath, "-p", projectPath, "--recipe", "daiquiri", "-m", "3", "--preview", "-t", "json")
	require.NoError(t, err)

	var p, v planner.ScoreReport
	require.NoError(t, json.Unmarshal(planning, &p))
	require.NoError(t, json.Unmarshal(preview, &v))
	assert.False(t, p.Feasible)
	assert.True(t, v.Feasible)
	assert.Equal(t, "preview", v.Mode)
	assert.Greater(t, v.Score, p.Score)
}

func TestScoreCommand_PlannedRecipeUsesFullStock(t *testing.T) {
	// margarita is the committed recipe; its own 150 ml of lime juice must not
	// be taken out of the 200 ml it is scored against
	data, err := run(t, "score", "-r", recipesPath, "-p", projectPath, "--recipe", "margarita", "-t", "json")
	require.NoError(t, err)

	var report planner.ScoreReport
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, "preview", report.Mode)
	assert.True(t, report.Feasible)
	assert.InDelta(t, 100, report.Ingredients.Score, 1e-9)

	data, err = run(t, "shortfall", "-r", recipesPath, "-p", projectPath, "--recipe", "margarita", "-t", "json")
	require.NoError(t, err)

	var short planner.ShortfallReport
	require.NoError(t, json.Unmarshal(data, &short))
	assert.Equal(t, "preview", short.Mode)
	assert.Empty(t, short.Lines)
}

func TestScoreCommand_Errors(t *testing.T) {
	_, err := run(t, "score", "-r", recipesPath, "-p", projectPath, "--recipe", "negroni")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeNotFound))

	_, err = run(t, "score", "-p", projectPath, "--recipe", "daiquiri")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeInvalidRequest))

	_, err = run(t, "score", "-r", recipesPath, "-p", projectPath, "--recipe", "daiquiri", "-t", "xml")
	assert.Error(t, err)

	_, err = run(t, "score", "-r", recipesPath, "-p", projectPath, "--recipe", "daiquiri", "-m", "0.5")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeInvalidRequest))
}

func TestRankCommand(t *testing.T) {
	data, err := run(t, "rank", "-r", recipesPath, "-p", projectPath, "-t", "json")
	require.NoError(t, err)

	var report planner.RankingReport
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, header.KindRankingReport, report.Kind)
	assert.Equal(t, 4, report.Candidates)
	require.Len(t, report.Recipes, 4)
	assert.Equal(t, "daiquiri", report.Recipes[0].ID)
	for i := 1; i < len(report.Recipes); i++ {
		assert.GreaterOrEqual(t, report.Recipes[i-1].Score, report.Recipes[i].Score)
	}
}

func TestRankCommand_Filters(t *testing.T) {
	data, err := run(t, "rank", "-r", recipesPath, "-p", projectPath, "--category", "sour", "-n", "1", "-t", "yaml")
	require.NoError(t, err)

	var report planner.RankingReport
	require.NoError(t, yaml.Unmarshal(data, &report))
	assert.Equal(t, 2, report.Candidates)
	require.Len(t, report.Recipes, 1)
	assert.Equal(t, "Daiquiri", report.Recipes[0].Name)

	data, err = run(t, "rank", "-r", recipesPath, "-p", projectPath, "--tag", "herbal", "-t", "json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &report))
	require.Len(t, report.Recipes, 1)
	assert.Equal(t, "mojito", report.Recipes[0].ID)

	_, err = run(t, "rank", "-r", recipesPath, "-p", projectPath, "--limit=-1")
	assert.Error(t, err)
}

func TestShortfallCommand(t *testing.T) {
	data, err := run(t, "shortfall", "-r", recipesPath, "-p", projectPath, "--recipe", "Mojito", "-t", "json")
	require.NoError(t, err)

	var report planner.ShortfallReport
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, header.KindShortfallReport, report.Kind)

	byName := map[string]planner.ShortfallLine{}
	for _, l := range report.Lines {
		byName[l.Name] = l
	}
	soda, ok := byName["Soda Water"]
	require.True(t, ok)
	assert.True(t, soda.Missing)
	assert.InDelta(t, 100, soda.Needed, 1e-9)
	// 50 ml of lime juice left after the margarita, mojito needs 30
	assert.NotContains(t, byName, "Lime Juice")
}

func TestUsageCommand(t *testing.T) {
	data, err := run(t, "usage", "-r", recipesPath, "-p", projectPath, "-t", "json")
	require.NoError(t, err)

	var report planner.UsageReport
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, header.KindUsageReport, report.Kind)
	require.Len(t, report.Plan, 1)
	assert.Equal(t, "margarita", report.Plan[0].ID)

	byName := map[string]planner.UsageLine{}
	for _, l := range report.Lines {
		byName[l.Name] = l
	}
	lime := byName["Lime Juice"]
	assert.True(t, lime.InStock)
	assert.InDelta(t, 150, lime.Used, 1e-9)
	assert.InDelta(t, 50, lime.Remaining, 1e-9)

	tequila := byName["Tequila"]
	assert.Equal(t, "liter", tequila.Unit)
	assert.InDelta(t, 0.05, tequila.Used, 1e-9)
}

func TestUnitsCommand(t *testing.T) {
	data, err := run(t, "units", "-t", "json")
	require.NoError(t, err)

	var report unitTable
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, header.KindUnitTable, report.Kind)
	assert.Equal(t, units.BaseVolume, report.BaseVolume)
	assert.Equal(t, units.Table(), report.Units)
}

func TestConfigFileSuppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "barplan.yaml")
	abs := func(p string) string {
		a, err := filepath.Abs(p)
		require.NoError(t, err)
		return a
	}
	content := "catalog:\n  recipes: " + abs(recipesPath) + "\n  project: " + abs(projectPath) +
		"\noutput:\n  format: json\nrank:\n  limit: 2\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o600))

	data, err := run(t, "--config", cfgPath, "rank")
	require.NoError(t, err)

	var report planner.RankingReport
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Len(t, report.Recipes, 2)

	_, err = run(t, "--config", filepath.Join(dir, "absent.yaml"), "units")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeNotFound))
}
