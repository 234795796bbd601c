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

	"github.com/urfave/cli/v3"

	"github.com/barplan/barplan/pkg/catalog"
	"github.com/barplan/barplan/pkg/defaults"
)

func scoreCmd(st *state) *cli.Command {
	return &cli.Command{
		Name:                  "score",
		EnableShellCompletion: true,
		Usage:                 "Score one recipe against the project",
		Description: `Score a recipe against the project's flavor profile and stock.

The report includes the flavor and ingredient sub-scores, a per-ingredient
breakdown in the project's units and, when the recipe cannot be made in full,
the missing amounts.

A recipe the plan already commits is matched against the full stock.

Examples:
  barplan score -r recipes.yaml -p project.yaml --recipe daiquiri
  barplan score -r recipes.yaml -p project.yaml --recipe "Rum Punch" -m 3 --preview -t json`,
		Flags: []cli.Flag{
			recipesFlag(),
			projectFlag(),
			recipeFlag(),
			multiplierFlag(),
			previewFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			store, project, err := st.loadInputs(ctx, cmd)
			if err != nil {
				return err
			}

			recipe, err := catalog.Resolve(ctx, store, cmd.String("recipe"))
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, defaults.ScoreTimeout)
			defer cancel()

			pl := st.newPlanner(st.recipeMode(cmd, recipe, project.Plan))
			report, err := pl.Score(ctx, recipe, project.Inventory, cmd.Float("multiplier"), project.Plan)
			if err != nil {
				return err
			}
			return st.writeReport(ctx, cmd, report)
		},
	}
}
