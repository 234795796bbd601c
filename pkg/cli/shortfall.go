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

func shortfallCmd(st *state) *cli.Command {
	return &cli.Command{
		Name:                  "shortfall",
		EnableShellCompletion: true,
		Usage:                 "List what to buy before a recipe can be made",
		Description: `List every ingredient the project is short of for a recipe at a batch
multiplier. Stocked ingredients show the missing amount in the project's unit;
ingredients the project does not stock at all show the full amount.

A recipe the plan already commits is matched against the full stock.

Example:
  barplan shortfall -r recipes.yaml -p project.yaml --recipe mojito -m 4`,
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
			report, err := pl.ShortfallFor(ctx, recipe, project.Inventory, cmd.Float("multiplier"), project.Plan)
			if err != nil {
				return err
			}
			return st.writeReport(ctx, cmd, report)
		},
	}
}
