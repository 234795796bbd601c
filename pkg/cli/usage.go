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
)

func usageCmd(st *state) *cli.Command {
	return &cli.Command{
		Name:                  "usage",
		EnableShellCompletion: true,
		Usage:                 "Total the ingredient consumption of the project's plan",
		Description: `Sum what every committed recipe uses, each scaled by its batch multiplier.
Stocked ingredients are reported in the project's unit together with what is
left; other ingredients use the unit the plan uses most often.

Example:
  barplan usage -r recipes.yaml -p project.yaml -t table`,
		Flags: []cli.Flag{
			recipesFlag(),
			projectFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_, project, err := st.loadInputs(ctx, cmd)
			if err != nil {
				return err
			}

			report, err := st.newPlanner(st.mode(cmd)).Usage(ctx, project.Plan, project.Inventory)
			if err != nil {
				return err
			}
			return st.writeReport(ctx, cmd, report)
		},
	}
}
