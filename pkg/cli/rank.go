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

	"github.com/urfave/cli/v3"

	"github.com/barplan/barplan/pkg/catalog"
	apperrors "github.com/barplan/barplan/pkg/errors"
)

func rankCmd(st *state) *cli.Command {
	return &cli.Command{
		Name:                  "rank",
		EnableShellCompletion: true,
		Usage:                 "Rank catalog recipes by compatibility with the project",
		Description: `Score every recipe in the catalog, each at its own batch multiplier, and
order them from best to worst match. Ties are broken by name, then ID.

Filters narrow the candidates before scoring.

Examples:
  barplan rank -r recipes.yaml -p project.yaml --limit 5
  barplan rank -r recipes.yaml -p project.yaml --category sour --tag fresh -t table`,
		Flags: []cli.Flag{
			recipesFlag(),
			projectFlag(),
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"n"},
				Usage:   "Number of recipes to return, 0 for all (default: the config value)",
			},
			&cli.StringFlag{
				Name:  "search",
				Usage: "Only rank recipes whose name contains this text",
			},
			&cli.StringFlag{
				Name:  "category",
				Usage: "Only rank recipes of this category",
			},
			&cli.StringSliceFlag{
				Name:  "tag",
				Usage: "Only rank recipes with this flavor tag (can be repeated)",
			},
			previewFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			limit := st.cfg.Rank.Limit
			if cmd.IsSet("limit") {
				limit = cmd.Int("limit")
			}
			if limit < 0 {
				return apperrors.New(apperrors.ErrCodeInvalidRequest,
					fmt.Sprintf("--limit must not be negative, got %d", limit))
			}

			store, project, err := st.loadInputs(ctx, cmd)
			if err != nil {
				return err
			}

			candidates, err := store.Search(ctx, catalog.Query{
				Text:     cmd.String("search"),
				Category: cmd.String("category"),
				Tags:     cmd.StringSlice("tag"),
			})
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, st.cfg.Rank.Timeout)
			defer cancel()

			report, err := st.newPlanner(st.mode(cmd)).Rank(ctx, candidates, project.Inventory, project.Plan, limit)
			if err != nil {
				return err
			}
			return st.writeReport(ctx, cmd, report)
		},
	}
}
