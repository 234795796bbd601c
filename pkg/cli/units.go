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

	"github.com/barplan/barplan/pkg/header"
	"github.com/barplan/barplan/pkg/units"
)

// unitTable is the report printed by the units command.
type unitTable struct {
	header.Header `json:",inline" yaml:",inline"`

	BaseVolume string        `json:"baseVolume" yaml:"baseVolume"`
	Units      []units.Entry `json:"units" yaml:"units"`
}

func unitsCmd(st *state) *cli.Command {
	return &cli.Command{
		Name:                  "units",
		EnableShellCompletion: true,
		Usage:                 "Print the unit conversion table",
		Description: `Print every known unit with its size in base units (ml for volumes,
g for masses). Units not in the table convert with a factor of 1.`,
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			report := unitTable{
				Header:     header.New(header.KindUnitTable, header.WithVersion(version)),
				BaseVolume: units.BaseVolume,
				Units:      units.Table(),
			}
			return st.writeReport(ctx, cmd, report)
		},
	}
}
