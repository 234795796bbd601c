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
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/barplan/barplan/pkg/config"
	"github.com/barplan/barplan/pkg/defaults"
	apperrors "github.com/barplan/barplan/pkg/errors"
	"github.com/barplan/barplan/pkg/logging"
)

const (
	name           = "barplan"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// state is shared by the commands of one invocation.
type state struct {
	cfg *config.Config
}

// Execute runs the barplan CLI with the process arguments and exits on error.
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	if err := execute(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// execute runs the root command, bounded by defaults.CommandTimeout.
func execute(ctx context.Context, args []string) error {
	ctx, cancel := context.WithTimeout(ctx, defaults.CommandTimeout)
	defer cancel()
	return newRootCmd().Run(ctx, args)
}

// exitCode is 2 for canceled or timed out runs and 1 otherwise.
func exitCode(err error) int {
	switch {
	case apperrors.IsCode(err, apperrors.ErrCodeCanceled),
		apperrors.IsCode(err, apperrors.ErrCodeTimeout),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return 2
	default:
		return 1
	}
}

func newRootCmd() *cli.Command {
	st := &state{}

	return &cli.Command{
		Name:                  name,
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		Usage:                 "Score cocktail recipes against a project's bar inventory",
		Description: `barplan matches recipes to a collaborative project: its target flavor
profile, the ingredients it stocks and what its plan already committed.

score     - compatibility of one recipe with the project
rank      - every catalog recipe ordered by compatibility
shortfall - what to buy before a recipe can be made
usage     - total consumption of the committed plan
units     - the unit conversion table`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "Path to a YAML config file",
				Sources: cli.EnvVars(config.PathEnvVar),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error); overrides the config file",
				Sources: cli.EnvVars(logging.EnvLogLevel),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			cfg, err := config.Load(cmd.String("config"))
			if err != nil {
				return ctx, err
			}
			st.cfg = cfg

			level := cfg.Log.Level
			if cmd.IsSet("log-level") {
				level = cmd.String("log-level")
			}
			logging.SetDefaultStructuredLoggerWithLevel(name, version, level)
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date,
				"logLevel", level)
			return ctx, nil
		},
		Commands: []*cli.Command{
			scoreCmd(st),
			rankCmd(st),
			shortfallCmd(st),
			usageCmd(st),
			unitsCmd(st),
		},
	}
}
