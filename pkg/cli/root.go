/*
Copyright © 2025 Ovrinda
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/ovrinda/shipctl/pkg/config"
	"github.com/ovrinda/shipctl/pkg/logging"
	"github.com/ovrinda/shipctl/pkg/version"
)

const name = "shipctl"

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "Build, containerize, and deploy an application to Kubernetes",
		Version: version.String(),
		Description: `shipctl drives a linear deployment workflow against existing tooling:
the build tool produces the artifact, the container engine packages it,
the image reference is substituted into a manifest template, and the
rendered manifest is applied to the target cluster. The delete command
tears the same resources down with best-effort semantics.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error)",
				Sources: cli.EnvVars("LOG_LEVEL"),
				Value:   "info",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version.Version, cmd.String("log-level"))
			slog.Debug("starting",
				"name", name,
				"version", version.Version,
				"commit", version.Commit,
				"date", version.Date)
			return ctx, nil
		},
		Commands: []*cli.Command{
			deployCmd(),
			deleteCmd(),
		},
	}
}

// Execute runs the CLI. Called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A .env in the invocation directory feeds the env-var flag sources,
	// so it has to load before flag parsing.
	if wd, err := os.Getwd(); err == nil {
		if err := config.LoadDotenv(wd); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
