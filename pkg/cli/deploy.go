/*
Copyright © 2025 Ovrinda
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/ovrinda/shipctl/pkg/config"
	"github.com/ovrinda/shipctl/pkg/docker"
	"github.com/ovrinda/shipctl/pkg/kube"
	"github.com/ovrinda/shipctl/pkg/manifest"
	"github.com/ovrinda/shipctl/pkg/maven"
	"github.com/ovrinda/shipctl/pkg/serializer"
	"github.com/ovrinda/shipctl/pkg/workflow"
)

func deployCmd() *cli.Command {
	return &cli.Command{
		Name:                  "deploy",
		EnableShellCompletion: true,
		Usage:                 "Build, package, and apply the application to the cluster",
		Description: `Run the full deployment workflow:

  1. Build the artifact with the build tool in the project directory
  2. Package the artifact into a container image tagged app:tag
  3. Render the manifest template, substituting ${IMAGE} with the image reference
  4. Apply the rendered manifest to the target namespace

The workflow is fail-fast: any step failure aborts the rest. The rendered
manifest is written to a unique temporary path and removed when the
invocation ends, on success and failure alike.

# Examples

Deploy with defaults from the current directory:
  shipctl deploy

Deploy a specific tag to a specific namespace:
  shipctl deploy --namespace demo --tag v1

Deploy with a config file and write the confirmation record to a file:
  shipctl deploy --config shipctl.yaml --output receipt.yaml`,
		Flags: []cli.Flag{
			configFlag,
			namespaceFlag,
			tagFlag,
			appFlag,
			templateFlag,
			dirFlag,
			&cli.StringFlag{
				Name:    "dockerfile",
				Usage:   "dockerfile path, relative to the project directory",
				Sources: cli.EnvVars("SHIPCTL_DOCKERFILE"),
			},
			&cli.BoolFlag{
				Name:  "create-namespace",
				Usage: "create the target namespace if it does not exist",
			},
			&cli.BoolFlag{
				Name:  "skip-tests",
				Usage: "skip unit test execution during the build",
			},
			kubeconfigFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			cfg, err := resolveConfig(cmd, config.ActionDeploy)
			if err != nil {
				return err
			}

			cluster, err := kube.New(cfg.Kubeconfig)
			if err != nil {
				return err
			}

			orch := workflow.New(
				maven.New(maven.WithSkipTests(cfg.SkipTests)),
				docker.New(),
				manifest.New(),
				cluster,
			)

			receipt, err := orch.Run(ctx, cfg)
			if err != nil {
				return err
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close output writer", "error", err)
				}
			}()
			return ser.Serialize(ctx, receipt)
		},
	}
}
