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

func deleteCmd() *cli.Command {
	return &cli.Command{
		Name:                  "delete",
		EnableShellCompletion: true,
		Usage:                 "Remove the application's resources from the cluster",
		Description: `Tear down the resources described by the rendered manifest.

Teardown is best-effort: resources that are already absent count as
success, and other cluster-side failures are reported as warnings without
failing the command. Only an unreadable or invalid manifest template makes
the command exit non-zero.

# Examples

Delete the deployment from the demo namespace:
  shipctl delete --namespace demo --tag v1`,
		Flags: []cli.Flag{
			configFlag,
			namespaceFlag,
			tagFlag,
			appFlag,
			templateFlag,
			dirFlag,
			kubeconfigFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			cfg, err := resolveConfig(cmd, config.ActionTeardown)
			if err != nil {
				return err
			}

			cluster, err := kube.New(cfg.Kubeconfig)
			if err != nil {
				return err
			}

			// build-side collaborators are wired but never invoked on teardown
			orch := workflow.New(
				maven.New(),
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
