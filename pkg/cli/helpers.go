/*
Copyright © 2025 Ovrinda
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/ovrinda/shipctl/pkg/config"
	"github.com/ovrinda/shipctl/pkg/serializer"
)

// parseOutputFormat resolves the --format flag into a serializer format.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	format := serializer.Format(cmd.String("format"))
	if format.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q (supported: %v)",
			format, serializer.SupportedFormats())
	}
	return format, nil
}

// resolveConfig layers the config file under any explicitly set flags and
// finalizes the result. Env-var fallbacks are handled by the flag sources,
// so an env-provided value counts as set here.
func resolveConfig(cmd *cli.Command, action config.Action) (*config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, err
	}
	cfg.Action = action

	if cmd.IsSet("namespace") {
		cfg.Namespace = cmd.String("namespace")
	}
	if cmd.IsSet("tag") {
		cfg.Tag = cmd.String("tag")
	}
	if cmd.IsSet("app") {
		cfg.App = cmd.String("app")
	}
	if cmd.IsSet("template") {
		cfg.Template = cmd.String("template")
	}
	if cmd.IsSet("dir") {
		cfg.Dir = cmd.String("dir")
	}
	if cmd.IsSet("kubeconfig") {
		cfg.Kubeconfig = cmd.String("kubeconfig")
	}
	if cmd.IsSet("dockerfile") {
		cfg.Dockerfile = cmd.String("dockerfile")
	}
	if cmd.IsSet("create-namespace") {
		cfg.CreateNamespace = cmd.Bool("create-namespace")
	}
	if cmd.IsSet("skip-tests") {
		cfg.SkipTests = cmd.Bool("skip-tests")
	}

	if err := cfg.Finalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}
