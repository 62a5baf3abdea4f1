/*
Copyright © 2025 Ovrinda
SPDX-License-Identifier: Apache-2.0
*/

package cli

import "github.com/urfave/cli/v3"

// Flags shared by the deploy and delete commands. Values resolve in order:
// explicit flag, environment variable, config file, built-in default.
var (
	configFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "path to a YAML config file with workflow defaults",
		Sources: cli.EnvVars("SHIPCTL_CONFIG"),
	}

	namespaceFlag = &cli.StringFlag{
		Name:    "namespace",
		Aliases: []string{"n"},
		Usage:   "target Kubernetes namespace",
		Sources: cli.EnvVars("SHIPCTL_NAMESPACE"),
	}

	tagFlag = &cli.StringFlag{
		Name:    "tag",
		Aliases: []string{"t"},
		Usage:   "image tag",
		Sources: cli.EnvVars("SHIPCTL_TAG"),
	}

	appFlag = &cli.StringFlag{
		Name:    "app",
		Aliases: []string{"a"},
		Usage:   "application name, used as the image name",
		Sources: cli.EnvVars("SHIPCTL_APP"),
	}

	templateFlag = &cli.StringFlag{
		Name:    "template",
		Usage:   "manifest template path containing the ${IMAGE} placeholder",
		Sources: cli.EnvVars("SHIPCTL_TEMPLATE"),
	}

	dirFlag = &cli.StringFlag{
		Name:    "dir",
		Aliases: []string{"d"},
		Usage:   "working directory of the source project",
		Sources: cli.EnvVars("SHIPCTL_DIR"),
	}

	kubeconfigFlag = &cli.StringFlag{
		Name:    "kubeconfig",
		Usage:   "path to kubeconfig file (default: standard discovery)",
		Sources: cli.EnvVars("SHIPCTL_KUBECONFIG"),
	}

	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "write the confirmation record to this file (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:  "format",
		Usage: "confirmation record format: yaml, json, or table",
		Value: "yaml",
	}
)
