/*
Copyright © 2025 Ovrinda
SPDX-License-Identifier: Apache-2.0
*/

// Package cli implements the shipctl command-line interface.
//
// # Commands
//
// deploy - run the full workflow against the target cluster:
//
//	shipctl deploy --namespace demo --tag v1
//
// Builds the artifact, packages it into a container image, renders the
// manifest template, and applies the result. Fail-fast: the first failing
// step aborts the rest with exit code 1.
//
// delete - tear the same resources down:
//
//	shipctl delete --namespace demo --tag v1
//
// Best-effort: already-absent resources count as success and other
// cluster-side failures become warnings. Exit code 0 unless the manifest
// template itself cannot be rendered.
//
// # Configuration
//
// Values layer in order of increasing precedence: built-in defaults, a
// YAML config file (--config), a .env file in the invocation directory,
// SHIPCTL_* environment variables, command-line flags.
//
// # Exit Codes
//
//	0  success (including partial/no-op teardown)
//	1  any aborting error
//
// The CLI uses the urfave/cli/v3 framework and delegates the workflow to
// pkg/workflow with collaborators from pkg/maven, pkg/docker, pkg/manifest,
// and pkg/kube. Version information is embedded at build time:
//
//	go build -ldflags="-X 'github.com/ovrinda/shipctl/pkg/version.Version=1.0.0'"
package cli
