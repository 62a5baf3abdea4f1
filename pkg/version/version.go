/*
Copyright © 2025 Ovrinda
SPDX-License-Identifier: Apache-2.0
*/

// Package version holds the build-time metadata for the binary.
// The variables are overridden at link time:
//
//	go build -ldflags "-X github.com/ovrinda/shipctl/pkg/version.Version=v1.2.3"
package version

import "fmt"

var (
	// Version is the semantic version of the binary.
	Version = "dev"

	// Commit is the git SHA the binary was built from.
	Commit = "unknown"

	// Date is the build timestamp.
	Date = "unknown"
)

// String returns the full version line shown by --version.
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
