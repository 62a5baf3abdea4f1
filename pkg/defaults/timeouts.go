/*
Copyright © 2025 Ovrinda
SPDX-License-Identifier: Apache-2.0
*/

package defaults

import "time"

// Workflow timeouts, applied per external-call boundary. The pipeline itself
// is sequential and unbounded; only the individual tool invocations are.
const (
	// BuildTimeout bounds a single build tool invocation. Cold builds pull
	// dependencies, so this is deliberately generous.
	BuildTimeout = 15 * time.Minute

	// PackageTimeout bounds a single container image build.
	PackageTimeout = 10 * time.Minute

	// ApplyTimeout bounds a manifest apply against the cluster.
	ApplyTimeout = 2 * time.Minute

	// TeardownTimeout bounds a manifest delete against the cluster.
	TeardownTimeout = 2 * time.Minute

	// ProbeTimeout bounds the read-only cluster reachability check performed
	// before any side effect.
	ProbeTimeout = 15 * time.Second

	// NamespaceTimeout bounds namespace lookup and creation.
	NamespaceTimeout = 30 * time.Second
)
