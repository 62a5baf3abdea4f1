/*
Copyright © 2025 Ovrinda
SPDX-License-Identifier: Apache-2.0
*/

package workflow

import (
	"context"
	"time"

	"github.com/ovrinda/shipctl/pkg/manifest"
)

// Builder compiles the source project into a deployable artifact.
type Builder interface {
	// Check verifies the build tool is available without side effects.
	Check(ctx context.Context) error
	// Build runs the build in dir, blocking until it completes.
	Build(ctx context.Context, dir string) error
}

// Packager wraps the build artifact into a container image.
type Packager interface {
	// Check verifies the container engine is available without side effects.
	Check(ctx context.Context) error
	// Package builds an image from dir tagged with image.
	Package(ctx context.Context, dir, dockerfile, image string) error
}

// Renderer substitutes the image reference into a manifest template.
type Renderer interface {
	Render(templatePath, image string) (*manifest.Rendered, error)
}

// ClusterClient applies and deletes rendered manifests against the target
// cluster and answers the read-only reachability probe.
type ClusterClient interface {
	Probe(ctx context.Context) error
	Apply(ctx context.Context, path, namespace string) error
	Delete(ctx context.Context, path, namespace string, ignoreMissing bool) error
	EnsureNamespace(ctx context.Context, namespace string) error
}

// Receipt is the confirmation record emitted when a workflow completes.
type Receipt struct {
	// Action is the workflow entry point that ran.
	Action string `json:"action" yaml:"action"`
	// App is the application name.
	App string `json:"app" yaml:"app"`
	// Image is the resolved image reference.
	Image string `json:"image" yaml:"image"`
	// Namespace is the target cluster namespace.
	Namespace string `json:"namespace" yaml:"namespace"`
	// Template is the manifest template the rendered manifest came from.
	Template string `json:"template" yaml:"template"`
	// Timestamp is when the workflow completed.
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	// Duration is the total workflow wall time.
	Duration time.Duration `json:"duration" yaml:"duration"`
	// Warnings lists non-fatal failures (teardown only).
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}
