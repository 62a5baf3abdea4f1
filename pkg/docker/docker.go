/*
Copyright © 2025 Ovrinda
SPDX-License-Identifier: Apache-2.0
*/

package docker

import (
	"context"
	"log/slog"
	"time"

	apperrors "github.com/ovrinda/shipctl/pkg/errors"
	"github.com/ovrinda/shipctl/pkg/runner"
)

const tool = "docker"

// Packager wraps a build artifact into a container image by invoking the
// Docker CLI.
type Packager struct {
	runner runner.Runner
}

// Option configures a Packager.
type Option func(*Packager)

// WithRunner overrides the process runner, primarily for tests.
func WithRunner(r runner.Runner) Option {
	return func(p *Packager) {
		p.runner = r
	}
}

// New creates a Docker packager.
func New(opts ...Option) *Packager {
	p := &Packager{
		runner: runner.New(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the external tool name.
func (p *Packager) Name() string {
	return tool
}

// Check verifies the container engine is discoverable on PATH.
func (p *Packager) Check(_ context.Context) error {
	_, err := p.runner.LookPath(tool)
	return err
}

// Package builds a container image from dir, tagged with image. Dockerfile
// may be empty, in which case the engine default applies. A non-zero exit
// becomes a PACKAGE_FAILED error carrying the tool output tail.
func (p *Packager) Package(ctx context.Context, dir, dockerfile, image string) error {
	start := time.Now()
	slog.Info("packaging image", "tool", tool, "dir", dir, "image", image)

	if err := p.runner.Run(ctx, runner.Command{
		Tool: tool,
		Args: buildArgs(dir, dockerfile, image),
		Dir:  dir,
	}); err != nil {
		return apperrors.Wrap(apperrors.ErrCodePackage, "image build failed", err)
	}

	slog.Info("image packaged", "image", image, "duration", time.Since(start))
	return nil
}

func buildArgs(dir, dockerfile, image string) []string {
	args := []string{"build", "--tag", image}
	if dockerfile != "" {
		args = append(args, "--file", dockerfile)
	}
	return append(args, dir)
}
