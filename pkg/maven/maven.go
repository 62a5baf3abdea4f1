/*
Copyright © 2025 Ovrinda
SPDX-License-Identifier: Apache-2.0
*/

package maven

import (
	"context"
	"log/slog"
	"time"

	apperrors "github.com/ovrinda/shipctl/pkg/errors"
	"github.com/ovrinda/shipctl/pkg/runner"
)

const tool = "mvn"

// Builder compiles the source project into a deployable artifact by
// invoking the Maven CLI.
type Builder struct {
	runner    runner.Runner
	goals     []string
	skipTests bool
}

// Option configures a Builder.
type Option func(*Builder)

// WithRunner overrides the process runner, primarily for tests.
func WithRunner(r runner.Runner) Option {
	return func(b *Builder) {
		b.runner = r
	}
}

// WithGoals overrides the default build goals.
func WithGoals(goals ...string) Option {
	return func(b *Builder) {
		b.goals = goals
	}
}

// WithSkipTests skips unit test execution during the build.
func WithSkipTests(skip bool) Option {
	return func(b *Builder) {
		b.skipTests = skip
	}
}

// New creates a Maven builder with default goals (clean package).
func New(opts ...Option) *Builder {
	b := &Builder{
		runner: runner.New(),
		goals:  []string{"clean", "package"},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name returns the external tool name.
func (b *Builder) Name() string {
	return tool
}

// Check verifies the build tool is discoverable on PATH.
func (b *Builder) Check(_ context.Context) error {
	_, err := b.runner.LookPath(tool)
	return err
}

// Build runs the configured goals in dir. A non-zero exit becomes a
// BUILD_FAILED error carrying the tool output tail.
func (b *Builder) Build(ctx context.Context, dir string) error {
	start := time.Now()
	slog.Info("building artifact", "tool", tool, "dir", dir, "goals", b.goals)

	if err := b.runner.Run(ctx, runner.Command{
		Tool: tool,
		Args: b.args(),
		Dir:  dir,
	}); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeBuild, "build failed", err)
	}

	slog.Info("artifact built", "dir", dir, "duration", time.Since(start))
	return nil
}

// args assembles the Maven command line. Batch mode keeps the output free
// of interactive progress noise.
func (b *Builder) args() []string {
	args := []string{"--batch-mode"}
	args = append(args, b.goals...)
	if b.skipTests {
		args = append(args, "-DskipTests")
	}
	return args
}
