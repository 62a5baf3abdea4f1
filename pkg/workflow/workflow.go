/*
Copyright © 2025 Ovrinda
SPDX-License-Identifier: Apache-2.0
*/

package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ovrinda/shipctl/pkg/config"
	apperrors "github.com/ovrinda/shipctl/pkg/errors"
	"github.com/ovrinda/shipctl/pkg/manifest"
)

// Orchestrator drives the deploy and teardown workflows. Each step is a
// hard dependency of the next, so the pipeline is strictly sequential:
// the artifact must exist before packaging, the image before rendering a
// reference to it, and the rendered manifest before applying.
type Orchestrator struct {
	builder  Builder
	packager Packager
	renderer Renderer
	cluster  ClusterClient
}

// New creates an Orchestrator from its collaborators.
func New(builder Builder, packager Packager, renderer Renderer, cluster ClusterClient) *Orchestrator {
	return &Orchestrator{
		builder:  builder,
		packager: packager,
		renderer: renderer,
		cluster:  cluster,
	}
}

// Run executes the workflow selected by cfg.Action and returns the
// confirmation receipt.
//
// Deploy is fail-fast: any step failure aborts the remainder. Teardown is
// best-effort: cluster-side failures are recorded as warnings and the
// workflow still succeeds, since failing to tear down must not block
// cleanup of whatever did exist. Only an unreadable template aborts it.
func (o *Orchestrator) Run(ctx context.Context, cfg *config.Config) (*Receipt, error) {
	start := time.Now()

	image, err := cfg.ImageReference()
	if err != nil {
		return nil, err
	}

	if err := o.preflight(ctx, cfg); err != nil {
		return nil, err
	}

	receipt := &Receipt{
		Action:    string(cfg.Action),
		App:       cfg.App,
		Image:     image.String(),
		Namespace: cfg.Namespace,
		Template:  cfg.Template,
	}

	switch cfg.Action {
	case config.ActionDeploy:
		err = o.deploy(ctx, cfg, image.String(), receipt)
	case config.ActionTeardown:
		err = o.teardown(ctx, cfg, image.String(), receipt)
	default:
		err = apperrors.New(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("unknown action: %q", cfg.Action))
	}
	if err != nil {
		return nil, err
	}

	receipt.Timestamp = time.Now().UTC()
	receipt.Duration = time.Since(start)

	slog.Info("workflow completed",
		"action", receipt.Action,
		"image", receipt.Image,
		"namespace", receipt.Namespace,
		"warnings", len(receipt.Warnings),
		"duration", receipt.Duration)

	return receipt, nil
}

// preflight guards the workflow: every required external tool must be
// discoverable and the cluster reachable before any side effect happens.
// The checks are read-only, so they run concurrently.
func (o *Orchestrator) preflight(ctx context.Context, cfg *config.Config) error {
	g, gctx := errgroup.WithContext(ctx)

	if cfg.Action == config.ActionDeploy {
		g.Go(func() error {
			return o.builder.Check(gctx)
		})
		g.Go(func() error {
			return o.packager.Check(gctx)
		})
	}
	g.Go(func() error {
		probeCtx, cancel := context.WithTimeout(gctx, cfg.Timeouts.Probe)
		defer cancel()
		return o.cluster.Probe(probeCtx)
	})

	if err := g.Wait(); err != nil {
		if apperrors.CodeOf(err) == apperrors.ErrCodeEnvironment {
			return err
		}
		return apperrors.Wrap(apperrors.ErrCodeEnvironment, "preflight failed", err)
	}
	return nil
}

func (o *Orchestrator) deploy(ctx context.Context, cfg *config.Config, image string, receipt *Receipt) error {
	buildCtx, cancelBuild := context.WithTimeout(ctx, cfg.Timeouts.Build)
	defer cancelBuild()
	if err := o.builder.Build(buildCtx, cfg.Dir); err != nil {
		return err
	}

	pkgCtx, cancelPkg := context.WithTimeout(ctx, cfg.Timeouts.Package)
	defer cancelPkg()
	if err := o.packager.Package(pkgCtx, cfg.Dir, cfg.Dockerfile, image); err != nil {
		return err
	}

	rendered, err := o.renderer.Render(cfg.Template, image)
	if err != nil {
		return err
	}
	defer o.cleanup(rendered)

	if cfg.CreateNamespace {
		nsCtx, cancelNs := context.WithTimeout(ctx, cfg.Timeouts.Namespace)
		defer cancelNs()
		if err := o.cluster.EnsureNamespace(nsCtx, cfg.Namespace); err != nil {
			return err
		}
	}

	applyCtx, cancelApply := context.WithTimeout(ctx, cfg.Timeouts.Apply)
	defer cancelApply()
	return o.cluster.Apply(applyCtx, rendered.Path, cfg.Namespace)
}

func (o *Orchestrator) teardown(ctx context.Context, cfg *config.Config, image string, receipt *Receipt) error {
	rendered, err := o.renderer.Render(cfg.Template, image)
	if err != nil {
		return err
	}
	defer o.cleanup(rendered)

	delCtx, cancelDel := context.WithTimeout(ctx, cfg.Timeouts.Teardown)
	defer cancelDel()
	if err := o.cluster.Delete(delCtx, rendered.Path, cfg.Namespace, true); err != nil {
		slog.Warn("teardown incomplete, continuing", "error", err, "namespace", cfg.Namespace)
		receipt.Warnings = append(receipt.Warnings, err.Error())
	}
	return nil
}

// cleanup removes the rendered manifest. Runs on every exit path; the temp
// file must never outlive the invocation.
func (o *Orchestrator) cleanup(rendered *manifest.Rendered) {
	if err := rendered.Remove(); err != nil {
		slog.Warn("failed to remove rendered manifest", "error", err)
	}
}
