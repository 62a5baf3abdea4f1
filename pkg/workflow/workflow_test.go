/*
Copyright © 2025 Ovrinda
SPDX-License-Identifier: Apache-2.0
*/

package workflow

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovrinda/shipctl/pkg/config"
	apperrors "github.com/ovrinda/shipctl/pkg/errors"
	"github.com/ovrinda/shipctl/pkg/manifest"
)

// recorder tracks the order of collaborator calls across all fakes so step
// sequencing can be asserted.
type recorder struct {
	calls []string
}

func (r *recorder) record(call string) {
	r.calls = append(r.calls, call)
}

type fakeBuilder struct {
	rec      *recorder
	checkErr error
	buildErr error
}

func (f *fakeBuilder) Check(context.Context) error { return f.checkErr }

func (f *fakeBuilder) Build(_ context.Context, dir string) error {
	f.rec.record("build")
	return f.buildErr
}

type fakePackager struct {
	rec      *recorder
	checkErr error
	pkgErr   error
	image    string
}

func (f *fakePackager) Check(context.Context) error { return f.checkErr }

func (f *fakePackager) Package(_ context.Context, dir, dockerfile, image string) error {
	f.rec.record("package")
	f.image = image
	return f.pkgErr
}

type fakeRenderer struct {
	rec       *recorder
	renderErr error
	tmpDir    string
	rendered  *manifest.Rendered
}

func (f *fakeRenderer) Render(templatePath, image string) (*manifest.Rendered, error) {
	f.rec.record("render")
	if f.renderErr != nil {
		return nil, f.renderErr
	}
	// back the fake with a real temp file so cleanup can be asserted
	path := filepath.Join(f.tmpDir, "rendered.yaml")
	if err := os.WriteFile(path, []byte("image: "+image+"\n"), 0o600); err != nil {
		return nil, err
	}
	f.rendered = &manifest.Rendered{Path: path, Image: image, Template: templatePath}
	return f.rendered, nil
}

type fakeCluster struct {
	rec       *recorder
	probeErr  error
	applyErr  error
	deleteErr error
	nsErr     error

	appliedPath  string
	appliedNs    string
	deletedPath  string
	ignoreOption bool
}

func (f *fakeCluster) Probe(context.Context) error {
	return f.probeErr
}

func (f *fakeCluster) Apply(_ context.Context, path, ns string) error {
	f.rec.record("apply")
	f.appliedPath = path
	f.appliedNs = ns
	return f.applyErr
}

func (f *fakeCluster) Delete(_ context.Context, path, ns string, ignoreMissing bool) error {
	f.rec.record("delete")
	f.deletedPath = path
	f.ignoreOption = ignoreMissing
	return f.deleteErr
}

func (f *fakeCluster) EnsureNamespace(_ context.Context, ns string) error {
	f.rec.record("ensure-namespace")
	return f.nsErr
}

type fixture struct {
	rec      *recorder
	builder  *fakeBuilder
	packager *fakePackager
	renderer *fakeRenderer
	cluster  *fakeCluster
	orch     *Orchestrator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	rec := &recorder{}
	f := &fixture{
		rec:      rec,
		builder:  &fakeBuilder{rec: rec},
		packager: &fakePackager{rec: rec},
		renderer: &fakeRenderer{rec: rec, tmpDir: t.TempDir()},
		cluster:  &fakeCluster{rec: rec},
	}
	f.orch = New(f.builder, f.packager, f.renderer, f.cluster)
	return f
}

func testConfig(t *testing.T, action config.Action) *config.Config {
	t.Helper()
	cfg := config.New()
	cfg.Action = action
	cfg.App = "app"
	cfg.Tag = "v1"
	cfg.Namespace = "demo"
	cfg.Dir = t.TempDir()
	require.NoError(t, cfg.Finalize())
	return cfg
}

func assertRenderedRemoved(t *testing.T, r *fakeRenderer) {
	t.Helper()
	if r.rendered == nil {
		return
	}
	_, err := os.Stat(filepath.Join(r.tmpDir, "rendered.yaml"))
	assert.True(t, os.IsNotExist(err), "rendered manifest should have been removed")
}

func TestDeploy_Success(t *testing.T) {
	f := newFixture(t)
	cfg := testConfig(t, config.ActionDeploy)

	receipt, err := f.orch.Run(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{"build", "package", "render", "apply"}, f.rec.calls)
	assert.Equal(t, "app:v1", f.packager.image)
	assert.Equal(t, f.renderer.rendered.Path, f.cluster.appliedPath)
	assert.Equal(t, "demo", f.cluster.appliedNs)

	require.NotNil(t, receipt)
	assert.Equal(t, "deploy", receipt.Action)
	assert.Equal(t, "app:v1", receipt.Image)
	assert.Equal(t, "demo", receipt.Namespace)
	assert.False(t, receipt.Timestamp.IsZero())
	assert.Empty(t, receipt.Warnings)

	assertRenderedRemoved(t, f.renderer)
}

func TestDeploy_BuildFailureShortCircuits(t *testing.T) {
	f := newFixture(t)
	f.builder.buildErr = apperrors.New(apperrors.ErrCodeBuild, "build failed")
	cfg := testConfig(t, config.ActionDeploy)

	receipt, err := f.orch.Run(context.Background(), cfg)
	assert.Nil(t, receipt)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeBuild, apperrors.CodeOf(err))

	// nothing after the failed step ran
	assert.Equal(t, []string{"build"}, f.rec.calls)
}

func TestDeploy_PackageFailureSkipsRenderAndApply(t *testing.T) {
	f := newFixture(t)
	f.packager.pkgErr = apperrors.New(apperrors.ErrCodePackage, "image build failed")
	cfg := testConfig(t, config.ActionDeploy)

	receipt, err := f.orch.Run(context.Background(), cfg)
	assert.Nil(t, receipt)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodePackage, apperrors.CodeOf(err))
	assert.Equal(t, []string{"build", "package"}, f.rec.calls)
	assert.Nil(t, f.renderer.rendered)
}

func TestDeploy_ApplyFailureStillRemovesManifest(t *testing.T) {
	f := newFixture(t)
	f.cluster.applyErr = apperrors.New(apperrors.ErrCodeApply, "apply failed")
	cfg := testConfig(t, config.ActionDeploy)

	receipt, err := f.orch.Run(context.Background(), cfg)
	assert.Nil(t, receipt)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeApply, apperrors.CodeOf(err))

	assertRenderedRemoved(t, f.renderer)
}

func TestDeploy_PreflightFailureHasNoSideEffects(t *testing.T) {
	f := newFixture(t)
	f.cluster.probeErr = apperrors.New(apperrors.ErrCodeEnvironment, "cluster unreachable")
	cfg := testConfig(t, config.ActionDeploy)

	receipt, err := f.orch.Run(context.Background(), cfg)
	assert.Nil(t, receipt)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeEnvironment, apperrors.CodeOf(err))
	assert.Empty(t, f.rec.calls)
}

func TestDeploy_MissingToolFailsPreflight(t *testing.T) {
	f := newFixture(t)
	f.packager.checkErr = apperrors.New(apperrors.ErrCodeEnvironment, "docker not found in PATH")
	cfg := testConfig(t, config.ActionDeploy)

	_, err := f.orch.Run(context.Background(), cfg)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeEnvironment, apperrors.CodeOf(err))
	assert.Empty(t, f.rec.calls)
}

func TestDeploy_CreateNamespace(t *testing.T) {
	f := newFixture(t)
	cfg := testConfig(t, config.ActionDeploy)
	cfg.CreateNamespace = true

	_, err := f.orch.Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"build", "package", "render", "ensure-namespace", "apply"}, f.rec.calls)
}

func TestDeploy_InvalidImageReference(t *testing.T) {
	f := newFixture(t)
	cfg := testConfig(t, config.ActionDeploy)
	cfg.App = "Bad Image Name"

	_, err := f.orch.Run(context.Background(), cfg)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInvalidRequest, apperrors.CodeOf(err))
	assert.Empty(t, f.rec.calls)
}

func TestTeardown_Success(t *testing.T) {
	f := newFixture(t)
	cfg := testConfig(t, config.ActionTeardown)

	receipt, err := f.orch.Run(context.Background(), cfg)
	require.NoError(t, err)

	// teardown skips build and package entirely
	assert.Equal(t, []string{"render", "delete"}, f.rec.calls)
	assert.True(t, f.cluster.ignoreOption, "delete must use ignore-missing semantics")
	assert.Empty(t, receipt.Warnings)

	assertRenderedRemoved(t, f.renderer)
}

func TestTeardown_ClusterFailureIsWarningNotError(t *testing.T) {
	f := newFixture(t)
	f.cluster.deleteErr = apperrors.New(apperrors.ErrCodeTeardown, "connection refused")
	cfg := testConfig(t, config.ActionTeardown)

	receipt, err := f.orch.Run(context.Background(), cfg)
	require.NoError(t, err, "teardown is best-effort; cluster failures must not abort")
	require.NotNil(t, receipt)
	require.Len(t, receipt.Warnings, 1)
	assert.Contains(t, receipt.Warnings[0], "connection refused")

	assertRenderedRemoved(t, f.renderer)
}

func TestTeardown_TemplateFailureAborts(t *testing.T) {
	f := newFixture(t)
	f.renderer.renderErr = apperrors.New(apperrors.ErrCodeTemplate, "placeholder ${IMAGE} not found in template")
	cfg := testConfig(t, config.ActionTeardown)

	receipt, err := f.orch.Run(context.Background(), cfg)
	assert.Nil(t, receipt)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeTemplate, apperrors.CodeOf(err))
	assert.Equal(t, []string{"render"}, f.rec.calls)
}

func TestTeardown_SkipsBuildToolChecks(t *testing.T) {
	f := newFixture(t)
	// build tools missing entirely; teardown must not care
	f.builder.checkErr = apperrors.New(apperrors.ErrCodeEnvironment, "mvn not found in PATH")
	f.packager.checkErr = apperrors.New(apperrors.ErrCodeEnvironment, "docker not found in PATH")
	cfg := testConfig(t, config.ActionTeardown)

	_, err := f.orch.Run(context.Background(), cfg)
	assert.NoError(t, err)
}
