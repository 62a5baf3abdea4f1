/*
Copyright © 2025 Ovrinda
SPDX-License-Identifier: Apache-2.0
*/

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovrinda/shipctl/pkg/defaults"
	apperrors "github.com/ovrinda/shipctl/pkg/errors"
)

func TestNewDefaults(t *testing.T) {
	cfg := New()
	assert.Equal(t, DefaultApp, cfg.App)
	assert.Equal(t, DefaultTag, cfg.Tag)
	assert.Equal(t, DefaultNamespace, cfg.Namespace)
	assert.Equal(t, DefaultTemplate, cfg.Template)
	assert.Equal(t, DefaultDockerfile, cfg.Dockerfile)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shipctl.yaml")
	content := `app: web-api
tag: v2
namespace: staging
template: deploy/app.yaml
timeouts:
  build: 5m
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "web-api", cfg.App)
	assert.Equal(t, "v2", cfg.Tag)
	assert.Equal(t, "staging", cfg.Namespace)
	assert.Equal(t, "deploy/app.yaml", cfg.Template)
	assert.Equal(t, 5*time.Minute, cfg.Timeouts.Build)
	// untouched fields keep defaults
	assert.Equal(t, DefaultDockerfile, cfg.Dockerfile)
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultApp, cfg.App)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInvalidRequest, apperrors.CodeOf(err))
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app: [unclosed"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInvalidRequest, apperrors.CodeOf(err))
}

func TestLoadDotenv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("SHIPCTL_TEST_NAMESPACE=demo\n"), 0o600))
	t.Setenv("SHIPCTL_TEST_NAMESPACE", "")
	os.Unsetenv("SHIPCTL_TEST_NAMESPACE")

	require.NoError(t, LoadDotenv(dir))
	assert.Equal(t, "demo", os.Getenv("SHIPCTL_TEST_NAMESPACE"))
}

func TestLoadDotenv_MissingFileIsNoOp(t *testing.T) {
	assert.NoError(t, LoadDotenv(t.TempDir()))
}

func TestFinalize(t *testing.T) {
	dir := t.TempDir()
	cfg := New()
	cfg.Action = ActionDeploy
	cfg.Dir = dir

	require.NoError(t, cfg.Finalize())

	// relative paths anchored at the working directory
	assert.Equal(t, filepath.Join(dir, DefaultTemplate), cfg.Template)
	assert.Equal(t, filepath.Join(dir, DefaultDockerfile), cfg.Dockerfile)

	// timeout zero-values filled from defaults
	assert.Equal(t, defaults.BuildTimeout, cfg.Timeouts.Build)
	assert.Equal(t, defaults.ProbeTimeout, cfg.Timeouts.Probe)
}

func TestFinalize_KeepsAbsolutePathsAndTimeouts(t *testing.T) {
	cfg := New()
	cfg.Action = ActionTeardown
	cfg.Dir = t.TempDir()
	cfg.Template = "/etc/shipctl/app.yaml"
	cfg.Timeouts.Apply = 7 * time.Second

	require.NoError(t, cfg.Finalize())

	assert.Equal(t, "/etc/shipctl/app.yaml", cfg.Template)
	assert.Equal(t, 7*time.Second, cfg.Timeouts.Apply)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "valid deploy",
			mutate: func(c *Config) { c.Action = ActionDeploy },
		},
		{
			name:   "valid delete",
			mutate: func(c *Config) { c.Action = ActionTeardown },
		},
		{
			name:    "missing action",
			mutate:  func(c *Config) {},
			wantErr: true,
		},
		{
			name: "empty namespace",
			mutate: func(c *Config) {
				c.Action = ActionDeploy
				c.Namespace = ""
			},
			wantErr: true,
		},
		{
			name: "empty template",
			mutate: func(c *Config) {
				c.Action = ActionDeploy
				c.Template = ""
			},
			wantErr: true,
		},
		{
			name: "invalid image name",
			mutate: func(c *Config) {
				c.Action = ActionDeploy
				c.App = "Not_A_Valid_Image!"
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestImageReference(t *testing.T) {
	cfg := New()
	cfg.App = "ovr-web-app"
	cfg.Tag = "v1"

	ref, err := cfg.ImageReference()
	require.NoError(t, err)
	assert.Equal(t, "ovr-web-app:v1", ref.String())
}
