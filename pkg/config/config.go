/*
Copyright © 2025 Ovrinda
SPDX-License-Identifier: Apache-2.0
*/

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ovrinda/shipctl/pkg/defaults"
	apperrors "github.com/ovrinda/shipctl/pkg/errors"
	"github.com/ovrinda/shipctl/pkg/oci"
)

// Action selects the workflow entry point.
type Action string

const (
	// ActionDeploy builds, packages, renders, and applies.
	ActionDeploy Action = "deploy"
	// ActionTeardown renders and deletes with ignore-missing semantics.
	ActionTeardown Action = "delete"
)

// Built-in defaults, overridable via config file, environment, and flags.
const (
	DefaultApp        = "ovr-web-app"
	DefaultTag        = "latest"
	DefaultNamespace  = "default"
	DefaultTemplate   = "k8s/deployment.yaml"
	DefaultDockerfile = "Dockerfile"
)

// Timeouts bounds each external-call boundary of the workflow.
// Zero values fall back to the package defaults.
type Timeouts struct {
	Build     time.Duration `yaml:"build,omitempty"`
	Package   time.Duration `yaml:"package,omitempty"`
	Apply     time.Duration `yaml:"apply,omitempty"`
	Teardown  time.Duration `yaml:"teardown,omitempty"`
	Probe     time.Duration `yaml:"probe,omitempty"`
	Namespace time.Duration `yaml:"namespace,omitempty"`
}

// Config holds the resolved workflow configuration. Treat it as immutable
// once Finalize has been called; the workflow never mutates it.
type Config struct {
	// Action is the workflow entry point (deploy or delete).
	Action Action `yaml:"-"`

	// App is the application name, used as the image name.
	App string `yaml:"app,omitempty"`

	// Tag is the image tag.
	Tag string `yaml:"tag,omitempty"`

	// Namespace is the target cluster namespace.
	Namespace string `yaml:"namespace,omitempty"`

	// Template is the path to the manifest template containing the
	// image substitution token.
	Template string `yaml:"template,omitempty"`

	// Dir is the working directory of the source project, where the build
	// tool and container engine run.
	Dir string `yaml:"dir,omitempty"`

	// Dockerfile is the dockerfile path, relative to Dir unless absolute.
	Dockerfile string `yaml:"dockerfile,omitempty"`

	// Kubeconfig is an optional explicit kubeconfig path. Empty means
	// standard discovery (KUBECONFIG, ~/.kube/config, in-cluster).
	Kubeconfig string `yaml:"kubeconfig,omitempty"`

	// CreateNamespace creates the target namespace before apply when it
	// does not exist yet.
	CreateNamespace bool `yaml:"createNamespace,omitempty"`

	// SkipTests passes the test-skip option to the build tool.
	SkipTests bool `yaml:"skipTests,omitempty"`

	// Timeouts bounds the individual external calls.
	Timeouts Timeouts `yaml:"timeouts,omitempty"`
}

// New returns a Config populated with built-in defaults.
func New() *Config {
	return &Config{
		App:        DefaultApp,
		Tag:        DefaultTag,
		Namespace:  DefaultNamespace,
		Template:   DefaultTemplate,
		Dockerfile: DefaultDockerfile,
	}
}

// Load reads a YAML config file over the built-in defaults. An empty path
// returns defaults only.
func Load(path string) (*Config, error) {
	cfg := New()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("failed to read config file %s", path), err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("failed to parse config file %s", path), err)
	}
	return cfg, nil
}

// LoadDotenv loads a .env file from dir into the process environment so
// flag env-var sources pick the values up. Missing files are not an error;
// explicitly set environment variables are never overridden.
func LoadDotenv(dir string) error {
	path := filepath.Join(dir, ".env")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("failed to load %s", path), err)
	}
	return nil
}

// Finalize fills timeout zero-values, resolves the dockerfile path relative
// to the working directory, and validates the result.
func (c *Config) Finalize() error {
	if c.Dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return apperrors.Wrap(apperrors.ErrCodeInternal, "failed to resolve working directory", err)
		}
		c.Dir = wd
	}

	if c.Dockerfile != "" && !filepath.IsAbs(c.Dockerfile) {
		c.Dockerfile = filepath.Join(c.Dir, c.Dockerfile)
	}
	if c.Template != "" && !filepath.IsAbs(c.Template) {
		c.Template = filepath.Join(c.Dir, c.Template)
	}

	if c.Timeouts.Build == 0 {
		c.Timeouts.Build = defaults.BuildTimeout
	}
	if c.Timeouts.Package == 0 {
		c.Timeouts.Package = defaults.PackageTimeout
	}
	if c.Timeouts.Apply == 0 {
		c.Timeouts.Apply = defaults.ApplyTimeout
	}
	if c.Timeouts.Teardown == 0 {
		c.Timeouts.Teardown = defaults.TeardownTimeout
	}
	if c.Timeouts.Probe == 0 {
		c.Timeouts.Probe = defaults.ProbeTimeout
	}
	if c.Timeouts.Namespace == 0 {
		c.Timeouts.Namespace = defaults.NamespaceTimeout
	}

	return c.Validate()
}

// Validate checks the configuration for required values and a well-formed
// image reference.
func (c *Config) Validate() error {
	if c.Action != ActionDeploy && c.Action != ActionTeardown {
		return apperrors.New(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("unknown action: %q", c.Action))
	}
	if c.Namespace == "" {
		return apperrors.New(apperrors.ErrCodeInvalidRequest, "namespace is required")
	}
	if c.Template == "" {
		return apperrors.New(apperrors.ErrCodeInvalidRequest, "manifest template path is required")
	}
	if _, err := c.ImageReference(); err != nil {
		return err
	}
	return nil
}

// ImageReference derives the validated name:tag reference for this config.
func (c *Config) ImageReference() (oci.ImageReference, error) {
	return oci.NewImageReference(c.App, c.Tag)
}
