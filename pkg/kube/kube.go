/*
Copyright © 2025 Ovrinda
SPDX-License-Identifier: Apache-2.0
*/

package kube

import (
	"context"
	"fmt"
	"log/slog"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	apperrors "github.com/ovrinda/shipctl/pkg/errors"
	"github.com/ovrinda/shipctl/pkg/k8s/client"
	"github.com/ovrinda/shipctl/pkg/runner"
)

const tool = "kubectl"

// Client talks to the target cluster. Read-only checks and namespace
// management go through the API client; manifest submission is delegated to
// kubectl, which owns server-side apply and pruning semantics.
type Client struct {
	runner     runner.Runner
	clientset  client.Interface
	kubeconfig string
}

// Option configures a Client.
type Option func(*Client)

// WithRunner overrides the process runner, primarily for tests.
func WithRunner(r runner.Runner) Option {
	return func(c *Client) {
		c.runner = r
	}
}

// WithClientset injects a preconstructed API client, primarily for tests
// with fake.NewSimpleClientset().
func WithClientset(cs client.Interface) Option {
	return func(c *Client) {
		c.clientset = cs
	}
}

// New creates a cluster client. When no clientset is injected, one is built
// from the kubeconfig path (empty means standard discovery).
func New(kubeconfig string, opts ...Option) (*Client, error) {
	c := &Client{
		runner:     runner.New(),
		kubeconfig: kubeconfig,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.clientset == nil {
		var err error
		if kubeconfig == "" {
			c.clientset, _, err = client.GetKubeClient()
		} else {
			c.clientset, _, err = client.BuildKubeClient(kubeconfig)
		}
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeEnvironment,
				"failed to create cluster client", err)
		}
	}

	return c, nil
}

// Probe verifies the cluster is reachable with a read-only version request
// and that kubectl is discoverable. Called before any side effect.
func (c *Client) Probe(ctx context.Context) error {
	if _, err := c.runner.LookPath(tool); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	v, err := c.clientset.Discovery().ServerVersion()
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeEnvironment, "cluster unreachable", err)
	}

	slog.Debug("cluster reachable", "serverVersion", v.String())
	return nil
}

// Apply submits the manifest at path to the given namespace.
func (c *Client) Apply(ctx context.Context, path, namespace string) error {
	slog.Info("applying manifest", "path", path, "namespace", namespace)

	if err := c.runner.Run(ctx, runner.Command{
		Tool: tool,
		Args: c.args("apply", path, namespace),
	}); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeApply,
			fmt.Sprintf("failed to apply manifest in namespace %s", namespace), err)
	}
	return nil
}

// Delete removes the resources described by the manifest at path from the
// given namespace. With ignoreMissing, resources that are already absent do
// not produce an error.
func (c *Client) Delete(ctx context.Context, path, namespace string, ignoreMissing bool) error {
	slog.Info("deleting manifest resources",
		"path", path,
		"namespace", namespace,
		"ignoreMissing", ignoreMissing)

	args := c.args("delete", path, namespace)
	if ignoreMissing {
		args = append(args, "--ignore-not-found=true")
	}

	if err := c.runner.Run(ctx, runner.Command{Tool: tool, Args: args}); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeTeardown,
			fmt.Sprintf("failed to delete resources in namespace %s", namespace), err)
	}
	return nil
}

// EnsureNamespace creates the namespace when it does not exist yet.
// Idempotent: an existing namespace is not an error.
func (c *Client) EnsureNamespace(ctx context.Context, namespace string) error {
	_, err := c.clientset.CoreV1().Namespaces().Get(ctx, namespace, metav1.GetOptions{})
	if err == nil {
		slog.Debug("namespace exists", "namespace", namespace)
		return nil
	}
	if !apierrors.IsNotFound(err) {
		return apperrors.Wrap(apperrors.ErrCodeEnvironment,
			fmt.Sprintf("failed to look up namespace %s", namespace), err)
	}

	slog.Info("creating namespace", "namespace", namespace)
	ns := &corev1.Namespace{
		ObjectMeta: metav1.ObjectMeta{Name: namespace},
	}
	if _, err := c.clientset.CoreV1().Namespaces().Create(ctx, ns, metav1.CreateOptions{}); err != nil {
		// Lost the race against a concurrent creator; treat as success.
		if apierrors.IsAlreadyExists(err) {
			return nil
		}
		return apperrors.Wrap(apperrors.ErrCodeApply,
			fmt.Sprintf("failed to create namespace %s", namespace), err)
	}
	return nil
}

func (c *Client) args(verb, path, namespace string) []string {
	args := []string{verb, "--filename", path, "--namespace", namespace}
	if c.kubeconfig != "" {
		args = append(args, "--kubeconfig", c.kubeconfig)
	}
	return args
}
