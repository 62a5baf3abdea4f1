/*
Copyright © 2025 Ovrinda
SPDX-License-Identifier: Apache-2.0
*/

// Package client provides Kubernetes clientset construction for shipctl.
//
// A singleton client with sync.Once backs the default discovery path
// (KUBECONFIG, ~/.kube/config, in-cluster service account); BuildKubeClient
// bypasses the cache when the CLI is given an explicit --kubeconfig. The
// clientset is consumed by pkg/kube for the read-only reachability probe
// and namespace management. Tests substitute fake.NewSimpleClientset().
package client
