/*
Copyright © 2025 Ovrinda
SPDX-License-Identifier: Apache-2.0
*/

// Package kube implements the cluster-facing side of the workflow.
//
// The reachability probe and namespace management use the Kubernetes API
// directly; manifest apply and delete shell out to kubectl so manifest
// semantics (server-side apply, --ignore-not-found teardown) stay identical
// to what an operator would get running the same commands by hand.
package kube
