/*
Copyright © 2025 Ovrinda
SPDX-License-Identifier: Apache-2.0
*/

// Package workflow implements the deployment orchestrator.
//
// The orchestrator composes four external collaborators it does not
// implement: a Builder (build tool), a Packager (container engine), a
// Renderer (manifest template substitution), and a ClusterClient (cluster
// apply/delete). Deploy runs build, package, render, apply in order with
// fail-fast semantics; teardown runs render and delete with best-effort
// semantics where absent resources count as success. The rendered manifest
// is a scoped temporary resource removed on every exit path.
package workflow
