/*
Copyright © 2025 Ovrinda
SPDX-License-Identifier: Apache-2.0
*/

// Package oci models container image references.
//
// References are validated with the distribution reference grammar at
// construction time so invalid names surface as configuration errors before
// any tool runs, rather than as opaque container engine failures mid-workflow.
package oci
