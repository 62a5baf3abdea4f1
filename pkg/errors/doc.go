/*
Copyright © 2025 Ovrinda
SPDX-License-Identifier: Apache-2.0
*/

// Package errors provides structured error types shared across shipctl.
//
// Errors carry a classification code that maps one-to-one onto the workflow
// step that produced them (environment preflight, build, package, template
// render, apply, teardown), a human-readable message, the underlying cause,
// and optional context such as the failing command and the tail of its
// output. The CLI surfaces a single diagnostic line per failure; the code
// and context make the failing step identifiable without a verbose rerun.
package errors
