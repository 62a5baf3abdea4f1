/*
Copyright © 2025 Ovrinda
SPDX-License-Identifier: Apache-2.0
*/

// Package runner executes external command-line tools on behalf of the
// workflow collaborators (build tool, container engine, kubectl).
//
// All invocations go through exec.CommandContext so cancellation terminates
// the in-flight process. Combined output is captured and the trailing
// portion is attached to structured errors, which keeps failures
// diagnosable without rerunning at higher verbosity.
package runner
