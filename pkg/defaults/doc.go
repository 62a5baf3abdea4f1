/*
Copyright © 2025 Ovrinda
SPDX-License-Identifier: Apache-2.0
*/

// Package defaults centralizes timeout constants for external tool and
// cluster interactions. Keeping them in one place makes the budgets easy to
// audit and keeps magic durations out of the workflow code.
package defaults
