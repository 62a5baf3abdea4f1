/*
Copyright © 2025 Ovrinda
SPDX-License-Identifier: Apache-2.0
*/

// Package manifest renders cluster manifest templates by substituting the
// image placeholder token with a concrete image reference.
//
// Rendering is a pure byte-level substitution: the output is identical to
// the template except where the token appeared, with no reordering or
// reformatting. Rendered manifests live at a unique temporary path scoped
// to a single workflow invocation and are removed unconditionally when the
// invocation ends.
package manifest
