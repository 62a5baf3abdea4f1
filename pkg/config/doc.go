/*
Copyright © 2025 Ovrinda
SPDX-License-Identifier: Apache-2.0
*/

// Package config resolves the immutable workflow configuration.
//
// Values layer in order of increasing precedence: built-in defaults, an
// optional YAML config file, an optional .env file in the project directory
// (loaded into the environment for the CLI's env-var flag sources), then
// environment variables and command-line flags applied by the CLI layer.
// Finalize freezes the result: it fills timeout defaults, anchors relative
// paths at the working directory, and validates required values including
// the image reference.
package config
