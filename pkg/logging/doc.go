/*
Copyright © 2025 Ovrinda
SPDX-License-Identifier: Apache-2.0
*/

// Package logging provides structured logging for shipctl.
//
// The package wraps the standard library slog with project defaults: JSON
// output to stderr, module/version context on every record, and source
// location tracking at debug level. The LOG_LEVEL environment variable
// controls verbosity (debug, info, warn, error; default info). LOG_FORMAT
// selects the handler: json (default), text, or tint for colorized
// terminal output.
//
// Set the default logger early in main:
//
//	logging.SetDefaultStructuredLogger("shipctl", version)
//	slog.Info("starting", "namespace", ns)
package logging
