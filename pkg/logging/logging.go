/*
Copyright © 2025 Ovrinda
SPDX-License-Identifier: Apache-2.0
*/

package logging

import (
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
)

// Supported log output formats.
const (
	FormatJSON = "json"
	FormatText = "text"
	FormatTint = "tint"
)

// Environment variables consulted when no explicit level/format is given.
const (
	levelEnvVar  = "LOG_LEVEL"
	formatEnvVar = "LOG_FORMAT"
)

// ParseLevel converts a level name to a slog.Level. Parsing is
// case-insensitive and accepts both "warn" and "warning". Unknown or empty
// values default to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewStructuredLogger creates a logger writing to stderr with module and
// version attributes attached to every record. Debug level enables source
// location tracking. Format is one of json, text, or tint; unknown values
// fall back to JSON.
func NewStructuredLogger(module, version, level, format string) *slog.Logger {
	lvl := ParseLevel(level)
	opts := &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl == slog.LevelDebug,
	}

	var handler slog.Handler
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatText:
		handler = slog.NewTextHandler(os.Stderr, opts)
	case FormatTint:
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:     opts.Level,
			AddSource: opts.AddSource,
		})
	default:
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}

	return slog.New(handler).With(
		"module", module,
		"version", version,
	)
}

// SetDefaultStructuredLogger installs the default logger using the LOG_LEVEL
// and LOG_FORMAT environment variables (info/json when unset).
func SetDefaultStructuredLogger(module, version string) {
	SetDefaultStructuredLoggerWithLevel(module, version, os.Getenv(levelEnvVar))
}

// SetDefaultStructuredLoggerWithLevel installs the default logger with an
// explicit level, keeping LOG_FORMAT based format selection.
func SetDefaultStructuredLoggerWithLevel(module, version, level string) {
	slog.SetDefault(NewStructuredLogger(module, version, level, os.Getenv(formatEnvVar)))
}
