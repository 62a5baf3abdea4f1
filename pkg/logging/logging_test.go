/*
Copyright © 2025 Ovrinda
SPDX-License-Identifier: Apache-2.0
*/

package logging

import (
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  slog.Level
	}{
		{"debug", "debug", slog.LevelDebug},
		{"info", "info", slog.LevelInfo},
		{"warn", "warn", slog.LevelWarn},
		{"warning alias", "warning", slog.LevelWarn},
		{"error", "error", slog.LevelError},
		{"mixed case", "DeBuG", slog.LevelDebug},
		{"padded", "  error  ", slog.LevelError},
		{"unknown defaults to info", "verbose", slog.LevelInfo},
		{"empty defaults to info", "", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLevel(tt.level); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestNewStructuredLogger(t *testing.T) {
	for _, format := range []string{FormatJSON, FormatText, FormatTint, "bogus", ""} {
		logger := NewStructuredLogger("shipctl", "v0.0.0-test", "info", format)
		if logger == nil {
			t.Fatalf("NewStructuredLogger returned nil for format %q", format)
		}
		if !logger.Enabled(t.Context(), slog.LevelInfo) {
			t.Errorf("expected info level enabled for format %q", format)
		}
		if logger.Enabled(t.Context(), slog.LevelDebug) {
			t.Errorf("expected debug level disabled for format %q", format)
		}
	}
}
