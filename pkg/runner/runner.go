/*
Copyright © 2025 Ovrinda
SPDX-License-Identifier: Apache-2.0
*/

package runner

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	apperrors "github.com/ovrinda/shipctl/pkg/errors"
)

// outputTailBytes limits how much tool output is carried in error context.
const outputTailBytes = 4 * 1024

// Command describes a single external tool invocation.
type Command struct {
	// Tool is the executable name, resolved via PATH.
	Tool string
	// Args are the arguments passed to the tool.
	Args []string
	// Dir is the working directory for the invocation. Empty means the
	// current process working directory.
	Dir string
}

// Runner executes external tools. Implementations must respect context
// cancellation by terminating the in-flight process.
type Runner interface {
	// LookPath reports whether the tool is discoverable on PATH,
	// returning its resolved location.
	LookPath(tool string) (string, error)
	// Run executes the command, blocking until it completes. A non-zero
	// exit is returned as an error carrying the tail of the combined output.
	Run(ctx context.Context, cmd Command) error
}

type execRunner struct{}

// New returns a Runner backed by os/exec.
func New() Runner {
	return execRunner{}
}

func (execRunner) LookPath(tool string) (string, error) {
	path, err := exec.LookPath(tool)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeEnvironment,
			fmt.Sprintf("%s not found in PATH", tool), err)
	}
	return path, nil
}

func (execRunner) Run(ctx context.Context, c Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := exec.LookPath(c.Tool)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeEnvironment,
			fmt.Sprintf("%s not found in PATH", c.Tool), err)
	}

	slog.Debug("running command",
		"tool", c.Tool,
		"args", strings.Join(c.Args, " "),
		"dir", c.Dir)

	cmd := exec.CommandContext(ctx, path, c.Args...)
	cmd.Dir = c.Dir

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	runErr := cmd.Run()

	// Context errors take precedence over the exit status the kill produced.
	if ctxErr := ctx.Err(); ctxErr != nil {
		return apperrors.WrapWithContext(apperrors.ErrCodeTimeout,
			fmt.Sprintf("%s interrupted", c.Tool), ctxErr, map[string]any{
				"command": commandLine(c),
			})
	}

	if runErr != nil {
		return apperrors.WrapWithContext(apperrors.ErrCodeInternal,
			fmt.Sprintf("%s failed", c.Tool), runErr, map[string]any{
				"command": commandLine(c),
				"output":  Tail(output.Bytes(), outputTailBytes),
			})
	}

	slog.Debug("command completed", "tool", c.Tool, "outputBytes", output.Len())
	return nil
}

// Tail returns at most limit trailing bytes of b as a string, trimmed of
// surrounding whitespace. Tool output can be large; errors only need the end.
func Tail(b []byte, limit int) string {
	if len(b) > limit {
		b = b[len(b)-limit:]
	}
	return strings.TrimSpace(string(b))
}

func commandLine(c Command) string {
	if len(c.Args) == 0 {
		return c.Tool
	}
	return c.Tool + " " + strings.Join(c.Args, " ")
}
