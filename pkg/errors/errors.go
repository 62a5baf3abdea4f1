/*
Copyright © 2025 Ovrinda
SPDX-License-Identifier: Apache-2.0
*/

package errors

import "fmt"

// ErrorCode represents a structured error classification.
type ErrorCode string

const (
	// ErrCodeEnvironment indicates a missing external tool or an unreachable
	// cluster. Raised before any side effect; never retried.
	ErrCodeEnvironment ErrorCode = "ENVIRONMENT"
	// ErrCodeBuild indicates the build tool reported a failure.
	ErrCodeBuild ErrorCode = "BUILD_FAILED"
	// ErrCodePackage indicates the container image build failed.
	ErrCodePackage ErrorCode = "PACKAGE_FAILED"
	// ErrCodeTemplate indicates the manifest template is missing, unreadable,
	// or does not contain the substitution token.
	ErrCodeTemplate ErrorCode = "TEMPLATE_INVALID"
	// ErrCodeApply indicates the cluster rejected the rendered manifest.
	ErrCodeApply ErrorCode = "APPLY_FAILED"
	// ErrCodeTeardown indicates a non-fatal teardown failure. Workflows
	// carrying only this code still complete successfully.
	ErrCodeTeardown ErrorCode = "TEARDOWN_WARNING"
	// ErrCodeInvalidRequest indicates malformed or invalid input.
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	// ErrCodeTimeout indicates an operation exceeded its time limit.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeInternal indicates an internal system error.
	ErrCodeInternal ErrorCode = "INTERNAL"
)

// StructuredError provides structured error information for better observability.
// It includes an error code for programmatic handling, a human-readable message,
// the underlying cause, and optional context for debugging.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// New creates a new StructuredError with the given code and message.
func New(code ErrorCode, message string) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
	}
}

// NewWithContext creates a new StructuredError with context information.
func NewWithContext(code ErrorCode, message string, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Context: context,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(code ErrorCode, message string, cause error) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WrapWithContext wraps an error with additional context information.
func WrapWithContext(code ErrorCode, message string, cause error, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// CodeOf returns the ErrorCode carried by err, walking the cause chain.
// Returns ErrCodeInternal when err carries no structured code.
func CodeOf(err error) ErrorCode {
	for err != nil {
		if se, ok := err.(*StructuredError); ok {
			return se.Code
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return ErrCodeInternal
}
