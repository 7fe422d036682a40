package model

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the per-target failure modes of the pipeline.
// Every kind is fatal for its target label only; the pipeline records
// the failure and continues with the next label.
type ErrorKind string

const (
	// KindNotFound indicates no document object matched the
	// requested label.
	KindNotFound ErrorKind = "not-found"

	// KindEmptyContainer indicates a grouping object (part) was found
	// under the label but holds no solid container (body).
	KindEmptyContainer ErrorKind = "empty-container"

	// KindNoTipGeometry indicates the resolved body has no tip
	// feature with shape data.
	KindNoTipGeometry ErrorKind = "no-tip-geometry"

	// KindNoColorData indicates the tip feature carries no per-face
	// color annotation.
	KindNoColorData ErrorKind = "no-color-data"

	// KindCountMismatch indicates the face count and color count
	// disagree. This is a hard failure, never a silent truncation.
	KindCountMismatch ErrorKind = "count-mismatch"
)

// String returns the string representation of the error kind.
func (k ErrorKind) String() string {
	return string(k)
}

// TargetError is an error scoped to a single target label. The pipeline
// catches it at the target boundary, records (label, message), and moves
// on — a TargetError never aborts the run as a whole.
type TargetError struct {
	// Label is the target label the error is scoped to.
	Label string

	// Kind classifies the failure mode.
	Kind ErrorKind

	// Message is the human-readable failure description.
	Message string
}

// Error satisfies the error interface.
func (e *TargetError) Error() string {
	return fmt.Sprintf("%s: %s", e.Label, e.Message)
}

// NewTargetError creates a TargetError for the given label and kind.
// The message is formatted from format and args.
func NewTargetError(label string, kind ErrorKind, format string, args ...any) *TargetError {
	return &TargetError{
		Label:   label,
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// IsKind reports whether err is (or wraps) a TargetError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var te *TargetError
	return errors.As(err, &te) && te.Kind == kind
}

// ExitCode defines the process exit codes used by the CLI.
type ExitCode int

const (
	// ExitSuccess indicates every target label was processed.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitSnapshotError indicates the document snapshot could not be
	// read or parsed. This aborts the run before any target.
	ExitSnapshotError ExitCode = 2

	// ExitConfigError indicates the run configuration is invalid.
	ExitConfigError ExitCode = 3

	// ExitPartialFailure indicates the run completed but one or more
	// target labels failed.
	ExitPartialFailure ExitCode = 4
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
