package main

import (
	"fmt"

	"github.com/fitz35/hyperast-go/scripterr"
)

// CLIError is the uniform error shape every subcommand returns, carrying
// enough structure for main to print something actionable.
type CLIError struct {
	Kind    string
	Message string
	Cause   error
}

func (e *CLIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *CLIError) Unwrap() error { return e.Cause }

func newLoadError(path string, cause error) *CLIError {
	return &CLIError{Kind: "load", Message: "failed to load fixture " + path, Cause: cause}
}

// newPipelineError wraps a core package error (decomp/mapping/diff) as the
// scripterr.InvariantViolationError kind before it reaches the user, since
// every failure the pipeline can return is a programming-error invariant
// violation rather than a recoverable input problem.
func newPipelineError(cause error) *CLIError {
	return &CLIError{Kind: "pipeline", Message: "diff pipeline failed", Cause: &scripterr.InvariantViolationError{Detail: cause.Error()}}
}

func newConfigError(cause error) *CLIError {
	return &CLIError{Kind: "config", Message: "failed to resolve configuration", Cause: cause}
}
