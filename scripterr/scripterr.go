// Package scripterr defines the error-kind taxonomy for the (out-of-scope,
// not implemented here) scripting endpoint, so a future embedded-
// expression-engine package has a contract to satisfy — the same one
// diff.InvariantViolationError already follows internally.
package scripterr

import "fmt"

// CompileError reports an ill-formed user script fragment.
type CompileError struct {
	Fragment string // "init", "filter", or "accumulate"
	Source   string // the offending snippet
	Cause    error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("scripterr: compile error in %s fragment: %v (near %q)", e.Fragment, e.Cause, e.Source)
}

func (e *CompileError) Unwrap() error { return e.Cause }

// EvaluationError reports a runtime failure in a user script or a
// built-in. Non-fatal for multi-commit jobs, which collect one per
// commit; fatal for single-commit requests.
type EvaluationError struct {
	Commit string
	Cause  error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("scripterr: evaluation error at commit %s: %v", e.Commit, e.Cause)
}

func (e *EvaluationError) Unwrap() error { return e.Cause }

// ConfigurationMissingError reports a requested repo that isn't
// configured; surfaced immediately, never collected.
type ConfigurationMissingError struct {
	Repo string
}

func (e *ConfigurationMissingError) Error() string {
	return fmt.Sprintf("scripterr: repository %q is not configured", e.Repo)
}

// InvariantViolationError mirrors diff.InvariantViolationError's contract
// for the scripting layer: an internal bug, never a consequence of
// well-formed input, that aborts the request rather than being collected
// per-commit like EvaluationError.
type InvariantViolationError struct {
	Detail string
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("scripterr: invariant violation: %s", e.Detail)
}
