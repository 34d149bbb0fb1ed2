package runner

import (
	"fmt"
	"strings"
)

// FailureKind classifies why a dispatch failed. Resolution failures come
// from Resolve; the remaining kinds are raised while loading or running an
// entry unit and are always converted to a failed Outcome at the Runner
// boundary.
type FailureKind string

const (
	FailureNotFound        FailureKind = "not-found"
	FailureAmbiguous       FailureKind = "ambiguous"
	FailureMissingResource FailureKind = "missing-resource"
	FailureDependency      FailureKind = "dependency-unavailable"
	FailureExecution       FailureKind = "execution"
)

// NotFoundError reports a query that matched no project. Suggestions are
// advisory near-misses for the user; their presence does not change the
// failure kind.
type NotFoundError struct {
	Query       string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("no project found matching %q", e.Query)
	}
	return fmt.Sprintf("no project found matching %q (did you mean: %s)",
		e.Query, strings.Join(e.Suggestions, ", "))
}

// Kind returns FailureNotFound.
func (e *NotFoundError) Kind() FailureKind { return FailureNotFound }

// AmbiguousError reports a query that matched several projects.
type AmbiguousError struct {
	Query      string
	Candidates []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("multiple projects match %q: %s",
		e.Query, strings.Join(e.Candidates, ", "))
}

// Kind returns FailureAmbiguous.
func (e *AmbiguousError) Kind() FailureKind { return FailureAmbiguous }

// RunError wraps a failure raised while loading or running an entry unit.
type RunError struct {
	FailureKind FailureKind
	Project     string
	Err         error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("project %s: %s: %v", e.Project, e.FailureKind, e.Err)
}

func (e *RunError) Unwrap() error { return e.Err }

// Kind returns the classified failure kind.
func (e *RunError) Kind() FailureKind { return e.FailureKind }
