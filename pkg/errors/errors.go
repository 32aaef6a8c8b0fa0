// Package errors provides structured error types for the droid framework.
package errors

import (
	"fmt"
	"strings"
)

// InvalidStateError reports a lifecycle transition outside the legal set for
// the activity's current state. The activity's state is unchanged when this
// error is returned.
type InvalidStateError struct {
	// Activity is the name of the activity whose transition was rejected.
	Activity string
	// From is the state the activity was in.
	From string
	// To is the state the rejected transition targeted.
	To string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("activity %s: invalid transition %s -> %s", e.Activity, e.From, e.To)
}

// ActivityNotFoundError reports a start request for an activity name that was
// never registered with the host.
type ActivityNotFoundError struct {
	// Name is the requested activity name.
	Name string
	// Registered lists the names currently registered, for diagnostics.
	Registered []string
}

func (e *ActivityNotFoundError) Error() string {
	if len(e.Registered) == 0 {
		return fmt.Sprintf("activity %q not registered (no activities registered)", e.Name)
	}
	return fmt.Sprintf("activity %q not registered (registered: %s)", e.Name, strings.Join(e.Registered, ", "))
}

// BackendError reports a failure inside a renderer backend.
type BackendError struct {
	// Op is the backend operation that failed (e.g., "console.encode").
	Op string
	// Err is the underlying error.
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend %s: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}
