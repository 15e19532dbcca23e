package runner

import (
	"errors"
	"fmt"
)

// ErrInvalidSkipTarget reports a skip target outside [1, maxStepIndex].
var ErrInvalidSkipTarget = errors.New("skip target out of range")

// ErrNoSteps reports a runner constructed without any registered steps.
var ErrNoSteps = errors.New("no steps registered")

// ActionError reports a step action failure. It is fatal to the run: no
// later step executes and the progress marker is not advanced for the
// failed step.
type ActionError struct {
	Index       int
	Description string
	Err         error
}

// Error implements the error interface.
func (e *ActionError) Error() string {
	return fmt.Sprintf("step %d (%s) failed: %v", e.Index, e.Description, e.Err)
}

// Unwrap returns the action's underlying error.
func (e *ActionError) Unwrap() error {
	return e.Err
}

// StoreError reports that the progress store could not be read or written.
// Fatal at initialization and on persist.
type StoreError struct {
	Op  string // "load" or "save"
	Err error
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	return fmt.Sprintf("progress store %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying store error.
func (e *StoreError) Unwrap() error {
	return e.Err
}
