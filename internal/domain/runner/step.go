// Package runner implements the resumable step runner: an ordered list of
// named, possibly side-effecting provisioning steps executed exactly once
// each, with progress persisted after every completed step so an interrupted
// run (crash, reboot, operator abort) resumes where it left off.
package runner

import (
	"context"
	"fmt"
)

// Action is the opaque operation a step performs. A non-nil error is the
// failure outcome; its text is the diagnostic surfaced to the operator.
// Actions may be re-invoked after an interruption, so they must be safe to
// re-run; the runner does not enforce this.
type Action func(ctx context.Context) error

// Step is one registered unit of provisioning work.
type Step struct {
	// Index is the step's stable identity. Registered indices must form a
	// contiguous sequence starting at 1.
	Index int

	// Description is a human-readable label with no effect on control flow.
	Description string

	// Action is invoked when the step executes.
	Action Action

	// RequiresReboot marks a step whose completion must be followed by a
	// reboot before later steps run.
	RequiresReboot bool
}

// validateSteps checks that steps are registered with contiguous indices
// starting at 1 and that every step has an action.
func validateSteps(steps []Step) error {
	for i, s := range steps {
		want := i + 1
		if s.Index != want {
			return fmt.Errorf("step %q: index %d, want %d (indices must be contiguous from 1)", s.Description, s.Index, want)
		}
		if s.Action == nil {
			return fmt.Errorf("step %d %q: nil action", s.Index, s.Description)
		}
	}
	return nil
}
