package runner

import "time"

// StepStatus describes what happened to one step during a run.
type StepStatus int

const (
	// StatusAlreadyCompleted means the step was at or behind the progress
	// marker; its action was not invoked.
	StatusAlreadyCompleted StepStatus = iota
	// StatusWouldRun means a dry run previewed the step without executing it.
	StatusWouldRun
	// StatusCompleted means the action ran, succeeded, and the marker was
	// persisted.
	StatusCompleted
	// StatusFailed means the action ran and failed; the marker is unchanged.
	StatusFailed
)

// String returns the string representation of the status.
func (s StepStatus) String() string {
	switch s {
	case StatusAlreadyCompleted:
		return "already completed"
	case StatusWouldRun:
		return "would run"
	case StatusCompleted:
		return "completed"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome describes how a run terminated.
type Outcome int

const (
	// OutcomeCompleted means every registered step is now completed.
	OutcomeCompleted Outcome = iota
	// OutcomeRebooting means a reboot was confirmed and handed off; the
	// completed step is already persisted, so re-invocation resumes at the
	// next one.
	OutcomeRebooting
	// OutcomeRebootDeferred means the operator declined a required reboot;
	// the run stopped without error and a reboot is owed before resuming.
	OutcomeRebootDeferred
	// OutcomeFailed means a step action or the progress store failed.
	OutcomeFailed
)

// String returns the string representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeCompleted:
		return "completed"
	case OutcomeRebooting:
		return "rebooting"
	case OutcomeRebootDeferred:
		return "reboot deferred"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// StepResult records the fate of one step within a run.
type StepResult struct {
	Index       int
	Description string
	Status      StepStatus
	Err         error
	Duration    time.Duration
}

// Report summarizes a run: the per-step results, the terminal outcome, and
// the progress marker value when the run ended.
type Report struct {
	Results  []StepResult
	Outcome  Outcome
	Progress int
}
