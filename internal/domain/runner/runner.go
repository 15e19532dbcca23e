package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/felixgeelhaar/jetup/internal/ports"
)

// Runner executes registered steps in index order, persisting the progress
// marker after each completed step. One instance is expected to run at a
// time; concurrent invocations would race on the store.
type Runner struct {
	steps     []Step
	store     ProgressStore
	logger    ports.Logger
	confirmer ports.Confirmer
	rebooter  ports.Rebooter
	dryRun    bool

	progress int
	loaded   bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger used for step announcements.
func WithLogger(logger ports.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithConfirmer sets the confirmer consulted when a completed step requires
// a reboot.
func WithConfirmer(confirmer ports.Confirmer) Option {
	return func(r *Runner) {
		r.confirmer = confirmer
	}
}

// WithRebooter sets the reboot handoff used after a confirmed reboot.
func WithRebooter(rebooter ports.Rebooter) Option {
	return func(r *Runner) {
		r.rebooter = rebooter
	}
}

// WithDryRun enables preview mode: no action executes and the progress
// store is never written.
func WithDryRun(dryRun bool) Option {
	return func(r *Runner) {
		r.dryRun = dryRun
	}
}

// New creates a Runner over the given store and steps. Steps must carry
// contiguous indices starting at 1.
func New(store ProgressStore, steps []Step, opts ...Option) (*Runner, error) {
	if len(steps) == 0 {
		return nil, ErrNoSteps
	}
	if err := validateSteps(steps); err != nil {
		return nil, err
	}

	r := &Runner{
		steps:     steps,
		store:     store,
		logger:    nopLogger{},
		confirmer: declineConfirmer{},
		rebooter:  unavailableRebooter{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Steps returns the registered steps in index order.
func (r *Runner) Steps() []Step {
	return r.steps
}

// MaxIndex returns the highest registered step index.
func (r *Runner) MaxIndex() int {
	return len(r.steps)
}

// Progress returns the in-memory progress marker.
func (r *Runner) Progress() int {
	return r.progress
}

// Initialize reads the progress marker from the store. After it returns,
// the marker reflects the last durably-recorded completed step, or 0 on a
// first run.
func (r *Runner) Initialize(ctx context.Context) error {
	value, err := r.store.Load(ctx)
	if err != nil {
		return &StoreError{Op: "load", Err: err}
	}
	r.progress = value
	r.loaded = true
	return nil
}

// SkipTo force-advances the progress marker to target and persists it. The
// steps in (progress, target] are marked completed without running their
// actions; the caller is trusted that their effects already occurred by
// other means. A target at or behind current progress is an informational
// no-op. In dry-run mode only the in-memory marker moves.
func (r *Runner) SkipTo(ctx context.Context, target int) error {
	if err := r.ensureLoaded(ctx); err != nil {
		return err
	}

	if target < 1 || target > r.MaxIndex() {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidSkipTarget, target, r.MaxIndex())
	}

	if target <= r.progress {
		r.logger.Info(ctx, "skip target already passed",
			ports.F("target", target),
			ports.F("progress", r.progress))
		return nil
	}

	if r.dryRun {
		r.logger.Info(ctx, "dry run: would advance progress",
			ports.F("from", r.progress),
			ports.F("to", target))
		r.progress = target
		return nil
	}

	if err := r.store.Save(ctx, target); err != nil {
		return &StoreError{Op: "save", Err: err}
	}
	r.logger.Warn(ctx, "progress force-advanced; skipped actions were not executed",
		ports.F("from", r.progress),
		ports.F("to", target))
	r.progress = target
	return nil
}

// Run executes every step past the progress marker, in index order. It
// halts on the first action failure, after a confirmed reboot handoff, or
// when the operator defers a required reboot. Completion is inferred when
// the marker reaches the highest registered index.
func (r *Runner) Run(ctx context.Context) (Report, error) {
	if err := r.ensureLoaded(ctx); err != nil {
		return Report{Outcome: OutcomeFailed, Progress: r.progress}, err
	}

	results := make([]StepResult, 0, len(r.steps))

	for _, step := range r.steps {
		select {
		case <-ctx.Done():
			return r.report(results, OutcomeFailed), ctx.Err()
		default:
		}

		if step.Index <= r.progress {
			r.logger.Debug(ctx, "step already completed",
				ports.F("step", step.Index),
				ports.F("description", step.Description))
			results = append(results, StepResult{
				Index:       step.Index,
				Description: step.Description,
				Status:      StatusAlreadyCompleted,
			})
			continue
		}

		// Announced before execution so a crash mid-action still shows
		// which step was attempted.
		r.logger.Info(ctx, "step starting",
			ports.F("step", step.Index),
			ports.F("description", step.Description))

		if r.dryRun {
			r.logger.Info(ctx, "dry run: action not executed",
				ports.F("step", step.Index))
			if step.RequiresReboot {
				r.logger.Info(ctx, "dry run: step would require a reboot",
					ports.F("step", step.Index))
			}
			results = append(results, StepResult{
				Index:       step.Index,
				Description: step.Description,
				Status:      StatusWouldRun,
			})
			continue
		}

		start := time.Now()
		err := step.Action(ctx)
		duration := time.Since(start)

		if err != nil {
			actionErr := &ActionError{Index: step.Index, Description: step.Description, Err: err}
			r.logger.Error(ctx, "step failed",
				ports.F("step", step.Index),
				ports.F("description", step.Description),
				ports.F("error", err.Error()))
			results = append(results, StepResult{
				Index:       step.Index,
				Description: step.Description,
				Status:      StatusFailed,
				Err:         err,
				Duration:    duration,
			})
			return r.report(results, OutcomeFailed), actionErr
		}

		// Persist before anything else so a crash after this point loses
		// nothing.
		if err := r.store.Save(ctx, step.Index); err != nil {
			storeErr := &StoreError{Op: "save", Err: err}
			results = append(results, StepResult{
				Index:       step.Index,
				Description: step.Description,
				Status:      StatusFailed,
				Err:         storeErr,
				Duration:    duration,
			})
			return r.report(results, OutcomeFailed), storeErr
		}
		r.progress = step.Index

		r.logger.Info(ctx, "step completed",
			ports.F("step", step.Index),
			ports.F("duration", duration.Round(time.Millisecond).String()))
		results = append(results, StepResult{
			Index:       step.Index,
			Description: step.Description,
			Status:      StatusCompleted,
			Duration:    duration,
		})

		if !step.RequiresReboot {
			continue
		}

		confirmed, err := r.confirmer.Confirm(ctx,
			fmt.Sprintf("Step %d (%s) requires a reboot. Reboot now?", step.Index, step.Description))
		if err != nil {
			return r.report(results, OutcomeFailed), fmt.Errorf("reboot confirmation: %w", err)
		}

		if !confirmed {
			r.logger.Warn(ctx, "reboot deferred; reboot before the next run",
				ports.F("step", step.Index))
			return r.report(results, OutcomeRebootDeferred), nil
		}

		r.logger.Info(ctx, "rebooting; re-run after boot to resume",
			ports.F("step", step.Index))
		if err := r.rebooter.Reboot(ctx); err != nil {
			return r.report(results, OutcomeFailed), fmt.Errorf("reboot: %w", err)
		}
		return r.report(results, OutcomeRebooting), nil
	}

	r.logger.Info(ctx, "all steps completed", ports.F("progress", r.progress))
	return r.report(results, OutcomeCompleted), nil
}

func (r *Runner) ensureLoaded(ctx context.Context) error {
	if r.loaded {
		return nil
	}
	return r.Initialize(ctx)
}

func (r *Runner) report(results []StepResult, outcome Outcome) Report {
	return Report{Results: results, Outcome: outcome, Progress: r.progress}
}

// nopLogger is the default logger when none is injected.
type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...ports.Field) {}
func (nopLogger) Info(context.Context, string, ...ports.Field)  {}
func (nopLogger) Warn(context.Context, string, ...ports.Field)  {}
func (nopLogger) Error(context.Context, string, ...ports.Field) {}
func (l nopLogger) With(...ports.Field) ports.Logger            { return l }
func (nopLogger) Level() ports.Level                            { return ports.LevelInfo }

// declineConfirmer is the default confirmer; it always declines, so a
// reboot-flagged step defers unless a real confirmer is injected.
type declineConfirmer struct{}

func (declineConfirmer) Confirm(context.Context, string) (bool, error) {
	return false, nil
}

// unavailableRebooter is the default rebooter.
type unavailableRebooter struct{}

func (unavailableRebooter) Reboot(context.Context) error {
	return fmt.Errorf("no reboot mechanism configured")
}
