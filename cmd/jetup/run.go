package main

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/jetup/internal/adapters/command"
	"github.com/felixgeelhaar/jetup/internal/adapters/logging"
	"github.com/felixgeelhaar/jetup/internal/adapters/prompt"
	"github.com/felixgeelhaar/jetup/internal/adapters/statefile"
	"github.com/felixgeelhaar/jetup/internal/adapters/system"
	"github.com/felixgeelhaar/jetup/internal/catalog"
	"github.com/felixgeelhaar/jetup/internal/domain/runner"
	"github.com/felixgeelhaar/jetup/internal/ports"
)

var (
	dryRunFlag bool
	skipToFlag int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute or resume the provisioning plan",
	Long: `Run executes every step of the plan past the persisted progress marker,
in order, stopping on the first failure. Already-completed steps are skipped,
so re-invoking after an interruption or reboot resumes where the previous
run left off.`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "preview without executing or persisting anything")
	runCmd.Flags().IntVar(&skipToFlag, "skip-to", 0, "mark steps up to N completed without running their actions")

	rootCmd.AddCommand(runCmd)
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})
}

func runRun(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	plan, err := catalog.Load(planFile)
	if err != nil {
		return &usageError{err: err}
	}

	level := ports.LevelInfo
	if verbose {
		level = ports.LevelDebug
	}
	logger := logging.NewConsoleLogger(
		logging.WithOutput(cmd.ErrOrStderr()),
		logging.WithLevel(level),
		logging.WithJSONFormat(jsonLogs),
	).With(ports.F("run_id", uuid.NewString()))

	cr := command.NewRealRunner()
	store := statefile.New(expandPath(stateFile))

	r, err := runner.New(store, plan.Compile(cr),
		runner.WithLogger(logger),
		runner.WithConfirmer(prompt.NewTerminalConfirmer(prompt.WithAutoYes(yesFlag))),
		runner.WithRebooter(system.NewCommandRebooter(cr)),
		runner.WithDryRun(dryRunFlag),
	)
	if err != nil {
		return &usageError{err: err}
	}

	if err := r.Initialize(ctx); err != nil {
		return err
	}

	if cmd.Flags().Changed("skip-to") {
		if err := r.SkipTo(ctx, skipToFlag); err != nil {
			return err
		}
	}

	report, err := r.Run(ctx)
	printSummary(cmd.OutOrStdout(), report, r.MaxIndex())
	return err
}

// printSummary renders the per-run totals and the terminal outcome.
func printSummary(w io.Writer, report runner.Report, maxIndex int) {
	var completed, already, previewed int
	var failedResult *runner.StepResult
	for i := range report.Results {
		switch report.Results[i].Status {
		case runner.StatusCompleted:
			completed++
		case runner.StatusAlreadyCompleted:
			already++
		case runner.StatusWouldRun:
			previewed++
		case runner.StatusFailed:
			failedResult = &report.Results[i]
		}
	}

	fmt.Fprintln(w, styleTitle.Render("Run summary"))
	fmt.Fprintf(w, "  progress: %s\n", styleIndex.Render(fmt.Sprintf("%d/%d", report.Progress, maxIndex)))
	if already > 0 {
		fmt.Fprintf(w, "  %s\n", styleMuted.Render(fmt.Sprintf("%d already completed", already)))
	}
	if completed > 0 {
		fmt.Fprintf(w, "  %s\n", styleSuccess.Render(fmt.Sprintf("%d completed", completed)))
	}
	if previewed > 0 {
		fmt.Fprintf(w, "  %s\n", styleMuted.Render(fmt.Sprintf("%d previewed (dry run)", previewed)))
	}
	if failedResult != nil {
		fmt.Fprintf(w, "  %s\n", styleError.Render(
			fmt.Sprintf("step %d (%s) failed: %v", failedResult.Index, failedResult.Description, failedResult.Err)))
	}

	switch report.Outcome {
	case runner.OutcomeCompleted:
		fmt.Fprintln(w, styleSuccess.Render("provisioning complete"))
	case runner.OutcomeRebooting:
		fmt.Fprintln(w, styleWarning.Render("rebooting; re-run jetup after boot to resume"))
	case runner.OutcomeRebootDeferred:
		fmt.Fprintln(w, styleWarning.Render("reboot deferred; reboot before the next run"))
	case runner.OutcomeFailed:
		fmt.Fprintln(w, styleError.Render("run halted"))
	}
}
