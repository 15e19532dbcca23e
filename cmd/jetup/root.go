package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/jetup/internal/catalog"
	"github.com/felixgeelhaar/jetup/internal/domain/runner"
)

// Exit codes. Invalid operator input is distinguished from a failed or
// interrupted provisioning run.
const (
	exitFailure    = 1
	exitInvalidArg = 2
)

var (
	// Global flags
	planFile  string
	stateFile string
	verbose   bool
	jsonLogs  bool
	yesFlag   bool
)

var rootCmd = &cobra.Command{
	Use:   "jetup",
	Short: "Resumable one-time device provisioning",
	Long: `Jetup executes an ordered plan of provisioning steps exactly once each,
persisting progress after every completed step. An interrupted run (crash,
reboot, declined confirmation) resumes where it left off on the next
invocation.`,
	SilenceErrors: true, // We handle error formatting ourselves
	SilenceUsage:  true, // Don't show usage on error
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&planFile, "plan", "jetup.yaml", "plan file (.yaml, .yml, or .toml)")
	rootCmd.PersistentFlags().StringVar(&stateFile, "state-file", "~/.local/state/jetup/progress", "progress marker file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "log in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&yesFlag, "yes", "y", false, "auto-confirm reboot prompts")

	registerFlagCompletions()

	rootCmd.AddCommand(versionCmd)
}

// usageError marks operator input errors, mapped to exitInvalidArg.
type usageError struct {
	err error
}

// Error implements the error interface.
func (e *usageError) Error() string {
	return e.err.Error()
}

// Unwrap returns the wrapped error.
func (e *usageError) Unwrap() error {
	return e.err
}

// exitCode maps an error to the process exit status. A failed plan command
// propagates its own exit code.
func exitCode(err error) int {
	var usageErr *usageError
	if errors.As(err, &usageErr) {
		return exitInvalidArg
	}
	if errors.Is(err, runner.ErrInvalidSkipTarget) {
		return exitInvalidArg
	}
	var cmdErr *catalog.CommandError
	if errors.As(err, &cmdErr) && cmdErr.ExitCode > 0 {
		return cmdErr.ExitCode
	}
	return exitFailure
}

// printError prints an error message to stderr.
func printError(err error) {
	printErrorTo(os.Stderr, err)
}

// printErrorTo prints an error message to the given writer.
func printErrorTo(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "Error: %s\n", err)
}

// expandPath expands a leading ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// registerFlagCompletions sets up custom completions for global flags.
func registerFlagCompletions() {
	_ = rootCmd.RegisterFlagCompletionFunc("plan", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"yaml", "yml", "toml"}, cobra.ShellCompDirectiveFilterFileExt
	})
}
