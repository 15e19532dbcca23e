// Package ports defines interfaces for external dependencies.
package ports

import (
	"context"
)

// CommandResult holds the outcome of one external command invocation.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success returns true if the command exited with code 0.
func (r CommandResult) Success() bool {
	return r.ExitCode == 0
}

// CommandCall records a command invocation, for test doubles.
type CommandCall struct {
	Command string
	Args    []string
}

// CommandRunner executes external commands. Implementations capture the
// command's output rather than streaming it; provisioning actions surface
// stderr as their failure diagnostic.
type CommandRunner interface {
	Run(ctx context.Context, command string, args ...string) (CommandResult, error)
}
