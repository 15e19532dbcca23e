// Package system provides host-level adapters.
package system

import (
	"context"
	"fmt"
	"strings"

	"github.com/felixgeelhaar/jetup/internal/ports"
)

// CommandRebooter triggers a reboot by running an external command,
// "sudo reboot" by default.
type CommandRebooter struct {
	runner ports.CommandRunner
	argv   []string
}

// NewCommandRebooter creates a rebooter using the given command runner.
func NewCommandRebooter(runner ports.CommandRunner) *CommandRebooter {
	return &CommandRebooter{
		runner: runner,
		argv:   []string{"sudo", "reboot"},
	}
}

// WithCommand overrides the reboot command.
func (r *CommandRebooter) WithCommand(argv ...string) *CommandRebooter {
	return &CommandRebooter{runner: r.runner, argv: argv}
}

// Reboot hands off to the platform's reboot command. When it succeeds the
// process is living on borrowed time; callers should return promptly.
func (r *CommandRebooter) Reboot(ctx context.Context) error {
	result, err := r.runner.Run(ctx, r.argv[0], r.argv[1:]...)
	if err != nil {
		return fmt.Errorf("%s: %w", strings.Join(r.argv, " "), err)
	}
	if !result.Success() {
		return fmt.Errorf("%s: exit %d: %s",
			strings.Join(r.argv, " "), result.ExitCode, strings.TrimSpace(result.Stderr))
	}
	return nil
}

// Ensure CommandRebooter implements ports.Rebooter.
var _ ports.Rebooter = (*CommandRebooter)(nil)
