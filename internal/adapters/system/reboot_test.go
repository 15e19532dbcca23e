package system_test

import (
	"context"
	"errors"
	"testing"

	"github.com/felixgeelhaar/jetup/internal/adapters/system"
	"github.com/felixgeelhaar/jetup/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	calls  []ports.CommandCall
	result ports.CommandResult
	err    error
}

func (f *fakeRunner) Run(_ context.Context, command string, args ...string) (ports.CommandResult, error) {
	f.calls = append(f.calls, ports.CommandCall{Command: command, Args: args})
	return f.result, f.err
}

func TestReboot_DefaultCommand(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{}
	r := system.NewCommandRebooter(runner)

	require.NoError(t, r.Reboot(context.Background()))
	require.Len(t, runner.calls, 1)
	assert.Equal(t, "sudo", runner.calls[0].Command)
	assert.Equal(t, []string{"reboot"}, runner.calls[0].Args)
}

func TestReboot_CustomCommand(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{}
	r := system.NewCommandRebooter(runner).WithCommand("systemctl", "reboot")

	require.NoError(t, r.Reboot(context.Background()))
	require.Len(t, runner.calls, 1)
	assert.Equal(t, "systemctl", runner.calls[0].Command)
}

func TestReboot_NonZeroExit(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{result: ports.CommandResult{ExitCode: 1, Stderr: "not permitted"}}
	r := system.NewCommandRebooter(runner)

	err := r.Reboot(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not permitted")
}

func TestReboot_RunnerError(t *testing.T) {
	t.Parallel()

	boom := errors.New("exec failed")
	runner := &fakeRunner{err: boom}
	r := system.NewCommandRebooter(runner)

	err := r.Reboot(context.Background())
	assert.ErrorIs(t, err, boom)
}
