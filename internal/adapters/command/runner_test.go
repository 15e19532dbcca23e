package command

import (
	"context"
	"testing"
)

func TestRealRunner_Success(t *testing.T) {
	runner := NewRealRunner()

	result, err := runner.Run(context.Background(), "echo", "hello")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !result.Success() {
		t.Error("Run() should succeed for 'echo hello'")
	}
	if result.Stdout != "hello\n" {
		t.Errorf("Stdout = %q, want %q", result.Stdout, "hello\n")
	}
}

func TestRealRunner_NonZeroExit(t *testing.T) {
	runner := NewRealRunner()

	result, err := runner.Run(context.Background(), "false")
	if err != nil {
		t.Fatalf("Run() error = %v (non-zero exit should be a result, not an error)", err)
	}
	if result.Success() {
		t.Error("Run() should report failure for 'false'")
	}
}

func TestRealRunner_CapturesStderr(t *testing.T) {
	runner := NewRealRunner()

	result, err := runner.Run(context.Background(), "sh", "-c", "echo oops >&2; exit 3")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", result.ExitCode)
	}
	if result.Stderr != "oops\n" {
		t.Errorf("Stderr = %q, want %q", result.Stderr, "oops\n")
	}
}

func TestRealRunner_CommandNotFound(t *testing.T) {
	runner := NewRealRunner()

	if _, err := runner.Run(context.Background(), "jetup-no-such-command"); err == nil {
		t.Error("Run() should return an error for a missing command")
	}
}

func TestRealRunner_ContextCancelled(t *testing.T) {
	runner := NewRealRunner()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := runner.Run(ctx, "sleep", "10"); err == nil {
		t.Error("Run() should return an error for a cancelled context")
	}
}
