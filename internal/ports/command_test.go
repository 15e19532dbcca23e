package ports

import "testing"

func TestCommandResult_Success(t *testing.T) {
	result := CommandResult{ExitCode: 0, Stdout: "output"}
	if !result.Success() {
		t.Error("Success() should be true for exit code 0")
	}

	result = CommandResult{ExitCode: 100, Stderr: "error"}
	if result.Success() {
		t.Error("Success() should be false for non-zero exit code")
	}
}
