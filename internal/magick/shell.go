package magick

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"
)

// ExecResult is the raw outcome of one shell execution: the exit status and
// the combined stdout/stderr text. It is produced once per run, consumed
// immediately by the classifier, and discarded.
type ExecResult struct {
	ExitStatus int
	Output     string
}

// Shell is the process-execution collaborator. Implementations must run the
// command string synchronously, multiplex stdout and stderr into one stream
// (the classifier matches substrings against the combined text), and report a
// non-zero exit status on timeout or startup failure.
//
// The interface exists for dependency injection: tests substitute a mock so
// classification logic can be exercised without external binaries.
type Shell interface {
	Exec(ctx context.Context, command string, timeout time.Duration) ExecResult
}

// SystemShell executes commands through /bin/sh -c.
type SystemShell struct{}

// Exec runs the command, capturing stdout and stderr into a single buffer.
// A timeout of zero means no timeout. Timeouts and unstartable commands are
// reported as exit status -1 with whatever output was captured; the caller's
// classifier treats any non-zero status uniformly.
func (SystemShell) Exec(ctx context.Context, command string, timeout time.Duration) ExecResult {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "/bin/sh", "-c", command)

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	return ExecResult{
		ExitStatus: exitStatus(err),
		Output:     out.String(),
	}
}

// exitStatus extracts the exit status from a Run error. nil means 0; a
// non-ExitError failure (command not found, context deadline) maps to -1.
func exitStatus(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
