package magick

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

// mockShell records executions and returns a canned result, so classification
// can be exercised without external binaries.
type mockShell struct {
	result   ExecResult
	commands []string
	timeouts []time.Duration
}

func (m *mockShell) Exec(_ context.Context, command string, timeout time.Duration) ExecResult {
	m.commands = append(m.commands, command)
	m.timeouts = append(m.timeouts, timeout)
	return m.result
}

// countingReleaser tracks Release calls.
type countingReleaser struct {
	calls int
}

func (c *countingReleaser) Release() error {
	c.calls++
	return nil
}

func TestRunner_Success(t *testing.T) {
	shell := &mockShell{result: ExecResult{ExitStatus: 0, Output: "hello\n"}}
	runner := NewRunner(Config{Shell: shell})

	out, err := runner.Run(context.Background(), NewCommand("identify", "photo.jpg"))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	// Output is returned verbatim, trailing newline included.
	if out != "hello\n" {
		t.Errorf("output: got %q, want %q", out, "hello\n")
	}
	if len(shell.commands) != 1 || shell.commands[0] != "identify photo.jpg" {
		t.Errorf("executed commands: got %v", shell.commands)
	}
}

func TestRunner_AppliesPrefixAndTimeout(t *testing.T) {
	shell := &mockShell{result: ExecResult{ExitStatus: 0}}
	runner := NewRunner(Config{Prefix: "gm", Timeout: 5 * time.Second, Shell: shell})

	if _, err := runner.Run(context.Background(), NewCommand("identify", "photo.jpg")); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if shell.commands[0] != "gm identify photo.jpg" {
		t.Errorf("command: got %q, want %q", shell.commands[0], "gm identify photo.jpg")
	}
	if shell.timeouts[0] != 5*time.Second {
		t.Errorf("timeout: got %v, want %v", shell.timeouts[0], 5*time.Second)
	}
}

func TestRunner_CommandPrefixWins(t *testing.T) {
	shell := &mockShell{result: ExecResult{ExitStatus: 0}}
	runner := NewRunner(Config{Prefix: "gm", Shell: shell})

	cmd := NewCommand("identify", "photo.jpg")
	cmd.SetPrefix("magick")
	if _, err := runner.Run(context.Background(), cmd); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if shell.commands[0] != "magick identify photo.jpg" {
		t.Errorf("command: got %q", shell.commands[0])
	}
}

func TestRunner_InvalidImage(t *testing.T) {
	tests := []struct {
		name   string
		output string
	}{
		{"no decode delegate", "mogrify: no decode delegate for this image format `' @ error/blob.c"},
		{"did not return an image", "identify: did not return an image"},
		{"case insensitive", "mogrify: No Decode Delegate for this image format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shell := &mockShell{result: ExecResult{ExitStatus: 1, Output: tt.output}}
			runner := NewRunner(Config{Shell: shell})

			_, err := runner.Run(context.Background(), NewCommand("mogrify", "junk.bin"))
			var invalid *InvalidImageError
			if !errors.As(err, &invalid) {
				t.Fatalf("got %v, want *InvalidImageError", err)
			}
			if invalid.Output != tt.output {
				t.Errorf("diagnostic: got %q, want %q", invalid.Output, tt.output)
			}
		})
	}
}

func TestRunner_CommandError(t *testing.T) {
	shell := &mockShell{result: ExecResult{ExitStatus: 1, Output: "unrecognized option '-bogus'"}}
	runner := NewRunner(Config{Shell: shell})

	cmd := NewCommand("mogrify")
	cmd.Push("-bogus")
	cmd.Push("photo.jpg")

	_, err := runner.Run(context.Background(), cmd)
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("got %v, want *CommandError", err)
	}
	if cmdErr.ExitStatus != 1 {
		t.Errorf("exit status: got %d, want 1", cmdErr.ExitStatus)
	}
	if cmdErr.Command != "mogrify -bogus photo.jpg" {
		t.Errorf("command: got %q", cmdErr.Command)
	}

	// The message carries the command, exit status, and raw output so the
	// failure can be reproduced manually.
	msg := cmdErr.Error()
	for _, want := range []string{"mogrify -bogus photo.jpg", "1", "unrecognized option"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message %q missing %q", msg, want)
		}
	}
}

func TestRunner_ReleasesOwnedResourceOnFailure(t *testing.T) {
	tests := []struct {
		name   string
		output string
	}{
		{"invalid image", "no decode delegate for this image format"},
		{"generic failure", "something exploded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shell := &mockShell{result: ExecResult{ExitStatus: 1, Output: tt.output}}
			runner := NewRunner(Config{Shell: shell})
			owned := &countingReleaser{}

			_, err := runner.Run(context.Background(), NewCommand("mogrify", "x.jpg"), WithCleanup(owned))
			if err == nil {
				t.Fatal("expected an error")
			}
			if owned.calls != 1 {
				t.Errorf("Release calls: got %d, want 1", owned.calls)
			}
		})
	}
}

func TestRunner_KeepsOwnedResourceOnSuccess(t *testing.T) {
	shell := &mockShell{result: ExecResult{ExitStatus: 0, Output: "ok"}}
	runner := NewRunner(Config{Shell: shell})
	owned := &countingReleaser{}

	if _, err := runner.Run(context.Background(), NewCommand("mogrify", "x.jpg"), WithCleanup(owned)); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if owned.calls != 0 {
		t.Errorf("Release calls on success: got %d, want 0", owned.calls)
	}
}

func TestRunner_NilCleanupIgnored(t *testing.T) {
	shell := &mockShell{result: ExecResult{ExitStatus: 1, Output: "boom"}}
	runner := NewRunner(Config{Shell: shell})

	_, err := runner.Run(context.Background(), NewCommand("mogrify", "x.jpg"), WithCleanup(nil))
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("got %v, want *CommandError", err)
	}
}

func TestSystemShell_CombinedOutput(t *testing.T) {
	shell := SystemShell{}

	res := shell.Exec(context.Background(), "echo out; echo err 1>&2", 0)
	if res.ExitStatus != 0 {
		t.Fatalf("exit status: got %d, want 0", res.ExitStatus)
	}
	// stdout and stderr are multiplexed into one stream.
	if !strings.Contains(res.Output, "out") || !strings.Contains(res.Output, "err") {
		t.Errorf("combined output missing a stream: %q", res.Output)
	}
}

func TestSystemShell_NonZeroExit(t *testing.T) {
	shell := SystemShell{}

	res := shell.Exec(context.Background(), "echo failing; exit 3", 0)
	if res.ExitStatus != 3 {
		t.Errorf("exit status: got %d, want 3", res.ExitStatus)
	}
	if !strings.Contains(res.Output, "failing") {
		t.Errorf("output not captured: %q", res.Output)
	}
}

func TestSystemShell_Timeout(t *testing.T) {
	shell := SystemShell{}

	res := shell.Exec(context.Background(), "sleep 5", 50*time.Millisecond)
	// A timeout must surface as a non-zero status; it is classified through
	// the same branches as any other failure.
	if res.ExitStatus == 0 {
		t.Error("timed-out command reported exit status 0")
	}
}
