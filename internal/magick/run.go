package magick

import (
	"context"
	"strings"
	"time"
)

// invalidImageMarkers are the diagnostic substrings (matched case-insensitively
// against the combined output) that identify "the input is not a decodable
// image" as opposed to a tool or usage failure.
//
// These are a versioned contract with ImageMagick's message wording; if a
// future release rewords its delegate errors, this table is the only place to
// update.
var invalidImageMarkers = []string{
	"no decode delegate",
	"did not return an image",
}

// Config carries the settings a Runner is constructed with. Both fields are
// read at execution time and never mutated by the Runner; construct a new
// Runner to change them.
type Config struct {
	// Prefix is an optional processor prefix applied to commands that do not
	// set their own (e.g. "gm" for GraphicsMagick). Default empty.
	Prefix string

	// Timeout bounds each execution. Zero means no timeout.
	Timeout time.Duration

	// Shell is the process-execution collaborator. Defaults to SystemShell.
	Shell Shell
}

// Runner executes rendered Commands and classifies their outcomes.
//
// Execution is fully synchronous: Run blocks until the external process exits
// or the configured timeout elapses. A Runner is safe for concurrent use as
// long as callers do not share Command or TempFile instances across
// invocations; the Runner itself holds no per-run state.
type Runner struct {
	prefix  string
	timeout time.Duration
	shell   Shell
}

// NewRunner creates a Runner with the given configuration.
func NewRunner(cfg Config) *Runner {
	if cfg.Shell == nil {
		cfg.Shell = SystemShell{}
	}
	return &Runner{
		prefix:  strings.TrimSpace(cfg.Prefix),
		timeout: cfg.Timeout,
		shell:   cfg.Shell,
	}
}

// Releaser is anything owning a temporary artifact that must not outlive a
// failed operation. Release must be safe to call more than once.
type Releaser interface {
	Release() error
}

// RunOption adjusts a single Run invocation.
type RunOption func(*runSettings)

type runSettings struct {
	owned []Releaser
}

// WithCleanup attaches a resource to the invocation. If the command exits
// non-zero, the resource is released before the error is returned, so a
// failure never leaks the caller's temporary artifact. Resources are not
// touched on success.
func WithCleanup(r Releaser) RunOption {
	return func(s *runSettings) {
		if r != nil {
			s.owned = append(s.owned, r)
		}
	}
}

// Run renders the command, applies the Runner's prefix when the command has
// none of its own, executes it, and classifies the result.
//
// On exit status zero the captured output is returned verbatim. On a non-zero
// status any attached resources are released first, then the combined output
// is matched against invalidImageMarkers: a hit returns *InvalidImageError,
// anything else (including a timeout) returns *CommandError with the rendered
// command, exit status, and full output.
func (r *Runner) Run(ctx context.Context, cmd *Command, opts ...RunOption) (string, error) {
	var settings runSettings
	for _, opt := range opts {
		opt(&settings)
	}

	if cmd.prefix == "" {
		cmd.SetPrefix(r.prefix)
	}
	rendered := cmd.Render()

	res := r.shell.Exec(ctx, rendered, r.timeout)
	if res.ExitStatus == 0 {
		return res.Output, nil
	}

	for _, owned := range settings.owned {
		owned.Release()
	}

	if containsInvalidImageMarker(res.Output) {
		return "", &InvalidImageError{Output: res.Output}
	}
	return "", &CommandError{
		Command:    rendered,
		ExitStatus: res.ExitStatus,
		Output:     res.Output,
	}
}

func containsInvalidImageMarker(output string) bool {
	lowered := strings.ToLower(output)
	for _, marker := range invalidImageMarkers {
		if strings.Contains(lowered, marker) {
			return true
		}
	}
	return false
}
