package magick

import "context"

// Tool is a fluent wrapper around a Command for one verb invocation. Option
// calls chain; the first dispatch failure (unknown name, or "format") is
// latched and reported by Run, and no tokens from the failing call are
// appended.
//
// Every option name goes through the same whitelist lookup, and a name
// outside the whitelist is a hard error rather than a silent drop.
//
//	out, err := magick.NewTool("mogrify", runner).
//		Option("resize", "200x200").
//		Option("strip").
//		Args("photo.jpg").
//		Run(ctx)
type Tool struct {
	cmd    *Command
	runner *Runner
	err    error
}

// NewTool creates a Tool for the given verb, executed through runner.
func NewTool(verb string, runner *Runner, initialArgs ...string) *Tool {
	return &Tool{
		cmd:    NewCommand(verb, initialArgs...),
		runner: runner,
	}
}

// Option appends a whitelisted option flag and optional grouped value. On a
// dispatch error the Tool records it and ignores all further calls.
func (t *Tool) Option(name string, values ...string) *Tool {
	if t.err != nil {
		return t
	}
	t.err = t.cmd.AddOption(name, values...)
	return t
}

// Args appends raw tokens with no whitelist validation.
func (t *Tool) Args(tokens ...string) *Tool {
	if t.err != nil {
		return t
	}
	for _, token := range tokens {
		t.cmd.Push(token)
	}
	return t
}

// Err returns the latched dispatch error, if any.
func (t *Tool) Err() error { return t.err }

// Command exposes the underlying Command, mainly for inspection in tests.
func (t *Tool) Command() *Command { return t.cmd }

// Run executes the accumulated command. A latched dispatch error is returned
// without executing anything.
func (t *Tool) Run(ctx context.Context, opts ...RunOption) (string, error) {
	if t.err != nil {
		return "", t.err
	}
	return t.runner.Run(ctx, t.cmd, opts...)
}
