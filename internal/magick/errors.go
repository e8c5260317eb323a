package magick

import (
	"errors"
	"fmt"
)

// ErrFormatOption is returned when "format" is passed to Command.AddOption or
// Tool.Option. Format changes rename the underlying file, which a single
// rendered command cannot express; use Image.SetFormat instead.
var ErrFormatOption = errors.New("the format option must be applied through Image.SetFormat, not the command builder")

// UnknownOptionError reports an option name that is not in the recognized
// option whitelist. The builder's token list is left untouched when this is
// returned.
type UnknownOptionError struct {
	// Name is the normalized option name that failed the lookup.
	Name string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown option %q", e.Name)
}

// InvalidImageError indicates the external tool reported that the input could
// not be decoded or did not produce an image. This is a caller data problem,
// distinct from tool misconfiguration, and is matched on the tool's own
// diagnostic text (see invalidImageMarkers).
type InvalidImageError struct {
	// Output is the combined stdout/stderr captured from the failed run.
	Output string
}

func (e *InvalidImageError) Error() string {
	return fmt.Sprintf("source is not a valid image: %s", e.Output)
}

// CommandError indicates a non-zero exit that was not classified as an invalid
// image: missing binary, bad flag combination, tool crash, or timeout. It
// carries everything an operator needs to reproduce the failure manually.
type CommandError struct {
	// Command is the rendered command line that was executed.
	Command string

	// ExitStatus is the exit status reported by the shell.
	ExitStatus int

	// Output is the combined stdout/stderr captured from the run.
	Output string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %q failed with exit status %d: %s", e.Command, e.ExitStatus, e.Output)
}
