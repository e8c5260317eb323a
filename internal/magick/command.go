package magick

import "strings"

// Command accumulates an ordered token list for one tool invocation and
// renders it into a single command line.
//
// Tokens are trimmed of surrounding whitespace when inserted and are never
// reordered, deduplicated, or mutated afterwards, so rendering is
// deterministic: the same builder state always renders to the same string.
// A Command is built for one execution and discarded; it is not safe for
// concurrent use.
type Command struct {
	verb   string
	prefix string
	tokens []string
}

// NewCommand creates a Command for the given tool verb (e.g. "identify",
// "mogrify"). Each initial argument is pushed through the same trim-and-append
// path as later Push calls; supplying none is fine.
func NewCommand(verb string, initialArgs ...string) *Command {
	c := &Command{verb: strings.TrimSpace(verb)}
	for _, arg := range initialArgs {
		c.Push(arg)
	}
	return c
}

// Verb returns the tool verb this command invokes.
func (c *Command) Verb() string { return c.verb }

// SetPrefix sets an optional processor prefix rendered before the verb,
// typically "gm" when driving GraphicsMagick's combined binary. An empty
// prefix is omitted from the rendered command entirely.
func (c *Command) SetPrefix(prefix string) {
	c.prefix = strings.TrimSpace(prefix)
}

// Push appends a single token verbatim after trimming surrounding whitespace.
// No whitelist validation is applied; this is the raw escape hatch for file
// paths and already-formed arguments.
func (c *Command) Push(token string) {
	c.tokens = append(c.tokens, strings.TrimSpace(token))
}

// AddOption appends a recognized option flag and, when values are supplied,
// one value token.
//
// The name is normalized first (lowercased, underscores and spaces become
// hyphens). "format" is always rejected with ErrFormatOption. A name outside
// the recognized option whitelist returns an *UnknownOptionError and leaves
// the token list unchanged.
//
// Values are space-joined and wrapped in one pair of double quotes regardless
// of their content, preserving ImageMagick's `-option "v1 v2"` grouping.
// Callers are responsible for pre-escaping values that need it; no further
// escaping is applied. That is a documented contract, not an oversight.
func (c *Command) AddOption(name string, values ...string) error {
	name = normalizeOptionName(name)
	if name == "format" {
		return ErrFormatOption
	}
	if !recognizedOptions.contains(name) {
		return &UnknownOptionError{Name: name}
	}

	c.Push("-" + name)
	if len(values) > 0 {
		c.Push(`"` + strings.Join(values, " ") + `"`)
	}
	return nil
}

// Len returns the number of accumulated tokens.
func (c *Command) Len() int { return len(c.tokens) }

// Render produces the executable command line:
//
//	<prefix> <verb> <token> <token> ...
//
// The prefix is omitted (without a leading space) when unset, and the whole
// result is trimmed. Render has no side effects; calling it any number of
// times on an unmodified Command yields byte-identical strings.
func (c *Command) Render() string {
	parts := make([]string, 0, len(c.tokens)+2)
	if c.prefix != "" {
		parts = append(parts, c.prefix)
	}
	parts = append(parts, c.verb)
	parts = append(parts, c.tokens...)
	return strings.TrimSpace(strings.Join(parts, " "))
}
