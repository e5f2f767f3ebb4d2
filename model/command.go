package model

import "strings"

// Usager is anything that can render the one-line usage synopsis. Both
// Command and SuperCommand implement it; argument errors hold one so they
// can self-render.
type Usager interface {
	Usage(prog string) string
}

// Command is the complete description of a single command: positional
// options in declaration order and named options, with the help flag and
// any extra flags appended last. It is an immutable value, rebuilt from the
// descriptors on every invocation.
type Command struct {
	Description []string
	Footnotes   []string
	Posargs     []Option
	Options     []Option

	// Order lists the data-bearing parameter names in their original
	// declaration order. The parser uses it to merge keyword values back
	// into the positional result so the caller can reconstruct the exact
	// call signature.
	Order []string
}

// Usage renders the usage-only synopsis line.
func (c Command) Usage(prog string) string {
	var b strings.Builder
	b.WriteString("Usage: ")
	b.WriteString(prog)
	if len(c.Options) > 0 {
		b.WriteString(" [OPTIONS]")
	}
	for _, arg := range c.Posargs {
		b.WriteString(" ")
		b.WriteString(arg.ArgName())
	}
	return b.String()
}

// SuperCommand describes a group of named subcommands. The subcommand list
// is display-and-dispatch metadata only: one required positional Option per
// subcommand name.
type SuperCommand struct {
	Description []string
	Footnotes   []string
	Subcommands []Option
}

// Usage renders the usage-only synopsis line for the group.
func (sc SuperCommand) Usage(prog string) string {
	return "Usage: " + prog + " command [OPTIONS]"
}
