// Package model holds the frozen data shapes the rest of the library reads:
// options, commands, supercommands and value types. It has no parsing or
// rendering logic beyond the name formatting that the parser's diagnostics
// and the help output must share.
package model

import (
	"strings"

	"github.com/spf13/cast"
)

// Type is a named coercion from a raw command-line string to a typed value.
// The name is what appears in help output (`--count=INT`) and in type
// mismatch diagnostics.
type Type struct {
	Name    string
	Convert func(string) (any, error)
}

// Built-in types. String is the identity coercion and the fallback for
// parameters with no default and no explicit coercion.
var (
	String = Type{Name: "STR", Convert: func(s string) (any, error) { return s, nil }}
	Int    = Type{Name: "INT", Convert: func(s string) (any, error) { return cast.ToIntE(s) }}
	Bool   = Type{Name: "BOOL", Convert: func(s string) (any, error) { return cast.ToBoolE(s) }}
	Float  = Type{Name: "FLOAT", Convert: func(s string) (any, error) { return cast.ToFloat64E(s) }}
)

// TypeOf returns the built-in Type matching the dynamic type of a default
// value. Unrecognized kinds fall back to String.
func TypeOf(v any) Type {
	switch v.(type) {
	case int:
		return Int
	case bool:
		return Bool
	case float64:
		return Float
	default:
		return String
	}
}

// Action is the effect of an action option (such as showing help). Invoking
// one short-circuits parsing; no value is bound.
type Action func(prog string, cmd Command)

// Option is one named or positional parameter of a command.
type Option struct {
	// Source binds the resolved value back to the target call. Empty for
	// action options.
	Source string

	// Action, when non-nil, marks this as an action option: matching it
	// stops the parse instead of producing a value.
	Action Action

	// Names holds the acceptable spellings; the first is canonical.
	// Single-character spellings become short flags, longer ones long
	// flags. For positional options all names are display-only.
	Names []string

	Default any
	Type    Type
	Help    string

	Optional   bool
	Positional bool

	// TakesArgument is how many following tokens the option consumes;
	// zero for boolean flags.
	TakesArgument int

	// Catchall marks the trailing positional that absorbs all remaining
	// free tokens as one space-joined value.
	Catchall bool
}

// IsAction reports whether the option triggers an action rather than
// binding a value.
func (o Option) IsAction() bool { return o.Action != nil }

// HasName reports whether name is one of the option's spellings.
func (o Option) HasName(name string) bool {
	for _, n := range o.Names {
		if n == name {
			return true
		}
	}
	return false
}

// ArgName renders the option for the usage line: the canonical name,
// suffixed with "..." for catch-alls and bracketed when optional.
func (o Option) ArgName() string {
	name := o.Names[0]
	if o.Catchall {
		name += "..."
	}
	if o.Optional {
		return "[" + name + "]"
	}
	return name
}

// DisplayNames renders the option's name cell for help listings: shorts as
// -x, longs as --xyz, joined with commas, with an =TYPE suffix unless the
// type goes without saying (BOOL for named options, STR for positionals)
// and a trailing "..." for positional catch-alls.
func (o Option) DisplayNames() string {
	var shorts, longs []string

	for _, name := range o.Names {
		switch {
		case o.Positional:
			longs = append(longs, name)
		case len(name) == 1:
			shorts = append(shorts, "-"+name)
		default:
			longs = append(longs, "--"+name)
		}
	}

	all := append(shorts, longs...)
	if (!o.Positional && o.Type.Name != Bool.Name) ||
		(o.Positional && o.Type.Name != String.Name) {
		all[len(all)-1] += "=" + o.Type.Name
	}
	if o.Positional && o.Catchall {
		all[len(all)-1] += "..."
	}

	return strings.Join(all, ", ")
}

// NewFlag builds an optional named boolean flag bound to source.
func NewFlag(source string, names []string, help string) Option {
	return Option{
		Source:   source,
		Names:    names,
		Default:  false,
		Type:     Bool,
		Help:     help,
		Optional: true,
	}
}

// NewActionFlag builds a named flag whose presence triggers action and
// stops the parse.
func NewActionFlag(action Action, names []string, help string) Option {
	return Option{
		Action:   action,
		Names:    names,
		Default:  false,
		Type:     Bool,
		Help:     help,
		Optional: true,
	}
}
