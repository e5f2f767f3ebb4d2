// Package errors defines the user-input error taxonomy of the argument
// engine. Every argument error carries the command it was raised against and
// the program name, so its rendered form can include the usage synopsis
// without help from the caller.
package errors

import (
	"fmt"

	"github.com/Rosuav/clize/model"
)

// ArgumentError is implemented by every user-facing argument error. The
// process boundary uses it to pick exit code 2 over 1.
type ArgumentError interface {
	error
	argumentError()
}

// Context is the shared payload of all argument errors: which command was
// being parsed and under what program name.
type Context struct {
	Prog string
	Cmd  model.Usager
}

func (Context) argumentError() {}

// render glues a message to the usage synopsis; an empty message renders as
// the bare synopsis.
func (c Context) render(msg string) string {
	if msg == "" {
		return c.Cmd.Usage(c.Prog)
	}
	return msg + "\n" + c.Cmd.Usage(c.Prog)
}

// UnrecognizedOptionError indicates a long option token that matches no
// declared name. Token is the full token as typed, including any =value.
type UnrecognizedOptionError struct {
	Context
	Token string
}

func (e UnrecognizedOptionError) Error() string {
	return e.render(fmt.Sprintf("Unrecognized option %s", e.Token))
}

// UnknownOptionError indicates a short option character that matches no
// declared name.
type UnknownOptionError struct {
	Context
	Char string
}

func (e UnknownOptionError) Error() string {
	return e.render(fmt.Sprintf("Unknown option -%s.", e.Char))
}

// MissingOptionArgumentError indicates an option whose declared argument
// count could not be satisfied from the remaining tokens.
type MissingOptionArgumentError struct {
	Context
	Key   string
	Count int
}

func (e MissingOptionArgumentError) Error() string {
	if e.Count == 1 {
		return e.render(fmt.Sprintf("--%s needs an argument.", e.Key))
	}
	return e.render(fmt.Sprintf("--%s needs %d arguments.", e.Key, e.Count))
}

// BadArgumentTypeError indicates a value the option's coercion rejected.
// Flag is the spelling the user invoked (-c, --count, or a bare positional
// name).
type BadArgumentTypeError struct {
	Context
	Flag string
	Type string
}

func (e BadArgumentTypeError) Error() string {
	return e.render(fmt.Sprintf("%s needs an argument of type %s", e.Flag, e.Type))
}

// TooFewArgumentsError indicates a required positional was not supplied.
type TooFewArgumentsError struct{ Context }

func (e TooFewArgumentsError) Error() string {
	return e.render("Not enough arguments.")
}

// TooManyArgumentsError indicates leftover free tokens on a command with no
// catch-all positional.
type TooManyArgumentsError struct{ Context }

func (e TooManyArgumentsError) Error() string {
	return e.render("Too many arguments.")
}

// UnknownSubcommandError indicates the first free token of a group
// invocation named no known subcommand.
type UnknownSubcommandError struct {
	Context
	Name string
}

func (e UnknownSubcommandError) Error() string {
	return e.render(fmt.Sprintf("Unknown command '%s'", e.Name))
}

// NoCommandSpecifiedError indicates a group invocation that carried
// arguments but never named a subcommand.
type NoCommandSpecifiedError struct{ Context }

func (e NoCommandSpecifiedError) Error() string {
	return e.render("No command specified.")
}

// UsageError is the contentless argument error: a group invoked with no
// arguments at all. It renders as the bare usage synopsis.
type UsageError struct{ Context }

func (e UsageError) Error() string {
	return e.render("")
}

// SpecificationError is not a user-input error: the descriptor list itself
// is contradictory. It is raised eagerly, before any token is read, and
// carries no usage text.
type SpecificationError struct{ Msg string }

func (e SpecificationError) Error() string { return e.Msg }

// Helper constructors
func NewContext(prog string, cmd model.Usager) Context { return Context{Prog: prog, Cmd: cmd} }

func NewUnrecognizedOption(ctx Context, token string) error {
	return UnrecognizedOptionError{Context: ctx, Token: token}
}

func NewUnknownOption(ctx Context, char string) error {
	return UnknownOptionError{Context: ctx, Char: char}
}

func NewMissingOptionArgument(ctx Context, key string, count int) error {
	return MissingOptionArgumentError{Context: ctx, Key: key, Count: count}
}

func NewBadArgumentType(ctx Context, flag, typeName string) error {
	return BadArgumentTypeError{Context: ctx, Flag: flag, Type: typeName}
}

func NewTooFewArguments(ctx Context) error  { return TooFewArgumentsError{Context: ctx} }
func NewTooManyArguments(ctx Context) error { return TooManyArgumentsError{Context: ctx} }

func NewUnknownSubcommand(ctx Context, name string) error {
	return UnknownSubcommandError{Context: ctx, Name: name}
}

func NewNoCommandSpecified(ctx Context) error { return NoCommandSpecifiedError{Context: ctx} }
func NewUsage(ctx Context) error              { return UsageError{Context: ctx} }

func NewSpecification(format string, args ...any) error {
	return SpecificationError{Msg: fmt.Sprintf(format, args...)}
}
