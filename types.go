package clize

import (
	"github.com/Rosuav/clize/core"
	"github.com/Rosuav/clize/model"
)

// Option is one named or positional parameter of a command.
//
// Options are normally produced by the builder from descriptors; construct
// them directly (or via NewFlag / NewActionFlag) only for Cli.Extra.
type Option = model.Option

// Command is the complete, immutable description of one command.
type Command = model.Command

// SuperCommand describes a group of named subcommands.
type SuperCommand = model.SuperCommand

// Type is a named string-to-value coercion.
type Type = model.Type

// Action is the effect of an action option such as showing help.
type Action = model.Action

// Descriptor describes one declared parameter of the target call.
type Descriptor = core.Descriptor

// Annotation is a declarative marker on a descriptor: Alias, Flag or
// Coercion.
type Annotation = core.Annotation

// Alias declares an alternate spelling for a parameter.
type Alias = core.Alias

// Flag is a behavior marker for a parameter.
type Flag = core.Flag

// Coercion declares an explicit value type for a parameter.
type Coercion = core.Coercion

// Cli is one command engine: descriptors plus build/parse configuration.
type Cli = core.Cli

// Group routes an invocation to one of several named commands.
type Group = core.Group

// Result is the outcome of a successful parse.
type Result = core.Result

// Positional forces a defaulted parameter to stay positional.
const Positional = core.Positional

// Built-in value types.
var (
	String = model.String
	Int    = model.Int
	Bool   = model.Bool
	Float  = model.Float
)
