package clize

import "github.com/Rosuav/clize/model"

// NewFlag builds an optional named boolean flag bound to source, for use in
// Cli.Extra.
//
// Usage:
//
//	cli := &clize.Cli{
//		Name: "greet",
//		Args: []clize.Descriptor{{Name: "name"}},
//		Extra: []clize.Option{
//			clize.NewFlag("loud", []string{"loud", "L"}, "Shout the greeting"),
//		},
//	}
var NewFlag = model.NewFlag

// NewActionFlag builds a named flag whose presence runs action and stops
// the parse, the way the built-in help flag does. The target call is not
// made; Result.Stopped reports what happened.
var NewActionFlag = model.NewActionFlag

// TypeOf returns the built-in Type matching a default value's dynamic
// type; unrecognized kinds fall back to String. The builder applies this
// to every default that has no explicit coercion.
var TypeOf = model.TypeOf
