// Package clize resolves command-line argument lists against declarative
// parameter descriptions.
//
// Given a list of parameter descriptors (names, defaults, types, aliases,
// documentation) and a raw argv, it deterministically maps tokens onto
// positional and keyword values or fails with a user-presentable
// diagnostic that carries its own usage synopsis. Around the engine sit a
// help renderer and a subcommand dispatcher; the process boundary (Run,
// RunGroup) wires them to os.Args, the standard streams and exit codes.
//
// The engine never inspects callables: signature extraction is the
// caller's job, and invocation is an optional one-line forwarding hook.
package clize
