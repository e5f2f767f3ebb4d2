package core

import (
	"strings"

	"github.com/Rosuav/clize/errors"
	"github.com/Rosuav/clize/internal/common"
	"github.com/Rosuav/clize/model"
)

// Result is the outcome of a successful parse. Args holds the resolved
// values in the original declaration order of the parameters, so the caller
// can forward them as the exact call the parameter list describes. Stopped
// reports that an action option (such as help) handled the invocation and
// no target call should be made.
type Result struct {
	Args    []any
	Stopped bool
}

// Parse resolves an argument list against the command built from the Cli's
// descriptors. args[0] is the program name; when args is empty the Cli's
// own name stands in. The command is rebuilt on every call.
func (c *Cli) Parse(args []string) (Result, error) {
	cmd, err := c.Command()
	if err != nil {
		return Result{}, err
	}
	prog := c.Name
	var tokens []string
	if len(args) > 0 {
		prog = args[0]
		tokens = args[1:]
	}
	return parse(cmd, prog, tokens)
}

// parse is the token state machine. One pass, left to right, with a skip
// counter for tokens already consumed as option arguments.
func parse(cmd model.Command, prog string, tokens []string) (Result, error) {
	ctx := errors.NewContext(prog, cmd)
	kwargs := make(map[string]any)
	var free []string

	skip := 0
	for i := 0; i < len(tokens); i++ {
		if skip > 0 {
			skip--
			continue
		}
		tok := tokens[i]

		switch {
		case tok == "--":
			// End of options; everything after is positional.
			free = append(free, tokens[i+1:]...)
			i = len(tokens)

		case strings.HasPrefix(tok, "--"):
			key, val, hasVal := strings.Cut(tok[2:], "=")
			opt, ok := findOption(cmd.Options, key)
			if !ok {
				return Result{}, errors.NewUnrecognizedOption(ctx, tok)
			}

			var value any
			if opt.TakesArgument > 0 || opt.Catchall {
				if !hasVal {
					n, joined, err := following(ctx, opt, tokens, i, key)
					if err != nil {
						return Result{}, err
					}
					skip, val = n, joined
				}
				value = val
			} else {
				value = true
			}

			stopped, err := setValue(ctx, kwargs, opt, key, prog, cmd, value)
			if err != nil {
				return Result{}, err
			}
			if stopped {
				return Result{Stopped: true}, nil
			}

		case strings.HasPrefix(tok, "-") && len(tok) > 1:
			chars := tok[1:]
			skipChars := 0
			for j := 0; j < len(chars); j++ {
				if skipChars > 0 {
					skipChars--
					continue
				}
				ch := string(chars[j])
				opt, ok := findOption(cmd.Options, ch)
				if !ok {
					return Result{}, errors.NewUnknownOption(ctx, ch)
				}

				var value any
				if opt.TakesArgument > 0 {
					if j+1 < len(chars) {
						attached := attachedValue(opt, chars[j+1:])
						skipChars = len(attached)
						value = attached
					} else {
						n, joined, err := following(ctx, opt, tokens, i, opt.Source)
						if err != nil {
							return Result{}, err
						}
						skip = n
						value = joined
					}
				} else {
					value = true
				}

				stopped, err := setValue(ctx, kwargs, opt, ch, prog, cmd, value)
				if err != nil {
					return Result{}, err
				}
				if stopped {
					return Result{Stopped: true}, nil
				}
			}

		default:
			free = append(free, tok)
		}
	}

	var vals []any
	for idx, opt := range cmd.Posargs {
		if idx >= len(free) {
			if !opt.Optional {
				return Result{}, errors.NewTooFewArguments(ctx)
			}
			// An empty catch-all contributes nothing at all.
			if !opt.Catchall {
				vals = append(vals, opt.Default)
			}
			continue
		}
		if opt.Catchall {
			vals = append(vals, strings.Join(free[idx:], " "))
			continue
		}
		converted, err := opt.Type.Convert(free[idx])
		if err != nil {
			return Result{}, errors.NewBadArgumentType(ctx, opt.Names[0], opt.Type.Name)
		}
		vals = append(vals, converted)
	}

	if len(free) > len(cmd.Posargs) &&
		(len(cmd.Posargs) == 0 || !cmd.Posargs[len(cmd.Posargs)-1].Catchall) {
		return Result{}, errors.NewTooManyArguments(ctx)
	}

	for _, opt := range cmd.Options {
		if opt.IsAction() {
			continue
		}
		if _, ok := kwargs[opt.Source]; !ok {
			kwargs[opt.Source] = opt.Default
		}
	}

	// Merge keyword values back at their declared positions so the output
	// reads as the original call signature.
	out := vals
	for i, name := range cmd.Order {
		v, ok := kwargs[name]
		if !ok {
			continue
		}
		if i >= len(out) {
			out = append(out, v)
		} else {
			out = common.InsertAt(out, i, v)
		}
	}

	return Result{Args: out}, nil
}

// attachedValue extracts an option value glued to its short flag inside one
// token. Integer options take only the leading digit run (with an optional
// leading minus) and leave the rest of the cluster to be scanned as further
// flags; every other type takes the whole remainder verbatim.
func attachedValue(opt model.Option, rest string) string {
	if opt.Type.Name != model.Int.Name {
		return rest
	}
	val := ""
	for k := 0; k < len(rest); k++ {
		if k == 0 && rest[k] == '-' {
			val += "-"
			continue
		}
		if rest[k] < '0' || rest[k] > '9' {
			break
		}
		val += string(rest[k])
	}
	return val
}

// following consumes the next TakesArgument tokens (or, for a catch-all
// option, everything left) as the option's value, space-joined.
func following(ctx errors.Context, opt model.Option, tokens []string, i int, key string) (int, string, error) {
	if i+opt.TakesArgument >= len(tokens) {
		return 0, "", errors.NewMissingOptionArgument(ctx, key, opt.TakesArgument)
	}
	var vals []string
	if opt.Catchall {
		vals = tokens[i+1:]
	} else {
		vals = tokens[i+1 : i+1+opt.TakesArgument]
	}
	return len(vals), strings.Join(vals, " "), nil
}

// setValue binds one resolved option value, or fires the option's action.
// key is the spelling without dashes; diagnostics re-dash it the way the
// user would type it.
func setValue(ctx errors.Context, kwargs map[string]any, opt model.Option, key, prog string, cmd model.Command, value any) (bool, error) {
	if opt.IsAction() {
		opt.Action(prog, cmd)
		return true, nil
	}

	switch v := value.(type) {
	case bool:
		kwargs[opt.Source] = v
	case string:
		converted, err := opt.Type.Convert(v)
		if err != nil {
			flag := "--" + key
			if len(key) == 1 {
				flag = "-" + key
			}
			return false, errors.NewBadArgumentType(ctx, flag, opt.Type.Name)
		}
		kwargs[opt.Source] = converted
	}
	return false, nil
}

func findOption(opts []model.Option, name string) (model.Option, bool) {
	for _, o := range opts {
		if o.HasName(name) {
			return o, true
		}
	}
	return model.Option{}, false
}
