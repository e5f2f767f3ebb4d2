// Package core turns parameter descriptions into commands and resolves raw
// argument lists against them. The builder and parser live here; rendering
// is display's job and the data shapes are model's.
package core

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/Rosuav/clize/display"
	"github.com/Rosuav/clize/errors"
	"github.com/Rosuav/clize/internal/common"
	"github.com/Rosuav/clize/model"
)

// DefaultHelpNames are the spellings that trigger the help action unless a
// Cli overrides them.
var DefaultHelpNames = []string{"help", "h"}

// Annotation is one declarative marker attached to a parameter descriptor.
// It is a closed variant: an Alias spelling, a behavior Flag, or a Coercion.
type Annotation interface {
	annotation()
}

// Alias declares an alternate spelling for a parameter.
type Alias string

func (Alias) annotation() {}

// Flag is a behavior marker for a parameter.
type Flag int

func (Flag) annotation() {}

// Positional forces a defaulted parameter to be consumed from free tokens
// instead of becoming a named option.
const Positional Flag = 1

// Coercion declares the string-to-value conversion for a parameter,
// overriding the type inferred from its default.
type Coercion model.Type

func (Coercion) annotation() {}

// Descriptor describes one declared parameter of the target call. It is the
// engine's input contract: whatever reflection or code generation the host
// application uses, it must hand the engine a list of these.
type Descriptor struct {
	Name        string
	HasDefault  bool
	Default     any
	Annotations []Annotation
	Help        string

	// Rest marks the variadic catch-all parameter. At most one, and it
	// must be the last descriptor.
	Rest bool
}

// Cli is one command engine: a parameter description plus the configuration
// that shapes how it is built and parsed. The zero value of every field is
// usable; a nil HelpNames means DefaultHelpNames, an empty one disables the
// help flag.
type Cli struct {
	// Name identifies the command inside a Group and is the fallback
	// program name when parsing an empty argument list.
	Name string

	// Doc is free-form documentation text. Blank-line-separated
	// paragraphs form the description; a paragraph of the form
	// "param: text" documents that parameter; paragraphs after the first
	// such become footnotes.
	Doc string

	Args []Descriptor

	// Alias adds extra spellings per parameter name.
	Alias map[string][]string

	// ForcePositional lists defaulted parameters to treat as positional.
	ForcePositional []string

	// Coerce overrides the value type per parameter name; a Coercion
	// annotation on the descriptor itself wins over this.
	Coerce map[string]model.Type

	// RequireExcess makes the catch-all parameter mandatory unless a
	// preceding positional is already optional.
	RequireExcess bool

	HelpNames []string

	// Extra options are appended after the help flag, typically built
	// with model.NewFlag or model.NewActionFlag.
	Extra []model.Option

	// Width and Output configure the help action; they default to the
	// renderer's width and os.Stdout.
	Width  int
	Output io.Writer

	// Invoke receives the resolved argument list when a Run completes
	// without an action stopping it. Optional; callers that only want
	// the values use Parse directly.
	Invoke func(args []any) error
}

var argDesc = regexp.MustCompile(`(?s)^(\w+): (.*)$`)

// readDoc splits doc text into description paragraphs, per-parameter help
// and footnotes.
func readDoc(doc string) (description []string, optsHelp map[string]string, footnotes []string) {
	optsHelp = make(map[string]string)
	for _, p := range common.Paragraphs(doc) {
		if m := argDesc.FindStringSubmatch(p); m != nil {
			optsHelp[m[1]] = m[2]
		} else if len(optsHelp) > 0 {
			footnotes = append(footnotes, p)
		} else {
			description = append(description, p)
		}
	}
	return description, optsHelp, footnotes
}

// readAnnotations validates and splits a descriptor's annotation list.
func readAnnotations(d Descriptor) (aliases []string, flags []Flag, coerce *model.Type, err error) {
	for i, a := range d.Annotations {
		switch v := a.(type) {
		case Alias:
			if strings.ContainsAny(string(v), " \t\n") {
				return nil, nil, nil, errors.NewSpecification(
					"Aliases may not contain spaces. Put argument descriptions in the doc text.")
			}
			aliases = append(aliases, string(v))
		case Flag:
			if v != Positional {
				return nil, nil, nil, errors.NewSpecification(
					"Don't know how to interpret flag %d at index %d of annotation on %s", v, i, d.Name)
			}
			flags = append(flags, v)
		case Coercion:
			if coerce != nil {
				return nil, nil, nil, errors.NewSpecification(
					"Coercion function already encountered before index %d of annotation on %s", i, d.Name)
			}
			t := model.Type(v)
			coerce = &t
		default:
			return nil, nil, nil, errors.NewSpecification(
				"Don't know how to interpret index %d of annotation on %s: %T", i, d.Name, a)
		}
	}
	return aliases, flags, coerce, nil
}

// Command builds the immutable command description from the descriptors.
// It is called afresh on every Parse, so no state leaks between
// invocations. Contradictory descriptor lists surface here as
// SpecificationError, before any token is read.
func (c *Cli) Command() (model.Command, error) {
	description, optsHelp, footnotes := readDoc(c.Doc)

	var posargs, options []model.Option
	var order []string
	var rest *Descriptor

	for i, d := range c.Args {
		if d.Rest {
			if i != len(c.Args)-1 {
				return model.Command{}, errors.NewSpecification(
					"catch-all parameter %s must be declared last", d.Name)
			}
			if d.HasDefault {
				return model.Command{}, errors.NewSpecification(
					"catch-all parameter %s may not have a default", d.Name)
			}
			restCopy := d
			rest = &restCopy
			continue
		}

		aliases, flags, coerce, err := readAnnotations(d)
		if err != nil {
			return model.Command{}, err
		}
		if coerce == nil {
			if t, ok := c.Coerce[d.Name]; ok {
				coerce = &t
			}
		}

		optional := d.HasDefault
		var typ model.Type
		var def any
		if d.HasDefault {
			def = d.Default
			typ = model.TypeOf(def)
		} else {
			typ = model.String
		}
		if coerce != nil {
			typ = *coerce
		}

		positional := !optional
		if containsString(c.ForcePositional, d.Name) || containsFlag(flags, Positional) {
			positional = true
		}
		// A positional declared after optional named options cannot be
		// demanded without breaking call-order reconstruction; it turns
		// optional too.
		if positional && len(options) > 0 && options[len(options)-1].Optional {
			optional = true
		}

		names := []string{strings.ReplaceAll(d.Name, "_", "-")}
		names = append(names, c.Alias[d.Name]...)
		names = append(names, aliases...)

		help := d.Help
		if help == "" {
			help = optsHelp[d.Name]
		}

		takes := 0
		if optional && typ.Name != model.Bool.Name {
			takes = 1
		}

		opt := model.Option{
			Source:        d.Name,
			Names:         names,
			Default:       def,
			Type:          typ,
			Help:          help,
			Optional:      optional,
			Positional:    positional,
			TakesArgument: takes,
		}
		if positional {
			posargs = append(posargs, opt)
		} else {
			options = append(options, opt)
		}
		order = append(order, d.Name)
	}

	if rest != nil {
		help := rest.Help
		if help == "" {
			help = optsHelp[rest.Name]
		}
		posargs = append(posargs, model.Option{
			Source:     rest.Name,
			Names:      []string{strings.ReplaceAll(rest.Name, "_", "-")},
			Type:       model.String,
			Help:       help,
			Optional:   !c.RequireExcess || (len(posargs) > 0 && posargs[len(posargs)-1].Optional),
			Positional: true,
			Catchall:   true,
		})
	}

	// Required-after-optional cannot be satisfied from a flat token list.
	seenOptional := false
	for _, p := range posargs {
		if seenOptional && !p.Optional {
			return model.Command{}, errors.NewSpecification(
				"required parameter %s follows an optional parameter", p.Source)
		}
		seenOptional = seenOptional || p.Optional
	}

	helpNames := c.HelpNames
	if helpNames == nil {
		helpNames = DefaultHelpNames
	}
	if len(helpNames) > 0 {
		r := display.Renderer{Width: c.Width}
		out := c.output()
		options = append(options, model.NewActionFlag(
			func(prog string, cmd model.Command) {
				fmt.Fprintln(out, r.Command(prog, cmd))
			},
			helpNames, "Show this help"))
	}
	options = append(options, c.Extra...)

	return model.Command{
		Description: description,
		Footnotes:   footnotes,
		Posargs:     posargs,
		Options:     options,
		Order:       order,
	}, nil
}

func (c *Cli) output() io.Writer {
	if c.Output != nil {
		return c.Output
	}
	return os.Stdout
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func containsFlag(list []Flag, f Flag) bool {
	for _, v := range list {
		if v == f {
			return true
		}
	}
	return false
}
