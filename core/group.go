package core

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Rosuav/clize/display"
	"github.com/Rosuav/clize/errors"
	"github.com/Rosuav/clize/internal/common"
	"github.com/Rosuav/clize/model"
)

// Group routes an invocation to one of several named commands based on the
// first free token.
type Group struct {
	// Description and Footnotes document the group itself, in the same
	// paragraph format as Cli.Doc (minus per-parameter help).
	Description string
	Footnotes   string

	Commands []*Cli

	// HelpNames configures the aliases that trigger group help; nil
	// means DefaultHelpNames.
	HelpNames []string

	// Width and Output configure group help rendering.
	Width  int
	Output io.Writer
}

// SuperCommand derives the group's own mini-command: one required
// positional entry per subcommand, described by the first paragraph of the
// subcommand's doc text. It drives group help and dispatch errors.
func (g *Group) SuperCommand() model.SuperCommand {
	subs := make([]model.Option, 0, len(g.Commands))
	for _, c := range g.Commands {
		description, _, _ := readDoc(c.Doc)
		help := ""
		if len(description) > 0 {
			help = description[0]
		}
		subs = append(subs, model.Option{
			Source:     c.Name,
			Names:      []string{c.Name},
			Type:       model.String,
			Help:       help,
			Positional: true,
		})
	}
	return model.SuperCommand{
		Description: common.Paragraphs(g.Description),
		Footnotes:   common.Paragraphs(g.Footnotes),
		Subcommands: subs,
	}
}

// Dispatch inspects args for a subcommand name, rewrites the program name
// to include it, and parses the remaining arguments with that command's
// engine. It returns the chosen command (nil when none ran) alongside the
// parse result.
func (g *Group) Dispatch(args []string) (*Cli, Result, error) {
	sc := g.SuperCommand()
	prog := ""
	if len(args) > 0 {
		prog = args[0]
	}
	ctx := errors.NewContext(prog, sc)

	for i := 1; i < len(args); i++ {
		if strings.HasPrefix(args[i], "-") {
			continue
		}
		sub := g.find(args[i])
		if sub == nil {
			return nil, Result{}, errors.NewUnknownSubcommand(ctx, args[i])
		}
		// The subcommand token moves out of the argument list and into
		// the program name.
		rewritten := make([]string, 0, len(args)-1)
		rewritten = append(rewritten, prog+" "+args[i])
		rewritten = append(rewritten, args[1:i]...)
		rewritten = append(rewritten, args[i+1:]...)
		res, err := sub.Parse(rewritten)
		return sub, res, err
	}

	// Only options (or nothing) were given.
	helpNames := g.HelpNames
	if helpNames == nil {
		helpNames = DefaultHelpNames
	}
	if len(args) > 1 {
		for _, a := range args[1:] {
			if !containsString(helpNames, common.TrimDashes(a)) {
				continue
			}
			out := g.Output
			if out == nil {
				out = os.Stdout
			}
			r := display.Renderer{Width: g.Width}
			fmt.Fprintln(out, r.Group(prog, sc))
			return nil, Result{Stopped: true}, nil
		}
		return nil, Result{}, errors.NewNoCommandSpecified(ctx)
	}
	return nil, Result{}, errors.NewUsage(ctx)
}

func (g *Group) find(name string) *Cli {
	for _, c := range g.Commands {
		if c.Name == name {
			return c
		}
	}
	return nil
}
