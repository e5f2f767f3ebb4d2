// Package display formats commands and supercommands into usage and help
// text. It never parses anything; it renders the same model the parser
// consumes, so the two cannot disagree about what is positional, optional
// or catch-all.
package display

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"github.com/Rosuav/clize/model"
)

// DefaultWidth is the display width help text wraps to when the Renderer
// does not specify one. Fair terminal dice roll.
const DefaultWidth = 70

// Renderer formats help text at a fixed display width.
type Renderer struct {
	Width int
}

func (r Renderer) width() int {
	if r.Width > 0 {
		return r.Width
	}
	return DefaultWidth
}

// Usage renders only the one-line synopsis, as prefixed to argument errors.
func (r Renderer) Usage(prog string, u model.Usager) string {
	return u.Usage(prog)
}

// Command renders the full help text for a single command: synopsis,
// description, positional arguments, options, footnotes.
func (r Renderer) Command(prog string, cmd model.Command) string {
	var b strings.Builder
	b.WriteString(cmd.Usage(prog))
	b.WriteString(r.description(cmd.Description))

	if len(cmd.Posargs) > 0 {
		b.WriteString("\nPositional arguments:\n")
		b.WriteString(r.table(cmd.Posargs) + "\n")
	}
	if len(cmd.Options) > 0 {
		b.WriteString("\nOptions:\n")
		b.WriteString(r.table(cmd.Options) + "\n")
	}

	b.WriteString(r.footnotes(cmd.Footnotes))
	return b.String()
}

// Group renders the full help text for a supercommand: synopsis,
// description, the available-commands listing, a pointer to per-command
// help, footnotes.
func (r Renderer) Group(prog string, sc model.SuperCommand) string {
	var b strings.Builder
	b.WriteString(sc.Usage(prog))
	b.WriteString(r.description(sc.Description))

	if len(sc.Subcommands) > 0 {
		b.WriteString("\nAvailable commands:\n")
		b.WriteString(r.table(sc.Subcommands) + "\n")
		trailer := fmt.Sprintf(
			"See '%s command --help' for more information on a specific command.", prog)
		b.WriteString("\n" + r.fill(trailer) + "\n")
	}

	b.WriteString(r.footnotes(sc.Footnotes))
	return b.String()
}

// description joins the wrapped paragraphs under the synopsis line. The
// leading empty part yields the blank line between synopsis and body; with
// no paragraphs it degenerates to the synopsis terminator alone.
func (r Renderer) description(paragraphs []string) string {
	parts := []string{""}
	for _, p := range paragraphs {
		parts = append(parts, r.fill(p))
	}
	return strings.Join(parts, "\n\n") + "\n"
}

func (r Renderer) footnotes(paragraphs []string) string {
	if len(paragraphs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		parts = append(parts, r.fill(p))
	}
	return "\n" + strings.Join(parts, "\n\n") + "\n"
}

// table renders an aligned two-column listing of options. The name column
// is padded to the widest rendered name; help text hangs under its own
// column, with the default value appended when it is informative.
func (r Renderer) table(opts []model.Option) string {
	width := 0
	for _, o := range opts {
		if w := runewidth.StringWidth(o.DisplayNames()); w > width {
			width = w
		}
	}

	lines := make([]string, 0, len(opts))
	for _, o := range opts {
		cell := ""
		if o.Help != "" {
			text := o.Help
			if o.Default != nil && o.Default != false {
				text += fmt.Sprintf("(default: %v)", o.Default)
			}
			cell = r.hang(text, width+5)
		}
		lines = append(lines, "  "+pad(o.DisplayNames(), width)+"  "+cell)
	}
	return strings.Join(lines, "\n")
}

// hang wraps text so that every line fits the display width once indented
// to the help column. The single leading space separates the help text from
// the two-space column gap.
func (r Renderer) hang(text string, indent int) string {
	avail := r.width() - indent
	if avail < 1 {
		avail = 1
	}
	lines := strings.Split(wordwrap.String(reflow(text), avail), "\n")
	padding := strings.Repeat(" ", indent)
	for i := 1; i < len(lines); i++ {
		lines[i] = padding + lines[i]
	}
	return " " + strings.Join(lines, "\n")
}

// fill wraps one paragraph to the full display width.
func (r Renderer) fill(text string) string {
	return wordwrap.String(reflow(text), r.width())
}

// reflow collapses runs of whitespace so pre-wrapped doc text rewraps
// cleanly at the configured width.
func reflow(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

func pad(s string, width int) string {
	if d := width - runewidth.StringWidth(s); d > 0 {
		return s + strings.Repeat(" ", d)
	}
	return s
}
