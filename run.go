package clize

import (
	stderrs "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"

	clierr "github.com/Rosuav/clize/errors"
	"github.com/Rosuav/clize/model"
)

var osExit = os.Exit // Mockable for testing

// debugLogger returns a stderr logger at debug level when CLIZE_DEBUG is
// set, and a discarding one otherwise. The core packages never log; only
// this boundary does.
func debugLogger() *log.Logger {
	if os.Getenv("CLIZE_DEBUG") == "" {
		return log.New(io.Discard)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:  log.DebugLevel,
		Prefix: "clize",
	})
}

// Run parses args against cli and forwards the resolved values to
// cli.Invoke. A nil args means os.Args. Argument errors print to stderr
// and exit 2; Invoke errors print and exit 1; an action option (help,
// version) that handles the call exits nothing and invokes nothing.
func Run(cli *Cli, args []string) {
	if args == nil {
		args = os.Args
	}
	logger := debugLogger()

	res, err := cli.Parse(args)
	if err != nil {
		fail(args, err)
		return
	}
	logger.Debug("parsed", "prog", progName(args), "stopped", res.Stopped, "values", len(res.Args))

	if res.Stopped || cli.Invoke == nil {
		return
	}
	if err := cli.Invoke(res.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		osExit(1)
	}
}

// RunGroup dispatches args to one of the group's commands and forwards the
// resolved values to that command's Invoke. Error handling matches Run.
func RunGroup(g *Group, args []string) {
	if args == nil {
		args = os.Args
	}
	logger := debugLogger()

	sub, res, err := g.Dispatch(args)
	if err != nil {
		fail(args, err)
		return
	}
	if sub != nil {
		logger.Debug("dispatched", "command", sub.Name, "stopped", res.Stopped)
	}

	if res.Stopped || sub == nil || sub.Invoke == nil {
		return
	}
	if err := sub.Invoke(res.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		osExit(1)
	}
}

// fail reports a parse failure on stderr and exits. Argument errors render
// themselves with their usage synopsis and exit 2; the contentless usage
// error instead points the user at --help. Anything else is a programming
// error in the command declaration and exits 1.
func fail(args []string, err error) {
	prog := progName(args)

	var argErr clierr.ArgumentError
	if !stderrs.As(err, &argErr) {
		fmt.Fprintln(os.Stderr, err)
		osExit(1)
		return
	}

	var bare clierr.UsageError
	if stderrs.As(err, &bare) {
		fmt.Fprintf(os.Stderr, "%s\nTry '%s --help' for more information.\n", err, prog)
	} else {
		prefix := color.New(color.Bold).Sprint(filepath.Base(prog))
		fmt.Fprintf(os.Stderr, "%s: %s\n", prefix, err)
	}
	osExit(2)
}

func progName(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

// VersionFlag returns an extra action option that prints the program's
// version as "<prog> v<version>" and stops the parse. A nil writer means
// os.Stdout.
//
//	cli.Extra = []clize.Option{clize.VersionFlag("1.2.3", nil)}
func VersionFlag(version string, w io.Writer) Option {
	return model.NewActionFlag(
		func(prog string, _ model.Command) {
			out := w
			if out == nil {
				out = os.Stdout
			}
			fmt.Fprintf(out, "%s v%s\n", prog, version)
		},
		[]string{"version"}, "Show version information")
}
