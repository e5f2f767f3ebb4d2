package core

import (
	"bytes"
	stderrs "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clierr "github.com/Rosuav/clize/errors"
)

// greetCli is the recurring fixture: one required positional, one optional
// integer option aliased -n, one boolean flag aliased -v.
func greetCli(out *bytes.Buffer) *Cli {
	cli := &Cli{
		Name: "greet",
		Doc: `Greets someone.

name: Who to greet

reps: How many times

verbose: Say it with feeling`,
		Alias: map[string][]string{"reps": {"n"}, "verbose": {"v"}},
		Args: []Descriptor{
			{Name: "name"},
			{Name: "reps", HasDefault: true, Default: 1},
			{Name: "verbose", HasDefault: true, Default: false},
		},
	}
	if out != nil {
		cli.Output = out
	}
	return cli
}

func TestParse_DefaultsFillOmittedOptions(t *testing.T) {
	res, err := greetCli(nil).Parse([]string{"greet", "Bob"})
	require.NoError(t, err)
	assert.False(t, res.Stopped)
	assert.Equal(t, []any{"Bob", 1, false}, res.Args)
}

func TestParse_LongOptionSeparateValue(t *testing.T) {
	res, err := greetCli(nil).Parse([]string{"greet", "--reps", "3", "Bob"})
	require.NoError(t, err)
	assert.Equal(t, []any{"Bob", 3, false}, res.Args)
}

func TestParse_LongOptionEqualsValue(t *testing.T) {
	res, err := greetCli(nil).Parse([]string{"greet", "--reps=3", "Bob"})
	require.NoError(t, err)
	assert.Equal(t, []any{"Bob", 3, false}, res.Args)
}

func TestParse_ShortBooleanFlag(t *testing.T) {
	res, err := greetCli(nil).Parse([]string{"greet", "-v", "Bob"})
	require.NoError(t, err)
	assert.Equal(t, []any{"Bob", 1, true}, res.Args)
}

func TestParse_ShortClusterOfBooleans(t *testing.T) {
	cli := &Cli{
		Args: []Descriptor{
			{Name: "all", HasDefault: true, Default: false},
			{Name: "brief", HasDefault: true, Default: false},
			{Name: "color", HasDefault: true, Default: false},
		},
		Alias: map[string][]string{"all": {"a"}, "brief": {"b"}, "color": {"c"}},
	}
	res, err := cli.Parse([]string{"tool", "-abc"})
	require.NoError(t, err)
	assert.Equal(t, []any{true, true, true}, res.Args)
}

func TestParse_ShortIntegerAttachedValue(t *testing.T) {
	res, err := greetCli(nil).Parse([]string{"greet", "-n42", "Bob"})
	require.NoError(t, err)
	assert.Equal(t, []any{"Bob", 42, false}, res.Args)
}

func TestParse_ShortIntegerAttachedNegativeValue(t *testing.T) {
	res, err := greetCli(nil).Parse([]string{"greet", "-n-5", "Bob"})
	require.NoError(t, err)
	assert.Equal(t, []any{"Bob", -5, false}, res.Args)
}

func TestParse_ShortIntegerStopsAtNonDigit(t *testing.T) {
	// The digit scan is deliberately lenient: it captures the leading
	// run and hands the rest of the cluster back as further flags. Here
	// "v" is a real flag, so "-n42v" sets both.
	res, err := greetCli(nil).Parse([]string{"greet", "-n42v", "Bob"})
	require.NoError(t, err)
	assert.Equal(t, []any{"Bob", 42, true}, res.Args)

	// An unknown trailing character surfaces as an unknown option, not
	// a bad integer.
	_, err = greetCli(nil).Parse([]string{"greet", "-n42x", "Bob"})
	require.Error(t, err)
	var unknown clierr.UnknownOptionError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "x", unknown.Char)
}

func TestParse_ShortStringAttachedValueTakesRemainder(t *testing.T) {
	cli := &Cli{
		Alias: map[string][]string{"output": {"o"}},
		Args: []Descriptor{
			{Name: "output", HasDefault: true, Default: "out.txt"},
		},
	}
	res, err := cli.Parse([]string{"tool", "-oresult.txt"})
	require.NoError(t, err)
	assert.Equal(t, []any{"result.txt"}, res.Args)
}

func TestParse_DoubleDashEndsOptions(t *testing.T) {
	res, err := greetCli(nil).Parse([]string{"greet", "--", "-v"})
	require.NoError(t, err)
	assert.Equal(t, []any{"-v", 1, false}, res.Args)
}

func TestParse_LoneDashIsPositional(t *testing.T) {
	// A bare "-" carries no option characters and is taken as a free
	// token, the conventional stdin placeholder.
	res, err := greetCli(nil).Parse([]string{"greet", "-"})
	require.NoError(t, err)
	assert.Equal(t, []any{"-", 1, false}, res.Args)
}

func TestParse_UnrecognizedLongOption(t *testing.T) {
	_, err := greetCli(nil).Parse([]string{"greet", "--bogus"})
	require.Error(t, err)
	var unrec clierr.UnrecognizedOptionError
	require.ErrorAs(t, err, &unrec)
	assert.Contains(t, err.Error(), "Unrecognized option --bogus")
	assert.Contains(t, err.Error(), "Usage: greet")
}

func TestParse_UnknownShortOption(t *testing.T) {
	_, err := greetCli(nil).Parse([]string{"greet", "-z"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unknown option -z.")
}

func TestParse_MissingOptionArgument(t *testing.T) {
	_, err := greetCli(nil).Parse([]string{"greet", "Bob", "--reps"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--reps needs an argument.")

	// The short spelling reports under the option's source name.
	_, err = greetCli(nil).Parse([]string{"greet", "Bob", "-n"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--reps needs an argument.")
}

func TestParse_BadArgumentType(t *testing.T) {
	_, err := greetCli(nil).Parse([]string{"greet", "Bob", "--reps", "many"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--reps needs an argument of type INT")

	_, err = greetCli(nil).Parse([]string{"greet", "Bob", "-nx", "ignored"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-n needs an argument of type INT")
}

func TestParse_BadPositionalType(t *testing.T) {
	cli := &Cli{
		ForcePositional: []string{"count"},
		Args: []Descriptor{
			{Name: "count", HasDefault: true, Default: 1},
		},
	}
	_, err := cli.Parse([]string{"tool", "many"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "count needs an argument of type INT")
}

func TestParse_TooFewArguments(t *testing.T) {
	_, err := greetCli(nil).Parse([]string{"greet"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Not enough arguments.")
}

func TestParse_TooManyArguments(t *testing.T) {
	_, err := greetCli(nil).Parse([]string{"greet", "Bob", "extra"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Too many arguments.")

	// With no positionals at all, any free token is too many.
	bare := &Cli{Args: []Descriptor{{Name: "verbose", HasDefault: true, Default: false}}}
	_, err = bare.Parse([]string{"tool", "stray"})
	require.Error(t, err)
	var tooMany clierr.TooManyArgumentsError
	assert.ErrorAs(t, err, &tooMany)
}

func TestParse_CatchallJoinsLeftovers(t *testing.T) {
	cli := &Cli{Args: []Descriptor{{Name: "files", Rest: true}}}

	res, err := cli.Parse([]string{"tool", "a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, []any{"a b c"}, res.Args)

	// Empty catch-all contributes no value at all.
	res, err = cli.Parse([]string{"tool"})
	require.NoError(t, err)
	assert.Empty(t, res.Args)
}

func TestParse_CatchallAfterRequiredPositional(t *testing.T) {
	cli := &Cli{Args: []Descriptor{
		{Name: "first"},
		{Name: "rest", Rest: true},
	}}

	res, err := cli.Parse([]string{"tool", "a"})
	require.NoError(t, err)
	assert.Equal(t, []any{"a"}, res.Args)

	res, err = cli.Parse([]string{"tool", "a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b c"}, res.Args)

	_, err = cli.Parse([]string{"tool"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Not enough arguments.")
}

func TestParse_HelpStopsParsing(t *testing.T) {
	for _, tok := range []string{"--help", "-h", "--h"} {
		var out bytes.Buffer
		res, err := greetCli(&out).Parse([]string{"greet", tok})
		require.NoError(t, err, tok)
		assert.True(t, res.Stopped, tok)
		assert.Nil(t, res.Args, tok)
		assert.Contains(t, out.String(), "Usage: greet [OPTIONS] name", tok)
		assert.Contains(t, out.String(), "Show this help", tok)
	}
}

func TestParse_HelpBeatsMissingArguments(t *testing.T) {
	// The help action fires during the token scan, before positional
	// checks would reject the command line.
	var out bytes.Buffer
	res, err := greetCli(&out).Parse([]string{"greet", "--help"})
	require.NoError(t, err)
	assert.True(t, res.Stopped)
}

func TestParse_RepeatedOptionLastWins(t *testing.T) {
	res, err := greetCli(nil).Parse([]string{"greet", "-n2", "--reps=5", "Bob"})
	require.NoError(t, err)
	assert.Equal(t, []any{"Bob", 5, false}, res.Args)
}

func TestParse_IsPure(t *testing.T) {
	cli := greetCli(nil)
	args := []string{"greet", "-v", "-n3", "Bob"}

	first, err := cli.Parse(args)
	require.NoError(t, err)
	second, err := cli.Parse(args)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// A different parse in between must not bleed state.
	_, _ = cli.Parse([]string{"greet", "--bogus"})
	third, err := cli.Parse(args)
	require.NoError(t, err)
	assert.Equal(t, first, third)
}

func TestParse_HelpNamesMatchParserExactly(t *testing.T) {
	// Every data option name listed in help must be accepted by the
	// parser under its long spelling; no drift between the two views.
	cli := greetCli(nil)
	cmd, err := cli.Command()
	require.NoError(t, err)

	for _, opt := range cmd.Options {
		if opt.IsAction() {
			continue
		}
		for _, name := range opt.Names {
			_, err := cli.Parse([]string{"greet", "Bob", "--" + name + "=1"})
			var unrec clierr.UnrecognizedOptionError
			assert.False(t, stderrs.As(err, &unrec),
				"help lists %q but the parser rejects it", name)
		}
	}
}
