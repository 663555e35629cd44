package cli

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	"geocoord/internal/services"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// -33.940525 / -0.5,13.7
var negativeNumberPattern = regexp.MustCompile(`^-[0-9]`)

// NewRootCommand builds the coordinate command tree around parser. workers
// is the default batch concurrency.
func NewRootCommand(parser *services.Parser, workers int) *cobra.Command {
	root := &cobra.Command{
		Use:           "coordinate",
		Short:         "Parse coordinates and compare them",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return invalidInput(err)
	})

	root.AddCommand(
		newShowCommand(parser),
		newBatchCommand(parser, workers),
	)

	return root
}

// Execute runs root with args and returns the process exit code. Errors are
// rendered to errOut.
func Execute(ctx context.Context, root *cobra.Command, args []string, errOut io.Writer) int {
	root.SetArgs(positionalsAfterDash(root, args))

	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(errOut, RenderErrorLine(err))
	}
	return ExitCode(err)
}

// rangeArgs is cobra.RangeArgs with the failure marked as invalid input.
func rangeArgs(lo, hi int) cobra.PositionalArgs {
	check := cobra.RangeArgs(lo, hi)
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return invalidInput(err)
		}
		return nil
	}
}

// positionalsAfterDash rewrites args so that positionals follow a "--".
// Coordinates such as "-33.94, 18.41" then reach the command as arguments
// instead of being read as shorthand flags.
func positionalsAfterDash(root *cobra.Command, args []string) []string {
	cmd, rest, err := root.Find(args)
	if err != nil || cmd == root {
		return args
	}

	lookup := func(name string, short bool) *pflag.Flag {
		for _, fs := range []*pflag.FlagSet{cmd.Flags(), cmd.InheritedFlags()} {
			var f *pflag.Flag
			if short {
				f = fs.ShorthandLookup(name)
			} else {
				f = fs.Lookup(name)
			}
			if f != nil {
				return f
			}
		}
		return nil
	}

	var flags, positionals []string
scan:
	for i := 0; i < len(rest); i++ {
		arg := rest[i]

		switch {
		case arg == "--":
			positionals = append(positionals, rest[i+1:]...)
			break scan
		case arg == "-", !strings.HasPrefix(arg, "-"), negativeNumberPattern.MatchString(arg):
			positionals = append(positionals, arg)
			continue
		}

		flags = append(flags, arg)

		// --name=value and -ovalue carry their own value.
		var f *pflag.Flag
		switch {
		case strings.HasPrefix(arg, "--") && !strings.Contains(arg, "="):
			f = lookup(arg[2:], false)
		case !strings.HasPrefix(arg, "--") && len(arg) == 2:
			f = lookup(arg[1:], true)
		}
		if f != nil && f.NoOptDefVal == "" && i+1 < len(rest) {
			i++
			flags = append(flags, rest[i])
		}
	}

	out := strings.Fields(cmd.CommandPath())[1:]
	out = append(out, flags...)
	out = append(out, "--")
	return append(out, positionals...)
}
