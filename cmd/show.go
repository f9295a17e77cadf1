package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"tosstrades"
	"tosstrades/renderer"
)

// showCmd holds the flags for the 'show' subcommand.
type showCmd struct {
	target string
	period string
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display a trading summary report" }
func (*showCmd) Usage() string {
	return `tts show [-t date|symbol] [-p day|month] <input.(txt|md|json)>

  Aggregates the statement and renders the summary as a markdown report on
  the terminal.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.target, "t", "symbol", "Grouping target: date or symbol.")
	f.StringVar(&c.period, "p", "month", "Aggregation period: day or month.")
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one input file")
		return subcommands.ExitUsageError
	}

	target, period, err := selectors(c.target, c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	pol, err := LoadPolicy()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading policy: %v\n", err)
		return subcommands.ExitFailure
	}

	records, err := readRecords(f.Arg(0), pol)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}

	summary := tosstrades.Compact(records, target, period, pol)
	printMarkdown(renderer.SummaryMarkdown(summary, target, period))
	return subcommands.ExitSuccess
}
