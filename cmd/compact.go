package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"tosstrades"
)

// compactCmd holds the flags for the 'compact' subcommand.
type compactCmd struct {
	output string
	target string
	period string
}

func (*compactCmd) Name() string     { return "compact" }
func (*compactCmd) Synopsis() string { return "aggregate records into a compact summary" }
func (*compactCmd) Usage() string {
	return `tts compact [-o <output.json>] [-t date|symbol] [-p day|month] <input.(txt|md|json)>

  Folds extracted records into a compact summary grouped by target and
  aggregated per period. A raw statement input is parsed first.

Usage Examples:
# Per-symbol monthly summary, the AI-friendly default.
$ tts compact parsed.json -o compact.json -t symbol -p month

`
}

func (c *compactCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "compact.json", "Output file for the summary.")
	f.StringVar(&c.target, "t", "symbol", "Grouping target: date or symbol.")
	f.StringVar(&c.period, "p", "month", "Aggregation period: day or month.")
}

func (c *compactCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if err := writeJSON(c.output, summary); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ compacted %d records → %s (target=%s, period=%s)\n", len(records), c.output, target, period)
	return subcommands.ExitSuccess
}
