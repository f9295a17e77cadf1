package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// parseCmd holds the flags for the 'parse' subcommand.
type parseCmd struct {
	output string
}

func (*parseCmd) Name() string     { return "parse" }
func (*parseCmd) Synopsis() string { return "extract structured records from a statement export" }
func (*parseCmd) Usage() string {
	return `tts parse [-o <output.json>] <statement.(txt|md|json)>

  Segments the raw statement text into logical records and extracts one
  structured record per line. A JSON input may hold pre-segmented raw lines.

Usage Examples:
# Writes the extracted records to parsed.json.
$ tts parse raw.md -o parsed.json

`
}

func (p *parseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.output, "o", "parsed.json", "Output file for the extracted records.")
}

func (p *parseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one input file")
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

	if err := writeJSON(p.output, records); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", p.output, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ parsed %d rows → %s\n", len(records), p.output)
	return subcommands.ExitSuccess
}
