package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"google.golang.org/genai"
	"tosstrades"
	"tosstrades/agent"
)

// assistCmd holds the flags for the 'assist' subcommand.
type assistCmd struct {
	target string
	period string
}

func (*assistCmd) Name() string { return "assist" }
func (*assistCmd) Synopsis() string {
	return "start an interactive AI session over the compact summary"
}
func (*assistCmd) Usage() string {
	return `tts assist [-t date|symbol] [-p day|month] <input.(txt|md|json)> [question...]

  Compacts the statement and starts an interactive session with an AI
  analyst that answers questions about it. Needs GEMINI_API_KEY, read from
  the environment or a .env file.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.target, "t", "symbol", "Grouping target: date or symbol.")
	f.StringVar(&c.period, "p", "month", "Aggregation period: day or month.")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: expected an input file")
		return subcommands.ExitUsageError
	}
	initialPrompt := strings.Join(f.Args()[1:], " ")

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

	summary, err := json.Marshal(tosstrades.Compact(records, target, period, pol))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding summary: %v\n", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	a := agent.New(os.Stdout, os.Stdin, string(summary))
	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Analyst failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
