package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/subcommands"
	"tosstrades"
)

// runCmd holds the flags for the 'run' subcommand, the interactive
// parse+compact pipeline over a directory of raw exports.
type runCmd struct {
	rawDir    string
	parsedDir string
	outDir    string
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "interactively parse and compact a directory of raw exports" }
func (*runCmd) Usage() string {
	return `tts run [-raws <dir>] [-parsed <dir>] [-out <dir>]

  Lists the raw statement exports (*.txt, *.md) in the raws directory and
  asks which ones to process and with which target and period. Each selected
  file is parsed into the parsed directory and compacted into the output
  directory, keeping its base name.
`
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.rawDir, "raws", "data/raws", "Directory holding the raw statement exports.")
	f.StringVar(&c.parsedDir, "parsed", "data/input", "Directory receiving the parsed records.")
	f.StringVar(&c.outDir, "out", "output", "Directory receiving the compact summaries.")
}

func (c *runCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	files, err := rawFiles(c.rawDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing %q: %v\n", c.rawDir, err)
		return subcommands.ExitFailure
	}
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "⚠️  no *.txt or *.md files in %s\n", c.rawDir)
		return subcommands.ExitFailure
	}

	in := bufio.NewReader(os.Stdin)
	selected, err := pickFiles(os.Stdout, in, files)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	targetName, err := ask(os.Stdout, in, "target (symbol/date)", "symbol")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	periodName, err := ask(os.Stdout, in, "period (month/day)", "month")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	target, period, err := selectors(targetName, periodName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	pol, err := LoadPolicy()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading policy: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, dir := range []string{c.parsedDir, c.outDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", dir, err)
			return subcommands.ExitFailure
		}
	}

	for _, file := range selected {
		records, err := readRecords(filepath.Join(c.rawDir, file), pol)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %q: %v\n", file, err)
			return subcommands.ExitFailure
		}
		base := strings.TrimSuffix(file, filepath.Ext(file)) + ".json"

		if err := writeJSON(filepath.Join(c.parsedDir, base), records); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing parsed %q: %v\n", base, err)
			return subcommands.ExitFailure
		}
		summary := tosstrades.Compact(records, target, period, pol)
		if err := writeJSON(filepath.Join(c.outDir, base), summary); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing summary %q: %v\n", base, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("✅ %s → %s (%d rows)\n", file, filepath.Join(c.outDir, base), len(records))
	}
	return subcommands.ExitSuccess
}

// rawFiles lists the statement exports of a directory, sorted by name.
func rawFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !isRawExt(strings.ToLower(filepath.Ext(e.Name()))) {
			continue
		}
		files = append(files, e.Name())
	}
	return files, nil
}

// pickFiles shows the numbered file list and reads a selection: a number,
// or empty input for all of them.
func pickFiles(w io.Writer, in *bufio.Reader, files []string) ([]string, error) {
	for i, f := range files {
		fmt.Fprintf(w, "  %d) %s\n", i+1, f)
	}
	answer, err := ask(w, in, "file number (empty for all)", "")
	if err != nil {
		return nil, err
	}
	if answer == "" {
		return files, nil
	}
	n, err := strconv.Atoi(answer)
	if err != nil || n < 1 || n > len(files) {
		return nil, fmt.Errorf("invalid selection %q", answer)
	}
	return files[n-1 : n], nil
}

// ask prompts for one line of input and falls back to def on empty input.
// EOF counts as empty input: piping selections is supported.
func ask(w io.Writer, in *bufio.Reader, label, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(w, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(w, "%s: ", label)
	}
	line, err := in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return def, nil
	}
	return line, nil
}
