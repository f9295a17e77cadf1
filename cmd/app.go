// Package cmd implements the CLI application to digest brokerage statements.
package cmd

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/google/subcommands"
	"tosstrades"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&parseCmd{}, "pipeline")
	c.Register(&compactCmd{}, "pipeline")
	c.Register(&runCmd{}, "pipeline")

	c.Register(&showCmd{}, "reports")
	c.Register(&assistCmd{}, "reports")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var policyFile = flag.String("policy-file", "policy.yaml", "Path to the extraction policy overrides (YAML)")

// LoadPolicy loads the app policy file. A missing file yields the defaults.
func LoadPolicy() (tosstrades.Policy, error) {
	return tosstrades.LoadPolicy(*policyFile)
}

// isRawExt reports whether the extension names a raw statement export.
func isRawExt(ext string) bool {
	return ext == ".txt" || ext == ".md"
}

// readRecords loads records from a statement text export (.txt, .md) or from
// a previously parsed JSON file. A JSON file may hold either extracted
// records or an array of raw statement lines.
func readRecords(path string, pol tosstrades.Policy) ([]tosstrades.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if isRawExt(strings.ToLower(filepath.Ext(path))) {
		if !utf8.Valid(data) {
			return nil, fmt.Errorf("%s is not valid UTF-8 text", path)
		}
		return tosstrades.ParseText(string(data), pol), nil
	}
	return decodeRecords(data, pol)
}

func decodeRecords(data []byte, pol tosstrades.Policy) ([]tosstrades.Record, error) {
	var records []tosstrades.Record
	if err := json.Unmarshal(data, &records); err == nil {
		return records, nil
	}
	var lines []string
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, fmt.Errorf("unsupported JSON input: want an array of records or of raw lines")
	}
	for _, line := range lines {
		if r, ok := tosstrades.Extract(line, pol); ok {
			records = append(records, r)
		}
	}
	return records, nil
}

// writeJSON writes v to path, indented for .json inspection in editors.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// selectors parses and validates the target/period pair shared by the
// aggregation subcommands.
func selectors(target, period string) (tosstrades.Target, tosstrades.Period, error) {
	t, err := tosstrades.ParseTarget(target)
	if err != nil {
		return t, 0, err
	}
	p, err := tosstrades.ParsePeriod(period)
	return t, p, err
}
