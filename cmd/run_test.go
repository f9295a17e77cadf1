package cmd

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestRawFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.txt", "a.md", "skip.json", "notes.pdf"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.txt"), 0o755); err != nil {
		t.Fatal(err)
	}

	files, err := rawFiles(dir)
	if err != nil {
		t.Fatalf("rawFiles: %v", err)
	}
	if !slices.Equal(files, []string{"a.md", "b.txt"}) {
		t.Errorf("files = %q", files)
	}
}

func TestPickFiles(t *testing.T) {
	files := []string{"a.md", "b.txt"}

	testCases := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{name: "empty input selects all", input: "\n", want: files},
		{name: "eof selects all", input: "", want: files},
		{name: "number selects one", input: "2\n", want: []string{"b.txt"}},
		{name: "out of range", input: "3\n", wantErr: true},
		{name: "not a number", input: "b.txt\n", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := pickFiles(&out, bufio.NewReader(strings.NewReader(tc.input)), files)
			if tc.wantErr {
				if err == nil {
					t.Fatal("no error")
				}
				return
			}
			if err != nil {
				t.Fatalf("pickFiles: %v", err)
			}
			if !slices.Equal(got, tc.want) {
				t.Errorf("got %q, want %q", got, tc.want)
			}
			if !strings.Contains(out.String(), "1) a.md") {
				t.Errorf("listing missing from prompt output: %q", out.String())
			}
		})
	}
}

func TestAsk(t *testing.T) {
	var out bytes.Buffer
	got, err := ask(&out, bufio.NewReader(strings.NewReader("date\n")), "target", "symbol")
	if err != nil || got != "date" {
		t.Errorf("ask = %q, %v", got, err)
	}
	if !strings.Contains(out.String(), "[symbol]") {
		t.Errorf("default missing from prompt: %q", out.String())
	}

	got, err = ask(&out, bufio.NewReader(strings.NewReader("\n")), "target", "symbol")
	if err != nil || got != "symbol" {
		t.Errorf("ask on empty = %q, %v", got, err)
	}
}
