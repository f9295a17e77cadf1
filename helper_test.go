package tosstrades

import (
	"os"
	"testing"
)

// readFixture loads the raw statement fixture shared by the pipeline tests.
func readFixture(t *testing.T) string {
	t.Helper()
	raw, err := os.ReadFile("testdata/statement.txt")
	if err != nil {
		t.Fatalf("cannot read fixture: %v", err)
	}
	return string(raw)
}
