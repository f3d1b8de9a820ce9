package xopt

import (
	"strings"
	"testing"
)

// TestUsageRendering checks the rendered option table: one row per
// option in table order, descriptions aligned.
func TestUsageRendering(t *testing.T) {
	table := []Option{
		{Short: 'v', Long: "verbose", Description: "Enable verbose output"},
		{Short: 'o', Long: "output", RequiresValue: true, Placeholder: "FILE", Description: "Write results to FILE"},
		{Long: "timeout", RequiresValue: true, Description: "Give up after this long"},
		{Short: 'q', Description: "Quiet mode"},
	}
	ctx := mustContext(t, table, 0)

	out := ctx.Usage()

	if !strings.HasPrefix(out, "Usage:\n  test [OPTION]... [ARGUMENT]...\n") {
		t.Errorf("Unexpected usage header:\n%s", out)
	}

	rows := []string{
		"-v, --verbose",
		"-o, --output FILE",
		"    --timeout value",
		"-q",
	}
	lines := strings.Split(out, "\n")
	optionLines := make([]string, 0, len(rows))
	for _, line := range lines {
		if strings.HasPrefix(line, "  -") || strings.HasPrefix(line, "      --") {
			optionLines = append(optionLines, line)
		}
	}
	if len(optionLines) != len(rows) {
		t.Fatalf("Expected %d option rows, got %d:\n%s", len(rows), len(optionLines), out)
	}
	for i, row := range rows {
		if !strings.Contains(optionLines[i], row) {
			t.Errorf("Expected row %d to contain %q, got %q", i, row, optionLines[i])
		}
	}

	// Descriptions start at the same column.
	col := -1
	descriptions := []string{
		"Enable verbose output",
		"Write results to FILE",
		"Give up after this long",
		"Quiet mode",
	}
	for i, desc := range descriptions {
		idx := strings.Index(optionLines[i], desc)
		if idx < 0 {
			t.Fatalf("Description %q missing from %q", desc, optionLines[i])
		}
		if col == -1 {
			col = idx
		} else if idx != col {
			t.Errorf("Description column mismatch: %d vs %d in %q", idx, col, optionLines[i])
		}
	}
}

// TestUsageNoOptions verifies the usage line for an empty table.
func TestUsageNoOptions(t *testing.T) {
	ctx := mustContext(t, nil, 0)

	out := ctx.Usage()
	if out != "Usage:\n  test [ARGUMENT]...\n" {
		t.Errorf("Unexpected usage for empty table:\n%q", out)
	}
}

// TestWriteUsage verifies the writer variant matches Usage.
func TestWriteUsage(t *testing.T) {
	ctx := mustContext(t, []Option{{Short: 'v', Description: "Verbose"}}, 0)

	var b strings.Builder
	if err := ctx.WriteUsage(&b); err != nil {
		t.Fatalf("WriteUsage failed: %v", err)
	}
	if b.String() != ctx.Usage() {
		t.Errorf("WriteUsage output differs from Usage:\n%q\nvs\n%q", b.String(), ctx.Usage())
	}
}
