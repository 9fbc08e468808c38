package stats

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Symbol", "Accuracy", "Correct"}
	rows := [][]string{
		{"a", "97.50%", "12"},
		{"ж", "8.00%", "3"},
	}
	rightAlign := map[int]bool{1: true, 2: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Symbol Accuracy Correct" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "a        97.50%      12" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "ж         8.00%       3" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFormatTableWideSymbols(t *testing.T) {
	lines := formatTable([]string{"S", "N"}, [][]string{{"字", "1"}, {"a", "2"}}, nil)
	if lines[1] != "字 1" || lines[2] != "a  2" {
		t.Fatalf("unexpected wide layout: %q", lines)
	}
}
