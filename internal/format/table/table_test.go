package table

import "testing"

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"list files", "ls -la"},
		{"du", "du -sh *"},
	}
	got := Format(rows, nil)
	want := []string{
		"list files  ls -la",
		"du          du -sh *",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFormatRightAlignmentAndRaggedRows(t *testing.T) {
	rows := [][]string{
		{"7", "linux"},
		{"12"},
	}
	got := Format(rows, []Alignment{AlignRight})
	if got[0] != " 7  linux" {
		t.Fatalf("expected right aligned first cell, got %q", got[0])
	}
	if got[1] != "12" {
		t.Fatalf("expected ragged row without trailing padding, got %q", got[1])
	}
	if Format(nil, nil) != nil {
		t.Fatalf("expected nil for no rows")
	}
}

func TestWidthsUseDisplayColumns(t *testing.T) {
	widths := Widths([][]string{{"日本", "a"}, {"abc"}})
	if len(widths) != 2 || widths[0] != 4 || widths[1] != 1 {
		t.Fatalf("expected [4 1], got %v", widths)
	}
}

func TestFit(t *testing.T) {
	if got := Fit("SELECT * FROM t", 8); got != "SELECT …" {
		t.Fatalf("expected truncated text, got %q", got)
	}
	if got := Fit("ls", 8); got != "ls" {
		t.Fatalf("expected short text unchanged, got %q", got)
	}
	if got := Fit("ls", 0); got != "" {
		t.Fatalf("expected empty text for zero width, got %q", got)
	}
}
