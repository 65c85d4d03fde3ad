package table

import "testing"

func TestWidthsHandleRaggedRows(t *testing.T) {
	widths := Widths([][]string{{"a", "bbb"}, {"cc"}, {}})
	if len(widths) != 2 || widths[0] != 2 || widths[1] != 3 {
		t.Fatalf("unexpected widths %v", widths)
	}
}

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"1", "alpha", "x"},
		{"10", "b"},
	}
	got := Format(rows, []Alignment{AlignRight, AlignLeft})
	want := []string{
		" 1  alpha  x",
		"10  b",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestPadCountsWideRunes(t *testing.T) {
	if got := Pad("日", 4, AlignLeft); got != "日  " {
		t.Fatalf("unexpected padding %q", got)
	}
	if got := Pad("toolong", 3, AlignLeft); got != "toolong" {
		t.Fatalf("expected text unchanged when wider than column, got %q", got)
	}
}
