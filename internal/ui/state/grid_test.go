package state

import (
	"reflect"
	"testing"
)

func sampleGrid() *Grid {
	return NewGrid([][]string{{"a", "b"}, {"c", "d"}})
}

func TestGridStartsAtOrigin(t *testing.T) {
	g := sampleGrid()
	if r, c := g.Cursor(); r != 0 || c != 0 {
		t.Fatalf("expected cursor (0,0), got (%d,%d)", r, c)
	}
	if v, ok := g.Current(); !ok || v != "a" {
		t.Fatalf("expected current a, got %q (%v)", v, ok)
	}
}

func TestGridMovementClamps(t *testing.T) {
	g := sampleGrid()
	if g.MoveUp() || g.MoveLeft() {
		t.Fatalf("expected no movement beyond the top-left corner")
	}
	if !g.MoveRight() || g.MoveRight() {
		t.Fatalf("expected a single move right then a clamp")
	}
	if !g.MoveDown() || g.MoveDown() {
		t.Fatalf("expected a single move down then a clamp")
	}
	if r, c := g.Cursor(); r != 1 || c != 1 {
		t.Fatalf("expected cursor (1,1), got (%d,%d)", r, c)
	}
}

func TestGridVerticalMoveClampsColumn(t *testing.T) {
	g := NewGrid([][]string{{"a", "b", "c"}, {"d"}})
	g.MoveRight()
	g.MoveRight()
	if !g.MoveDown() {
		t.Fatalf("expected move down")
	}
	if r, c := g.Cursor(); r != 1 || c != 0 {
		t.Fatalf("expected cursor (1,0), got (%d,%d)", r, c)
	}
}

func TestGridSetAndDelete(t *testing.T) {
	g := sampleGrid()
	g.MoveDown()
	if !g.SetCurrent("X") {
		t.Fatalf("expected set to succeed")
	}
	want := [][]string{{"a", "b"}, {"X", "d"}}
	if !reflect.DeepEqual(g.Rows(), want) {
		t.Fatalf("expected %v, got %v", want, g.Rows())
	}

	g.MoveRight()
	if !g.DeleteCurrent() {
		t.Fatalf("expected delete to succeed")
	}
	if r, c := g.Cursor(); r != 1 || c != 0 {
		t.Fatalf("expected cursor clamped to (1,0), got (%d,%d)", r, c)
	}
	if !g.DeleteCurrent() {
		t.Fatalf("expected second delete to succeed")
	}
	if g.RowLen(1) != 0 {
		t.Fatalf("expected empty row, got %d cells", g.RowLen(1))
	}
	if _, ok := g.Current(); ok {
		t.Fatalf("expected no cell on an empty row")
	}
	if g.DeleteCurrent() || g.SetCurrent("y") {
		t.Fatalf("expected edits on an empty row to be rejected")
	}
	if g.MoveRight() {
		t.Fatalf("expected no horizontal movement on an empty row")
	}
}

func TestGridRowsIsSnapshot(t *testing.T) {
	g := sampleGrid()
	snap := g.Rows()
	snap[0][0] = "mutated"
	if v, _ := g.Cell(0, 0); v != "a" {
		t.Fatalf("expected grid unaffected by snapshot mutation, got %q", v)
	}
}

func TestNewGridSeedsEmptyMatrix(t *testing.T) {
	g := NewGrid(nil)
	if g.RowCount() != 1 || g.RowLen(0) != 1 {
		t.Fatalf("expected a single empty cell, got %v", g.Rows())
	}
}
