package component

import (
	"reflect"
	"strings"
	"testing"

	"github.com/atomicstack/gridpop/internal/action"
	"github.com/atomicstack/gridpop/internal/format/table"
	"github.com/atomicstack/gridpop/internal/layout"
	"github.com/charmbracelet/x/ansi"
)

func newTestGrid() (*Grid, *recordingPersister) {
	p := &recordingPersister{}
	g := NewGrid([][]string{{"a", "b"}, {"c", "d"}}, p)
	g.Focus()
	return g, p
}

func assertCursor(t *testing.T, g *Grid, row, col int) {
	t.Helper()
	if r, c := g.Cursor(); r != row || c != col {
		t.Fatalf("expected cursor (%d,%d), got (%d,%d)", row, col, r, c)
	}
}

func TestGridMovementIsClamped(t *testing.T) {
	g, _ := newTestGrid()
	press(g, runes("l")...)
	assertCursor(t, g, 0, 1)
	press(g, runes("j")...)
	assertCursor(t, g, 1, 1)
	press(g, runes("jl")...)
	assertCursor(t, g, 1, 1)
	press(g, runes("hhkk")...)
	assertCursor(t, g, 0, 0)
}

func TestGridMovementKeysAreHandled(t *testing.T) {
	g, _ := newTestGrid()
	for _, k := range runes("hjkl") {
		if resp := g.HandleAction(action.KeyInput(k)); resp != action.Handled {
			t.Fatalf("expected %q to report Handled, got %v", k.String(), resp)
		}
	}
	if resp := press(g, runes("q")...); resp != action.Handled {
		t.Fatalf("expected unbound q to report Handled so the page can quit, got %v", resp)
	}
}

func TestGridEditAppendsToFocusedCell(t *testing.T) {
	g, p := newTestGrid()
	press(g, runes("lje")...)
	if !g.Editing() {
		t.Fatalf("expected edit overlay to open")
	}
	if g.Editor().Value() != "d" || g.Editor().Cursor() != 1 || g.Editor().Mode() != ModeInsert {
		t.Fatalf("expected editor pre-filled with d in insert mode, got %q/%d/%v",
			g.Editor().Value(), g.Editor().Cursor(), g.Editor().Mode())
	}
	press(g, runes("X")...)
	if resp := press(g, enter); resp != action.Ignored {
		t.Fatalf("expected commit to report Ignored, got %v", resp)
	}

	want := [][]string{{"a", "b"}, {"c", "dX"}}
	if !reflect.DeepEqual(g.Rows(), want) {
		t.Fatalf("expected %v, got %v", want, g.Rows())
	}
	assertCursor(t, g, 1, 1)
	if g.Editing() {
		t.Fatalf("expected overlay closed after commit")
	}
	if len(p.snapshots) != 1 || !reflect.DeepEqual(p.snapshots[0], want) {
		t.Fatalf("expected one persisted snapshot %v, got %v", want, p.snapshots)
	}
}

func TestGridEditReplacesCellText(t *testing.T) {
	g, p := newTestGrid()
	press(g, runes("je")...)
	press(g, backspace, action.Rune('X'), enter)

	want := [][]string{{"a", "b"}, {"X", "d"}}
	if !reflect.DeepEqual(g.Rows(), want) {
		t.Fatalf("expected %v, got %v", want, g.Rows())
	}
	assertCursor(t, g, 1, 0)
	if len(p.snapshots) != 1 {
		t.Fatalf("expected one write, got %d", len(p.snapshots))
	}
}

func TestGridEnterOpensEditor(t *testing.T) {
	g, _ := newTestGrid()
	press(g, enter)
	if !g.Editing() || g.Editor().Value() != "a" {
		t.Fatalf("expected enter to open the editor on a")
	}
}

func TestGridCursorFrozenWhileEditing(t *testing.T) {
	g, _ := newTestGrid()
	press(g, runes("e")...)
	for _, k := range runes("jjlhk") {
		if resp := g.HandleAction(action.KeyInput(k)); resp != action.Ignored {
			t.Fatalf("expected %q to be consumed by the overlay, got %v", k.String(), resp)
		}
	}
	assertCursor(t, g, 0, 0)
	if g.Editor().Value() != "ajjlhk" {
		t.Fatalf("expected keys typed into the editor, got %q", g.Editor().Value())
	}
}

func TestGridEscapeLeavesInsertBeforeClosing(t *testing.T) {
	g, p := newTestGrid()
	press(g, runes("eZ")...)
	if resp := press(g, esc); resp != action.Ignored {
		t.Fatalf("expected esc to report Ignored, got %v", resp)
	}
	if !g.Editing() || g.Editor().Mode() != ModeNormal {
		t.Fatalf("expected overlay open in normal mode after first esc")
	}
	if resp := press(g, esc); resp != action.Ignored {
		t.Fatalf("expected second esc to report Ignored, got %v", resp)
	}
	if g.Editing() {
		t.Fatalf("expected overlay closed after second esc")
	}
	if v := g.Rows()[0][0]; v != "a" {
		t.Fatalf("expected cancelled edit to leave a, got %q", v)
	}
	if len(p.snapshots) != 0 {
		t.Fatalf("expected no writes for a cancelled edit, got %d", len(p.snapshots))
	}
}

func TestGridQuitKeyTypesInInsertAndCancelsInNormal(t *testing.T) {
	g, _ := newTestGrid()
	press(g, runes("eq")...)
	if !g.Editing() || g.Editor().Value() != "aq" {
		t.Fatalf("expected q typed in insert mode, got editing=%v", g.Editing())
	}
	press(g, esc)
	if resp := press(g, runes("q")...); resp != action.Ignored {
		t.Fatalf("expected q to report Ignored while the overlay is open, got %v", resp)
	}
	if g.Editing() {
		t.Fatalf("expected q in normal mode to close the overlay")
	}
}

func TestGridDeleteConfirmed(t *testing.T) {
	g, p := newTestGrid()
	press(g, runes("l")...)
	if resp := press(g, runes("d")...); resp != action.Handled {
		t.Fatalf("expected delete request to report Handled, got %v", resp)
	}
	if !g.Confirming() {
		t.Fatalf("expected confirmation overlay")
	}
	if resp := press(g, runes("y")...); resp != action.Ignored {
		t.Fatalf("expected confirm to report Ignored, got %v", resp)
	}
	want := [][]string{{"a"}, {"c", "d"}}
	if !reflect.DeepEqual(g.Rows(), want) {
		t.Fatalf("expected %v, got %v", want, g.Rows())
	}
	assertCursor(t, g, 0, 0)
	if g.Confirming() || len(p.snapshots) != 1 {
		t.Fatalf("expected overlay closed and one write, got confirming=%v writes=%d", g.Confirming(), len(p.snapshots))
	}
}

func TestGridDeleteDenied(t *testing.T) {
	for _, deny := range []action.Key{action.Rune('n'), esc, action.Rune('q')} {
		g, p := newTestGrid()
		press(g, runes("d")...)
		press(g, runes("jx")...)
		if !g.Confirming() {
			t.Fatalf("expected unrelated keys to be swallowed while confirming")
		}
		assertCursor(t, g, 0, 0)
		if resp := press(g, deny); resp != action.Ignored {
			t.Fatalf("expected deny %q to report Ignored, got %v", deny.String(), resp)
		}
		if g.Confirming() {
			t.Fatalf("expected %q to close the confirmation", deny.String())
		}
		if !reflect.DeepEqual(g.Rows(), [][]string{{"a", "b"}, {"c", "d"}}) || len(p.snapshots) != 0 {
			t.Fatalf("expected matrix unchanged and no writes after %q", deny.String())
		}
	}
}

func TestGridOverlaysAreExclusive(t *testing.T) {
	g, _ := newTestGrid()
	press(g, runes("de")...)
	if g.Editing() {
		t.Fatalf("expected edit request ignored while confirming")
	}
	press(g, runes("n")...)
	press(g, runes("ed")...)
	if g.Confirming() {
		t.Fatalf("expected delete request ignored while editing")
	}
	if g.Editor().Value() != "ad" {
		t.Fatalf("expected d typed into the editor, got %q", g.Editor().Value())
	}
}

func TestGridRejectsEditsOnEmptyRow(t *testing.T) {
	g := NewGrid([][]string{{"x"}, {}}, nil)
	press(g, runes("j")...)
	assertCursor(t, g, 1, 0)
	press(g, runes("e")...)
	press(g, runes("d")...)
	if g.Editing() || g.Confirming() {
		t.Fatalf("expected no overlay on an empty row")
	}
}

func TestGridIgnoresNonKeyActions(t *testing.T) {
	g, _ := newTestGrid()
	if resp := g.HandleAction(action.Tick()); resp != action.Handled {
		t.Fatalf("expected tick to report Handled, got %v", resp)
	}
}

func TestGridDrawShowsCellsAndOverlay(t *testing.T) {
	g, _ := newTestGrid()
	area := layout.Rect{Width: 60, Height: 20}
	view := g.Draw(area)
	lines := strings.Split(view, "\n")
	if len(lines) != 20 {
		t.Fatalf("expected 20 lines, got %d", len(lines))
	}
	plain := ansi.Strip(view)
	if !strings.Contains(plain, "a  b") || !strings.Contains(plain, "c  d") {
		t.Fatalf("expected cells in view:\n%s", plain)
	}

	press(g, runes("e")...)
	plain = ansi.Strip(g.Draw(area))
	if !strings.Contains(plain, "Editing Cell") || !strings.Contains(plain, "INSERT") {
		t.Fatalf("expected edit overlay in view:\n%s", plain)
	}
	press(g, esc, esc, action.Rune('d'))
	plain = ansi.Strip(g.Draw(area))
	if !strings.Contains(plain, `Delete "a"?`) {
		t.Fatalf("expected confirmation in view:\n%s", plain)
	}
	for _, line := range strings.Split(g.Draw(area), "\n") {
		if w := ansi.StringWidth(line); w != 60 {
			t.Fatalf("expected every line 60 cells wide, got %d", w)
		}
	}
}

func TestGridDrawSizesColumnsByClippedCells(t *testing.T) {
	long := strings.Repeat("w", 100)
	g := NewGrid([][]string{{long, "b"}, {"c", "d"}}, nil)
	plain := ansi.Strip(g.Draw(layout.Rect{Width: 80, Height: 10}))

	var first, second string
	for _, line := range strings.Split(plain, "\n") {
		switch {
		case strings.Contains(line, "…"):
			first = line
		case strings.Contains(line, "c "):
			second = line
		}
	}
	if !strings.Contains(first, "…  b") {
		t.Fatalf("expected long cell clipped before the next column:\n%s", plain)
	}
	want := table.CellWidth(clipCells([][]string{{long}}, cellMaxWidth)[0][0]) + len(table.Separator)
	gap := strings.Index(second, "d") - strings.Index(second, "c")
	if gap != want {
		t.Fatalf("expected second column at offset %d, got %d:\n%s", want, gap, plain)
	}
}

func TestClipCellsBoundsWidths(t *testing.T) {
	rows := clipCells([][]string{{"abcdefgh", "x"}, {}}, 4)
	if got := table.Widths(rows); len(got) != 2 || got[0] != 4 || got[1] != 1 {
		t.Fatalf("expected widths [4 1], got %v", got)
	}
	if len(rows[1]) != 0 {
		t.Fatalf("expected empty row to stay empty, got %v", rows[1])
	}
}
