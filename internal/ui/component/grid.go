package component

import (
	"fmt"
	"strings"

	"github.com/atomicstack/gridpop/internal/action"
	"github.com/atomicstack/gridpop/internal/format/table"
	"github.com/atomicstack/gridpop/internal/layout"
	"github.com/atomicstack/gridpop/internal/logging/events"
	"github.com/atomicstack/gridpop/internal/theme"
	"github.com/atomicstack/gridpop/internal/ui/state"
	"github.com/muesli/reflow/truncate"
)

const (
	editTitle       = "Editing Cell"
	popupPercentX   = 60
	popupPercentY   = 20
	popupMinWidth   = 24
	popupMinHeight  = 5
	confirmMinWidth = 30
	cellMaxWidth    = 24
)

// Persister receives a snapshot of the matrix after every committed change.
// Implementations must not block.
type Persister interface {
	Persist(rows [][]string)
}

// Grid edits a ragged matrix of cells. While the edit overlay or the delete
// confirmation is open, every key belongs to the overlay.
type Grid struct {
	focusState
	keys       GridKeyMap
	grid       *state.Grid
	persister  Persister
	editor     *Input
	confirming bool
	offset     int
}

// NewGrid builds an editor over rows. persister may be nil.
func NewGrid(rows [][]string, persister Persister) *Grid {
	return &Grid{
		keys:      DefaultGridKeyMap(),
		grid:      state.NewGrid(rows),
		persister: persister,
	}
}

// Keys exposes the bindings for help rendering.
func (g *Grid) Keys() GridKeyMap { return g.keys }

// Rows returns a snapshot of the matrix.
func (g *Grid) Rows() [][]string { return g.grid.Rows() }

// Cursor returns the focused coordinate.
func (g *Grid) Cursor() (row, col int) { return g.grid.Cursor() }

// Editing reports whether the edit overlay is open.
func (g *Grid) Editing() bool { return g.editor != nil }

// Editor returns the open edit overlay, or nil.
func (g *Grid) Editor() *Input { return g.editor }

// Confirming reports whether the delete confirmation is open.
func (g *Grid) Confirming() bool { return g.confirming }

// HandleAction implements Component.
func (g *Grid) HandleAction(a action.Action) action.Response {
	if a.Kind != action.KindKey {
		return action.Handled
	}
	if g.confirming {
		g.handleConfirm(a)
		return action.Ignored
	}
	if g.editor != nil {
		g.handleEdit(a)
		return action.Ignored
	}

	switch {
	case matches(a, g.keys.Down):
		g.moved(g.grid.MoveDown())
	case matches(a, g.keys.Up):
		g.moved(g.grid.MoveUp())
	case matches(a, g.keys.Left):
		g.moved(g.grid.MoveLeft())
	case matches(a, g.keys.Right):
		g.moved(g.grid.MoveRight())
	case matches(a, g.keys.Edit):
		g.openEditor()
	case matches(a, g.keys.Delete):
		g.openConfirm()
	}
	return action.Handled
}

func (g *Grid) moved(ok bool) {
	if ok {
		events.Grid.Cursor(g.grid.Cursor())
	}
}

func (g *Grid) openEditor() {
	value, ok := g.grid.Current()
	if !ok {
		return
	}
	g.editor = NewInput(WithValue(value), WithMode(ModeInsert), WithTitle(editTitle))
	g.editor.Focus()
	row, col := g.grid.Cursor()
	events.Grid.EditOpen(row, col, value)
}

func (g *Grid) handleEdit(a action.Action) {
	row, col := g.grid.Cursor()
	switch {
	case matches(a, g.keys.Commit):
		value := g.editor.Value()
		g.grid.SetCurrent(value)
		g.editor = nil
		events.Grid.EditCommit(row, col, value)
		g.persist()
	case g.editor.Mode() == ModeNormal && matches(a, g.keys.Cancel):
		g.editor = nil
		events.Grid.EditCancel(row, col, events.GridReasonEscape)
	default:
		g.editor.HandleAction(a)
	}
}

func (g *Grid) openConfirm() {
	if _, ok := g.grid.Current(); !ok {
		return
	}
	g.confirming = true
	events.Grid.DeletePrompt(g.grid.Cursor())
}

func (g *Grid) handleConfirm(a action.Action) {
	row, col := g.grid.Cursor()
	switch {
	case matches(a, g.keys.Confirm):
		g.confirming = false
		if g.grid.DeleteCurrent() {
			events.Grid.DeleteConfirm(row, col)
			g.persist()
		}
	case matches(a, g.keys.Deny):
		g.confirming = false
		events.Grid.DeleteCancel(row, col, events.GridReasonDeny)
	}
}

func (g *Grid) persist() {
	if g.persister == nil {
		return
	}
	g.persister.Persist(g.grid.Rows())
}

// Draw implements Component. Overlays are centred over the grid.
func (g *Grid) Draw(area layout.Rect) string {
	if area.Empty() {
		return ""
	}
	inner := area.Inset(1)
	base := frame(borderFor(g.focused), "", g.renderCells(inner), area)

	switch {
	case g.editor != nil:
		popup := popupRect(area, popupMinWidth)
		return layout.Overlay(base, g.editor.Draw(sized(popup)), popup.X-area.X, popup.Y-area.Y)
	case g.confirming:
		popup := popupRect(area, confirmMinWidth)
		return layout.Overlay(base, g.renderConfirm(sized(popup)), popup.X-area.X, popup.Y-area.Y)
	}
	return base
}

func popupRect(area layout.Rect, minWidth int) layout.Rect {
	r := layout.Centered(popupPercentX, popupPercentY, area)
	width, height := r.Width, r.Height
	if width < minWidth {
		width = minWidth
	}
	if height < popupMinHeight {
		height = popupMinHeight
	}
	return layout.Center(width, height, area)
}

func sized(r layout.Rect) layout.Rect {
	return layout.Rect{Width: r.Width, Height: r.Height}
}

func (g *Grid) renderConfirm(area layout.Rect) string {
	styles := theme.Default()
	value, _ := g.grid.Current()
	body := styles.Confirm.Render(fmt.Sprintf("Delete %q?", value)) + "\n" +
		styles.Info.Render("y: delete  n: keep")
	return frame(styles.PopupBorder, "Confirm", body, area)
}

func (g *Grid) renderCells(area layout.Rect) string {
	if area.Empty() {
		return ""
	}
	styles := theme.Default()
	rows := clipCells(g.grid.Rows(), min(area.Width, cellMaxWidth))
	widths := table.Widths(rows)
	cursorRow, cursorCol := g.grid.Cursor()
	g.offset = state.VisibleOffset(cursorRow, g.offset, len(rows), area.Height)

	end := g.offset + area.Height
	if end > len(rows) {
		end = len(rows)
	}
	lines := make([]string, 0, end-g.offset)
	for r := g.offset; r < end; r++ {
		if len(rows[r]) == 0 {
			marker := styles.EmptyRow.Render("·")
			if r == cursorRow {
				marker = styles.FocusedCell.Render("·")
			}
			lines = append(lines, marker)
			continue
		}
		cells := make([]string, len(rows[r]))
		for c, cell := range rows[r] {
			text := table.Pad(cell, widths[c], table.AlignLeft)
			style := styles.Cell
			if r == cursorRow && c == cursorCol {
				style = styles.FocusedCell
			}
			cells[c] = style.Render(text)
		}
		lines = append(lines, strings.Join(cells, table.Separator))
	}
	return strings.Join(lines, "\n")
}

// clipCells truncates every cell to at most width cells so column widths
// are measured on what is actually drawn.
func clipCells(rows [][]string, width int) [][]string {
	if width < 1 {
		width = 1
	}
	out := make([][]string, len(rows))
	for r, row := range rows {
		out[r] = make([]string, len(row))
		for c, cell := range row {
			out[r][c] = truncate.StringWithTail(cell, uint(width), "…")
		}
	}
	return out
}
