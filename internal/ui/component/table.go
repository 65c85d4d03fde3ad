package component

import (
	"strings"

	"github.com/atomicstack/gridpop/internal/action"
	"github.com/atomicstack/gridpop/internal/layout"
	"github.com/atomicstack/gridpop/internal/logging/events"
	"github.com/atomicstack/gridpop/internal/theme"
	"github.com/atomicstack/gridpop/internal/ui/state"
	"github.com/muesli/reflow/truncate"
)

// Table is a selectable, filterable list. Selection wraps at both ends and
// enter requests a switch to the target page.
type Table struct {
	focusState
	keys      TableKeyMap
	title     string
	rows      *state.Rows
	filtering bool
	sender    action.Sender
	target    action.PageID
	// page is the row count of the last draw; zero pages over everything.
	page int
}

// NewTable builds a table over items. Selecting a row sends
// ChangePage(target) through sender.
func NewTable(title string, items []state.Item, sender action.Sender, target action.PageID) *Table {
	return &Table{
		keys:   DefaultTableKeyMap(),
		title:  title,
		rows:   state.NewRows(items),
		sender: sender,
		target: target,
	}
}

// Selected returns the highlighted row.
func (t *Table) Selected() (state.Item, bool) { return t.rows.Current() }

// Filtering reports whether keys currently edit the filter.
func (t *Table) Filtering() bool { return t.filtering }

// Filter returns the active filter query.
func (t *Table) Filter() string { return t.rows.Filter.Value() }

// Visible returns the rows that pass the filter.
func (t *Table) Visible() []state.Item { return state.CloneItems(t.rows.Items) }

// HandleAction implements Component.
func (t *Table) HandleAction(a action.Action) action.Response {
	if a.Kind != action.KindKey {
		return action.Handled
	}
	if t.filtering {
		t.handleFilter(a)
		return action.Ignored
	}
	switch {
	case matches(a, t.keys.Next):
		t.moved(t.rows.MoveCursorNext())
	case matches(a, t.keys.Prev):
		t.moved(t.rows.MoveCursorPrev())
	case matches(a, t.keys.Home):
		t.moved(t.rows.MoveCursorHome())
	case matches(a, t.keys.End):
		t.moved(t.rows.MoveCursorEnd())
	case matches(a, t.keys.PageUp):
		t.moved(t.rows.MoveCursorPageUp(t.page))
	case matches(a, t.keys.PageDown):
		t.moved(t.rows.MoveCursorPageDown(t.page))
	case matches(a, t.keys.Filter):
		t.filtering = true
		return action.Ignored
	case matches(a, t.keys.Select):
		if _, ok := t.rows.Current(); ok && t.sender != nil {
			t.sender.Send(action.ChangePage(t.target))
		}
	}
	return action.Handled
}

func (t *Table) moved(ok bool) {
	if ok {
		events.Table.Cursor(t.rows.Cursor)
	}
}

func (t *Table) handleFilter(a action.Action) {
	changed := false
	switch {
	case matches(a, t.keys.FilterAccept):
		t.filtering = false
	case matches(a, t.keys.FilterCancel):
		t.filtering = false
		changed = t.rows.ClearFilter()
	case matches(a, t.keys.FilterBackspace):
		changed = t.rows.DeleteFilterRuneBackward()
	case matches(a, t.keys.FilterDeleteWord):
		changed = t.rows.DeleteFilterWordBackward()
	case matches(a, t.keys.FilterLeft):
		t.rows.Filter.MoveLeft()
	case matches(a, t.keys.FilterRight):
		t.rows.Filter.MoveRight()
	case a.Key.Printable():
		changed = t.rows.InsertFilterText(string(a.Key.Rune))
	}
	if changed {
		events.Table.Filter(t.rows.Filter.Value(), len(t.rows.Items))
	}
}

// Draw implements Component.
func (t *Table) Draw(area layout.Rect) string {
	if area.Empty() {
		return ""
	}
	styles := theme.Default()
	inner := area.Inset(1)
	lines := make([]string, 0, inner.Height)
	if t.title != "" {
		lines = append(lines, styles.Title.Render(t.title))
	}
	if t.filtering || t.rows.Filter.Value() != "" {
		lines = append(lines, styles.FilterPrompt.Render("/")+styles.Filter.Render(t.rows.Filter.Value()))
	}

	visible := inner.Height - len(lines)
	t.page = visible
	t.rows.EnsureCursorVisible(visible)
	end := t.rows.ViewportOffset + visible
	if end > len(t.rows.Items) {
		end = len(t.rows.Items)
	}
	width := inner.Width - 2
	if width < 1 {
		width = 1
	}
	if len(t.rows.Items) == 0 {
		lines = append(lines, styles.Info.Render("no matching rows"))
	}
	for i := t.rows.ViewportOffset; i < end && i >= 0; i++ {
		label := truncate.StringWithTail(t.rows.Items[i].Label, uint(width), "…")
		if i == t.rows.Cursor {
			style := styles.Item
			if t.focused {
				style = styles.SelectedItem
			}
			lines = append(lines, style.Render("> "+label))
			continue
		}
		lines = append(lines, styles.Item.Render("  "+label))
	}
	return frame(borderFor(t.focused), "", strings.Join(lines, "\n"), area)
}
