package state

// Item is one selectable row of a list.
type Item struct {
	ID    string
	Label string
}

// Rows encapsulates list state such as cursor position, filter and viewport.
type Rows struct {
	Items          []Item
	Full           []Item
	Filter         Text
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// NewRows constructs list state over items with the cursor on the first row.
func NewRows(items []Item) *Rows {
	r := &Rows{LastCursor: -1}
	r.UpdateItems(items)
	return r
}

// UpdateItems replaces the backing items, reapplying the active filter.
func (r *Rows) UpdateItems(items []Item) {
	prevOffset := r.ViewportOffset
	r.Full = CloneItems(items)
	r.applyFilter()
	if len(r.Items) == 0 {
		r.ViewportOffset = 0
		return
	}
	if prevOffset < 0 || prevOffset > len(r.Items)-1 {
		r.ViewportOffset = 0
		return
	}
	r.ViewportOffset = prevOffset
}

// Current returns the item under the cursor.
func (r *Rows) Current() (Item, bool) {
	if r.Cursor < 0 || r.Cursor >= len(r.Items) {
		return Item{}, false
	}
	return r.Items[r.Cursor], true
}

// CloneItems produces a shallow copy of the provided items.
func CloneItems(items []Item) []Item {
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
