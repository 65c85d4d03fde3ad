package state

// MoveCursorNext advances the cursor, wrapping from the last row to the first.
func (r *Rows) MoveCursorNext() bool {
	n := len(r.Items)
	if n == 0 {
		r.Cursor = 0
		return false
	}
	old := r.Cursor
	r.Cursor = (r.Cursor + 1) % n
	return old != r.Cursor
}

// MoveCursorPrev retreats the cursor, wrapping from the first row to the last.
func (r *Rows) MoveCursorPrev() bool {
	n := len(r.Items)
	if n == 0 {
		r.Cursor = 0
		return false
	}
	old := r.Cursor
	if r.Cursor <= 0 {
		r.Cursor = n - 1
	} else {
		r.Cursor--
	}
	return old != r.Cursor
}

// MoveCursorHome moves the cursor to the first item.
func (r *Rows) MoveCursorHome() bool {
	if len(r.Items) == 0 {
		r.Cursor = 0
		return false
	}
	old := r.Cursor
	r.Cursor = 0
	return old != r.Cursor
}

// MoveCursorEnd moves the cursor to the last item.
func (r *Rows) MoveCursorEnd() bool {
	n := len(r.Items)
	if n == 0 {
		r.Cursor = 0
		return false
	}
	old := r.Cursor
	r.Cursor = n - 1
	return old != r.Cursor
}

// MoveCursorPageUp moves the cursor up by the given page size.
func (r *Rows) MoveCursorPageUp(maxVisible int) bool {
	return r.moveCursorBy(-r.pageSize(maxVisible))
}

// MoveCursorPageDown moves the cursor down by the given page size.
func (r *Rows) MoveCursorPageDown(maxVisible int) bool {
	return r.moveCursorBy(r.pageSize(maxVisible))
}

func (r *Rows) moveCursorBy(delta int) bool {
	if len(r.Items) == 0 {
		r.Cursor = 0
		return false
	}
	old := r.Cursor
	if r.Cursor < 0 {
		r.Cursor = 0
	}
	r.Cursor += delta
	if r.Cursor < 0 {
		r.Cursor = 0
	}
	if r.Cursor >= len(r.Items) {
		r.Cursor = len(r.Items) - 1
	}
	return r.Cursor != old
}

func (r *Rows) pageSize(maxVisible int) int {
	total := len(r.Items)
	if total == 0 {
		return 0
	}
	size := maxVisible
	if size <= 0 || size > total {
		size = total
	}
	return size
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays visible.
func (r *Rows) EnsureCursorVisible(maxVisible int) {
	if len(r.Items) == 0 {
		r.Cursor = 0
		r.ViewportOffset = 0
		return
	}
	if r.Cursor < 0 {
		r.Cursor = 0
	}
	if r.Cursor >= len(r.Items) {
		r.Cursor = len(r.Items) - 1
	}
	r.ViewportOffset = VisibleOffset(r.Cursor, r.ViewportOffset, len(r.Items), maxVisible)
}

// VisibleOffset returns the first visible index of a window of maxVisible
// entries over total entries that keeps cursor in view, starting from offset.
func VisibleOffset(cursor, offset, total, maxVisible int) int {
	if maxVisible <= 0 || total <= maxVisible {
		return 0
	}
	maxOffset := total - maxVisible
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	if cursor < offset {
		return cursor
	}
	if cursor > offset+maxVisible-1 {
		offset = cursor - maxVisible + 1
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	return offset
}
