package state

import "unicode"

// Text is an editable single-line buffer addressed by rune offsets.
type Text struct {
	value  string
	cursor int
}

// NewText returns a buffer holding value with the cursor at its end.
func NewText(value string) Text {
	t := Text{}
	t.Set(value, len([]rune(value)))
	return t
}

// Value returns the buffer contents.
func (t *Text) Value() string {
	return t.value
}

// Len returns the buffer length in runes.
func (t *Text) Len() int {
	return len([]rune(t.value))
}

// Cursor returns the rune offset of the cursor, always within [0, Len()].
func (t *Text) Cursor() int {
	n := t.Len()
	if t.cursor < 0 {
		return 0
	}
	if t.cursor > n {
		return n
	}
	return t.cursor
}

// Set replaces the contents and clamps cursor into range.
func (t *Text) Set(value string, cursor int) {
	t.value = value
	n := len([]rune(value))
	if cursor < 0 {
		cursor = 0
	}
	if cursor > n {
		cursor = n
	}
	t.cursor = cursor
}

// Clear empties the buffer and resets the cursor.
func (t *Text) Clear() {
	t.value = ""
	t.cursor = 0
}

// Insert places text at the cursor and advances past it.
func (t *Text) Insert(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(t.value)
	pos := t.Cursor()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	t.Set(string(updated), pos+len(insert))
	return true
}

// InsertRune places r at the cursor.
func (t *Text) InsertRune(r rune) bool {
	return t.Insert(string(r))
}

// DeleteBackward removes the rune before the cursor.
func (t *Text) DeleteBackward() bool {
	runes := []rune(t.value)
	pos := t.Cursor()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	updated := append(runes[:pos-1], runes[pos:]...)
	t.Set(string(updated), pos-1)
	return true
}

// DeleteWordBackward removes the word preceding the cursor.
func (t *Text) DeleteWordBackward() bool {
	runes := []rune(t.value)
	pos := t.Cursor()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := wordStart(runes, pos)
	updated := append(runes[:i], runes[pos:]...)
	t.Set(string(updated), i)
	return true
}

// DeleteToStart removes everything before the cursor.
func (t *Text) DeleteToStart() bool {
	runes := []rune(t.value)
	pos := t.Cursor()
	if pos == 0 {
		return false
	}
	t.Set(string(runes[pos:]), 0)
	return true
}

// MoveStart moves the cursor to the start.
func (t *Text) MoveStart() bool {
	if t.Cursor() == 0 {
		return false
	}
	t.cursor = 0
	return true
}

// MoveEnd moves the cursor to the end.
func (t *Text) MoveEnd() bool {
	end := t.Len()
	if t.Cursor() == end {
		return false
	}
	t.cursor = end
	return true
}

// MoveLeft moves the cursor one rune backward.
func (t *Text) MoveLeft() bool {
	if t.Cursor() == 0 {
		return false
	}
	t.cursor = t.Cursor() - 1
	return true
}

// MoveRight moves the cursor one rune forward.
func (t *Text) MoveRight() bool {
	pos := t.Cursor()
	if pos >= t.Len() {
		return false
	}
	t.cursor = pos + 1
	return true
}

// MoveWordBackward moves the cursor to the start of the previous word.
func (t *Text) MoveWordBackward() bool {
	runes := []rune(t.value)
	pos := t.Cursor()
	if pos == 0 {
		return false
	}
	i := wordStart(runes, pos)
	if i == pos {
		return false
	}
	t.cursor = i
	return true
}

// MoveWordForward moves the cursor past the next word.
func (t *Text) MoveWordForward() bool {
	runes := []rune(t.value)
	pos := t.Cursor()
	if pos >= len(runes) {
		return false
	}
	i := pos
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	if i == pos {
		return false
	}
	t.cursor = i
	return true
}

func wordStart(runes []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}
