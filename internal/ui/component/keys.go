package component

import "github.com/charmbracelet/bubbles/key"

// GridKeyMap lists the grid editor bindings.
type GridKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Move    key.Binding
	Edit    key.Binding
	Delete  key.Binding
	Commit  key.Binding
	Cancel  key.Binding
	Confirm key.Binding
	Deny    key.Binding
}

// DefaultGridKeyMap returns the vim-style grid bindings.
func DefaultGridKeyMap() GridKeyMap {
	return GridKeyMap{
		Up:      key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "up")),
		Down:    key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "down")),
		Left:    key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h", "left")),
		Right:   key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l", "right")),
		Move:    key.NewBinding(key.WithKeys("h", "j", "k", "l"), key.WithHelp("hjkl", "move")),
		Edit:    key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Commit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel:  key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "cancel")),
		Confirm: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "confirm")),
		Deny:    key.NewBinding(key.WithKeys("n", "esc", "q"), key.WithHelp("n", "keep")),
	}
}

// ShortHelp implements help.KeyMap.
func (k GridKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Edit, k.Delete}
}

// FullHelp implements help.KeyMap.
func (k GridKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Edit, k.Commit, k.Cancel},
		{k.Delete, k.Confirm, k.Deny},
	}
}

// InputKeyMap lists the modal editor bindings. Normal-mode bindings may use
// plain letters; insert-mode bindings never do.
type InputKeyMap struct {
	Insert      key.Binding
	Append      key.Binding
	NormalLeft  key.Binding
	NormalRight key.Binding
	NormalStart key.Binding
	NormalEnd   key.Binding

	Escape        key.Binding
	Submit        key.Binding
	Left          key.Binding
	Right         key.Binding
	Start         key.Binding
	End           key.Binding
	Backspace     key.Binding
	DeleteWord    key.Binding
	DeleteToStart key.Binding
}

// DefaultInputKeyMap returns the editor bindings.
func DefaultInputKeyMap() InputKeyMap {
	return InputKeyMap{
		Insert:      key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "insert")),
		Append:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "append")),
		NormalLeft:  key.NewBinding(key.WithKeys("h", "left")),
		NormalRight: key.NewBinding(key.WithKeys("l", "right")),
		NormalStart: key.NewBinding(key.WithKeys("0", "home")),
		NormalEnd:   key.NewBinding(key.WithKeys("$", "end")),

		Escape:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "normal mode")),
		Submit:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Left:          key.NewBinding(key.WithKeys("left")),
		Right:         key.NewBinding(key.WithKeys("right")),
		Start:         key.NewBinding(key.WithKeys("ctrl+a", "home")),
		End:           key.NewBinding(key.WithKeys("ctrl+e", "end")),
		Backspace:     key.NewBinding(key.WithKeys("backspace", "ctrl+h")),
		DeleteWord:    key.NewBinding(key.WithKeys("ctrl+w", "alt+backspace")),
		DeleteToStart: key.NewBinding(key.WithKeys("ctrl+u")),
	}
}

// TableKeyMap lists the table bindings.
type TableKeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Home     key.Binding
	End      key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Filter   key.Binding
	Select   key.Binding

	FilterAccept     key.Binding
	FilterCancel     key.Binding
	FilterBackspace  key.Binding
	FilterDeleteWord key.Binding
	FilterLeft       key.Binding
	FilterRight      key.Binding
}

// DefaultTableKeyMap returns the table bindings.
func DefaultTableKeyMap() TableKeyMap {
	return TableKeyMap{
		Next:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "next")),
		Prev:     key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "prev")),
		Home:     key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "first")),
		End:      key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "last")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+b"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+f"), key.WithHelp("pgdown", "page down")),
		Filter:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),

		FilterAccept:     key.NewBinding(key.WithKeys("enter")),
		FilterCancel:     key.NewBinding(key.WithKeys("esc")),
		FilterBackspace:  key.NewBinding(key.WithKeys("backspace", "ctrl+h")),
		FilterDeleteWord: key.NewBinding(key.WithKeys("ctrl+w")),
		FilterLeft:       key.NewBinding(key.WithKeys("left")),
		FilterRight:      key.NewBinding(key.WithKeys("right")),
	}
}

// CounterKeyMap lists the counter bindings.
type CounterKeyMap struct {
	Increment key.Binding
	Decrement key.Binding
	Select    key.Binding
}

// DefaultCounterKeyMap returns the counter bindings.
func DefaultCounterKeyMap() CounterKeyMap {
	return CounterKeyMap{
		Increment: key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "increment")),
		Decrement: key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "decrement")),
		Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "home")),
	}
}
