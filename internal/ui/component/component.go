// Package component holds the leaf regions a page lays out: each owns its
// visual state and reacts to the actions routed to it while focused.
package component

import (
	"github.com/atomicstack/gridpop/internal/action"
	"github.com/atomicstack/gridpop/internal/layout"
	"github.com/charmbracelet/bubbles/key"
)

// Component is a leaf of a page's focus chain.
type Component interface {
	// HandleAction reacts to a, returning Ignored when the enclosing page
	// must not interpret the same action.
	HandleAction(a action.Action) action.Response
	// Draw renders the component into exactly area.Width x area.Height cells.
	Draw(area layout.Rect) string
	Focus()
	Unfocus()
	Focused() bool
}

// focusState supplies the focus half of Component.
type focusState struct {
	focused bool
}

func (f *focusState) Focus() { f.focused = true }
func (f *focusState) Unfocus() { f.focused = false }
func (f *focusState) Focused() bool { return f.focused }

func matches(a action.Action, bindings ...key.Binding) bool {
	return a.Kind == action.KindKey && key.Matches(a.Key, bindings...)
}
