// Package page composes leaf components into full-screen pages and routes
// actions to the focused leaf before interpreting them at page level.
package page

import (
	"github.com/atomicstack/gridpop/internal/action"
	"github.com/atomicstack/gridpop/internal/backend"
	"github.com/atomicstack/gridpop/internal/layout"
	"github.com/charmbracelet/bubbles/key"
)

// Page is the unit the event loop drives.
type Page interface {
	ID() action.PageID
	Draw(area layout.Rect) string
	GetAction(evt backend.Event) action.Action
	HandleAction(a action.Action)
	FocusNext()
	FocusPrev()
}

// Translate classifies a raw event. Failures and unknown kinds become None.
func Translate(evt backend.Event) action.Action {
	switch evt.Kind {
	case backend.KindKey:
		return action.KeyInput(evt.Key)
	case backend.KindTick:
		return action.Tick()
	case backend.KindRender:
		return action.Render()
	case backend.KindQuit:
		return action.Quit()
	default:
		return action.None()
	}
}

func matches(a action.Action, bindings ...key.Binding) bool {
	return a.Kind == action.KindKey && key.Matches(a.Key, bindings...)
}
