// Package action defines the semantic actions routed between the event loop,
// pages and components, and the queue that carries them.
package action

import "fmt"

// Kind enumerates the closed set of action variants.
type Kind int

const (
	KindNone Kind = iota
	KindTick
	KindKey
	KindQuit
	KindRender
	KindChangePage
)

func (k Kind) String() string {
	switch k {
	case KindTick:
		return "tick"
	case KindKey:
		return "key"
	case KindQuit:
		return "quit"
	case KindRender:
		return "render"
	case KindChangePage:
		return "change-page"
	default:
		return "none"
	}
}

// PageID identifies a top-level page.
type PageID int

const (
	PageHome PageID = iota
	PageDetails
	PageCounter
)

func (p PageID) String() string {
	switch p {
	case PageHome:
		return "home"
	case PageDetails:
		return "details"
	case PageCounter:
		return "counter"
	default:
		return fmt.Sprintf("page(%d)", int(p))
	}
}

// Action is a value type; Key is meaningful only for KindKey and Page only
// for KindChangePage.
type Action struct {
	Kind Kind
	Key  Key
	Page PageID
}

func Tick() Action { return Action{Kind: KindTick} }
func KeyInput(k Key) Action { return Action{Kind: KindKey, Key: k} }
func Quit() Action { return Action{Kind: KindQuit} }
func Render() Action { return Action{Kind: KindRender} }
func None() Action { return Action{Kind: KindNone} }
func ChangePage(p PageID) Action { return Action{Kind: KindChangePage, Page: p} }

// IsKey reports whether a is a key action whose key renders as name.
func (a Action) IsKey(name string) bool {
	return a.Kind == KindKey && a.Key.String() == name
}

func (a Action) String() string {
	switch a.Kind {
	case KindKey:
		return "key(" + a.Key.String() + ")"
	case KindChangePage:
		return "change-page(" + a.Page.String() + ")"
	default:
		return a.Kind.String()
	}
}

// Response tells the enclosing level whether it may still interpret an action
// that was delivered to a child.
type Response int

const (
	// Handled is the default: the enclosing level may react as well.
	Handled Response = iota
	// Ignored means the child consumed the action and propagation stops.
	Ignored
)

func (r Response) String() string {
	if r == Ignored {
		return "ignored"
	}
	return "handled"
}

// Sender accepts actions for later dispatch.
type Sender interface {
	Send(Action)
}
