// Package backend supplies the raw input events consumed by the event loop.
package backend

import (
	"context"
	"errors"

	"github.com/atomicstack/gridpop/internal/action"
)

// ErrClosed is returned by Next once a source has shut down and drained.
var ErrClosed = errors.New("event source closed")

// Kind represents the type of a raw event.
type Kind int

const (
	KindKey Kind = iota
	KindTick
	KindRender
	KindQuit
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindKey:
		return "key"
	case KindTick:
		return "tick"
	case KindRender:
		return "render"
	case KindQuit:
		return "quit"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Event conveys a decoded key, a timer pulse, or a backend failure.
type Event struct {
	Kind Kind
	Key  action.Key
	Err  error
}

// KeyEvent wraps k in an Event.
func KeyEvent(k action.Key) Event {
	return Event{Kind: KindKey, Key: k}
}

// Source yields events one at a time. Next blocks until an event is ready,
// ctx is done, or the source closes.
type Source interface {
	Next(ctx context.Context) (Event, error)
}
