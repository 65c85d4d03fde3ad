package backend

import (
	"context"
	"sync"
)

// Stream is a buffered Source fed by any number of producers.
type Stream struct {
	events chan Event
	done   chan struct{}
	once   sync.Once
}

// NewStream creates a stream that buffers up to size events.
func NewStream(size int) *Stream {
	if size <= 0 {
		size = 1
	}
	return &Stream{
		events: make(chan Event, size),
		done:   make(chan struct{}),
	}
}

// Push blocks until evt is buffered, ctx is done, or the stream closes.
func (s *Stream) Push(ctx context.Context, evt Event) bool {
	select {
	case <-s.done:
		return false
	default:
	}
	select {
	case <-ctx.Done():
		return false
	case <-s.done:
		return false
	case s.events <- evt:
		return true
	}
}

// Offer buffers evt only if there is room, reporting whether it was kept.
func (s *Stream) Offer(evt Event) bool {
	select {
	case <-s.done:
		return false
	default:
	}
	select {
	case s.events <- evt:
		return true
	default:
		return false
	}
}

// Next implements Source. Buffered events are still delivered after Close.
func (s *Stream) Next(ctx context.Context) (Event, error) {
	select {
	case evt := <-s.events:
		return evt, nil
	default:
	}
	select {
	case <-ctx.Done():
		return Event{}, ctx.Err()
	case evt := <-s.events:
		return evt, nil
	case <-s.done:
		select {
		case evt := <-s.events:
			return evt, nil
		default:
			return Event{}, ErrClosed
		}
	}
}

// Close stops accepting events. It is safe to call more than once.
func (s *Stream) Close() {
	s.once.Do(func() { close(s.done) })
}
