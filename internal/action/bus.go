package action

import (
	"sync"

	"github.com/atomicstack/gridpop/internal/logging/events"
)

// Bus is an unbounded many-producer, single-consumer action queue. Send never
// blocks, so handlers may enqueue follow-up actions while the consumer drains.
type Bus struct {
	mu    sync.Mutex
	queue []Action
}

// NewBus initialises an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Send enqueues a.
func (b *Bus) Send(a Action) {
	b.mu.Lock()
	b.queue = append(b.queue, a)
	depth := len(b.queue)
	b.mu.Unlock()
	events.Action.Queue(a.String(), depth)
}

// TryRecv dequeues the oldest action without blocking.
func (b *Bus) TryRecv() (Action, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.queue) == 0 {
		return Action{}, false
	}
	next := b.queue[0]
	b.queue[0] = Action{}
	b.queue = b.queue[1:]
	if len(b.queue) == 0 {
		b.queue = nil
	}
	return next, true
}

// Len reports the number of queued actions.
func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.queue)
}
