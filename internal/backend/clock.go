package backend

import (
	"context"
	"sync"
	"time"
)

// Clock feeds periodic Tick and Render events into a Stream.
type Clock struct {
	stream *Stream

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClock starts one poller per rate. Rates are expressed per second; a
// non-positive rate disables that pulse.
func NewClock(stream *Stream, tickRate, frameRate float64) *Clock {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Clock{
		stream: stream,
		ctx:    ctx,
		cancel: cancel,
	}
	c.start(KindTick, tickRate)
	c.start(KindRender, frameRate)
	return c
}

// Interval converts a per-second rate into a ticker period.
func Interval(rate float64) time.Duration {
	if rate <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / rate)
}

// Stop cancels the clock. Pollers exit after their current emit; use Wait
// when a clean drain is required.
func (c *Clock) Stop() {
	c.cancel()
}

// Wait blocks until every poller goroutine has exited.
func (c *Clock) Wait() {
	c.wg.Wait()
}

func (c *Clock) start(kind Kind, rate float64) {
	interval := Interval(rate)
	if interval <= 0 {
		return
	}
	c.wg.Add(1)
	go c.poll(kind, interval)
}

func (c *Clock) poll(kind Kind, interval time.Duration) {
	defer c.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.ctx.Done():
			return
		case <-ticker.C:
			// Pulses are dropped while the stream is full.
			c.stream.Offer(Event{Kind: kind})
		}
	}
}
