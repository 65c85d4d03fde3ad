package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/atomicstack/gridpop/internal/logging/events"
)

var (
	// ErrQueueFull reports a snapshot dropped because the queue was full.
	ErrQueueFull = errors.New("write queue full")
	// ErrClosed reports a snapshot offered after Close.
	ErrClosed = errors.New("writer closed")
)

const (
	defaultQueueSize   = 16
	defaultSaveTimeout = 5 * time.Second
	noticeBuffer       = 16
)

// Notice reports the outcome of one background write. Err is nil on success.
type Notice struct {
	Rows int
	Err  error
	At   time.Time
}

// WriterOptions tunes a Writer. Zero values select defaults.
type WriterOptions struct {
	QueueSize   int
	SaveTimeout time.Duration
	MinInterval time.Duration
}

// Writer saves snapshots on a single background goroutine in submission
// order. Persist never blocks; failures surface only as notices.
type Writer struct {
	store   Store
	kind    string
	timeout time.Duration

	mu     sync.Mutex
	closed bool
	latest [][]string
	cached bool

	queue    chan [][]string
	notices  chan Notice
	throttle *throttle
	// stop is cancelled when Close gives up waiting; it cuts short a
	// throttled wait and the save in flight.
	stop   context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

// NewWriter starts the worker for s.
func NewWriter(s Store, opts WriterOptions) *Writer {
	if opts.QueueSize <= 0 {
		opts.QueueSize = defaultQueueSize
	}
	if opts.SaveTimeout <= 0 {
		opts.SaveTimeout = defaultSaveTimeout
	}
	stop, cancel := context.WithCancel(context.Background())
	w := &Writer{
		store:    s,
		kind:     kindOf(s),
		timeout:  opts.SaveTimeout,
		queue:    make(chan [][]string, opts.QueueSize),
		notices:  make(chan Notice, noticeBuffer),
		throttle: newThrottle(opts.MinInterval),
		stop:     stop,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
	go w.run()
	return w
}

// Persist snapshots rows and queues them for saving.
func (w *Writer) Persist(rows [][]string) {
	snap := cloneRows(rows)
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		events.Store.Drop(len(snap), "closed")
		w.notify(Notice{Rows: len(snap), Err: ErrClosed, At: time.Now()})
		return
	}
	w.latest = snap
	w.cached = true
	select {
	case w.queue <- snap:
		events.Store.Queue(len(snap), len(w.queue))
	default:
		events.Store.Drop(len(snap), "queue full")
		w.notify(Notice{Rows: len(snap), Err: ErrQueueFull, At: time.Now()})
	}
}

// Load returns the most recently persisted snapshot, falling back to the
// store before the first Persist.
func (w *Writer) Load(ctx context.Context) ([][]string, error) {
	w.mu.Lock()
	if w.cached {
		snap := cloneRows(w.latest)
		w.mu.Unlock()
		return snap, nil
	}
	w.mu.Unlock()
	return w.store.Load(ctx)
}

// Notices delivers write outcomes. Notices are dropped when nobody reads.
func (w *Writer) Notices() <-chan Notice {
	return w.notices
}

// Close stops accepting snapshots and waits until queued writes finish or ctx
// is done. When ctx expires the worker abandons the remaining writes, and a
// throttled wait or a save in flight is cancelled.
func (w *Writer) Close(ctx context.Context) error {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.queue)
	}
	w.mu.Unlock()
	select {
	case <-w.done:
		w.cancel()
		return nil
	case <-ctx.Done():
		w.cancel()
		return fmt.Errorf("flush pending writes: %w", ctx.Err())
	}
}

func (w *Writer) run() {
	defer close(w.done)
	for rows := range w.queue {
		if !w.throttle.wait(w.stop) {
			events.Store.Drop(len(rows), "closed")
			w.notify(Notice{Rows: len(rows), Err: ErrClosed, At: time.Now()})
			continue
		}
		ctx, cancel := context.WithTimeout(w.stop, w.timeout)
		err := w.store.Save(ctx, rows)
		cancel()
		if err != nil {
			events.Store.Fail(w.kind, err)
		} else {
			events.Store.Write(w.kind, len(rows))
		}
		w.notify(Notice{Rows: len(rows), Err: err, At: time.Now()})
	}
}

func (w *Writer) notify(n Notice) {
	select {
	case w.notices <- n:
	default:
	}
}

func cloneRows(rows [][]string) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = append(make([]string, 0, len(row)), row...)
	}
	return out
}
