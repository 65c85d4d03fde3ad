// Package terminal drives the real terminal through a bubbletea program and
// adapts it to the event loop: keys flow out through a backend.Stream and
// frames flow back in through Draw.
package terminal

import (
	"context"
	"errors"
	"os"
	"sync"
	"sync/atomic"

	"github.com/atomicstack/gridpop/internal/backend"
	"github.com/atomicstack/gridpop/internal/layout"
	"github.com/atomicstack/gridpop/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

type frameMsg struct{}

// Terminal owns the bubbletea program. It satisfies the app renderer.
type Terminal struct {
	stream  *backend.Stream
	program *tea.Program

	width  atomic.Int64
	height atomic.Int64

	mu    sync.Mutex
	frame string

	ctx     context.Context
	cancel  context.CancelFunc
	wake    chan struct{}
	done    chan struct{}
	started atomic.Bool
	err     error
}

// New prepares a program that feeds stream. Extra options are appended to
// the defaults (alternate screen).
func New(stream *backend.Stream, opts ...tea.ProgramOption) *Terminal {
	ctx, cancel := context.WithCancel(context.Background())
	t := &Terminal{
		stream: stream,
		ctx:    ctx,
		cancel: cancel,
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		t.setSize(w, h)
	}
	options := append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	t.program = tea.NewProgram(model{term: t}, options...)
	return t
}

// Start runs the program and the frame pump in the background.
func (t *Terminal) Start() {
	if !t.started.CompareAndSwap(false, true) {
		return
	}
	go t.pump()
	go func() {
		defer close(t.done)
		_, err := t.program.Run()
		t.exited(err)
	}()
}

// exited records the program's exit error and queues a Quit so the loop
// stops even when the program ends on its own. The Quit waits for room in
// the stream; only Close gives up on it.
func (t *Terminal) exited(err error) {
	if errors.Is(err, tea.ErrProgramKilled) {
		err = nil
	}
	t.err = err
	t.push(backend.Event{Kind: backend.KindQuit})
}

// Size reports the last known terminal size.
func (t *Terminal) Size() (int, int) {
	return int(t.width.Load()), int(t.height.Load())
}

// Draw renders a frame for the whole screen and schedules it for output.
// It never blocks on the program.
func (t *Terminal) Draw(fn func(area layout.Rect) string) error {
	w, h := t.Size()
	out := fn(layout.Rect{Width: w, Height: h})
	t.mu.Lock()
	t.frame = out
	t.mu.Unlock()
	select {
	case t.wake <- struct{}{}:
	default:
	}
	return nil
}

// Close quits the program and waits for it to restore the terminal.
func (t *Terminal) Close() error {
	t.cancel()
	if !t.started.Load() {
		return nil
	}
	t.program.Quit()
	<-t.done
	return t.err
}

func (t *Terminal) currentFrame() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.frame
}

func (t *Terminal) setSize(w, h int) {
	t.width.Store(int64(w))
	t.height.Store(int64(h))
}

// pump forwards frame wake-ups to the program so Draw callers never wait on
// the program's message loop.
func (t *Terminal) pump() {
	for {
		select {
		case <-t.ctx.Done():
			return
		case <-t.wake:
			t.program.Send(frameMsg{})
		}
	}
}

// push hands an event to the loop, waiting while the loop is busy.
func (t *Terminal) push(evt backend.Event) {
	t.stream.Push(t.ctx, evt)
}

type model struct {
	term  *Terminal
	frame string
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		for _, evt := range translateKey(msg) {
			m.term.push(evt)
		}
	case tea.WindowSizeMsg:
		m.term.setSize(msg.Width, msg.Height)
		events.App.Resize(msg.Width, msg.Height)
		m.term.push(backend.Event{Kind: backend.KindRender})
	case frameMsg:
		m.frame = m.term.currentFrame()
	}
	return m, nil
}

func (m model) View() string { return m.frame }
