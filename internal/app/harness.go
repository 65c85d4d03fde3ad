package app

import (
	"context"
	"strings"
	"sync"

	"github.com/atomicstack/gridpop/internal/action"
	"github.com/atomicstack/gridpop/internal/backend"
	"github.com/atomicstack/gridpop/internal/layout"
)

// Recorder is a Renderer that keeps every frame it is asked to draw.
type Recorder struct {
	Width  int
	Height int

	mu     sync.Mutex
	frames []string
}

// NewRecorder returns a recorder with a fixed screen size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) Size() (int, int) { return r.Width, r.Height }

func (r *Recorder) Draw(fn func(area layout.Rect) string) error {
	out := fn(layout.Rect{Width: r.Width, Height: r.Height})
	r.mu.Lock()
	r.frames = append(r.frames, out)
	r.mu.Unlock()
	return nil
}

// Frames returns the frames drawn so far.
func (r *Recorder) Frames() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.frames...)
}

// Last returns the most recent frame.
func (r *Recorder) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.frames) == 0 {
		return ""
	}
	return r.frames[len(r.frames)-1]
}

// Harness drives an App programmatically for integration tests.
type Harness struct {
	app      *App
	renderer *Recorder
	quit     bool
}

// NewHarness creates a harness for the provided app.
func NewHarness(a *App, r *Recorder) *Harness {
	return &Harness{app: a, renderer: r}
}

// Send routes one event through the app and drains the queue.
func (h *Harness) Send(evt backend.Event) error {
	if h.quit {
		return nil
	}
	quit, err := h.app.Step(evt, h.renderer)
	h.quit = h.quit || quit
	return err
}

// Keys sends each key in order, stopping at the first error.
func (h *Harness) Keys(keys ...action.Key) error {
	for _, k := range keys {
		if err := h.Send(backend.KeyEvent(k)); err != nil {
			return err
		}
	}
	return nil
}

// Type sends one rune key per character of s.
func (h *Harness) Type(s string) error {
	for _, r := range s {
		if err := h.Send(backend.KeyEvent(action.Rune(r))); err != nil {
			return err
		}
	}
	return nil
}

// Render requests a frame and returns it.
func (h *Harness) Render() (string, error) {
	if err := h.Send(backend.Event{Kind: backend.KindRender}); err != nil {
		return "", err
	}
	return h.renderer.Last(), nil
}

// Script runs a whole event sequence through Loop via a closed stream.
func (h *Harness) Script(ctx context.Context, evts ...backend.Event) error {
	stream := backend.NewStream(len(evts) + 1)
	for _, evt := range evts {
		stream.Push(ctx, evt)
	}
	stream.Close()
	return h.app.Loop(ctx, stream, h.renderer)
}

// Quit reports whether a quit action has been drained.
func (h *Harness) Quit() bool { return h.quit }

// App exposes the underlying app.
func (h *Harness) App() *App { return h.app }

// Screen returns the last frame with trailing padding removed from each line.
func (h *Harness) Screen() string {
	lines := strings.Split(h.renderer.Last(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}
