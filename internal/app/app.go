package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/atomicstack/gridpop/internal/action"
	"github.com/atomicstack/gridpop/internal/backend"
	"github.com/atomicstack/gridpop/internal/layout"
	"github.com/atomicstack/gridpop/internal/logging"
	"github.com/atomicstack/gridpop/internal/logging/events"
	"github.com/atomicstack/gridpop/internal/store"
	"github.com/atomicstack/gridpop/internal/theme"
	"github.com/atomicstack/gridpop/internal/ui/page"
)

// Renderer is the draw target. Draw is handed a function that renders the
// whole screen for the given area.
type Renderer interface {
	Size() (width, height int)
	Draw(fn func(area layout.Rect) string) error
}

// Builder constructs pages on demand.
type Builder interface {
	Build(ctx context.Context, id action.PageID) (page.Page, error)
}

const defaultStatusTTL = 3 * time.Second

// App dispatches actions to the active page. It is not safe for concurrent
// use; only the loop goroutine touches it.
type App struct {
	ctx     context.Context
	bus     *action.Bus
	pages   Builder
	page    page.Page
	styles  *theme.Styles
	notices <-chan store.Notice
	now     func() time.Time
	ttl     time.Duration
	status  status
}

// Option customises an App.
type Option func(*App)

// WithNotices shows store notices on the status line.
func WithNotices(ch <-chan store.Notice) Option {
	return func(a *App) { a.notices = ch }
}

// WithClock replaces time.Now for status expiry.
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// WithStatusTTL sets how long a status message stays visible.
func WithStatusTTL(ttl time.Duration) Option {
	return func(a *App) { a.ttl = ttl }
}

// New builds the initial page. The bus must be the one the builder's pages
// send to.
func New(ctx context.Context, bus *action.Bus, pages Builder, initial action.PageID, opts ...Option) (*App, error) {
	a := &App{
		ctx:    ctx,
		bus:    bus,
		pages:  pages,
		styles: theme.Default(),
		now:    time.Now,
		ttl:    defaultStatusTTL,
	}
	for _, opt := range opts {
		opt(a)
	}
	p, err := pages.Build(ctx, initial)
	if err != nil {
		return nil, fmt.Errorf("build %v page: %w", initial, err)
	}
	a.page = p
	return a, nil
}

// Page returns the active page.
func (a *App) Page() page.Page { return a.page }

// Status returns the visible status message, if any.
func (a *App) Status() string { return a.status.text }

// Loop runs until a Quit action is drained, ctx is done or src closes.
func (a *App) Loop(ctx context.Context, src backend.Source, r Renderer) error {
	for {
		evt, err := src.Next(ctx)
		if err != nil {
			if errors.Is(err, backend.ErrClosed) || ctx.Err() != nil {
				events.App.Stop("source closed")
				return nil
			}
			return fmt.Errorf("next event: %w", err)
		}
		quit, err := a.Step(evt, r)
		if err != nil {
			return err
		}
		if quit {
			events.App.Stop("quit")
			return nil
		}
	}
}

// Step processes one event without waiting for the next.
func (a *App) Step(evt backend.Event, r Renderer) (bool, error) {
	if evt.Kind == backend.KindError && evt.Err != nil {
		logging.Error(evt.Err)
	}
	a.bus.Send(a.page.GetAction(evt))
	a.pollNotices()
	return a.Drain(r)
}

// Drain processes queued actions until the queue is empty, including actions
// queued by handlers along the way. quit reports whether a Quit was seen.
// Every action reaches the active page before the App applies its own
// handling, so a page sees Quit, Render and ChangePage too.
func (a *App) Drain(r Renderer) (quit bool, err error) {
	count := 0
	for {
		next, ok := a.bus.TryRecv()
		if !ok {
			break
		}
		count++
		events.Action.Dispatch(a.page.ID().String(), next.String())
		if next.Kind == action.KindNone {
			events.Action.Dropped("none")
			continue
		}
		a.page.HandleAction(next)
		switch next.Kind {
		case action.KindQuit:
			quit = true
		case action.KindRender:
			if err := a.draw(r); err != nil {
				return quit, fmt.Errorf("draw: %w", err)
			}
		case action.KindChangePage:
			a.switchPage(next.Page)
		case action.KindTick:
			a.expireStatus()
		}
	}
	events.Action.Drain(count, quit)
	return quit, nil
}

func (a *App) switchPage(target action.PageID) {
	from := a.page.ID()
	p, err := a.pages.Build(a.ctx, target)
	if err != nil {
		events.Page.SwitchFailed(target.String(), err)
		logging.Error(err)
		a.setStatus(fmt.Sprintf("cannot open %v: %v", target, err), true)
		return
	}
	a.page = p
	events.Page.Switch(from.String(), target.String())
	logging.Info("page switch", zap.String("from", from.String()), zap.String("to", target.String()))
	a.bus.Send(action.Render())
}

func (a *App) draw(r Renderer) error {
	if r == nil {
		return nil
	}
	return r.Draw(a.render)
}

func (a *App) render(area layout.Rect) string {
	if area.Empty() {
		return ""
	}
	parts := layout.Split(area, layout.Vertical, layout.Min(1), layout.Length(1))
	body := layout.Fit(a.page.Draw(parts[0]), parts[0].Width, parts[0].Height)
	return body + "\n" + layout.Fit(a.status.render(a.styles), parts[1].Width, 1)
}
