package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/atomicstack/gridpop/internal/action"
	"github.com/atomicstack/gridpop/internal/backend"
	"github.com/atomicstack/gridpop/internal/logging"
	"github.com/atomicstack/gridpop/internal/store"
	"github.com/atomicstack/gridpop/internal/terminal"
	"github.com/atomicstack/gridpop/internal/ui/page"
	"golang.org/x/term"
)

// ErrNoTerminal is returned when stdin or stdout is not a terminal.
var ErrNoTerminal = errors.New("stdin and stdout must be a terminal")

// Config describes user-provided application options.
type Config struct {
	DataPath      string
	StoreKind     string
	TickRate      float64
	FrameRate     float64
	FlushTimeout  time.Duration
	WriteInterval time.Duration
}

const streamBuffer = 256

// Run opens the store, starts the terminal and the clock and runs the loop
// until the user quits or ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNoTerminal
	}

	st, err := store.Open(ctx, cfg.StoreKind, cfg.DataPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			logging.Error(fmt.Errorf("close store: %w", err))
		}
	}()

	writer := store.NewWriter(st, store.WriterOptions{MinInterval: cfg.WriteInterval})
	defer flush(writer, cfg.FlushTimeout)

	bus := action.NewBus()
	factory := page.Factory{Sender: bus, Loader: writer, Persister: writer}
	a, err := New(ctx, bus, factory, action.PageHome, WithNotices(writer.Notices()))
	if err != nil {
		return err
	}

	stream := backend.NewStream(streamBuffer)
	defer stream.Close()
	tty := terminal.New(stream)
	tty.Start()
	clock := backend.NewClock(stream, cfg.TickRate, cfg.FrameRate)

	loopErr := a.Loop(ctx, stream, tty)

	clock.Stop()
	clock.Wait()
	if err := tty.Close(); err != nil && loopErr == nil {
		loopErr = fmt.Errorf("terminal: %w", err)
	}
	return loopErr
}

func flush(w *store.Writer, timeout time.Duration) {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := w.Close(ctx); err != nil {
		logging.Error(err)
	}
}
