package app

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/atomicstack/gridpop/internal/logging"
	"github.com/atomicstack/gridpop/internal/store"
	"github.com/atomicstack/gridpop/internal/theme"
)

type status struct {
	text  string
	err   bool
	until time.Time
}

func (s status) render(styles *theme.Styles) string {
	if s.text == "" {
		return ""
	}
	if s.err {
		return styles.StatusError.Render(s.text)
	}
	return styles.Status.Render(s.text)
}

func (a *App) setStatus(text string, isErr bool) {
	a.status = status{text: text, err: isErr, until: a.now().Add(a.ttl)}
}

func (a *App) expireStatus() {
	if a.status.text != "" && !a.now().Before(a.status.until) {
		a.status = status{}
	}
}

// pollNotices moves pending store notices onto the status line without
// waiting.
func (a *App) pollNotices() {
	if a.notices == nil {
		return
	}
	for {
		select {
		case n, ok := <-a.notices:
			if !ok {
				a.notices = nil
				return
			}
			switch {
			case errors.Is(n.Err, store.ErrQueueFull):
				logging.Warn("save skipped", zap.Int("rows", n.Rows), zap.Error(n.Err))
				a.setStatus("save skipped: "+n.Err.Error(), true)
				continue
			case n.Err != nil:
				logging.Error(fmt.Errorf("save grid: %w", n.Err))
				a.setStatus("save failed: "+n.Err.Error(), true)
				continue
			}
			a.setStatus(fmt.Sprintf("saved %d rows", n.Rows), false)
		default:
			return
		}
	}
}
