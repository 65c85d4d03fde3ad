package events

import "github.com/atomicstack/gridpop/internal/logging"

type ActionTracer struct{}

type PageTracer struct{}

type FocusTracer struct{}

var (
	Action = ActionTracer{}
	Page   = PageTracer{}
	Focus  = FocusTracer{}
)

func (ActionTracer) Queue(action string, depth int) {
	logging.Trace("action.queue", map[string]interface{}{"action": action, "depth": depth})
}

func (ActionTracer) Dispatch(page, action string) {
	logging.Trace("action.dispatch", map[string]interface{}{"page": page, "action": action})
}

func (ActionTracer) Drain(count int, quit bool) {
	logging.Trace("action.drain", map[string]interface{}{"count": count, "quit": quit})
}

func (ActionTracer) Dropped(reason string) {
	logging.Trace("action.dropped", map[string]interface{}{"reason": reason})
}

func (PageTracer) Switch(from, to string) {
	logging.Trace("page.switch", map[string]interface{}{"from": from, "to": to})
}

func (PageTracer) SwitchFailed(target string, err error) {
	if err == nil {
		return
	}
	logging.Trace("page.switch.error", map[string]interface{}{"target": target, "error": err.Error()})
}

func (FocusTracer) Move(from, to int) {
	logging.Trace("focus.move", map[string]interface{}{"from": from, "to": to})
}
