package events

import "github.com/atomicstack/gridpop/internal/logging"

type StoreTracer struct{}

var Store = StoreTracer{}

func (StoreTracer) Queue(rows, depth int) {
	logging.Trace("store.queue", map[string]interface{}{"rows": rows, "depth": depth})
}

func (StoreTracer) Drop(rows int, reason string) {
	logging.Trace("store.drop", map[string]interface{}{"rows": rows, "reason": reason})
}

func (StoreTracer) Write(kind string, rows int) {
	logging.Trace("store.write", map[string]interface{}{"kind": kind, "rows": rows})
}

func (StoreTracer) Fail(kind string, err error) {
	if err == nil {
		return
	}
	logging.Trace("store.fail", map[string]interface{}{"kind": kind, "error": err.Error()})
}

func (StoreTracer) Load(kind string, rows int) {
	logging.Trace("store.load", map[string]interface{}{"kind": kind, "rows": rows})
}
