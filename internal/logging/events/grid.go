package events

import "github.com/atomicstack/gridpop/internal/logging"

type GridTracer struct{}

type InputTracer struct{}

type TableTracer struct{}

type gridReason string

const (
	GridReasonEscape gridReason = "escape"
	GridReasonDeny   gridReason = "deny"
)

var (
	Grid  = GridTracer{}
	Input = InputTracer{}
	Table = TableTracer{}
)

func (GridTracer) Cursor(row, col int) {
	logging.Trace("grid.cursor", map[string]interface{}{"row": row, "col": col})
}

func (GridTracer) EditOpen(row, col int, value string) {
	logging.Trace("grid.edit.open", map[string]interface{}{"row": row, "col": col, "value": value})
}

func (GridTracer) EditCommit(row, col int, value string) {
	logging.Trace("grid.edit.commit", map[string]interface{}{"row": row, "col": col, "value": value})
}

func (GridTracer) EditCancel(row, col int, reason gridReason) {
	logging.Trace("grid.edit.cancel", map[string]interface{}{"row": row, "col": col, "reason": string(reason)})
}

func (GridTracer) DeletePrompt(row, col int) {
	logging.Trace("grid.delete.prompt", map[string]interface{}{"row": row, "col": col})
}

func (GridTracer) DeleteConfirm(row, col int) {
	logging.Trace("grid.delete.confirm", map[string]interface{}{"row": row, "col": col})
}

func (GridTracer) DeleteCancel(row, col int, reason gridReason) {
	logging.Trace("grid.delete.cancel", map[string]interface{}{"row": row, "col": col, "reason": string(reason)})
}

func (InputTracer) Mode(mode string) {
	logging.Trace("input.mode", map[string]interface{}{"mode": mode})
}

func (InputTracer) Submit(value string, history int) {
	logging.Trace("input.submit", map[string]interface{}{"value": value, "history": history})
}

func (TableTracer) Cursor(cursor int) {
	logging.Trace("table.cursor", map[string]interface{}{"cursor": cursor})
}

func (TableTracer) Filter(filter string, matches int) {
	logging.Trace("table.filter", map[string]interface{}{"filter": filter, "matches": matches})
}
