package component

import (
	"github.com/atomicstack/gridpop/internal/action"
	"github.com/atomicstack/gridpop/internal/ui/state"
)

type recordingSender struct {
	sent []action.Action
}

func (r *recordingSender) Send(a action.Action) {
	r.sent = append(r.sent, a)
}

type recordingPersister struct {
	snapshots [][][]string
}

func (r *recordingPersister) Persist(rows [][]string) {
	r.snapshots = append(r.snapshots, state.CloneRows(rows))
}

func press(c Component, keys ...action.Key) action.Response {
	resp := action.Handled
	for _, k := range keys {
		resp = c.HandleAction(action.KeyInput(k))
	}
	return resp
}

func runes(s string) []action.Key {
	keys := make([]action.Key, 0, len(s))
	for _, r := range s {
		keys = append(keys, action.Rune(r))
	}
	return keys
}

var (
	enter     = action.Named(action.KeyEnter)
	esc       = action.Named(action.KeyEsc)
	backspace = action.Named(action.KeyBackspace)
	left      = action.Named(action.KeyLeft)
	right     = action.Named(action.KeyRight)
)
