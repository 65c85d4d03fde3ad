package terminal

import (
	"github.com/atomicstack/gridpop/internal/action"
	"github.com/atomicstack/gridpop/internal/backend"
	tea "github.com/charmbracelet/bubbletea"
)

var namedKeys = map[tea.KeyType]action.KeyCode{
	tea.KeyEnter:     action.KeyEnter,
	tea.KeyEsc:       action.KeyEsc,
	tea.KeyBackspace: action.KeyBackspace,
	tea.KeyDelete:    action.KeyDelete,
	tea.KeyTab:       action.KeyTab,
	tea.KeyShiftTab:  action.KeyBackTab,
	tea.KeyUp:        action.KeyUp,
	tea.KeyDown:      action.KeyDown,
	tea.KeyLeft:      action.KeyLeft,
	tea.KeyRight:     action.KeyRight,
	tea.KeyHome:      action.KeyHome,
	tea.KeyEnd:       action.KeyEnd,
	tea.KeyPgUp:      action.KeyPgUp,
	tea.KeyPgDown:    action.KeyPgDown,
}

// translateKey converts a bubbletea key message into loop events. Pasted
// text expands to one event per rune; ctrl+c becomes a quit request.
func translateKey(msg tea.KeyMsg) []backend.Event {
	switch msg.Type {
	case tea.KeyRunes:
		out := make([]backend.Event, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			k := action.Rune(r)
			if msg.Alt && !msg.Paste {
				k = action.Alt(r)
			}
			out = append(out, backend.KeyEvent(k))
		}
		return out
	case tea.KeySpace:
		if msg.Alt {
			return []backend.Event{backend.KeyEvent(action.Alt(' '))}
		}
		return []backend.Event{backend.KeyEvent(action.Rune(' '))}
	case tea.KeyCtrlC:
		return []backend.Event{{Kind: backend.KindQuit}}
	}
	if code, ok := namedKeys[msg.Type]; ok {
		k := action.Named(code)
		if msg.Alt {
			k.Mod |= action.ModAlt
		}
		return []backend.Event{backend.KeyEvent(k)}
	}
	// Enter and tab share codes with ctrl+m and ctrl+i and are matched above.
	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		r := rune('a' + int(msg.Type-tea.KeyCtrlA))
		return []backend.Event{backend.KeyEvent(action.Ctrl(r))}
	}
	return nil
}
