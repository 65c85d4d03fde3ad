package component

import (
	"strings"

	"github.com/atomicstack/gridpop/internal/action"
	"github.com/atomicstack/gridpop/internal/layout"
	"github.com/atomicstack/gridpop/internal/logging/events"
	"github.com/atomicstack/gridpop/internal/theme"
	"github.com/atomicstack/gridpop/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
)

// Mode is the editing mode of an Input.
type Mode int

const (
	ModeNormal Mode = iota
	ModeInsert
)

func (m Mode) String() string {
	if m == ModeInsert {
		return "INSERT"
	}
	return "NORMAL"
}

// Input is a single-line modal text editor with a history of submitted
// values.
type Input struct {
	focusState
	keys     InputKeyMap
	text     state.Text
	mode     Mode
	messages []string
	title    string
	caret    cursor.Model
}

// InputOption customises a new Input.
type InputOption func(*Input)

// WithValue pre-fills the editor with the cursor after the last rune.
func WithValue(value string) InputOption {
	return func(in *Input) { in.text = state.NewText(value) }
}

// WithMode sets the starting mode.
func WithMode(mode Mode) InputOption {
	return func(in *Input) { in.mode = mode }
}

// WithTitle labels the editor box.
func WithTitle(title string) InputOption {
	return func(in *Input) { in.title = title }
}

// NewInput builds an empty editor in Normal mode.
func NewInput(opts ...InputOption) *Input {
	in := &Input{
		keys:  DefaultInputKeyMap(),
		caret: cursor.New(),
	}
	in.caret.SetMode(cursor.CursorStatic)
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Value returns the current buffer.
func (in *Input) Value() string { return in.text.Value() }

// Cursor returns the rune offset of the caret.
func (in *Input) Cursor() int { return in.text.Cursor() }

// Mode returns the editing mode.
func (in *Input) Mode() Mode { return in.mode }

// Messages returns the submitted values, oldest first.
func (in *Input) Messages() []string {
	return append([]string(nil), in.messages...)
}

// HandleAction implements Component. Every key is consumed in Insert mode;
// in Normal mode only the navigation and mode keys are.
func (in *Input) HandleAction(a action.Action) action.Response {
	if a.Kind != action.KindKey {
		return action.Handled
	}
	if in.mode == ModeInsert {
		in.handleInsert(a)
		return action.Ignored
	}
	return in.handleNormal(a)
}

func (in *Input) handleNormal(a action.Action) action.Response {
	switch {
	case matches(a, in.keys.Insert):
		in.setMode(ModeInsert)
	case matches(a, in.keys.Append):
		in.text.MoveRight()
		in.setMode(ModeInsert)
	case matches(a, in.keys.NormalLeft):
		in.text.MoveLeft()
	case matches(a, in.keys.NormalRight):
		in.text.MoveRight()
	case matches(a, in.keys.NormalStart):
		in.text.MoveStart()
	case matches(a, in.keys.NormalEnd):
		in.text.MoveEnd()
	default:
		return action.Handled
	}
	return action.Ignored
}

func (in *Input) handleInsert(a action.Action) {
	switch {
	case matches(a, in.keys.Escape):
		in.setMode(ModeNormal)
	case matches(a, in.keys.Submit):
		in.submit()
	case matches(a, in.keys.Backspace):
		in.text.DeleteBackward()
	case matches(a, in.keys.DeleteWord):
		in.text.DeleteWordBackward()
	case matches(a, in.keys.DeleteToStart):
		in.text.DeleteToStart()
	case matches(a, in.keys.Start):
		in.text.MoveStart()
	case matches(a, in.keys.End):
		in.text.MoveEnd()
	case matches(a, in.keys.Left):
		in.text.MoveLeft()
	case matches(a, in.keys.Right):
		in.text.MoveRight()
	case a.Key.Printable():
		in.text.InsertRune(a.Key.Rune)
	}
}

func (in *Input) setMode(mode Mode) {
	if in.mode == mode {
		return
	}
	in.mode = mode
	events.Input.Mode(mode.String())
}

func (in *Input) submit() {
	in.messages = append(in.messages, in.text.Value())
	events.Input.Submit(in.text.Value(), len(in.messages))
	in.text.Clear()
}

// Draw implements Component: a mode badge, the buffer with its caret and
// as much history as fits below.
func (in *Input) Draw(area layout.Rect) string {
	styles := theme.Default()
	badge := styles.ModeNormal.Render(" " + in.mode.String() + " ")
	if in.mode == ModeInsert {
		badge = styles.ModeInsert.Render(" " + in.mode.String() + " ")
	}
	title := badge
	if in.title != "" {
		title = badge + " " + styles.Title.Render(in.title)
	}

	lines := []string{in.renderBuffer()}
	for i := len(in.messages) - 1; i >= 0; i-- {
		lines = append(lines, styles.History.Render("› "+in.messages[i]))
	}
	return frame(borderFor(in.focused), "", title+"\n"+strings.Join(lines, "\n"), area)
}

func (in *Input) renderBuffer() string {
	runes := []rune(in.text.Value())
	pos := in.text.Cursor()
	if !in.focused {
		in.caret.Blur()
		return string(runes)
	}
	in.caret.Focus()
	char := " "
	after := ""
	if pos < len(runes) {
		char = string(runes[pos])
		after = string(runes[pos+1:])
	}
	in.caret.SetChar(char)
	return string(runes[:pos]) + in.caret.View() + after
}
