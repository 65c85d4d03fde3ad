package terminal

import (
	"context"
	"testing"
	"time"

	"github.com/atomicstack/gridpop/internal/action"
	"github.com/atomicstack/gridpop/internal/backend"
	"github.com/atomicstack/gridpop/internal/layout"
	tea "github.com/charmbracelet/bubbletea"
)

func TestTranslateKey(t *testing.T) {
	cases := []struct {
		msg  tea.KeyMsg
		want string
	}{
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, "j"},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}, Alt: true}, "alt+b"},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, " "},
		{tea.KeyMsg{Type: tea.KeyEnter}, "enter"},
		{tea.KeyMsg{Type: tea.KeyTab}, "tab"},
		{tea.KeyMsg{Type: tea.KeyShiftTab}, "shift+tab"},
		{tea.KeyMsg{Type: tea.KeyEsc}, "esc"},
		{tea.KeyMsg{Type: tea.KeyBackspace}, "backspace"},
		{tea.KeyMsg{Type: tea.KeyCtrlJ}, "ctrl+j"},
		{tea.KeyMsg{Type: tea.KeyCtrlK}, "ctrl+k"},
		{tea.KeyMsg{Type: tea.KeyCtrlW}, "ctrl+w"},
		{tea.KeyMsg{Type: tea.KeyLeft}, "left"},
	}
	for _, tc := range cases {
		got := translateKey(tc.msg)
		if len(got) != 1 || got[0].Kind != backend.KindKey {
			t.Fatalf("expected one key event for %v, got %#v", tc.msg, got)
		}
		if s := got[0].Key.String(); s != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, s)
		}
	}
}

func TestTranslateCtrlCQuits(t *testing.T) {
	got := translateKey(tea.KeyMsg{Type: tea.KeyCtrlC})
	if len(got) != 1 || got[0].Kind != backend.KindQuit {
		t.Fatalf("expected quit event, got %#v", got)
	}
}

func TestTranslatePasteSplitsRunes(t *testing.T) {
	got := translateKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hé"), Paste: true})
	if len(got) != 2 || got[0].Key != action.Rune('h') || got[1].Key != action.Rune('é') {
		t.Fatalf("expected two rune events, got %#v", got)
	}
}

func TestModelForwardsKeysAndResizes(t *testing.T) {
	stream := backend.NewStream(8)
	term := New(stream)
	var m tea.Model = model{term: term}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	m, _ = m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	first, err := stream.Next(ctx)
	if err != nil || first.Key != action.Rune('x') {
		t.Fatalf("expected x key, got %#v (err=%v)", first, err)
	}
	second, err := stream.Next(ctx)
	if err != nil || second.Kind != backend.KindRender {
		t.Fatalf("expected render after resize, got %#v (err=%v)", second, err)
	}
	if w, h := term.Size(); w != 40 || h != 10 {
		t.Fatalf("expected 40x10, got %dx%d", w, h)
	}

	if err := term.Draw(func(area layout.Rect) string {
		if area.Width != 40 || area.Height != 10 {
			t.Fatalf("expected full-screen area, got %+v", area)
		}
		return "frame"
	}); err != nil {
		t.Fatalf("draw: %v", err)
	}
	m, _ = m.Update(frameMsg{})
	if got := m.View(); got != "frame" {
		t.Fatalf("expected frame in view, got %q", got)
	}
}

func TestExitQueuesQuitWhenStreamIsFull(t *testing.T) {
	stream := backend.NewStream(1)
	term := New(stream)
	if !stream.Offer(backend.Event{Kind: backend.KindTick}) {
		t.Fatalf("expected filler event to fit")
	}

	exited := make(chan struct{})
	go func() {
		term.exited(tea.ErrProgramKilled)
		close(exited)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	first, err := stream.Next(ctx)
	if err != nil || first.Kind != backend.KindTick {
		t.Fatalf("expected filler tick, got %#v (err=%v)", first, err)
	}
	second, err := stream.Next(ctx)
	if err != nil || second.Kind != backend.KindQuit {
		t.Fatalf("expected quit after exit, got %#v (err=%v)", second, err)
	}
	<-exited
	if term.err != nil {
		t.Fatalf("expected killed program to count as a clean exit, got %v", term.err)
	}
}

func TestExitGivesUpOnceClosed(t *testing.T) {
	stream := backend.NewStream(1)
	term := New(stream)
	stream.Offer(backend.Event{Kind: backend.KindTick})
	if err := term.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	done := make(chan struct{})
	go func() {
		term.exited(nil)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("exit blocked on a full stream after Close")
	}
}
