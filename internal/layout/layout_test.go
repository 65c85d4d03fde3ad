package layout

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestSplitVerticalPercentages(t *testing.T) {
	area := Rect{X: 0, Y: 0, Width: 40, Height: 21}
	parts := Split(area, Vertical, Percentage(50), Percentage(50))
	if len(parts) != 2 {
		t.Fatalf("expected 2 regions, got %d", len(parts))
	}
	if parts[0].Height != 10 || parts[1].Height != 11 {
		t.Fatalf("expected heights 10/11, got %d/%d", parts[0].Height, parts[1].Height)
	}
	if parts[1].Y != 10 || parts[1].Width != 40 {
		t.Fatalf("unexpected second region %#v", parts[1])
	}
}

func TestSplitMinAbsorbsRemainder(t *testing.T) {
	area := Rect{Width: 30, Height: 10}
	parts := Split(area, Vertical, Min(3), Length(1))
	if parts[0].Height != 9 || parts[1].Height != 1 || parts[1].Y != 9 {
		t.Fatalf("unexpected split %#v", parts)
	}
}

func TestSplitClampsToAvailableSpace(t *testing.T) {
	area := Rect{Width: 10, Height: 3}
	parts := Split(area, Horizontal, Length(8), Length(8))
	if parts[0].Width != 8 || parts[1].Width != 2 || parts[1].X != 8 {
		t.Fatalf("unexpected split %#v", parts)
	}
}

func TestCenteredPopup(t *testing.T) {
	r := Centered(60, 20, Rect{Width: 100, Height: 50})
	if r.Width != 60 || r.Height != 10 || r.X != 20 || r.Y != 20 {
		t.Fatalf("unexpected centred rect %#v", r)
	}
	clamped := Center(20, 9, Rect{Width: 10, Height: 4})
	if clamped.Width != 10 || clamped.Height != 4 || clamped.X != 0 || clamped.Y != 0 {
		t.Fatalf("expected clamp to area, got %#v", clamped)
	}
}

func TestFitPadsAndClips(t *testing.T) {
	got := Fit("abcdef\nxy\nextra", 4, 2)
	if got != "abcd\nxy  " {
		t.Fatalf("unexpected fit %q", got)
	}
	padded := Fit("", 2, 3)
	if padded != "  \n  \n  " {
		t.Fatalf("unexpected padding %q", padded)
	}
}

func TestFitKeepsEscapeSequencesIntact(t *testing.T) {
	styled := "\x1b[31mhello\x1b[0m"
	got := Fit(styled, 3, 1)
	if ansi.StringWidth(got) != 3 {
		t.Fatalf("expected width 3, got %d (%q)", ansi.StringWidth(got), got)
	}
	if ansi.Strip(got) != "hel" {
		t.Fatalf("expected visible text hel, got %q", ansi.Strip(got))
	}
}

func TestOverlaySplicesInPlace(t *testing.T) {
	base := strings.Join([]string{"..........", "..........", ".........."}, "\n")
	got := Overlay(base, "AB\nCD", 3, 1)
	want := strings.Join([]string{"..........", "...AB.....", "...CD....."}, "\n")
	if got != want {
		t.Fatalf("unexpected overlay:\n%s", got)
	}
}

func TestOverlayExtendsShortBase(t *testing.T) {
	got := Overlay("ab", "XY", 4, 1)
	if got != "ab\n    XY" {
		t.Fatalf("unexpected overlay %q", got)
	}
}
