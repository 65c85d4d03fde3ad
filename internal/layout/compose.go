package layout

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Fit clips or pads s so it occupies exactly width x height cells. Styled
// content is measured and truncated without breaking escape sequences.
func Fit(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	out := make([]string, height)
	for i := range out {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		out[i] = pad(line, width)
	}
	return strings.Join(out, "\n")
}

func pad(line string, width int) string {
	w := ansi.StringWidth(line)
	if w > width {
		line = ansi.Truncate(line, width, "")
		w = ansi.StringWidth(line)
	}
	if w < width {
		line += strings.Repeat(" ", width-w)
	}
	return line
}

// Overlay splices top over base with its top-left corner at column x, row y.
// Base lines are extended with spaces when top reaches past them.
func Overlay(base, top string, x, y int) string {
	if top == "" {
		return base
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	baseLines := strings.Split(base, "\n")
	topLines := strings.Split(top, "\n")
	for len(baseLines) < y+len(topLines) {
		baseLines = append(baseLines, "")
	}
	for i, over := range topLines {
		row := y + i
		line := baseLines[row]
		width := ansi.StringWidth(over)

		left := ansi.Truncate(line, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		right := ""
		if ansi.StringWidth(line) > x+width {
			right = ansi.TruncateLeft(line, x+width, "")
		}
		baseLines[row] = left + over + right
	}
	return strings.Join(baseLines, "\n")
}
