package component

import (
	"strings"

	"github.com/atomicstack/gridpop/internal/layout"
	"github.com/atomicstack/gridpop/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

// frame draws body inside a border sized to area, with title on the first
// inner line when set.
func frame(border *lipgloss.Style, title, body string, area layout.Rect) string {
	if area.Empty() {
		return ""
	}
	styles := theme.Default()
	inner := area.Inset(1)
	if inner.Empty() {
		return layout.Fit(body, area.Width, area.Height)
	}
	content := body
	if title != "" {
		content = styles.Title.Render(title) + "\n" + body
	}
	boxed := border.Render(layout.Fit(content, inner.Width, inner.Height))
	return layout.Fit(boxed, area.Width, area.Height)
}

func borderFor(focused bool) *lipgloss.Style {
	if focused {
		return theme.Default().FocusedBorder
	}
	return theme.Default().Border
}

// centreLines pads every line so it sits in the middle of width cells.
func centreLines(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		gap := width - lipgloss.Width(line)
		if gap > 1 {
			lines[i] = strings.Repeat(" ", gap/2) + line
		}
	}
	return strings.Join(lines, "\n")
}
