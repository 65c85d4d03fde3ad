package table

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Separator is placed between adjacent columns by Format.
const Separator = "  "

// Widths returns the widest entry of every column. Rows may differ in length;
// missing cells do not contribute.
func Widths(rows [][]string) []int {
	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	widths := make([]int, colCount)
	for _, row := range rows {
		for c, cell := range row {
			if w := CellWidth(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}
	return widths
}

// Format returns the rows padded according to the widest entry in each column.
func Format(rows [][]string, alignments []Alignment) []string {
	if len(rows) == 0 {
		return nil
	}
	widths := Widths(rows)
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c, cell := range row {
			if c > 0 {
				b.WriteString(Separator)
			}
			align := AlignLeft
			if c < len(alignments) {
				align = alignments[c]
			}
			b.WriteString(Pad(cell, widths[c], align))
		}
		out[i] = strings.TrimRight(b.String(), " ")
	}
	return out
}

// Pad widens text to width cells using the given alignment.
func Pad(text string, width int, align Alignment) string {
	gap := width - CellWidth(text)
	if gap <= 0 {
		return text
	}
	if align == AlignRight {
		return strings.Repeat(" ", gap) + text
	}
	return text + strings.Repeat(" ", gap)
}

// CellWidth measures text in terminal cells.
func CellWidth(text string) int {
	return ansi.StringWidth(text)
}
