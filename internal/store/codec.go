package store

import (
	"fmt"
	"strings"
)

// Encode renders rows with every cell quoted, cells separated by commas and
// rows by newlines. Embedded quotes are doubled.
func Encode(rows [][]string) []byte {
	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		for c, cell := range row {
			if c > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(cell, `"`, `""`))
			b.WriteByte('"')
		}
	}
	return []byte(b.String())
}

// Decode parses data produced by Encode. Quoted cells may span lines.
// Unquoted cells are accepted, CRLF row endings are tolerated, a blank line
// is an empty row and a single trailing newline is ignored.
func Decode(data []byte) ([][]string, error) {
	if len(data) == 0 {
		return nil, nil
	}
	text := strings.TrimSuffix(string(data), "\n")
	var (
		rows      [][]string
		row       []string
		cell      strings.Builder
		quoted    bool
		blank     = true
		line      = 1
		quoteLine int
		runes     = []rune(text)
	)
	endRow := func() {
		if blank {
			row = []string{}
		} else {
			row = append(row, cell.String())
		}
		rows = append(rows, row)
		row, blank = nil, true
		cell.Reset()
	}
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\n' {
			line++
		}
		switch {
		case quoted && r == '"':
			if i+1 < len(runes) && runes[i+1] == '"' {
				cell.WriteRune('"')
				i++
				continue
			}
			quoted = false
		case quoted:
			cell.WriteRune(r)
		case r == '"':
			quoted, quoteLine, blank = true, line, false
		case r == ',':
			row = append(row, cell.String())
			cell.Reset()
			blank = false
		case r == '\n':
			endRow()
		case r == '\r' && (i+1 == len(runes) || runes[i+1] == '\n'):
		default:
			cell.WriteRune(r)
			blank = false
		}
	}
	if quoted {
		return nil, fmt.Errorf("line %d: unterminated quote", quoteLine)
	}
	endRow()
	return rows, nil
}
