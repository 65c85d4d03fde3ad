package state

// Grid is a ragged matrix of text cells with a cursor that never leaves the
// matrix. A row may be empty; the cursor then rests at column 0 of that row
// and addresses no cell.
type Grid struct {
	rows [][]string
	row  int
	col  int
}

// NewGrid copies rows into a grid. An empty matrix is seeded with a single
// empty cell so the cursor always has a row to sit on.
func NewGrid(rows [][]string) *Grid {
	cloned := CloneRows(rows)
	if len(cloned) == 0 {
		cloned = [][]string{{""}}
	}
	return &Grid{rows: cloned}
}

// CloneRows deep-copies a matrix.
func CloneRows(rows [][]string) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = append(make([]string, 0, len(row)), row...)
	}
	return out
}

// Rows returns a snapshot of the matrix.
func (g *Grid) Rows() [][]string {
	return CloneRows(g.rows)
}

// RowCount returns the number of rows.
func (g *Grid) RowCount() int {
	return len(g.rows)
}

// RowLen returns the number of cells in row r, or 0 when r is out of range.
func (g *Grid) RowLen(r int) int {
	if r < 0 || r >= len(g.rows) {
		return 0
	}
	return len(g.rows[r])
}

// Cursor returns the focused coordinate.
func (g *Grid) Cursor() (row, col int) {
	return g.row, g.col
}

// Cell returns the cell at (r, c).
func (g *Grid) Cell(r, c int) (string, bool) {
	if r < 0 || r >= len(g.rows) || c < 0 || c >= len(g.rows[r]) {
		return "", false
	}
	return g.rows[r][c], true
}

// Current returns the focused cell.
func (g *Grid) Current() (string, bool) {
	return g.Cell(g.row, g.col)
}

// SetCurrent overwrites the focused cell.
func (g *Grid) SetCurrent(value string) bool {
	if _, ok := g.Current(); !ok {
		return false
	}
	g.rows[g.row][g.col] = value
	return true
}

// DeleteCurrent removes the focused cell, shifting later cells left. The
// cursor stays on the same column when possible.
func (g *Grid) DeleteCurrent() bool {
	if _, ok := g.Current(); !ok {
		return false
	}
	row := g.rows[g.row]
	g.rows[g.row] = append(row[:g.col:g.col], row[g.col+1:]...)
	g.clampCol()
	return true
}

// MoveDown moves one row down if that row exists.
func (g *Grid) MoveDown() bool {
	if g.row+1 >= len(g.rows) {
		return false
	}
	g.row++
	g.clampCol()
	return true
}

// MoveUp moves one row up unless the cursor is on the first row.
func (g *Grid) MoveUp() bool {
	if g.row == 0 {
		return false
	}
	g.row--
	g.clampCol()
	return true
}

// MoveLeft moves one column left, stopping at column 0.
func (g *Grid) MoveLeft() bool {
	if g.col == 0 {
		return false
	}
	g.col--
	return true
}

// MoveRight moves one column right, stopping at the last cell of the row.
func (g *Grid) MoveRight() bool {
	if g.col+1 >= len(g.rows[g.row]) {
		return false
	}
	g.col++
	return true
}

func (g *Grid) clampCol() {
	last := len(g.rows[g.row]) - 1
	if last < 0 {
		last = 0
	}
	if g.col > last {
		g.col = last
	}
}
