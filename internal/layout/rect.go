// Package layout splits the screen into regions and composes rendered
// regions into a single frame.
package layout

// Rect is a screen region measured in terminal cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Inset shrinks r by n cells on every side.
func (r Rect) Inset(n int) Rect {
	out := Rect{X: r.X + n, Y: r.Y + n, Width: r.Width - 2*n, Height: r.Height - 2*n}
	if out.Width < 0 {
		out.Width = 0
	}
	if out.Height < 0 {
		out.Height = 0
	}
	return out
}

// Direction selects the axis Split divides along.
type Direction int

const (
	Vertical Direction = iota
	Horizontal
)

type constraintKind int

const (
	kindLength constraintKind = iota
	kindPercentage
	kindMin
)

// Constraint sizes one region produced by Split.
type Constraint struct {
	kind  constraintKind
	value int
}

// Length requests exactly n cells.
func Length(n int) Constraint { return Constraint{kind: kindLength, value: n} }

// Percentage requests p percent of the split axis.
func Percentage(p int) Constraint { return Constraint{kind: kindPercentage, value: p} }

// Min requests at least n cells and absorbs whatever space is left over.
func Min(n int) Constraint { return Constraint{kind: kindMin, value: n} }

// Split divides area along dir. Lengths and percentages are satisfied in
// order while space remains; the remainder goes to the first Min constraint,
// or to the last region when there is none.
func Split(area Rect, dir Direction, constraints ...Constraint) []Rect {
	if len(constraints) == 0 {
		return nil
	}
	total := area.Height
	if dir == Horizontal {
		total = area.Width
	}
	if total < 0 {
		total = 0
	}

	sizes := make([]int, len(constraints))
	remaining := total
	for i, c := range constraints {
		want := 0
		switch c.kind {
		case kindLength:
			want = c.value
		case kindPercentage:
			want = total * c.value / 100
		case kindMin:
			want = c.value
		}
		if want < 0 {
			want = 0
		}
		if want > remaining {
			want = remaining
		}
		sizes[i] = want
		remaining -= want
	}
	if remaining > 0 {
		target := len(sizes) - 1
		for i, c := range constraints {
			if c.kind == kindMin {
				target = i
				break
			}
		}
		sizes[target] += remaining
	}

	out := make([]Rect, len(constraints))
	offset := 0
	for i, size := range sizes {
		if dir == Horizontal {
			out[i] = Rect{X: area.X + offset, Y: area.Y, Width: size, Height: area.Height}
		} else {
			out[i] = Rect{X: area.X, Y: area.Y + offset, Width: area.Width, Height: size}
		}
		offset += size
	}
	return out
}

// Centered returns a rect percentX wide and percentY tall centred in r.
func Centered(percentX, percentY int, r Rect) Rect {
	return Center(r.Width*percentX/100, r.Height*percentY/100, r)
}

// Center places a width x height box in the middle of r, clamped to r.
func Center(width, height int, r Rect) Rect {
	if width > r.Width {
		width = r.Width
	}
	if height > r.Height {
		height = r.Height
	}
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return Rect{
		X:      r.X + (r.Width-width)/2,
		Y:      r.Y + (r.Height-height)/2,
		Width:  width,
		Height: height,
	}
}
