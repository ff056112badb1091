package gridgraph

import (
	"bufio"
	"io"
	"strings"
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice of
// non-negative costs, values[y][x]. It deep-copies the input.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrNegativeCost, each wrapped
// in ErrMalformedGrid.
// Complexity: O(W×H) time and memory.
func NewGrid(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, malformed(ErrEmptyGrid, "%d rows", len(values))
	}
	h, w := len(values), len(values[0])
	cells := make([]int, 0, w*h)
	for y, row := range values {
		if len(row) != w {
			return nil, malformed(ErrNonRectangular, "row %d has %d cells, want %d", y, len(row), w)
		}
		for x, c := range row {
			if c < 0 {
				return nil, malformed(ErrNegativeCost, "cell %d,%d = %d", x, y, c)
			}
		}
		cells = append(cells, row...)
	}

	return &Grid{Width: w, Height: h, cells: cells}, nil
}

// Parse reads a grid in text form: one row per line, one decimal digit per
// cell. Surrounding whitespace on a line and trailing blank lines are
// ignored; a blank line before the last row is ErrBlankLine. Read errors,
// including lines longer than bufio.MaxScanTokenSize, are wrapped in
// ErrMalformedGrid.
func Parse(r io.Reader) (*Grid, error) {
	var rows [][]int
	sc := bufio.NewScanner(r)
	line, blank := 0, 0 // blank is the first blank line since the last row
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			if blank == 0 {
				blank = line
			}
			continue
		}
		if blank != 0 {
			return nil, malformed(ErrBlankLine, "line %d", blank)
		}
		row := make([]int, len(text))
		for i := 0; i < len(text); i++ {
			c := text[i]
			if c < '0' || c > '9' {
				return nil, malformed(ErrInvalidDigit, "line %d column %d: %q", line, i+1, c)
			}
			row[i] = int(c - '0')
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, malformed(err, "reading line %d", line+1)
	}

	return NewGrid(rows)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns the entry cost of p. p must be in bounds.
func (g *Grid) At(p Point) int {
	return g.cells[g.Index(p)]
}

// Len returns the number of cells, Width×Height.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Index maps p to its row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(p Point) int {
	return p.Y*g.Width + p.X
}

// Coordinate converts a row-major index back to a Point.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Point {
	return Point{X: idx % g.Width, Y: idx / g.Width}
}

// CostAt returns the entry cost of the cell with row-major index idx.
func (g *Grid) CostAt(idx int) int {
	return g.cells[idx]
}

// Neighbors appends the in-bounds 4-connected neighbors of p to buf and
// returns the extended slice, in right, down, left, up order.
// Passing buf[:0] from the previous call avoids allocation in hot loops.
func (g *Grid) Neighbors(p Point, buf []Point) []Point {
	for _, d := range neighborOffsets {
		n := Point{X: p.X + d[0], Y: p.Y + d[1]}
		if g.InBounds(n) {
			buf = append(buf, n)
		}
	}

	return buf
}

// Rows returns a fresh 2D copy of the cost table, rows[y][x].
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.Height)
	for y := range rows {
		rows[y] = make([]int, g.Width)
		copy(rows[y], g.cells[y*g.Width:(y+1)*g.Width])
	}

	return rows
}

// String renders the grid back into its text form. Costs above 9 do not
// fit the one-digit format and are rendered as '#'.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.Len() + g.Height)
	for i, c := range g.cells {
		if i > 0 && i%g.Width == 0 {
			sb.WriteByte('\n')
		}
		if c > 9 {
			sb.WriteByte('#')
			continue
		}
		sb.WriteByte(byte('0' + c))
	}

	return sb.String()
}

// Overlay renders the grid like String with every in-bounds point of path
// replaced by mark.
func (g *Grid) Overlay(path []Point, mark byte) string {
	on := make([]bool, g.Len())
	for _, p := range path {
		if g.InBounds(p) {
			on[g.Index(p)] = true
		}
	}
	text := []byte(g.String())
	for i, hit := range on {
		if hit {
			// Each row is Width cells plus a newline.
			text[i+i/g.Width] = mark
		}
	}

	return string(text)
}
