package gridgraph

// Expand tiles g factor×factor times horizontally and vertically.
// The tile at tile-column dx and tile-row dy holds the original costs
// shifted by dx+dy, wrapping within 1..9:
//
//	new = ((c - 1 + dx + dy) mod 9) + 1
//
// Behavior:
//  1. factor < 1 returns ErrBadFactor.
//  2. factor == 1 returns an identical copy for any costs.
//  3. factor > 1 requires every cost in 1..9 (ErrCostDomain).
//
// Complexity: O(factor²·W·H) time and memory.
func (g *Grid) Expand(factor int) (*Grid, error) {
	if factor < 1 {
		return nil, malformed(ErrBadFactor, "factor %d", factor)
	}
	if factor > 1 {
		for i, c := range g.cells {
			if c < 1 || c > 9 {
				p := g.Coordinate(i)
				return nil, malformed(ErrCostDomain, "cell %d,%d = %d", p.X, p.Y, c)
			}
		}
	}

	w, h := g.Width*factor, g.Height*factor
	cells := make([]int, w*h)
	for y := 0; y < h; y++ {
		dy, sy := y/g.Height, y%g.Height
		for x := 0; x < w; x++ {
			dx, sx := x/g.Width, x%g.Width
			c := g.cells[sy*g.Width+sx]
			if shift := dx + dy; shift > 0 {
				c = (c-1+shift)%9 + 1
			}
			cells[y*w+x] = c
		}
	}

	return &Grid{Width: w, Height: h, cells: cells}, nil
}
