// Package gridgraph defines the core Point and Grid types and the
// neighbor order shared by every traversal in this module.
package gridgraph

import "fmt"

// Point is a cell coordinate. X grows to the right, Y grows downward.
type Point struct {
	X, Y int
}

// String renders p as "x,y".
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Manhattan returns |a.X-b.X| + |a.Y-b.Y|.
func Manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}

// neighborOffsets lists the 4-connected moves in the order they are
// expanded: right, down, left, up.
var neighborOffsets = [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

// Grid is an immutable W×H table of non-negative entry costs.
// Cells are stored row-major: index = y*Width + x.
type Grid struct {
	Width, Height int
	cells         []int
}
