package gridgraph

// Components finds all 4-connected regions of passable cells, where a cell
// is passable when passable(cost) reports true. A nil passable treats every
// cell as passable. Each component is a slice of row-major indices in BFS
// discovery order; components are ordered by their first cell in row-major
// order.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Components(passable func(cost int) bool) [][]int {
	seen := make([]bool, g.Len())
	var comps [][]int
	for i0 := range g.cells {
		if seen[i0] || !isPassable(passable, g.cells[i0]) {
			continue
		}
		comps = append(comps, g.flood(i0, -1, passable, seen))
	}

	return comps
}

// Connected reports whether a and b lie in the same passable region.
// Out-of-bounds or impassable endpoints are never connected.
// The flood stops once b is dequeued.
func (g *Grid) Connected(a, b Point, passable func(cost int) bool) bool {
	if !g.InBounds(a) || !g.InBounds(b) {
		return false
	}
	ia, ib := g.Index(a), g.Index(b)
	if !isPassable(passable, g.cells[ia]) || !isPassable(passable, g.cells[ib]) {
		return false
	}
	seen := make([]bool, g.Len())
	g.flood(ia, ib, passable, seen)

	return seen[ib]
}

// flood runs a BFS from start over passable cells, marking seen, and
// returns the visited indices. It returns early once stop is dequeued.
func (g *Grid) flood(start, stop int, passable func(cost int) bool, seen []bool) []int {
	queue := []int{start}
	seen[start] = true
	var buf []Point
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == stop {
			break
		}
		buf = g.Neighbors(g.Coordinate(u), buf[:0])
		for _, n := range buf {
			v := g.Index(n)
			if seen[v] || !isPassable(passable, g.cells[v]) {
				continue
			}
			seen[v] = true
			queue = append(queue, v)
		}
	}

	return queue
}

func isPassable(passable func(cost int) bool, cost int) bool {
	return passable == nil || passable(cost)
}
