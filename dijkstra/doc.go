// Package dijkstra finds minimum-cost routes across a gridgraph.Grid whose
// cells carry non-negative entry costs (the Advent of Code 2021 "Chiton"
// cave).
//
// Overview:
//
//   - ShortestPath computes the minimum total cost of entering every cell on a
//     path from a source cell to a target cell, moving only left, right, up or
//     down. The source cell's own cost is never paid.
//   - It relies on a min-heap (priority queue) to always expand the next-closest
//     cell, and reconstructs the route from a predecessor table.
//   - By default the whole reachable grid is explored; WithEarlyExit stops as
//     soon as the target's distance is final, which yields the same cost.
//
// Lazy deletion:
//
// The heap has no decrease-key. When a cell's distance improves, a new entry
// is pushed and the old one stays in the heap. Popping an entry whose distance
// is larger than the cell's recorded best is a stale pop and is skipped.
// Result.StalePops reports how many there were.
//
// Performance and complexity:
//
//   - Time:  O(N log N) for N = W×H cells (at most 4 relaxations per cell).
//   - Space: O(N) for distance and predecessor tables, O(N) heap entries.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:
//     Returned if a nil *gridgraph.Grid is passed.
//   - gridgraph.ErrOutOfBounds:
//     Returned if Source or Target lies outside the grid.
//   - ErrUnreachable:
//     Returned if the target cannot be reached because of WithWallThreshold
//     walls or a WithMaxDistance cap. It matches gridgraph.ErrMalformedGrid
//     under errors.Is.
//   - ErrCostOverflow:
//     Returned if every route to the target costs Unreached (math.MaxInt64)
//     or more. Sums are checked before they are formed, so huge costs never
//     wrap. It also matches gridgraph.ErrMalformedGrid.
//   - ErrBadMaxDistance, ErrBadWallThreshold:
//     Raised (via panic) by the option constructors for invalid values.
//
// API reference:
//
//	func ShortestPath(g *gridgraph.Grid, opts ...Option) (*Result, error)
//
//	  - opts:
//	      • Source(p), Target(p):     endpoints (default top-left → bottom-right).
//	      • WithEarlyExit():          stop once the target is settled.
//	      • WithMaxDistance(int64):   explore only cells within the distance.
//	      • WithWallThreshold(int64): cells with cost ≥ threshold are walls.
//	      • WithOnSettle(fn):         observe cells in settle order.
//	      • WithLogger(*slog.Logger): debug records for start and finish.
//
// Thread safety:
//
//   - A Grid is immutable, so concurrent searches over the same Grid are safe.
//     Each call owns its own tables and heap.
package dijkstra
