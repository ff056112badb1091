// Package dijkstra implements Dijkstra's shortest-path search on a grid of
// non-negative entry costs.
//
// Complexity:
//
//   - Time:  O(N log N) for N = W×H cells; each cell has at most 4 edges.
//   - Space: O(N) for the distance and predecessor tables, plus O(4N)
//     worst-case heap entries under lazy deletion.
//
// Notes on implementation choices:
//
//   - Lazy deletion instead of decrease-key: an improved distance pushes a new
//     heap entry and leaves the old one behind. A popped entry whose distance
//     is larger than the recorded best is stale and is skipped.
//   - The default search drains the frontier; WithEarlyExit stops at the target.
//   - With a wall threshold set, a connectivity flood runs first and fails fast
//     when the target is walled off.
package dijkstra

import (
	"container/heap"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"github.com/katalvlaran/aoc2021/gridgraph"
)

// ShortestPath computes the minimum total entry cost from the source cell
// (Options.Source, default (0,0)) to the target cell (Options.Target,
// default (W-1,H-1)) and reconstructs one optimal path.
//
// Returns:
//
//   - *Result with Cost, Path (source → target inclusive) and search counters.
//   - err: ErrNilGrid, gridgraph.ErrOutOfBounds for bad endpoints,
//     ErrUnreachable when no path exists, ErrCostOverflow when the only
//     routes cost Unreached or more, or the OnSettle hook's error.
//
// When several optimal paths exist the one returned depends on heap order;
// Cost never does.
func ShortestPath(g *gridgraph.Grid, opts ...Option) (*Result, error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate grid and endpoints.
	if g == nil {
		return nil, ErrNilGrid
	}
	src := gridgraph.Point{}
	if cfg.Source != nil {
		src = *cfg.Source
	}
	dst := gridgraph.Point{X: g.Width - 1, Y: g.Height - 1}
	if cfg.Target != nil {
		dst = *cfg.Target
	}
	for _, p := range []gridgraph.Point{src, dst} {
		if !g.InBounds(p) {
			return nil, fmt.Errorf("%w: %w: %v in %dx%d grid",
				gridgraph.ErrMalformedGrid, gridgraph.ErrOutOfBounds, p, g.Width, g.Height)
		}
	}

	r := &runner{
		g:       g,
		options: cfg,
		log:     cfg.Logger,
		src:     g.Index(src),
		dst:     g.Index(dst),
	}

	// 3) Fail fast on walled-off targets. The source itself is never entered,
	//    so the flood is only meaningful when the source is not a wall.
	if cfg.WallThreshold != math.MaxInt64 && !r.isWall(r.src) {
		if !g.Connected(src, dst, func(c int) bool { return int64(c) < cfg.WallThreshold }) {
			return nil, fmt.Errorf("%w: %v is walled off from %v", ErrUnreachable, dst, src)
		}
	}

	// 4) Run the search.
	r.log.Debug("dijkstra: search started",
		slog.String("source", src.String()),
		slog.String("target", dst.String()),
		slog.Int("cells", g.Len()),
		slog.Bool("early_exit", cfg.EarlyExit))
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	// 5) Reconstruct.
	path, err := r.path()
	if err != nil {
		return nil, err
	}
	res := &Result{
		Cost:      r.dist[r.dst],
		Path:      path,
		Settled:   r.settled,
		StalePops: r.stale,
		grid:      g,
		dist:      r.dist,
	}
	r.log.Debug("dijkstra: search finished",
		slog.Int64("cost", res.Cost),
		slog.Int("path_len", len(res.Path)),
		slog.Int("settled", res.Settled),
		slog.Int("stale_pops", res.StalePops))

	return res, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g        *gridgraph.Grid
	options  Options
	log      *slog.Logger
	src, dst int
	dist     []int64 // row-major index → best known distance, Unreached if none.
	prev     []int   // row-major index → predecessor index, -1 if none.
	pq       nodePQ
	settled  int
	stale    int
	overflow bool // some relaxation was dropped because its sum reached Unreached
}

// init allocates the tables and seeds the frontier with (source, 0).
func (r *runner) init() {
	n := r.g.Len()
	r.dist = make([]int64, n)
	r.prev = make([]int, n)
	for i := range r.dist {
		r.dist[i] = Unreached
		r.prev[i] = -1
	}
	r.dist[r.src] = 0

	r.pq = make(nodePQ, 0, n)
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{idx: r.src, dist: 0})
}

// process pops the closest frontier entry until the heap is empty, the
// next distance exceeds MaxDistance, or (with EarlyExit) the target settles.
func (r *runner) process() error {
	var buf []gridgraph.Point
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.idx, item.dist

		// Superseded by a later, shorter push.
		if d > r.dist[u] {
			r.stale++
			continue
		}
		if d > r.options.MaxDistance {
			break
		}

		r.settled++
		p := r.g.Coordinate(u)
		if r.options.OnSettle != nil {
			if err := r.options.OnSettle(p, d); err != nil {
				return fmt.Errorf("dijkstra: settle hook at %v: %w", p, err)
			}
		}
		if r.options.EarlyExit && u == r.dst {
			return nil
		}

		buf = r.g.Neighbors(p, buf[:0])
		r.relax(u, buf)
	}

	return nil
}

// relax tries to improve each neighbor of u through u.
// Assumes r.dist[u] is final.
func (r *runner) relax(u int, neighbors []gridgraph.Point) {
	for _, n := range neighbors {
		v := r.g.Index(n)
		if r.isWall(v) {
			continue
		}
		cost := int64(r.g.CostAt(v))
		// dist[u] < Unreached, so the subtraction cannot overflow.
		if cost >= Unreached-r.dist[u] {
			r.overflow = true
			continue
		}
		newDist := r.dist[u] + cost
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strictly better only: equal distances never push duplicates.
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{idx: v, dist: newDist})
	}
}

func (r *runner) isWall(i int) bool {
	return int64(r.g.CostAt(i)) >= r.options.WallThreshold
}

// path walks the predecessor table back from the target and reverses it.
func (r *runner) path() ([]gridgraph.Point, error) {
	if r.dist[r.dst] == Unreached {
		if r.overflow {
			return nil, fmt.Errorf("%w: %v from %v", ErrCostOverflow, r.g.Coordinate(r.dst), r.g.Coordinate(r.src))
		}
		return nil, fmt.Errorf("%w: %v never reached from %v",
			ErrUnreachable, r.g.Coordinate(r.dst), r.g.Coordinate(r.src))
	}
	var path []gridgraph.Point
	for at := r.dst; at != -1; at = r.prev[at] {
		path = append(path, r.g.Coordinate(at))
	}
	slices.Reverse(path)

	return path, nil
}

// nodeItem is a frontier entry: a cell index and a tentative distance.
type nodeItem struct {
	idx  int
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist. Several entries for
// the same cell may coexist; only the one matching dist[idx] is live.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
