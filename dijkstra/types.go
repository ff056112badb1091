// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path search over a gridgraph.Grid.
//
// Options:
//
//	– Source:            starting cell (default (0,0)).
//	– Target:            destination cell (default (W-1,H-1)).
//	– EarlyExit:         stop once the target's distance is final.
//	– MaxDistance:       cells whose distance would exceed this are not explored.
//	– WallThreshold:     cells with entry cost >= this threshold are impassable.
//	– OnSettle:          hook invoked when a cell's distance becomes final.
//	– Logger:            structured logger for search diagnostics.
//
// Errors (sentinel):
//
//	– ErrNilGrid          if the provided grid pointer is nil.
//	– ErrUnreachable      if the target is never reached.
//	– ErrCostOverflow     if reaching the target needs a cost ≥ Unreached.
//	– ErrBadMaxDistance   if MaxDistance < 0.
//	– ErrBadWallThreshold if WallThreshold <= 0.
package dijkstra

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/aoc2021/gridgraph"
)

// Unreached is the distance recorded for a cell the search never reached.
// It is reserved: every real distance stays strictly below it.
const Unreached = math.MaxInt64

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed to ShortestPath.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrUnreachable indicates the target was never reached from the source:
	// it is walled off or lies beyond MaxDistance. It belongs to the
	// gridgraph.ErrMalformedGrid family.
	ErrUnreachable = fmt.Errorf("%w: dijkstra: target unreachable from source", gridgraph.ErrMalformedGrid)

	// ErrCostOverflow indicates a route whose total cost does not fit below
	// Unreached. It belongs to the gridgraph.ErrMalformedGrid family.
	ErrCostOverflow = fmt.Errorf("%w: dijkstra: path cost overflows int64", gridgraph.ErrMalformedGrid)

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadWallThreshold indicates that WallThreshold was set to zero or negative,
	// which would wall off every cell including zero-cost ones.
	ErrBadWallThreshold = errors.New("dijkstra: WallThreshold must be positive")
)

// Options configures the behavior of ShortestPath.
//
// Source, Target  – endpoints; nil means the top-left / bottom-right corner.
// EarlyExit       – if true, stop as soon as Target is settled. The default
//
//	is an exhaustive search that drains the frontier.
//
// MaxDistance     – cap on distances to explore. Default math.MaxInt64.
// WallThreshold   – cells with cost ≥ threshold cannot be entered.
//
//	Default math.MaxInt64 (no walls).
//
// OnSettle        – if non-nil, called once per settled cell in order of
//
//	non-decreasing distance; a returned error aborts the search.
//
// Logger          – receives debug records; defaults to a discarding logger.
type Options struct {
	Source        *gridgraph.Point
	Target        *gridgraph.Point
	EarlyExit     bool
	MaxDistance   int64
	WallThreshold int64
	OnSettle      func(p gridgraph.Point, dist int64) error
	Logger        *slog.Logger
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// Source sets the starting cell.
func Source(p gridgraph.Point) Option {
	return func(o *Options) {
		o.Source = &p
	}
}

// Target sets the destination cell.
func Target(p gridgraph.Point) Option {
	return func(o *Options) {
		o.Target = &p
	}
}

// WithEarlyExit stops the search once the target is popped with its final
// distance. Dijkstra guarantees no later pop can improve it, so the cost is
// identical to an exhaustive run; only Result.Distance for cells farther
// than the target differs.
func WithEarlyExit() Option {
	return func(o *Options) {
		o.EarlyExit = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Cells whose shortest distance would exceed this value are not explored.
// Negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithWallThreshold marks every cell whose cost is ≥ threshold as a wall.
// Zero or negative values panic with ErrBadWallThreshold.
func WithWallThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadWallThreshold.Error())
		}
		o.WallThreshold = threshold
	}
}

// WithOnSettle registers a hook called when a cell's distance becomes final.
func WithOnSettle(fn func(p gridgraph.Point, dist int64) error) Option {
	return func(o *Options) {
		o.OnSettle = fn
	}
}

// WithLogger routes search diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//
//   - Source, Target: nil (corners of the grid).
//   - EarlyExit:      false (exhaustive search).
//   - MaxDistance:    math.MaxInt64 (no cap).
//   - WallThreshold:  math.MaxInt64 (no walls).
//   - Logger:         discards everything.
func DefaultOptions() Options {
	return Options{
		MaxDistance:   math.MaxInt64,
		WallThreshold: math.MaxInt64,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Result is the outcome of a successful search.
type Result struct {
	// Cost is the total entry cost of Path, excluding the source cell.
	Cost int64
	// Path lists cells from source to target inclusive.
	Path []gridgraph.Point
	// Settled counts cells whose distance became final.
	Settled int
	// StalePops counts superseded frontier entries that were popped and skipped.
	StalePops int

	grid *gridgraph.Grid
	dist []int64
}

// Distance returns the best known distance from the source to p, and
// whether p was reached at all. After an exhaustive search every reachable
// cell reports its final distance.
func (r *Result) Distance(p gridgraph.Point) (int64, bool) {
	if !r.grid.InBounds(p) {
		return Unreached, false
	}
	d := r.dist[r.grid.Index(p)]

	return d, d != Unreached
}
