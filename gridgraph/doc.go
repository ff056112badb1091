// Package gridgraph treats a rectangular grid of non-negative entry costs
// as an implicit 4-connected graph.
//
// What:
//
//   - Grid wraps a W×H row-major cost table that is immutable once built.
//     The cost at (x,y) is the price of *entering* that cell.
//   - Parse reads the puzzle text format: one row per line, one decimal
//     digit per cell, no separators. Trailing blank lines are ignored.
//   - Overlay draws a path over the text form.
//   - Expand tiles a grid factor×factor times, shifting each tile's costs
//     by its tile-row plus tile-column index and wrapping 9 back to 1.
//   - Components and Connected flood passable regions, used to fail fast
//     on walled-off targets before a weighted search.
//
// Complexity:
//
//   - NewGrid, Parse:        O(W×H) time and memory.
//   - Expand(f):             O(f²×W×H) time and memory.
//   - Components, Connected: O(W×H) time and memory.
//
// Errors:
//
// Every error returned by this package wraps ErrMalformedGrid, so callers
// can test for the whole family with errors.Is(err, ErrMalformedGrid) or
// for a specific cause (ErrEmptyGrid, ErrNonRectangular, ErrNegativeCost,
// ErrInvalidDigit, ErrBlankLine, ErrBadFactor, ErrCostDomain, ErrOutOfBounds).
package gridgraph
