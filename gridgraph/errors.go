package gridgraph

import (
	"errors"
	"fmt"
)

// ErrMalformedGrid is the root of every error reported for grid input.
var ErrMalformedGrid = errors.New("gridgraph: malformed grid")

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBlankLine indicates a blank line between rows of text input.
	ErrBlankLine = errors.New("gridgraph: blank line inside grid text")
	// ErrNegativeCost indicates a cell with a cost below zero.
	ErrNegativeCost = errors.New("gridgraph: cell cost must be non-negative")
	// ErrInvalidDigit indicates a non-digit character in text input.
	ErrInvalidDigit = errors.New("gridgraph: invalid digit in grid text")
	// ErrBadFactor indicates an expansion factor below one.
	ErrBadFactor = errors.New("gridgraph: expansion factor must be at least 1")
	// ErrCostDomain indicates a cost outside 1..9 where the wrap rule needs it.
	ErrCostDomain = errors.New("gridgraph: cost outside 1..9 cannot be expanded")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: point out of bounds")
)

// malformed tags err as a member of the ErrMalformedGrid family and adds
// a formatted detail.
func malformed(err error, format string, args ...any) error {
	return fmt.Errorf("%w: %w: %s", ErrMalformedGrid, err, fmt.Sprintf(format, args...))
}
