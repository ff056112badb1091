package gridgraph_test

import (
	"bufio"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/gridgraph"
)

const sampleGrid = `1163751742
1381373672
2136511328
3694931569
7463417111
1319128137
1359912421
3125421639
1293138521
2311944581`

//----------------------------------------------------------------------------//
// NewGrid and Parse Tests
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects empty, ragged or negative inputs.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.ErrNonRectangular},
		{"NegativeCost", [][]int{{1, -2}, {3, 4}}, gridgraph.ErrNegativeCost},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGrid(tc.grid)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGrid(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
			assert.ErrorIs(t, err, gridgraph.ErrMalformedGrid)
		})
	}
}

// TestNewGrid_DeepCopy checks that later mutation of the input does not leak in.
func TestNewGrid_DeepCopy(t *testing.T) {
	values := [][]int{{1, 2}, {3, 4}}
	g, err := gridgraph.NewGrid(values)
	require.NoError(t, err)

	values[0][0] = 9
	assert.Equal(t, 1, g.At(gridgraph.Point{X: 0, Y: 0}))

	rows := g.Rows()
	rows[1][1] = 9
	assert.Equal(t, 4, g.At(gridgraph.Point{X: 1, Y: 1}))
}

func TestParse_Sample(t *testing.T) {
	g, err := gridgraph.ParseString(sampleGrid)
	require.NoError(t, err)

	assert.Equal(t, 10, g.Width)
	assert.Equal(t, 10, g.Height)
	assert.Equal(t, 100, g.Len())
	assert.Equal(t, 1, g.At(gridgraph.Point{X: 0, Y: 0}))
	assert.Equal(t, 6, g.At(gridgraph.Point{X: 2, Y: 0}))
	assert.Equal(t, 7, g.At(gridgraph.Point{X: 0, Y: 4}))
	assert.Equal(t, 1, g.At(gridgraph.Point{X: 9, Y: 9}))
	assert.Equal(t, sampleGrid, g.String())
}

func TestParse_IgnoresTrailingBlankLinesAndCR(t *testing.T) {
	g, err := gridgraph.Parse(strings.NewReader("12\r\n34\r\n\n  \n"))
	require.NoError(t, err)
	if diff := cmp.Diff([][]int{{1, 2}, {3, 4}}, g.Rows()); diff != "" {
		t.Errorf("Rows() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   error
	}{
		{"Empty", "", gridgraph.ErrEmptyGrid},
		{"Letter", "12\n3a", gridgraph.ErrInvalidDigit},
		{"Minus", "-1\n12", gridgraph.ErrInvalidDigit},
		{"Ragged", "123\n12", gridgraph.ErrNonRectangular},
		{"BlankBetweenRows", "12\n\n34", gridgraph.ErrBlankLine},
		{"LeadingBlank", "\n12\n34", gridgraph.ErrBlankLine},
		{"LineTooLong", strings.Repeat("1", bufio.MaxScanTokenSize+1), bufio.ErrTooLong},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.ParseString(tc.input)
			assert.ErrorIs(t, err, tc.err)
			assert.ErrorIs(t, err, gridgraph.ErrMalformedGrid)
		})
	}
}

//----------------------------------------------------------------------------//
// Coordinates and Neighbors Tests
//----------------------------------------------------------------------------//

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, err := gridgraph.NewGrid([][]int{
		{0, 1, 0},
		{1, 0, 1},
	})
	require.NoError(t, err)

	for _, p := range []gridgraph.Point{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, g.InBounds(p), "InBounds(%v)", p)
	}
	for _, p := range []gridgraph.Point{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, g.InBounds(p), "InBounds(%v)", p)
	}
}

func TestIndexCoordinateRoundTrip(t *testing.T) {
	g, err := gridgraph.NewGrid([][]int{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	for i := 0; i < g.Len(); i++ {
		p := g.Coordinate(i)
		assert.Equal(t, i, g.Index(p))
		assert.Equal(t, g.At(p), g.CostAt(i))
	}
	assert.Equal(t, gridgraph.Point{X: 2, Y: 1}, g.Coordinate(5))
}

func TestNeighbors(t *testing.T) {
	g, err := gridgraph.NewGrid([][]int{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}})
	require.NoError(t, err)

	cases := []struct {
		name string
		p    gridgraph.Point
		want []gridgraph.Point
	}{
		{"Center", gridgraph.Point{X: 1, Y: 1}, []gridgraph.Point{{2, 1}, {1, 2}, {0, 1}, {1, 0}}},
		{"TopLeft", gridgraph.Point{X: 0, Y: 0}, []gridgraph.Point{{1, 0}, {0, 1}}},
		{"BottomRight", gridgraph.Point{X: 2, Y: 2}, []gridgraph.Point{{1, 2}, {2, 1}}},
		{"TopEdge", gridgraph.Point{X: 1, Y: 0}, []gridgraph.Point{{2, 0}, {1, 1}, {0, 0}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, g.Neighbors(tc.p, nil))
		})
	}
}

func TestManhattan(t *testing.T) {
	assert.Equal(t, 0, gridgraph.Manhattan(gridgraph.Point{X: 3, Y: 3}, gridgraph.Point{X: 3, Y: 3}))
	assert.Equal(t, 18, gridgraph.Manhattan(gridgraph.Point{}, gridgraph.Point{X: 9, Y: 9}))
	assert.Equal(t, 5, gridgraph.Manhattan(gridgraph.Point{X: 4, Y: 0}, gridgraph.Point{X: 1, Y: 2}))
	assert.Equal(t, "4,0", gridgraph.Point{X: 4, Y: 0}.String())
}

func TestString_WideCosts(t *testing.T) {
	g, err := gridgraph.NewGrid([][]int{{1, 12}, {0, 9}})
	require.NoError(t, err)
	assert.Equal(t, "1#\n09", g.String())
}

func TestOverlay(t *testing.T) {
	g, err := gridgraph.ParseString("191\n191\n111")
	require.NoError(t, err)

	path := []gridgraph.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}, {X: 5, Y: 5}}
	assert.Equal(t, "*91\n*91\n***", g.Overlay(path, '*'))
	assert.Equal(t, g.String(), g.Overlay(nil, '*'))
}
