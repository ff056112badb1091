package gridgraph_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/gridgraph"
)

// TestExpand_FactorOneIsIdentity checks that a single tile reproduces the
// input exactly, including costs outside the 1..9 wrap domain.
func TestExpand_FactorOneIsIdentity(t *testing.T) {
	for _, rows := range [][][]int{
		{{1, 1, 6}, {3, 7, 5}},
		{{0, 9}, {12, 4}},
	} {
		g, err := gridgraph.NewGrid(rows)
		require.NoError(t, err)

		e, err := g.Expand(1)
		require.NoError(t, err)
		if diff := cmp.Diff(g.Rows(), e.Rows()); diff != "" {
			t.Errorf("Expand(1) mismatch (-want +got):\n%s", diff)
		}
	}
}

// TestExpand_SingleCell walks one cell through a 5×5 tiling.
// Grid: [8]; tile (dx,dy) holds ((8-1+dx+dy) mod 9)+1.
func TestExpand_SingleCell(t *testing.T) {
	g, err := gridgraph.NewGrid([][]int{{8}})
	require.NoError(t, err)

	e, err := g.Expand(5)
	require.NoError(t, err)

	want := [][]int{
		{8, 9, 1, 2, 3},
		{9, 1, 2, 3, 4},
		{1, 2, 3, 4, 5},
		{2, 3, 4, 5, 6},
		{3, 4, 5, 6, 7},
	}
	if diff := cmp.Diff(want, e.Rows()); diff != "" {
		t.Errorf("Expand(5) mismatch (-want +got):\n%s", diff)
	}
}

func TestExpand_Sample(t *testing.T) {
	g, err := gridgraph.ParseString(sampleGrid)
	require.NoError(t, err)

	e, err := g.Expand(5)
	require.NoError(t, err)

	assert.Equal(t, 50, e.Width)
	assert.Equal(t, 50, e.Height)
	rows := e.Rows()
	assert.Equal(t, []int{
		1, 1, 6, 3, 7, 5, 1, 7, 4, 2,
		2, 2, 7, 4, 8, 6, 2, 8, 5, 3,
		3, 3, 8, 5, 9, 7, 3, 9, 6, 4,
		4, 4, 9, 6, 1, 8, 4, 1, 7, 5,
		5, 5, 1, 7, 2, 9, 5, 2, 8, 6,
	}, rows[0])
	// Bottom-right tile is shifted by 8: the corner 1 becomes 9.
	assert.Equal(t, 9, e.At(gridgraph.Point{X: 49, Y: 49}))
	// Tile (0,1) starts with the original (0,0) shifted by 1.
	assert.Equal(t, 2, e.At(gridgraph.Point{X: 0, Y: 10}))
}

func TestExpand_Errors(t *testing.T) {
	g, err := gridgraph.NewGrid([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)
	for _, f := range []int{0, -3} {
		_, err := g.Expand(f)
		assert.ErrorIs(t, err, gridgraph.ErrBadFactor)
		assert.ErrorIs(t, err, gridgraph.ErrMalformedGrid)
	}

	for _, rows := range [][][]int{{{0, 1}}, {{1, 10}}} {
		g, err := gridgraph.NewGrid(rows)
		require.NoError(t, err)
		_, err = g.Expand(2)
		assert.ErrorIs(t, err, gridgraph.ErrCostDomain)
	}
}
