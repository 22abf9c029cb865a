package gridcost_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/gridcost"
)

//----------------------------------------------------------------------------//
// New and InBounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty, ragged or negative inputs
// and that every rejection is a malformed-input error.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"NilRows", nil, gridcost.ErrEmptyGrid},
		{"EmptyRows", [][]int{}, gridcost.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridcost.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridcost.ErrNonRectangular},
		{"NegativeCell", [][]int{{1, -2}, {3, 4}}, gridcost.ErrNegativeCost},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := gridcost.New(tc.grid)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.err)
			assert.ErrorIs(t, err, gridcost.ErrMalformedInput)
		})
	}
}

// TestNew_DeepCopy ensures that mutating the source slice after construction
// leaves the grid untouched.
func TestNew_DeepCopy(t *testing.T) {
	src := [][]int{{1, 2}, {3, 4}}
	g, err := gridcost.New(src)
	require.NoError(t, err)

	src[0][0] = 9
	c, err := g.CostAt(gridcost.Point{X: 0, Y: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, c)
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, err := gridcost.New([][]int{
		{1, 2, 3},
		{4, 5, 6},
	})
	require.NoError(t, err)

	for _, p := range []gridcost.Point{{X: 0, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 1}} {
		assert.True(t, g.InBounds(p), "InBounds(%s)", p)
	}
	for _, p := range []gridcost.Point{{X: -1, Y: 0}, {X: 3, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: -1}} {
		assert.False(t, g.InBounds(p), "InBounds(%s)", p)
	}
}

//----------------------------------------------------------------------------//
// CostAt / MinCost / geometry Tests
//----------------------------------------------------------------------------//

func TestCostAt(t *testing.T) {
	g, err := gridcost.New([][]int{
		{1, 2, 3},
		{4, 5, 6},
	})
	require.NoError(t, err)

	c, err := g.CostAt(gridcost.Point{X: 2, Y: 1})
	require.NoError(t, err)
	assert.Equal(t, 6, c)

	_, err = g.CostAt(gridcost.Point{X: 3, Y: 1})
	assert.ErrorIs(t, err, gridcost.ErrOutOfBounds)
	assert.NotErrorIs(t, err, gridcost.ErrMalformedInput)
}

func TestMinCost(t *testing.T) {
	g, err := gridcost.New([][]int{{7, 3}, {5, 9}})
	require.NoError(t, err)
	assert.Equal(t, 3, g.MinCost())

	g, err = gridcost.New([][]int{{0}})
	require.NoError(t, err)
	assert.Equal(t, 0, g.MinCost())
}

func TestStartGoal(t *testing.T) {
	g, err := gridcost.New([][]int{
		{1, 1, 1, 1},
		{1, 1, 1, 1},
		{1, 1, 1, 1},
	})
	require.NoError(t, err)

	assert.Equal(t, gridcost.Point{X: 0, Y: 0}, g.Start())
	assert.Equal(t, gridcost.Point{X: 3, Y: 2}, g.Goal())
}

func TestPoint(t *testing.T) {
	p := gridcost.Point{X: 2, Y: 5}
	assert.Equal(t, gridcost.Point{X: 1, Y: 6}, p.Add(-1, 1))
	assert.Equal(t, "(2,5)", p.String())
}
