package astar_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/gridcost"
)

// sampleGrid is the published 13×13 example: 102 standard, 94 extended.
const sampleGrid = `2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533
`

// sampleGridExtended is the second published example: 71 extended.
const sampleGridExtended = `111111111111
999999999991
999999999991
999999999991
999999999991
`

func mustParse(t testing.TB, s string) *gridcost.Grid {
	t.Helper()
	g, err := gridcost.ParseString(s)
	require.NoError(t, err)
	return g
}

// corridor builds a single-row grid of n cells, each costing c.
func corridor(t testing.TB, n, c int) *gridcost.Grid {
	t.Helper()
	row := make([]int, n)
	for i := range row {
		row[i] = c
	}
	g, err := gridcost.New([][]int{row})
	require.NoError(t, err)
	return g
}

// randomGrid builds a deterministic w×h grid of costs in [lo,hi].
func randomGrid(t testing.TB, seed int64, w, h, lo, hi int) *gridcost.Grid {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	var sb strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sb.WriteByte(byte('0' + lo + r.Intn(hi-lo+1)))
		}
		sb.WriteByte('\n')
	}
	return mustParse(t, sb.String())
}
