package astar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/astar"
	"github.com/katalvlaran/crucible/gridcost"
)

func TestNamedPolicies(t *testing.T) {
	assert.Equal(t, astar.Policy{Name: "standard", MinRun: 1, MaxRun: 3}, astar.Standard())
	assert.Equal(t, astar.Policy{Name: "extended", MinRun: 4, MaxRun: 10}, astar.Extended())
	assert.NoError(t, astar.Standard().Validate())
	assert.NoError(t, astar.Extended().Validate())
	assert.Equal(t, "extended[4..10]", astar.Extended().String())
}

func TestNewPolicy(t *testing.T) {
	p, err := astar.NewPolicy("custom", 2, 5)
	require.NoError(t, err)
	assert.Equal(t, 2, p.MinRun)

	for _, bad := range [][2]int{{0, 3}, {-1, 3}, {4, 3}} {
		_, err := astar.NewPolicy("bad", bad[0], bad[1])
		assert.ErrorIs(t, err, astar.ErrBadPolicy, "min=%d max=%d", bad[0], bad[1])
	}
}

func TestCandidates(t *testing.T) {
	std, ext := astar.Standard(), astar.Extended()
	cases := []struct {
		name   string
		policy astar.Policy
		dir    astar.Direction
		run    int
		want   []astar.Move
	}{
		{
			name: "StartAllDirections", policy: ext, dir: astar.None, run: 0,
			want: []astar.Move{{astar.North, 1}, {astar.East, 1}, {astar.South, 1}, {astar.West, 1}},
		},
		{
			name: "StandardFresh", policy: std, dir: astar.East, run: 1,
			want: []astar.Move{{astar.North, 1}, {astar.East, 2}, {astar.South, 1}},
		},
		{
			name: "StandardAtMax", policy: std, dir: astar.East, run: 3,
			want: []astar.Move{{astar.North, 1}, {astar.South, 1}},
		},
		{
			name: "ExtendedBelowMin", policy: ext, dir: astar.South, run: 3,
			want: []astar.Move{{astar.South, 4}},
		},
		{
			name: "ExtendedAtMin", policy: ext, dir: astar.South, run: 4,
			want: []astar.Move{{astar.East, 1}, {astar.South, 5}, {astar.West, 1}},
		},
		{
			name: "ExtendedAtMax", policy: ext, dir: astar.West, run: 10,
			want: []astar.Move{{astar.North, 1}, {astar.South, 1}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.policy.Candidates(tc.dir, tc.run)
			assert.Equal(t, tc.want, got)
			for _, m := range got {
				assert.NotEqual(t, astar.Reverse, astar.Classify(tc.dir, m.Dir), "reversal offered")
			}
		})
	}
}

func TestCanStop(t *testing.T) {
	at := gridcost.Point{X: 1, Y: 1}
	std, ext := astar.Standard(), astar.Extended()

	assert.True(t, std.CanStop(astar.State{Pos: at, Dir: astar.East, Run: 1}))
	assert.False(t, ext.CanStop(astar.State{Pos: at, Dir: astar.East, Run: 3}))
	assert.True(t, ext.CanStop(astar.State{Pos: at, Dir: astar.East, Run: 4}))
	assert.True(t, ext.CanStop(astar.State{Pos: at, Dir: astar.None}), "start state may stop")
}

func TestMaxStates(t *testing.T) {
	assert.Equal(t, 13*13*4*10+1, astar.Extended().MaxStates(13, 13))
}
