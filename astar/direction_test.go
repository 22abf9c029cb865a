package astar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/crucible/astar"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		from, to astar.Direction
		want     astar.Maneuver
	}{
		{astar.North, astar.North, astar.Straight},
		{astar.East, astar.East, astar.Straight},
		{astar.North, astar.South, astar.Reverse},
		{astar.West, astar.East, astar.Reverse},
		{astar.North, astar.East, astar.Turn},
		{astar.South, astar.West, astar.Turn},
		{astar.None, astar.West, astar.Turn},
		{astar.None, astar.None, astar.Turn},
	}
	for _, tc := range cases {
		t.Run(tc.from.String()+tc.to.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, astar.Classify(tc.from, tc.to))
		})
	}
}

// TestClassify_Exhaustive checks that every heading has exactly one
// straight, one reverse and two turns among the four headings.
func TestClassify_Exhaustive(t *testing.T) {
	for _, from := range astar.Directions {
		counts := map[astar.Maneuver]int{}
		for _, to := range astar.Directions {
			counts[astar.Classify(from, to)]++
		}
		assert.Equal(t, map[astar.Maneuver]int{astar.Straight: 1, astar.Reverse: 1, astar.Turn: 2}, counts, "from %s", from)
		assert.Equal(t, from, from.Opposite().Opposite())
	}
	assert.Equal(t, astar.None, astar.None.Opposite())
}

func TestDelta(t *testing.T) {
	for _, d := range astar.Directions {
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		assert.Equal(t, 1, dx*dx+dy*dy, "%s must be a unit step", d)
		assert.Equal(t, -dx, ox)
		assert.Equal(t, -dy, oy)
	}
	dx, dy := astar.North.Delta()
	assert.Equal(t, [2]int{0, -1}, [2]int{dx, dy})
	dx, dy = astar.None.Delta()
	assert.Equal(t, [2]int{0, 0}, [2]int{dx, dy})
}

func TestManeuverString(t *testing.T) {
	assert.Equal(t, "straight", astar.Straight.String())
	assert.Equal(t, "turn", astar.Turn.String())
	assert.Equal(t, "reverse", astar.Reverse.String())
}
