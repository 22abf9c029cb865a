package astar

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/crucible/gridcost"
)

// Heuristic estimates the remaining cost from a position to the grid goal.
// It must never overestimate, or the reported cost may not be minimal.
type Heuristic func(g *gridcost.Grid, from gridcost.Point) int

// Manhattan is the Manhattan distance to the goal scaled by the grid's
// smallest cell cost. Every step enters one cell costing at least MinCost,
// so the estimate is admissible and consistent; on grids whose cheapest
// cell costs 1 it is the plain Manhattan distance.
func Manhattan(g *gridcost.Grid, from gridcost.Point) int {
	goal := g.Goal()
	return (absDiff(from.X, goal.X) + absDiff(from.Y, goal.Y)) * g.MinCost()
}

// ZeroHeuristic turns the search into uniform-cost (Dijkstra) search.
func ZeroHeuristic(*gridcost.Grid, gridcost.Point) int {
	return 0
}

func absDiff[T constraints.Signed](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}
