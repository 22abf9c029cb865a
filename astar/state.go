package astar

import (
	"fmt"

	"github.com/katalvlaran/crucible/gridcost"
)

// State is a node of the augmented search graph. Two states are equal only
// when position, heading and run length all match: the same cell reached
// with a different heading or run has different legal futures.
type State struct {
	Pos gridcost.Point
	Dir Direction
	Run int
}

// startState is the search origin: no heading, no run.
func startState(p gridcost.Point) State {
	return State{Pos: p, Dir: None, Run: 0}
}

func (s State) String() string {
	return fmt.Sprintf("%s%s%d", s.Pos, s.Dir, s.Run)
}
