// Package astar finds the cheapest route across a cost grid when the legal
// moves depend on how the route got where it is.
//
// Overview:
//
//   - A search state is (position, heading, run length). Two routes reaching
//     the same cell with a different heading or run are different states.
//   - A Policy decides the legal next moves from (heading, run) and whether a
//     state on the goal may end the search. Two regimes ship ready-made:
//     Standard (turn any time, at most 3 steps straight) and Extended (at
//     least 4 steps before turning or stopping, at most 10 straight).
//   - The driver is A*: a min-heap frontier keyed by cost + heuristic, with
//     lazy invalidation of stale entries against a best-cost table.
//
// When to use:
//
//   - Single-source, single-goal minimum-cost queries from the top-left to
//     the bottom-right cell of a gridcost.Grid.
//   - Comparing several policies on one grid (SolveAll runs them
//     concurrently; each search owns its frontier and table).
//
// Key features:
//
//   - Unreachable goals are reported as StatusExhausted, not as an error.
//   - WithReturnPath(): reconstruct the optimal state sequence.
//   - WithMaxExpansions(n): bound the work; ErrExpansionLimit when exceeded.
//   - WithHeuristic(h): swap the estimator (ZeroHeuristic = Dijkstra).
//   - WithOnExpand(fn): observe every finalized state.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:         nil grid passed to Search.
//   - ErrBadPolicy:       policy violates 1 ≤ MinRun ≤ MaxRun.
//   - ErrOptionViolation: an Option received an invalid argument.
//   - ErrExpansionLimit:  MaxExpansions reached before termination.
//
// Example usage:
//
//	g, _ := gridcost.ParseString(input)
//	res, err := astar.Search(g, astar.Extended())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !res.Reachable() {
//	    fmt.Println("unreachable")
//	}
//	fmt.Println(res.Cost)
//
// Thread safety:
//
//   - Search holds no package-level mutable state; concurrent searches over
//     the same grid are safe because the grid is immutable.
package astar
