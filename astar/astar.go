// A* driver.
//
// Complexity:
//
//   - States: at most W·H·4·MaxRun (+1 for the start).
//   - Time:  O(S·log S) for S reachable states; each state is finalized once
//     under a consistent heuristic and has at most three successors.
//   - Space: O(S) for the best-cost table and frontier.
//
// Notes on implementation choices:
//
//   - Lazy decrease-key: improvements push duplicates; stale pops are
//     detected against the best-cost table and discarded.
//   - The best-cost table is owned by a single runner, so independent
//     searches share nothing.

package astar

import (
	"fmt"
	"time"

	"github.com/katalvlaran/crucible/gridcost"
)

// Search finds the minimum total entry cost from g.Start() to g.Goal()
// under policy p.
//
// Returns:
//
//   - Result with StatusSucceeded and the minimum Cost, or StatusExhausted
//     when the goal is unreachable under p. Unreachable is not an error.
//   - err: ErrNilGrid, ErrBadPolicy, ErrOptionViolation, or
//     ErrExpansionLimit (with the partial Result counters).
//
// Search panics if the policy ever asks for a cost outside the grid; that
// is a broken invariant, not a recoverable condition.
func Search(g *gridcost.Grid, p Policy, opts ...Option) (Result, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}

	// 2) Validate inputs.
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if err := p.Validate(); err != nil {
		return Result{}, err
	}

	// 3) Run.
	began := time.Now()
	r := newRunner(g, p, cfg)
	r.init()
	res, err := r.process()
	res.Elapsed = time.Since(began)

	return res, err
}

// runner holds the mutable state for a single search.
type runner struct {
	grid    *gridcost.Grid
	policy  Policy
	options Options
	goal    gridcost.Point
	best    map[State]int   // lowest accumulated cost seen per state
	prev    map[State]State // predecessor per state; nil unless ReturnPath
	pq      frontier
	moves   []Move // reused candidate buffer
	res     Result
}

func newRunner(g *gridcost.Grid, p Policy, cfg Options) *runner {
	r := &runner{
		grid:    g,
		policy:  p,
		options: cfg,
		goal:    g.Goal(),
		best:    make(map[State]int, g.Width*g.Height),
		pq:      make(frontier, 0, g.Width*g.Height),
		moves:   make([]Move, 0, len(Directions)),
		res:     Result{Policy: p},
	}
	if cfg.ReturnPath {
		r.prev = make(map[State]State, g.Width*g.Height)
	}

	return r
}

// init seeds the table and frontier with the start state at cost 0.
func (r *runner) init() {
	// 1) The start state has no heading and no run; entering it is free.
	s := startState(r.grid.Start())
	r.best[s] = 0

	// 2) Its priority is the heuristic alone.
	r.pq.push(entry{
		state:    s,
		cost:     0,
		priority: r.options.Heuristic(r.grid, s.Pos),
	})
}

// process pops entries until a goal state satisfies the policy or the
// frontier is exhausted.
func (r *runner) process() (Result, error) {
	for r.pq.Len() > 0 {
		// 1) Pop the entry with the smallest cost + heuristic.
		e := r.pq.popMin()

		// 2) If stale (a cheaper entry for this state was recorded after
		//    this one was pushed), discard it.
		if e.cost > r.best[e.state] {
			r.res.Stale++
			continue
		}

		// 3) Enforce the caller's expansion bound. A pop that would end
		//    the search is always accepted.
		done := e.state.Pos == r.goal && r.policy.CanStop(e.state)
		if !done && r.options.MaxExpansions > 0 && r.res.Expanded >= r.options.MaxExpansions {
			return r.res, fmt.Errorf("%w: %d states expanded under %s", ErrExpansionLimit, r.res.Expanded, r.policy)
		}

		// 4) Finalize the state and notify the hook.
		r.res.Expanded++
		r.options.OnExpand(e.state, e.cost)

		// 5) On the goal with a satisfied run: this cost is minimal.
		if done {
			r.res.Status = StatusSucceeded
			r.res.Cost = e.cost
			if r.prev != nil {
				r.res.Path = r.reconstruct(e.state)
			}
			return r.res, nil
		}

		// 6) Otherwise push every improving successor.
		r.relax(e)
	}

	// Frontier empty: no state on the goal could stop.
	r.res.Status = StatusExhausted
	return r.res, nil
}

// relax pushes every legal, in-bounds successor of e whose accumulated cost
// improves on the table.
func (r *runner) relax(e entry) {
	// 1) Ask the policy for candidate moves, reusing the buffer.
	r.moves = r.policy.AppendCandidates(r.moves[:0], e.state.Dir, e.state.Run)
	for _, m := range r.moves {
		// 2) Geometric filter: drop moves that leave the grid.
		dx, dy := m.Dir.Delta()
		pos := e.state.Pos.Add(dx, dy)
		if !r.grid.InBounds(pos) {
			continue
		}

		// 3) Entry cost. Bounds were checked, so a failure here is a bug.
		c, err := r.grid.CostAt(pos)
		if err != nil {
			panic(fmt.Errorf("astar: cost lookup after bounds check: %w", err))
		}

		// 4) Keep only strict improvements.
		next := State{Pos: pos, Dir: m.Dir, Run: m.Run}
		cost := e.cost + c
		if old, seen := r.best[next]; seen && cost >= old {
			continue
		}

		// 5) Record and push; the old entry, if any, becomes stale.
		r.best[next] = cost
		if r.prev != nil {
			r.prev[next] = e.state
		}
		r.res.Pushed++
		r.pq.push(entry{
			state:    next,
			cost:     cost,
			priority: cost + r.options.Heuristic(r.grid, pos),
		})
	}
}

// reconstruct walks predecessors back from s to the start state.
func (r *runner) reconstruct(s State) []State {
	path := []State{s}
	for {
		p, ok := r.prev[s]
		if !ok {
			break
		}
		path = append(path, p)
		s = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
