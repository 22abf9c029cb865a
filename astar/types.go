package astar

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/crucible/gridcost"
)

// Sentinel errors returned by the search.
var (
	// ErrNilGrid indicates that a nil *gridcost.Grid was passed to Search.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrBadPolicy indicates a policy violating 1 ≤ MinRun ≤ MaxRun.
	ErrBadPolicy = errors.New("astar: invalid move policy")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrExpansionLimit indicates the caller's expansion bound was reached
	// before the search could finish.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")
)

// Status is the terminal state of one search.
type Status int

const (
	// StatusSucceeded means a state on the goal satisfied the policy's
	// termination condition; Result.Cost is the minimum.
	StatusSucceeded Status = iota + 1

	// StatusExhausted means the frontier emptied first: the goal is
	// unreachable under the policy.
	StatusExhausted
)

func (s Status) String() string {
	switch s {
	case StatusSucceeded:
		return "succeeded"
	case StatusExhausted:
		return "exhausted"
	}

	return "unknown"
}

// Result is the outcome of one search.
//
//   - Status: StatusSucceeded or StatusExhausted.
//   - Cost: minimum accumulated entry cost; 0 when exhausted.
//   - Expanded: states finalized (popped and not stale).
//   - Pushed: frontier insertions after the start state.
//   - Stale: popped entries discarded because a cheaper one was recorded.
//   - Path: start→goal states when WithReturnPath was set.
//   - Elapsed: wall time spent in the search loop.
type Result struct {
	Policy   Policy
	Status   Status
	Cost     int
	Expanded int
	Pushed   int
	Stale    int
	Path     []State
	Elapsed  time.Duration
}

// Reachable reports whether the goal was reached.
func (r Result) Reachable() bool {
	return r.Status == StatusSucceeded
}

// Points returns the cell sequence of Path.
func (r Result) Points() []gridcost.Point {
	if r.Path == nil {
		return nil
	}
	pts := make([]gridcost.Point, len(r.Path))
	for i, s := range r.Path {
		pts[i] = s.Pos
	}

	return pts
}

// Options configures the search.
//
//   - ReturnPath: if true, Result.Path holds the optimal state sequence.
//   - MaxExpansions: if > 0, stop with ErrExpansionLimit once that many
//     states are finalized; 0 means no limit.
//   - Heuristic: remaining-cost estimator; Manhattan by default.
//   - OnExpand: called with each finalized state and its cost.
type Options struct {
	ReturnPath    bool
	MaxExpansions int
	Heuristic     Heuristic
	OnExpand      func(s State, cost int)

	// internal error recorded during option parsing
	err error
}

// Option is a functional option for Search.
// Invalid arguments are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// DefaultOptions returns Options with no path, no limit, the Manhattan
// heuristic and a no-op expansion hook.
func DefaultOptions() Options {
	return Options{
		ReturnPath:    false,
		MaxExpansions: 0,
		Heuristic:     Manhattan,
		OnExpand:      func(State, int) {},
	}
}

// WithReturnPath enables path reconstruction into Result.Path.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxExpansions bounds the number of finalized states.
//
//	n > 0: limit to n
//	n == 0: no limit
//	n < 0: invalid → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithHeuristic replaces the remaining-cost estimator. A nil h is ignored.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithOnExpand registers a callback run for every finalized state.
func WithOnExpand(fn func(s State, cost int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
