package astar

import "fmt"

// Policy is a move-constraint regime over run lengths.
//
//   - A straight step is allowed while the run stays ≤ MaxRun.
//   - A turn is allowed once the current run is ≥ MinRun; it restarts the run at 1.
//   - Reversal is never allowed.
//   - A state may end the search at the goal only when its run is ≥ MinRun.
//
// The start state (heading None) may leave in any direction and may stop
// immediately when it already sits on the goal.
type Policy struct {
	Name   string
	MinRun int
	MaxRun int
}

// Move is one candidate successor: the heading to take and the run length
// the successor state will carry.
type Move struct {
	Dir Direction
	Run int
}

// Standard allows turns at any time and caps straight runs at 3.
func Standard() Policy {
	return Policy{Name: "standard", MinRun: 1, MaxRun: 3}
}

// Extended requires at least 4 steps before turning or stopping and caps
// straight runs at 10.
func Extended() Policy {
	return Policy{Name: "extended", MinRun: 4, MaxRun: 10}
}

// NewPolicy builds a validated policy.
func NewPolicy(name string, minRun, maxRun int) (Policy, error) {
	p := Policy{Name: name, MinRun: minRun, MaxRun: maxRun}
	if err := p.Validate(); err != nil {
		return Policy{}, err
	}

	return p, nil
}

// Validate checks 1 ≤ MinRun ≤ MaxRun.
func (p Policy) Validate() error {
	if p.MinRun < 1 || p.MaxRun < p.MinRun {
		return fmt.Errorf("%w: %q min_run=%d max_run=%d", ErrBadPolicy, p.Name, p.MinRun, p.MaxRun)
	}

	return nil
}

// Candidates returns the legal (heading, run) pairs out of a state heading
// dir with the given run length, before any bounds filtering.
func (p Policy) Candidates(dir Direction, run int) []Move {
	return p.AppendCandidates(make([]Move, 0, 3), dir, run)
}

// AppendCandidates is Candidates appending into dst, so the search loop can
// reuse one buffer.
func (p Policy) AppendCandidates(dst []Move, dir Direction, run int) []Move {
	if dir == None {
		for _, d := range Directions {
			dst = append(dst, Move{Dir: d, Run: 1})
		}
		return dst
	}
	for _, d := range Directions {
		switch Classify(dir, d) {
		case Straight:
			if run+1 <= p.MaxRun {
				dst = append(dst, Move{Dir: d, Run: run + 1})
			}
		case Turn:
			if run >= p.MinRun {
				dst = append(dst, Move{Dir: d, Run: 1})
			}
		}
	}

	return dst
}

// CanStop reports whether s satisfies the run requirement for ending the
// search. Position is checked by the caller.
func (p Policy) CanStop(s State) bool {
	return s.Dir == None || s.Run >= p.MinRun
}

// MaxStates is the upper bound on distinct search states for a W×H grid:
// every cell times four headings times MaxRun run lengths, plus the start.
func (p Policy) MaxStates(width, height int) int {
	return width*height*len(Directions)*p.MaxRun + 1
}

func (p Policy) String() string {
	return fmt.Sprintf("%s[%d..%d]", p.Name, p.MinRun, p.MaxRun)
}
