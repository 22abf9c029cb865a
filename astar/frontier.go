package astar

import "container/heap"

// entry is one frontier record. Several entries for the same state may
// coexist; only the one whose cost matches the best-cost table is live.
type entry struct {
	state    State
	cost     int // accumulated entry cost from the start
	priority int // cost + heuristic
}

// frontier is a min-heap of entries ordered by priority, using the
// lazy-decrease-key pattern: improvements push a new entry and stale ones
// are skipped when popped. Among equal priorities the entry with the larger
// accumulated cost (closer to the goal) comes first.
type frontier []entry

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}
	return f[i].cost > f[j].cost
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push is called by heap.Push; x must be an entry.
func (f *frontier) Push(x any) { *f = append(*f, x.(entry)) }

// Pop is called by heap.Pop.
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	e := old[n-1]
	*f = old[:n-1]

	return e
}

func (f *frontier) push(e entry) { heap.Push(f, e) }

func (f *frontier) popMin() entry { return heap.Pop(f).(entry) }
