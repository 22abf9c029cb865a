package astar

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/crucible/gridcost"
)

// SolveAll runs one independent Search per policy against the same grid,
// concurrently, and returns results in policy order. Each search owns its
// own frontier and best-cost table; the grid is only read. An OnExpand hook
// passed in opts is called from several goroutines.
//
// The first error (in completion order) is returned; results of searches
// that finished are still filled in.
func SolveAll(g *gridcost.Grid, policies []Policy, opts ...Option) ([]Result, error) {
	results := make([]Result, len(policies))
	var eg errgroup.Group
	for i, p := range policies {
		i, p := i, p
		eg.Go(func() error {
			res, err := Search(g, p, opts...)
			results[i] = res
			return err
		})
	}
	err := eg.Wait()

	return results, err
}
