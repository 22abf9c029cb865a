package gridcost

import "fmt"

// New constructs a Grid from a non-empty, rectangular 2D slice of
// non-negative costs. It deep-copies the input so later mutation of values
// cannot affect the grid.
//
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, and ErrNegativeCost if any
// cell is below zero. All of them wrap ErrMalformedInput.
// Complexity: O(W×H) time and memory.
func New(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}

	cells := make([][]int, h)
	minCost := values[0][0]
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		for x, c := range values[y] {
			if c < 0 {
				return nil, fmt.Errorf("%w: cell (%d,%d)=%d", ErrNegativeCost, x, y, c)
			}
			if c < minCost {
				minCost = c
			}
			cells[y][x] = c
		}
	}

	return &Grid{
		Width:   w,
		Height:  h,
		costs:   cells,
		minCost: minCost,
	}, nil
}

// InBounds reports whether p lies within [0,Width)×[0,Height).
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// CostAt returns the cost of entering cell p, or ErrOutOfBounds.
// Complexity: O(1).
func (g *Grid) CostAt(p Point) (int, error) {
	if !g.InBounds(p) {
		return 0, fmt.Errorf("%w: %s in %dx%d grid", ErrOutOfBounds, p, g.Width, g.Height)
	}

	return g.costs[p.Y][p.X], nil
}

// MinCost returns the smallest cell cost in the grid.
func (g *Grid) MinCost() int {
	return g.minCost
}

// Start is the top-left cell.
func (g *Grid) Start() Point {
	return Point{}
}

// Goal is the bottom-right cell.
func (g *Grid) Goal() Point {
	return Point{X: g.Width - 1, Y: g.Height - 1}
}
