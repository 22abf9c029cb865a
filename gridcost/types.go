package gridcost

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridcost operations.
var (
	// ErrMalformedInput is wrapped by every construction error, so callers
	// can test for "bad grid" without caring which rule was broken.
	ErrMalformedInput = errors.New("gridcost: malformed input")

	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrMalformedInput)

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrMalformedInput)

	// ErrNegativeCost indicates a cell with a cost below zero.
	ErrNegativeCost = fmt.Errorf("%w: cell cost must be non-negative", ErrMalformedInput)

	// ErrInvalidCell indicates a text cell that is not a single decimal digit.
	ErrInvalidCell = fmt.Errorf("%w: cell must be a single digit", ErrMalformedInput)

	// ErrOutOfBounds indicates a lookup outside the grid extents.
	ErrOutOfBounds = errors.New("gridcost: position out of bounds")
)

// Point is a cell coordinate: X is the column, Y the row.
type Point struct {
	X, Y int
}

// Add returns p shifted by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// String renders p as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Grid is an immutable rectangle of entry costs.
// Width and Height are fixed at construction; costs[y][x] holds the cost of
// entering cell (x,y). minCost caches the smallest value for heuristics.
type Grid struct {
	Width, Height int
	costs         [][]int
	minCost       int
}
