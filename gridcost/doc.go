// Package gridcost models a rectangular grid of per-cell entry costs.
//
// What:
//
//   - Grid wraps a validated, immutable [][]int of non-negative costs.
//   - Parse / ParseString read the textual form: one row per line,
//     one decimal digit per cell.
//   - CostAt looks up the cost charged for entering a cell.
//
// Why:
//
//   - Constrained path searches (see package astar) need a read-only cost
//     lookup with cheap bounds checks and a known minimum cell cost.
//
// Conventions:
//
//   - Coordinates are (x, y) with x the column and y the row; (0,0) is the
//     top-left cell.
//   - Start() is the top-left cell, Goal() the bottom-right cell.
//   - The cost of a cell is paid when a path enters it, never for the
//     starting cell.
//
// Complexity:
//
//   - New / Parse: O(W×H) time and memory.
//   - CostAt, InBounds, MinCost: O(1).
//
// Errors:
//
//   - ErrMalformedInput: umbrella for every construction failure below.
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNegativeCost: a cell holds a negative value.
//   - ErrInvalidCell: a text cell is not a single decimal digit.
//   - ErrOutOfBounds: CostAt called outside [0,W)×[0,H).
package gridcost
