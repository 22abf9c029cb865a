package gridcost

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// maxLineBytes caps a single grid row; wider rows are malformed input.
var maxLineBytes = 16 << 20

// Parse reads a cost grid from r: one row per line, one decimal digit per
// cell. Carriage returns are stripped and trailing blank lines ignored.
// Any other character yields ErrInvalidCell with its line and column
// (both 1-based, column counted in characters). A row longer than 16 MiB
// yields ErrMalformedInput.
func Parse(r io.Reader) (*Grid, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, min(64*1024, maxLineBytes)), maxLineBytes)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("%w: line %d exceeds %d bytes", ErrMalformedInput, len(lines)+1, maxLineBytes)
		}
		return nil, fmt.Errorf("gridcost: read input: %w", err)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	values := make([][]int, len(lines))
	for y, line := range lines {
		row := make([]int, 0, len(line))
		col := 0
		for _, ch := range line {
			col++
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("%w: line %d column %d: %q", ErrInvalidCell, y+1, col, ch)
			}
			row = append(row, int(ch-'0'))
		}
		values[y] = row
	}

	return New(values)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}
