// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Cell is one disagreeing position reported by Diff.
type Cell struct {
	Row, Col int
	Got      int // value in the first operand
	Want     int // value in the second operand
}

// String formats the cell as "(row,col) got=G want=W".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d) got=%d want=%d", c.Row, c.Col, c.Got, c.Want)
}

// Diff compares got against want cell by cell and returns every position
// where they disagree, in row-major order. An empty result means equal.
//
// Implementation:
//   - Stage 1: reject nil operands (ErrNilMatrix) and shape mismatch
//     (ErrDimensionMismatch).
//   - Stage 2: single pass over both flat buffers.
//
// Complexity:
//   - Time O(r*c), Space O(d) for d differing cells.
func Diff(got, want *Dense) ([]Cell, error) {
	if got == nil || want == nil {
		return nil, ErrNilMatrix
	}
	if got.r != want.r || got.c != want.c {
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d", ErrDimensionMismatch, got.r, got.c, want.r, want.c)
	}

	var out []Cell
	for k := range got.data {
		if got.data[k] != want.data[k] {
			out = append(out, Cell{
				Row:  k / got.c,
				Col:  k % got.c,
				Got:  got.data[k],
				Want: want.data[k],
			})
		}
	}

	return out, nil
}
