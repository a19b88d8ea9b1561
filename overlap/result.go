package overlap

import (
	"fmt"

	"github.com/katalvlaran/apsp/core"
)

// Len returns the number of reads k.
func (r *Result) Len() int { return len(r.lengths) }

// ReadLength returns the length of read i without sentinel.
func (r *Result) ReadLength(i int) (int, error) {
	if i < 0 || i >= len(r.lengths) {
		return 0, fmt.Errorf("%w: %d", ErrReadOutOfRange, i)
	}

	return r.lengths[i], nil
}

// Overlap returns D[i][j].
func (r *Result) Overlap(i, j int) (int, error) {
	k := len(r.lengths)
	if i < 0 || i >= k || j < 0 || j >= k {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrReadOutOfRange, i, j)
	}

	return r.Matrix.At(i, j)
}

// Graph returns the overlap graph: one vertex per read and an edge i→j of
// weight D[i][j] for every i != j with D[i][j] >= minOverlap.
//
// Errors: ErrBadThreshold when minOverlap < 1.
// Complexity: O(k² + E·d).
func (r *Result) Graph(minOverlap int) (*core.Graph, error) {
	if minOverlap < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadThreshold, minOverlap)
	}
	g := core.NewGraph(len(r.lengths))

	var err error
	r.Matrix.Do(func(i, j, v int) bool {
		if i == j || v < minOverlap {
			return true
		}
		err = g.AddEdge(i, j, v)
		return err == nil
	})
	if err != nil {
		return nil, fmt.Errorf("overlap: graph: %w", err)
	}

	return g, nil
}
