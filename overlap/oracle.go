package overlap

import (
	"fmt"

	"github.com/exascience/pargo/parallel"

	"github.com/katalvlaran/apsp/matrix"
	"github.com/katalvlaran/apsp/reads"
)

// Pairwise returns the length of the longest suffix of a that is a prefix
// of b, trying every length from the longest down.
//
// Complexity: O(min(|a|,|b|)²).
func Pairwise(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for l := n; l > 0; l-- {
		if a[len(a)-l:] == b[:l] {
			return l
		}
	}

	return 0
}

// BruteForce computes the overlap matrix of store by calling Pairwise on
// every ordered pair. Rows are filled in parallel; each worker writes only
// its own rows.
//
// Complexity: O(k²·L²) work for k reads of length L.
func BruteForce(store *reads.Store) (*matrix.Dense, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	raw := store.Raw()
	k := len(raw)
	d, err := matrix.NewDense(k, k)
	if err != nil {
		return nil, err
	}

	// errs[i] is written only by the goroutine that owns row i.
	errs := make([]error, k)
	parallel.Range(0, k, 0, func(low, high int) {
		for i := low; i < high; i++ {
			for j := 0; j < k && errs[i] == nil; j++ {
				if i != j {
					errs[i] = d.Set(i, j, Pairwise(raw[i], raw[j]))
				}
			}
		}
	})
	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("overlap: brute force: %w", err)
		}
	}

	return d, nil
}
