package overlap

import "errors"

var (
	// ErrNilTree indicates that Compute was called without a tree.
	ErrNilTree = errors.New("overlap: nil tree")

	// ErrNilStore indicates that BruteForce was called without a read store.
	ErrNilStore = errors.New("overlap: nil read store")

	// ErrStackImbalance signals that the traversal left a per-read stack
	// non-empty or that pushes and pops disagree. It indicates a malformed tree.
	ErrStackImbalance = errors.New("overlap: per-read stacks unbalanced after traversal")

	// ErrBadThreshold indicates a minimum overlap < 1.
	ErrBadThreshold = errors.New("overlap: minimum overlap must be >= 1")

	// ErrReadOutOfRange indicates a read index outside [0, Len()).
	ErrReadOutOfRange = errors.New("overlap: read index out of range")
)
