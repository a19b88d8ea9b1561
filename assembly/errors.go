package assembly

import "errors"

var (
	// ErrNilInput indicates a nil store or overlap result.
	ErrNilInput = errors.New("assembly: nil store or overlap result")

	// ErrReadCountMismatch indicates that the store and the overlap result
	// describe different read batches.
	ErrReadCountMismatch = errors.New("assembly: store and overlap result disagree on read count")

	// ErrNoPath is returned when no start pair extends greedily over every read.
	ErrNoPath = errors.New("assembly: no greedy path covers all reads")

	// ErrBadMinOverlap indicates a minimum overlap < 1.
	ErrBadMinOverlap = errors.New("assembly: minimum overlap must be >= 1")
)
