package suffixtree

import "errors"

// Sentinel errors for suffix-tree construction and queries.
//
// ErrEdgeTableFull and ErrInvariant are fatal for a build: the partially
// built tree is discarded and never returned.
var (
	// ErrNilStore is returned when Build receives a nil *reads.Store.
	ErrNilStore = errors.New("suffixtree: read store is nil")

	// ErrEdgeTableFull indicates that insert found no empty slot: the edge
	// table is undersized for the input.
	ErrEdgeTableFull = errors.New("suffixtree: edge table exhausted")

	// ErrBadTableSize indicates a non-positive WithEdgeTableSize value.
	ErrBadTableSize = errors.New("suffixtree: edge table size must be positive")

	// ErrInvariant indicates an internal consistency violation, e.g. a lookup
	// returning absent where construction guarantees presence. It always
	// signals a bug, never bad input.
	ErrInvariant = errors.New("suffixtree: internal invariant violated")

	// ErrNodeOutOfRange indicates a node id outside [0, NodeCount()).
	ErrNodeOutOfRange = errors.New("suffixtree: node id out of range")
)
