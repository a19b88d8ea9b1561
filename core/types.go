// Package core defines the directed, weighted overlap Graph over read
// indices, and provides thread-safe primitives for building and querying it.
//
// This file declares Edge, Graph, GraphOption, sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrVertexNotFound      - vertex index outside [0, VertexCount()).
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - non-positive weight.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - second edge between the same ordered pair.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a weight <= 0: an overlap edge carries a positive length.
	ErrBadWeight = errors.New("core: weight must be > 0")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is a directed arc From→To. In an overlap graph, Weight is the length
// of the longest suffix of read From that is a prefix of read To.
type Edge struct {
	// From is the source vertex (read index).
	From int

	// To is the destination vertex (read index).
	To int

	// Weight is the overlap length.
	Weight int
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits parallel edges between the same ordered pair.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is a directed, weighted graph over the vertices 0..n-1.
//
// Outgoing edges of every vertex are kept sorted by descending Weight, ties
// broken by ascending To, so Neighbors is a copy and never a sort.
// mu guards out and edgeCount; the vertex set is fixed at construction.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops

	// Storage
	out       [][]Edge // out[v] = edges leaving v, heaviest first
	edgeCount int
}

// NewGraph creates a Graph with n isolated vertices (negative n is treated
// as 0) and the given options. By default there are no loops and no multi-edges.
// Complexity: O(n)
func NewGraph(n int, opts ...GraphOption) *Graph {
	if n < 0 {
		n = 0
	}
	g := &Graph{out: make([][]Edge, n)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
