// Package core provides a thread-safe, in-memory directed weighted Graph
// over dense integer vertices, used as the overlap graph of a read batch.
//
// The Graph G = (V,E) has V = {0..n-1} fixed at construction (one vertex per
// read) and an edge i→j of weight w when the longest suffix of read i that
// is a prefix of read j has length w > 0.
//
// Why a dedicated graph type?
//
//   - Deterministic iteration: Neighbors and Edges return edges heaviest
//     first, ties by ascending target, which is exactly the order a greedy
//     assembler wants to try extensions in.
//   - Concurrency: a single sync.RWMutex guards the adjacency lists, so many
//     assembler workers may query Neighbors while nothing writes.
//
// Configuration Options (GraphOption):
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
//	– WithMultiEdges()
//	    Allows multiple parallel edges between the same ordered pair.
//	    Otherwise a second AddEdge(from,to) → ErrMultiEdgeNotAllowed.
//
// Core Methods:
//
//	AddEdge(from, to, weight int) error       // O(d)
//	HasEdge(from, to int) bool                // O(d)
//	Weight(from, to int) (int, error)         // O(d)
//	Neighbors(v int) ([]Edge, error)          // O(d), heaviest first
//	Degree(v int) (in, out int, err error)    // O(E)
//	Vertices() []int                          // O(V)
//	Edges() []Edge                            // O(E)
//	VertexCount() int                         // O(1)
//	EdgeCount() int                           // O(1)
//
// Errors:
//
//	ErrVertexNotFound      – vertex index out of range
//	ErrEdgeNotFound        – missing edge
//	ErrBadWeight           – weight <= 0
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
package core
