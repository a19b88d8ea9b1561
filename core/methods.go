package core

import (
	"fmt"
	"sort"
)

// before reports whether a sorts ahead of b in an adjacency list.
func before(a, b Edge) bool {
	if a.Weight != b.Weight {
		return a.Weight > b.Weight
	}

	return a.To < b.To
}

func (g *Graph) hasVertex(v int) bool { return v >= 0 && v < len(g.out) }

// AddEdge inserts the edge from→to with the given weight, keeping the
// adjacency list of from in neighbor order.
//
// Errors: ErrVertexNotFound, ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(d) for d = out-degree of from.
func (g *Graph) AddEdge(from, to, weight int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.hasVertex(from) {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, from)
	}
	if !g.hasVertex(to) {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, to)
	}
	if weight <= 0 {
		return fmt.Errorf("%w: %d", ErrBadWeight, weight)
	}
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}
	if !g.allowMulti {
		for _, e := range g.out[from] {
			if e.To == to {
				return fmt.Errorf("%w: %d->%d", ErrMultiEdgeNotAllowed, from, to)
			}
		}
	}

	e := Edge{From: from, To: to, Weight: weight}
	list := g.out[from]
	pos := sort.Search(len(list), func(k int) bool { return !before(list[k], e) })
	list = append(list, Edge{})
	copy(list[pos+1:], list[pos:])
	list[pos] = e
	g.out[from] = list
	g.edgeCount++

	return nil
}

// HasEdge reports whether at least one edge from→to exists.
func (g *Graph) HasEdge(from, to int) bool {
	_, err := g.Weight(from, to)

	return err == nil
}

// Weight returns the weight of the heaviest edge from→to.
//
// Errors: ErrVertexNotFound, ErrEdgeNotFound.
func (g *Graph) Weight(from, to int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertex(from) || !g.hasVertex(to) {
		return 0, ErrVertexNotFound
	}
	for _, e := range g.out[from] {
		if e.To == to {
			return e.Weight, nil
		}
	}

	return 0, fmt.Errorf("%w: %d->%d", ErrEdgeNotFound, from, to)
}

// Neighbors returns a copy of the edges leaving v, heaviest first, ties by
// ascending target.
//
// Errors: ErrVertexNotFound.
// Complexity: O(d).
func (g *Graph) Neighbors(v int) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertex(v) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}
	out := make([]Edge, len(g.out[v]))
	copy(out, g.out[v])

	return out, nil
}

// Degree returns the in- and out-degree of v.
//
// Complexity: O(E) for the in-degree scan.
func (g *Graph) Degree(v int) (in, out int, err error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertex(v) {
		return 0, 0, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}
	for _, list := range g.out {
		for _, e := range list {
			if e.To == v {
				in++
			}
		}
	}

	return in, len(g.out[v]), nil
}

// Vertices returns 0..n-1.
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, len(g.out))
	for i := range out {
		out[i] = i
	}

	return out
}

// Edges returns every edge, grouped by ascending From and in neighbor order
// within a group.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for _, list := range g.out {
		out = append(out, list...)
	}

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.out)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
