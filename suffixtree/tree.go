package suffixtree

import (
	"fmt"

	"github.com/katalvlaran/apsp/reads"
)

// Reads returns the store the tree was built over.
func (t *Tree) Reads() *reads.Store { return t.store }

// NodeCount returns the number of nodes, the root included.
func (t *Tree) NodeCount() int { return len(t.nodes) }

// EdgeCount returns the number of edges. It is always NodeCount()-1.
func (t *Tree) EdgeCount() int { return t.edges.len() }

// TableSize returns the number of edge-table slots.
func (t *Tree) TableSize() int { return len(t.edges.slots) }

func (t *Tree) check(n NodeID) error {
	if n < 0 || int(n) >= len(t.nodes) {
		return fmt.Errorf("%w: %d", ErrNodeOutOfRange, n)
	}

	return nil
}

// Child returns the edge leaving n whose label starts with c.
func (t *Tree) Child(n NodeID, c byte) (Edge, bool) {
	if t.check(n) != nil {
		return Edge{}, false
	}

	return t.edges.find(n, c)
}

// Children returns the edges leaving n in alphabet-then-sentinel order.
func (t *Tree) Children(n NodeID) ([]Edge, error) {
	if err := t.check(n); err != nil {
		return nil, err
	}
	sym := t.store.Symbols()
	var out []Edge
	for i := 0; i < len(sym); i++ {
		if e, ok := t.edges.find(n, sym[i]); ok {
			out = append(out, e)
		}
	}

	return out, nil
}

// Depth returns the string depth of n: the length of its path label,
// counting the sentinel for leaves.
func (t *Tree) Depth(n NodeID) (int, error) {
	if err := t.check(n); err != nil {
		return 0, err
	}

	return t.nodes[n].depth, nil
}

// Terminal returns the reads that have a length-1 sentinel edge leaving n:
// for each listed read j, the path label of n is a suffix of j.
// The slice is owned by the tree and must not be modified.
func (t *Tree) Terminal(n NodeID) ([]int, error) {
	if err := t.check(n); err != nil {
		return nil, err
	}

	return t.nodes[n].terminal, nil
}

// Marks returns the suffixes ending at leaf n (empty for internal nodes).
// The slice is owned by the tree and must not be modified.
func (t *Tree) Marks(n NodeID) ([]Mark, error) {
	if err := t.check(n); err != nil {
		return nil, err
	}

	return t.nodes[n].marks, nil
}

// IsLeaf reports whether n is a leaf. Every leaf carries at least one mark.
func (t *Tree) IsLeaf(n NodeID) bool {
	return t.check(n) == nil && len(t.nodes[n].marks) > 0
}

// SuffixLink returns the suffix link of internal node n, if any.
func (t *Tree) SuffixLink(n NodeID) (NodeID, bool) {
	if t.check(n) != nil || t.nodes[n].link == noLink {
		return 0, false
	}

	return t.nodes[n].link, true
}

// Label returns the text of e's label.
func (t *Tree) Label(e Edge) string {
	return t.store.Text(e.Read)[e.First : e.Last+1]
}

// Contains reports whether pattern occurs in some sentinel-terminated read.
//
// Complexity: O(len(pattern)).
func (t *Tree) Contains(pattern string) bool {
	cur := Root
	for i := 0; i < len(pattern); {
		e, ok := t.edges.find(cur, pattern[i])
		if !ok {
			return false
		}
		for k := 0; k < e.Len() && i < len(pattern); k, i = k+1, i+1 {
			if t.store.At(e.Read, e.First+k) != pattern[i] {
				return false
			}
		}
		cur = e.End
	}

	return true
}
