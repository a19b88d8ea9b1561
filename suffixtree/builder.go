package suffixtree

import (
	"fmt"

	"github.com/katalvlaran/apsp/reads"
)

// Tree is a generalized suffix tree over every read of a Store. It is built
// once by Build and is read-only afterwards.
type Tree struct {
	store *reads.Store
	edges *edgeTable
	nodes []node
}

// Build constructs the generalized suffix tree of store with Ukkonen's
// online algorithm, one read at a time, and then annotates it for overlap
// computation (string depths, leaf marks, terminal lists).
//
// Steps:
//  1. Size the node arena (2N+1) and the edge table (prime >= 3N+7, or
//     WithEdgeTableSize) from N = store.TotalLength().
//  2. For every read: reset the active point to (root, empty) and extend by
//     each offset 0..len, the sentinel included.
//  3. Annotate: set depths, then place every suffix via suffix links.
//
// Complexity:
//
//   - Time:   O(N) amortized for construction, O(N·σ) for annotation with
//     σ = alphabet size + 1.
//   - Memory: O(N) nodes + O(N) table slots.
//
// Errors: ErrNilStore, ErrBadTableSize, ErrEdgeTableFull, ErrInvariant.
func Build(store *reads.Store, opts ...Option) (*Tree, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	size := tableSizeFor(store.TotalLength())
	if o.tableSizeSet {
		if o.TableSize <= 0 {
			return nil, ErrBadTableSize
		}
		size = o.TableSize
	}

	t := &Tree{
		store: store,
		edges: newEdgeTable(size),
		nodes: make([]node, 1, 2*store.TotalLength()+1),
	}
	t.nodes[Root].link = noLink

	for r := 0; r < store.Len(); r++ {
		active := activePoint{read: r, origin: Root, first: 0, last: -1}
		n := len(store.Text(r))
		for i := 0; i < n; i++ {
			if err := t.addPrefix(&active, i); err != nil {
				return nil, fmt.Errorf("build: read %d offset %d: %w", r, i, err)
			}
		}
	}

	if err := t.annotate(); err != nil {
		return nil, fmt.Errorf("annotate: %w", err)
	}

	return t, nil
}

// newNode appends a fresh node to the arena and returns its id.
func (t *Tree) newNode() NodeID {
	t.nodes = append(t.nodes, node{link: noLink})

	return NodeID(len(t.nodes) - 1)
}

// firstByte returns the first label byte of e.
func (t *Tree) firstByte(e Edge) byte { return t.store.At(e.Read, e.First) }

// addPrefix extends the tree with the character at offset i of the active
// read, adding one leaf per suffix that is not yet present and patching
// suffix links of the internal nodes created along the way.
func (t *Tree) addPrefix(active *activePoint, i int) error {
	c := t.store.At(active.read, i)
	lastParent := noLink
	var parent NodeID

	for {
		parent = active.origin

		if active.explicit() {
			// 1. Explicit point: stop if a child edge already starts with c.
			if _, ok := t.edges.find(active.origin, c); ok {
				break
			}
		} else {
			// 2. Implicit point: stop if the byte after the matched span is c.
			e, ok := t.edges.find(active.origin, t.store.At(active.read, active.first))
			if !ok {
				return fmt.Errorf("%w: no edge at implicit point (%d,%d..%d)",
					ErrInvariant, active.origin, active.first, active.last)
			}
			if t.store.At(e.Read, e.First+active.length()) == c {
				break
			}
			// 3a. Split the held edge; the new internal node becomes the parent.
			var err error
			if parent, err = t.split(e, active); err != nil {
				return err
			}
		}

		// 3b. Attach a leaf spanning [i, end of the current read].
		leaf := Edge{
			Read:  active.read,
			First: i,
			Last:  len(t.store.Text(active.read)) - 1,
			Start: parent,
			End:   t.newNode(),
		}
		if err := t.edges.insert(leaf, c); err != nil {
			return err
		}

		// 4. Patch the pending suffix link.
		if lastParent > Root {
			t.nodes[lastParent].link = parent
		}
		lastParent = parent

		// 5. Move to the next shorter suffix.
		if active.origin == Root {
			active.first++
		} else {
			next := t.nodes[active.origin].link
			if next == noLink {
				return fmt.Errorf("%w: node %d has no suffix link", ErrInvariant, active.origin)
			}
			active.origin = next
		}
		if err := t.canonize(active); err != nil {
			return err
		}
	}

	if lastParent > Root {
		t.nodes[lastParent].link = parent
	}
	active.last++

	return t.canonize(active)
}

// canonize walks the active point down while its interval covers the whole
// edge it sits on, leaving origin at the deepest explicit node on the path.
func (t *Tree) canonize(active *activePoint) error {
	if active.explicit() {
		return nil
	}
	e, ok := t.edges.find(active.origin, t.store.At(active.read, active.first))
	if !ok {
		return fmt.Errorf("%w: canonize from node %d", ErrInvariant, active.origin)
	}
	for e.Len() <= active.length() {
		active.first += e.Len()
		active.origin = e.End
		if active.explicit() {
			break
		}
		if e, ok = t.edges.find(e.End, t.store.At(active.read, active.first)); !ok {
			return fmt.Errorf("%w: canonize from node %d", ErrInvariant, active.origin)
		}
	}

	return nil
}

// split cuts e after active.length() bytes. The upper part is relabeled with
// the active read's own interval; the lower part keeps e's read and end node.
// It returns the new internal node.
func (t *Tree) split(e Edge, active *activePoint) (NodeID, error) {
	if err := t.edges.remove(e.Start, t.firstByte(e)); err != nil {
		return 0, err
	}

	upper := Edge{
		Read:  active.read,
		First: active.first,
		Last:  active.last,
		Start: active.origin,
		End:   t.newNode(),
	}
	if err := t.edges.insert(upper, t.store.At(upper.Read, upper.First)); err != nil {
		return 0, err
	}

	e.First += active.length()
	e.Start = upper.End
	if err := t.edges.insert(e, t.firstByte(e)); err != nil {
		return 0, err
	}

	return upper.End, nil
}
