package suffixtree

import (
	"fmt"

	"github.com/katalvlaran/apsp/reads"
)

// annotate records, for the finished tree:
//
//   - depth: the string depth of every node;
//   - marks: (j, k) on the leaf where suffix k of read j ends;
//   - terminal: j on the parent of that leaf when the leaf edge is the bare
//     sentinel, i.e. the parent's path label is exactly suffix k of read j.
//
// Depths come from one top-down pass. Suffixes of a read are then located
// in order: suffix k+1 resumes from the suffix link of the node suffix k
// hung from, skipping whole edges by length, so each read costs O(len).
// A missing edge or a suffix that overruns its leaf is reported as
// ErrInvariant.
func (t *Tree) annotate() error {
	t.setDepths()
	for j := 0; j < t.store.Len(); j++ {
		if err := t.markRead(j); err != nil {
			return err
		}
	}

	return nil
}

// setDepths assigns depth(child) = depth(parent) + edge length from the root down.
func (t *Tree) setDepths() {
	sym := t.store.Symbols()
	t.nodes[Root].depth = 0
	stack := []NodeID{Root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for i := 0; i < len(sym); i++ {
			if e, ok := t.edges.find(n, sym[i]); ok {
				t.nodes[e.End].depth = t.nodes[n].depth + e.Len()
				stack = append(stack, e.End)
			}
		}
	}
}

// markRead places every suffix of read j.
func (t *Tree) markRead(j int) error {
	text := t.store.Text(j)
	n := len(text)
	cur := Root
	for k := 0; k < n; k++ {
		// The path label of cur is text[k : k+depth(cur)].
		i := k + t.nodes[cur].depth
		for {
			if i >= n {
				return fmt.Errorf("%w: suffix (%d,%d) ends inside node %d", ErrInvariant, j, k, cur)
			}
			e, ok := t.edges.find(cur, text[i])
			if !ok {
				return fmt.Errorf("%w: suffix (%d,%d) leaves the tree at node %d", ErrInvariant, j, k, cur)
			}
			if t.store.At(e.Read, e.Last) == reads.Sentinel {
				if i+e.Len() != n {
					return fmt.Errorf("%w: suffix (%d,%d) overruns leaf %d", ErrInvariant, j, k, e.End)
				}
				t.nodes[e.End].marks = append(t.nodes[e.End].marks, Mark{Read: j, Pos: k})
				if e.Len() == 1 {
					t.nodes[cur].terminal = append(t.nodes[cur].terminal, j)
				}
				break
			}
			i += e.Len()
			cur = e.End
		}

		if cur != Root {
			if link := t.nodes[cur].link; link != noLink {
				cur = link
			} else {
				cur = Root
			}
		}
	}

	return nil
}
