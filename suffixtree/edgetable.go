package suffixtree

import "fmt"

// slot is one open-addressing cell. key caches the first label byte so that
// rehashing during back-shift never touches read text.
type slot struct {
	edge Edge
	key  byte
	full bool
}

// edgeTable maps (origin node, first label byte) to the child edge using
// linear probing. Deletion compacts the probe cluster (Knuth's algorithm R),
// so there are no tombstones and find may stop at the first empty slot.
type edgeTable struct {
	slots []slot
	count int
}

func newEdgeTable(size int) *edgeTable {
	return &edgeTable{slots: make([]slot, size)}
}

// home returns the preferred slot of (node, c).
func (t *edgeTable) home(node NodeID, c byte) int {
	return int(((uint64(node) << 8) + uint64(c)) % uint64(len(t.slots)))
}

func (t *edgeTable) next(i int) int {
	i++
	if i == len(t.slots) {
		return 0
	}

	return i
}

// insert stores e under key c. The key must be absent.
func (t *edgeTable) insert(e Edge, c byte) error {
	i := t.home(e.Start, c)
	for n := 0; n < len(t.slots); n++ {
		s := &t.slots[i]
		if !s.full {
			*s = slot{edge: e, key: c, full: true}
			t.count++
			return nil
		}
		if s.edge.Start == e.Start && s.key == c {
			return fmt.Errorf("%w: duplicate edge (%d,%q)", ErrInvariant, e.Start, c)
		}
		i = t.next(i)
	}

	return fmt.Errorf("%w: %d slots, inserting (%d,%q)", ErrEdgeTableFull, len(t.slots), e.Start, c)
}

// lookup returns the slot index holding (node, c), or -1.
func (t *edgeTable) lookup(node NodeID, c byte) int {
	i := t.home(node, c)
	for n := 0; n < len(t.slots); n++ {
		s := &t.slots[i]
		if !s.full {
			return -1
		}
		if s.edge.Start == node && s.key == c {
			return i
		}
		i = t.next(i)
	}

	return -1
}

// find returns the edge leaving node whose label starts with c.
func (t *edgeTable) find(node NodeID, c byte) (Edge, bool) {
	i := t.lookup(node, c)
	if i < 0 {
		return Edge{}, false
	}

	return t.slots[i].edge, true
}

// remove deletes (node, c) and shifts later members of the probe cluster
// back so every remaining key stays reachable from its home slot.
func (t *edgeTable) remove(node NodeID, c byte) error {
	j := t.lookup(node, c)
	if j < 0 {
		return fmt.Errorf("%w: removing missing edge (%d,%q)", ErrInvariant, node, c)
	}
	t.slots[j] = slot{}
	t.count--

	for i := t.next(j); t.slots[i].full; i = t.next(i) {
		r := t.home(t.slots[i].edge.Start, t.slots[i].key)
		// The entry at i may stay only if its home r lies cyclically in (j, i].
		if j < i {
			if j < r && r <= i {
				continue
			}
		} else if r > j || r <= i {
			continue
		}
		t.slots[j] = t.slots[i]
		t.slots[i] = slot{}
		j = i
	}

	return nil
}

// len returns the number of stored edges.
func (t *edgeTable) len() int { return t.count }
