// Package suffixtree builds a generalized suffix tree over a batch of reads
// with Ukkonen's online algorithm and exposes the read-only structure the
// overlap computation walks.
//
// Construction (Build):
//
//   - Edges live in an open-addressed table keyed by (origin node, first
//     label byte), hash ((node<<8)+c) mod P with P prime, linear probing, and
//     back-shift deletion so split can remove and reinsert edges freely.
//   - Edge labels are (read, first, last) references into reads.Store.
//   - Nodes live in one arena sized from the total input length; node 0 is
//     the root. Internal nodes carry suffix links.
//   - Each read is inserted with the active point reset to the root; leaf
//     edges run to the end of the read being inserted. All reads share one
//     sentinel '$', so identical suffixes of different reads end on the same
//     leaf; the leaf lists every (read, offset) that ends there.
//
// Annotation (part of Build): string depths are set top-down, then every
// suffix is located once, resuming from the previous suffix's suffix link,
// to record leaf marks and, per node, the reads whose bare-sentinel edge
// leaves it ("terminal" reads). These are the inputs of Gusfield's
// all-pairs suffix-prefix algorithm in package overlap.
//
// Traversal: Traverse is an iterative depth-first walk with pre-/post-order
// hooks, children visited in alphabet-then-sentinel order.
//
// Complexity:
//
//   - Build:    O(N·σ) including annotation, N = total length with sentinels.
//   - Memory:   ≤ 2N nodes, a table of the smallest prime ≥ 3N+7 slots.
//   - Traverse: O(V·σ) table probes, σ = alphabet size + 1.
//
// Errors:
//
//   - ErrNilStore        Build got a nil store.
//   - ErrBadTableSize    WithEdgeTableSize(n) with n <= 0.
//   - ErrEdgeTableFull   the edge table ran out of slots.
//   - ErrInvariant       internal inconsistency (a bug, never bad input).
//   - ErrNodeOutOfRange  a query used an unknown node id.
package suffixtree
