// Package overlap computes the all-pairs suffix-prefix overlap matrix of a
// read batch from its generalized suffix tree.
//
// For reads r_0..r_{k-1}, D[i][j] is the length of the longest suffix of
// r_i that is also a prefix of r_j (0 if none, 0 on the diagonal).
//
// Algorithm (Gusfield's APSP over a generalized suffix tree):
//
//	One depth-first traversal keeps one stack of nodes per read. Entering a
//	node v pushes v onto stack[i] for every read i with a length-1 sentinel
//	edge below v: the path label of v is then a suffix of r_i. When the
//	traversal reaches the leaf spelling all of r_j, the top of stack[i] is
//	the deepest ancestor whose label is both a prefix of r_j and a suffix
//	of r_i, so its string depth is D[i][j]. Leaving v pops what was pushed.
//
// All reads share one sentinel. When r_j is a suffix of r_i (identical reads
// included), the suffix of r_i and the whole of r_j end at the same leaf; the
// leaf mark of r_i there yields D[i][j] = len(r_j).
//
// Complexity:
//
//   - Time:   O(N + k²) after the tree is built, N = total read length.
//   - Memory: O(k²) for D, O(N) for the stacks in the worst case.
//
// BruteForce and Pairwise are the naive O(k²·L²) reference used to check
// Compute on small inputs.
package overlap
