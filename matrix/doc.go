// SPDX-License-Identifier: MIT

// Package matrix provides the dense integer matrix that holds all-pairs
// suffix-prefix overlap lengths.
//
// What:
//
//   - Dense: a row-major k×c buffer of int with bounds-checked At/Set,
//     copying Row and Clone, deterministic Do iteration and a
//     human-readable String dump.
//   - Diff: cell-by-cell comparison of two matrices of the same shape,
//     used to check a fast result against a reference one.
//
// Why:
//
//	The overlap matrix is dense by nature (every ordered pair of reads has a
//	value, most of them small), so a flat buffer with the explicit offset
//	formula i*c + j beats any map-based layout on both memory and locality.
//
// Numeric policy:
//
//	By default Set rejects negative values with ErrNegativeValue.
//	WithAllowNegative lifts the restriction for callers that store signed
//	data. The policy travels with the instance through Clone.
//
// Complexity quicksheet:
//
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Row: O(c);
//     Clone/Equal/Diff/String: O(r*c).
package matrix
