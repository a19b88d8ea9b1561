// Package apsp computes all-pairs suffix-prefix overlaps of sequencing reads
// and reassembles genomes from them.
//
// 🚀 What is apsp?
//
//	A small, deterministic toolkit for overlap-based assembly:
//		• Reads: validated read batches over a configurable alphabet
//		• Suffix tree: generalized Ukkonen construction with a hashed edge table
//		• Overlaps: Gusfield's traversal filling the k×k overlap matrix in one pass
//		• Graph: weighted overlap graph with heaviest-first neighbor lists
//		• Assembly: greedy Hamiltonian path, linear or circular
//
// Under the hood, everything is organized under these subpackages:
//
//	reads/      read parsing (plain or FASTA), validation & sentinel-terminated texts
//	suffixtree/ Build, query API, iterative depth-first Traverse with hooks
//	overlap/    Compute (Gusfield APSP), Result accessors, brute-force reference
//	matrix/     dense int matrix with bounds-checked access & Diff
//	core/       thread-safe weighted directed graph
//	assembly/   greedy genome reconstruction over the overlap graph
//	cmd/apsp    command-line front end (overlap, assemble, check)
//
// Quick example:
//
//	reads:   AACC  ACCG  CCGA  CGAA
//	overlap: 0→1 = 3 (ACC), 1→2 = 3 (CCG), 2→3 = 3 (CGA)
//	linear:  AACCGAA
//
//	go install github.com/katalvlaran/apsp/cmd/apsp@latest
package apsp
