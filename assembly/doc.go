// Package assembly reconstructs a genome from its reads by a greedy
// Hamiltonian path over the overlap graph.
//
// Every pair of reads achieving the maximum overlap is tried as a start
// edge. From the last placed read the path always follows the heaviest
// edge to a read not yet used; a candidate that runs out of edges before
// using every read is discarded. Among successful candidates the shortest
// string wins, ties keeping the first candidate in start-pair order.
//
// Circular genomes (the default) have the overlap between the last and the
// first read removed once, since the tail wraps into the head.
//
// Candidates are independent and run in parallel; the result does not depend
// on scheduling.
package assembly
