// Package reads holds the immutable batch of sequencing reads that the
// suffix tree and the overlap computation are built over.
//
// A Store validates every read against a small alphabet (A, C, G, T by
// default) and keeps it with the shared terminal sentinel '$' appended.
// Suffix-tree edges never copy read text: they reference a read by index
// and a [first, last] offset range, so the Store must outlive the tree.
//
// Usage:
//
//	raw, err := reads.Parse(os.Stdin) // one read per line, or FASTA
//	if err != nil {
//	    return err
//	}
//	store, err := reads.New(raw, reads.WithMinLength(20))
//	if err != nil {
//	    // errors.Is(err, reads.ErrInvalidSymbol), reads.ErrReadTooShort, ...
//	    return err
//	}
//	fmt.Println(store.Len(), store.TotalLength())
//
// Errors:
//
//   - ErrNoReads        the batch is empty.
//   - ErrEmptyRead      a read has no symbols.
//   - ErrReadTooShort   a read is shorter than WithMinLength.
//   - ErrInvalidSymbol  a read contains a byte outside the alphabet.
//   - ErrBadAlphabet    WithAlphabet was given an unusable symbol set.
//
// Per-read failures are reported as *ReadError, which carries the read index
// and unwraps to the sentinel above.
package reads
