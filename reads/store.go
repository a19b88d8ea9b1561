package reads

import "fmt"

// Store is an immutable, validated batch of reads. Each read is kept with
// Sentinel appended; offsets passed to At address that sentinel-terminated text.
type Store struct {
	texts    []string // read text + Sentinel
	alphabet string   // accepted symbols, traversal order
	total    int      // sum of len(texts[i])
}

// New validates raw and returns a Store holding a sentinel-terminated copy of
// every read. Validation happens before anything is stored: the first bad
// read aborts construction with a *ReadError.
//
// Complexity: O(total length).
func New(raw []string, opts ...Option) (*Store, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	var valid [256]bool
	if err := buildAlphabet(o.Alphabet, &valid); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, ErrNoReads
	}

	s := &Store{
		texts:    make([]string, len(raw)),
		alphabet: o.Alphabet,
	}
	for i, r := range raw {
		if err := validate(r, o.MinLength, &valid); err != nil {
			return nil, &ReadError{Index: i, Err: err}
		}
		s.texts[i] = r + string(Sentinel)
		s.total += len(s.texts[i])
	}

	return s, nil
}

// buildAlphabet fills valid from symbols, rejecting empty sets, duplicates
// and the sentinel itself.
func buildAlphabet(symbols string, valid *[256]bool) error {
	if len(symbols) == 0 {
		return ErrBadAlphabet
	}
	for i := 0; i < len(symbols); i++ {
		c := symbols[i]
		if c == Sentinel || valid[c] {
			return fmt.Errorf("%w: symbol %q", ErrBadAlphabet, c)
		}
		valid[c] = true
	}

	return nil
}

func validate(r string, minLen int, valid *[256]bool) error {
	if len(r) == 0 {
		return ErrEmptyRead
	}
	if len(r) < minLen {
		return fmt.Errorf("%w: %d < %d", ErrReadTooShort, len(r), minLen)
	}
	for j := 0; j < len(r); j++ {
		if !valid[r[j]] {
			return fmt.Errorf("%w %q at offset %d", ErrInvalidSymbol, r[j], j)
		}
	}

	return nil
}

// Len returns the number of reads.
func (s *Store) Len() int { return len(s.texts) }

// TotalLength returns the combined length of all reads, sentinels included.
// It sizes the suffix-tree arenas.
func (s *Store) TotalLength() int { return s.total }

// Alphabet returns the accepted symbols in traversal order (sentinel excluded).
func (s *Store) Alphabet() string { return s.alphabet }

// Symbols returns the alphabet followed by the sentinel: the fixed order in
// which children of a suffix-tree node are visited.
func (s *Store) Symbols() string { return s.alphabet + string(Sentinel) }

// Text returns read i with its sentinel. It panics on a bad index, like a
// slice access; use Read for a checked accessor.
func (s *Store) Text(i int) string { return s.texts[i] }

// Read returns read i without the sentinel.
func (s *Store) Read(i int) (string, error) {
	if i < 0 || i >= len(s.texts) {
		return "", fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	t := s.texts[i]

	return t[:len(t)-1], nil
}

// Length returns the length of read i without the sentinel, or -1 for a bad index.
func (s *Store) Length(i int) int {
	if i < 0 || i >= len(s.texts) {
		return -1
	}

	return len(s.texts[i]) - 1
}

// At returns the byte at offset off of the sentinel-terminated read i.
// Hot path for tree construction: bounds are those of the underlying string.
func (s *Store) At(i, off int) byte { return s.texts[i][off] }

// Raw returns a copy of all reads without sentinels, in batch order.
func (s *Store) Raw() []string {
	out := make([]string, len(s.texts))
	for i, t := range s.texts {
		out[i] = t[:len(t)-1]
	}

	return out
}
