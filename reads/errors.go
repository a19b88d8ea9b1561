package reads

import (
	"errors"
	"fmt"
)

// Sentinel errors for read validation and parsing.
var (
	// ErrNoReads indicates that the batch contains no reads at all.
	ErrNoReads = errors.New("reads: no reads")

	// ErrEmptyRead indicates a read of length zero.
	ErrEmptyRead = errors.New("reads: empty read")

	// ErrReadTooShort indicates a read shorter than the configured minimum length.
	ErrReadTooShort = errors.New("reads: read shorter than minimum length")

	// ErrInvalidSymbol indicates a byte outside the store alphabet (the sentinel included).
	ErrInvalidSymbol = errors.New("reads: invalid symbol")

	// ErrBadAlphabet indicates an empty, duplicated or sentinel-containing alphabet.
	ErrBadAlphabet = errors.New("reads: bad alphabet")

	// ErrIndexOutOfRange indicates a read index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("reads: index out of range")
)

// ReadError reports a validation failure for one read of the batch.
type ReadError struct {
	Index int   // position of the offending read in the batch
	Err   error // one of the sentinels above
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %d: %v", e.Index, e.Err)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *ReadError) Unwrap() error { return e.Err }
