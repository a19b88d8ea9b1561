package reads

// Defaults for Store construction.
const (
	// DefaultAlphabet is the nucleotide alphabet; traversal order follows it.
	DefaultAlphabet = "ACGT"

	// DefaultMinLength rejects only empty reads.
	DefaultMinLength = 1

	// Sentinel terminates every stored read. It is shared by all reads of a batch.
	Sentinel byte = '$'
)

// Option configures a Store before validation.
type Option func(*Options)

// Options holds the Store configuration.
type Options struct {
	// Alphabet lists the accepted symbols in traversal order.
	Alphabet string

	// MinLength is the shortest accepted read (sentinel excluded).
	MinLength int
}

// DefaultOptions returns the nucleotide alphabet and a minimum length of 1.
func DefaultOptions() Options {
	return Options{
		Alphabet:  DefaultAlphabet,
		MinLength: DefaultMinLength,
	}
}

// WithAlphabet replaces the nucleotide alphabet with symbols, kept in the
// given order. The set is validated by New.
func WithAlphabet(symbols string) Option {
	return func(o *Options) {
		o.Alphabet = symbols
	}
}

// WithMinLength sets the minimum accepted read length. Values below 1 are
// clamped to 1 so empty reads are always rejected.
func WithMinLength(n int) Option {
	return func(o *Options) {
		if n < 1 {
			n = 1
		}
		o.MinLength = n
	}
}
