package assembly

// Defaults for Assemble.
const (
	// DefaultCircular treats the genome as circular and trims the wrap-around overlap.
	DefaultCircular = true

	// DefaultMinOverlap keeps every positive overlap as a graph edge.
	DefaultMinOverlap = 1
)

// Option configures Assemble.
type Option func(*Options)

// Options holds the assembler configuration.
type Options struct {
	// Circular trims D[last][first] from the front of the assembled string.
	Circular bool

	// MinOverlap is the smallest overlap used as an extension edge.
	MinOverlap int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Circular:   DefaultCircular,
		MinOverlap: DefaultMinOverlap,
	}
}

// WithCircular selects circular (true) or linear (false) assembly.
func WithCircular(circular bool) Option {
	return func(o *Options) {
		o.Circular = circular
	}
}

// WithMinOverlap sets the smallest overlap that may join two reads.
// Values < 1 are rejected by Assemble with ErrBadMinOverlap.
func WithMinOverlap(n int) Option {
	return func(o *Options) {
		o.MinOverlap = n
	}
}
