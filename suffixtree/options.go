package suffixtree

// Sizing defaults for the arenas.
const (
	// tableFactor and tableSlack size the edge table to the smallest prime
	// >= tableFactor*TotalLength()+tableSlack. A tree over N symbols has at
	// most 2N-1 edges, so the load factor stays below 2/3.
	tableFactor = 3
	tableSlack  = 7
)

// Option configures Build.
type Option func(*Options)

// Options holds Build configuration.
type Options struct {
	// TableSize overrides the computed edge-table size when > 0.
	TableSize int

	// tableSizeSet records that WithEdgeTableSize was applied, so that a
	// non-positive override is reported instead of silently ignored.
	tableSizeSet bool
}

// DefaultOptions returns Options that size every arena from the input.
func DefaultOptions() Options {
	return Options{}
}

// WithEdgeTableSize fixes the number of edge-table slots. Build rejects
// non-positive values with ErrBadTableSize and reports ErrEdgeTableFull if
// the table turns out too small.
func WithEdgeTableSize(n int) Option {
	return func(o *Options) {
		o.TableSize = n
		o.tableSizeSet = true
	}
}

// tableSizeFor returns the default table size for total input symbols.
func tableSizeFor(total int) int {
	return nextPrime(tableFactor*total + tableSlack)
}

// nextPrime returns the smallest prime >= n (n >= 2 assumed; smaller values yield 2).
func nextPrime(n int) int {
	if n <= 2 {
		return 2
	}
	if n%2 == 0 {
		n++
	}
	for ; ; n += 2 {
		if isPrime(n) {
			return n
		}
	}
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := 3; d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}

	return true
}
