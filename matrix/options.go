// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense construction.
// Options carry the numeric policy of a matrix instance; the policy is
// preserved by Clone and enforced by Set.
package matrix

// DefaultAllowNegative keeps the non-negative policy on: overlap lengths and
// edge weights are counts, so a negative write is a caller bug.
const DefaultAllowNegative = false

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options holds the Dense configuration.
type Options struct {
	allowNegative bool
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{allowNegative: DefaultAllowNegative}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// WithAllowNegative disables the non-negative policy, so Set accepts any int.
func WithAllowNegative() Option {
	return func(o *Options) {
		o.allowNegative = true
	}
}
