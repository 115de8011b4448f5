package arena

import "github.com/pavanmanishd/framealloc/diag"

// Option customizes New.
type Option func(*config)

type config struct {
	rep            diag.Reporter
	mapped         bool
	maxAllocations int
	maxMarkers     int
}

// WithReporter sends invariant violations to r instead of diag.PanicReporter.
func WithReporter(r diag.Reporter) Option {
	return func(c *config) {
		c.rep = r
	}
}

// WithMapped backs the arena with an anonymous memory mapping instead of
// a Go heap slice.
func WithMapped() Option {
	return func(c *config) {
		c.mapped = true
	}
}

// WithMaxAllocations bounds the number of live allocations. Allocating
// past it is fatal.
func WithMaxAllocations(n int) Option {
	return func(c *config) {
		c.maxAllocations = n
	}
}

// WithMaxMarkers bounds the marker nesting depth.
func WithMaxMarkers(n int) Option {
	return func(c *config) {
		c.maxMarkers = n
	}
}
