package pool

import "github.com/pavanmanishd/framealloc/diag"

// Option customizes New.
type Option func(*config)

type config struct {
	rep diag.Reporter
}

// WithReporter sends invariant violations to r instead of diag.PanicReporter.
func WithReporter(r diag.Reporter) Option {
	return func(c *config) {
		c.rep = r
	}
}
