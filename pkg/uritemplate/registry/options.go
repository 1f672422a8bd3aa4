package registry

import (
	"log/slog"

	"github.com/randalmurphal/uritemplate/pkg/uritemplate"
	"github.com/randalmurphal/uritemplate/pkg/uritemplate/store"
)

// Option configures a Catalog.
type Option func(*Catalog)

// WithExpander sets the expander used to parse and expand templates.
//
// Default: uritemplate.DefaultExpander()
func WithExpander(e *uritemplate.Expander) Option {
	return func(c *Catalog) {
		if e != nil {
			c.expander = e
		}
	}
}

// WithStore sets the store used by Save, Load, and Persist.
//
// Default: nil (in-memory only)
func WithStore(s store.Store) Option {
	return func(c *Catalog) {
		c.store = s
	}
}

// WithLogger sets the logger for catalog events.
//
// Default: the expander's logger
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		c.logger = logger
	}
}
