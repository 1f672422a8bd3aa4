// Package registry provides a thread-safe catalog of named URI templates.
//
// A Catalog maps names to parsed templates and caches parses by source text.
// It is designed for read-heavy workloads using sync.RWMutex.
//
// # Basic Usage
//
//	c := registry.NewCatalog()
//	c.Register("user", "/users/{id}{?fields*}")
//
//	uri, err := c.Expand(ctx, "user", vars.New().SetString("id", "42"))
//	if errors.Is(err, registry.ErrTemplateNotFound) {
//	    // unknown name
//	}
//
// # Persistence
//
// With a store.Store configured, Save writes through, Load registers every
// stored template, and Persist writes the catalog back:
//
//	st, _ := store.NewSQLiteStore("templates.db")
//	c := registry.NewCatalog(registry.WithStore(st))
//	n, err := c.Load(ctx)
//
// # Instrumentation
//
// Parsing and expansion go through the configured uritemplate.Expander, so
// its logger, metrics, and spans apply. Expand additionally records a
// catalog lookup metric and logs unknown names at Warn.
//
// # Thread Safety
//
// All Catalog methods are safe for concurrent use. Range iterates over a
// snapshot, so the callback may Register or Delete.
package registry
