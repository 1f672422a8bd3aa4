package registry

import (
	"sync"

	"github.com/randalmurphal/uritemplate/pkg/uritemplate"
)

// sourceCache shares parsed templates between names registered with the
// same source. An entry lives only while at least one name refers to it.
type sourceCache struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
}

type cacheEntry struct {
	tmpl *uritemplate.Template
	refs int
}

func newSourceCache() *sourceCache {
	return &sourceCache{entries: make(map[string]*cacheEntry)}
}

// lookup returns the cached template for source without taking a reference.
func (c *sourceCache) lookup(source string) (*uritemplate.Template, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[source]
	if !ok {
		return nil, false
	}
	return e.tmpl, true
}

// acquire returns the template for source and takes a reference to it.
// parse runs without the lock held; if another caller stored the source
// first, its template wins and the fresh parse is discarded.
func (c *sourceCache) acquire(source string, parse func() *uritemplate.Template) *uritemplate.Template {
	c.mu.Lock()
	if e, ok := c.entries[source]; ok {
		e.refs++
		c.mu.Unlock()
		return e.tmpl
	}
	c.mu.Unlock()

	t := parse()

	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[source]; ok {
		e.refs++
		return e.tmpl
	}
	c.entries[source] = &cacheEntry{tmpl: t, refs: 1}
	return t
}

// release drops one reference to source, evicting it at zero.
func (c *sourceCache) release(source string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[source]
	if !ok {
		return
	}
	e.refs--
	if e.refs <= 0 {
		delete(c.entries, source)
	}
}

func (c *sourceCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
