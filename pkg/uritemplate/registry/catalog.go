package registry

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/randalmurphal/uritemplate/pkg/uritemplate"
	"github.com/randalmurphal/uritemplate/pkg/uritemplate/observability"
	"github.com/randalmurphal/uritemplate/pkg/uritemplate/store"
)

// Catalog is a thread-safe set of named templates.
// Names registered with the same source share one parsed template. A source
// stays cached only while some name refers to it.
type Catalog struct {
	templates *index[string, *uritemplate.Template]
	parsed    *sourceCache
	expander  *uritemplate.Expander
	store     store.Store
	logger    *slog.Logger
}

// NewCatalog creates an empty Catalog.
//
// Example:
//
//	c := registry.NewCatalog(
//	    registry.WithExpander(exp),
//	    registry.WithStore(st),
//	)
func NewCatalog(opts ...Option) *Catalog {
	c := &Catalog{
		templates: newIndex[string, *uritemplate.Template](),
		parsed:    newSourceCache(),
		expander:  uritemplate.DefaultExpander(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = c.expander.Logger()
	}
	return c
}

// Parse returns the template for source, reusing the parse of any
// registered name with the same source. Sources that are not registered
// are parsed on every call and not cached.
func (c *Catalog) Parse(source string) *uritemplate.Template {
	if t, ok := c.parsed.lookup(source); ok {
		return t
	}
	return c.parse(source)
}

func (c *Catalog) parse(source string) *uritemplate.Template {
	return c.expander.Parse(context.Background(), source)
}

// Register parses source and stores it under name, replacing any previous
// template with that name.
func (c *Catalog) Register(name, source string) *uritemplate.Template {
	t := c.parsed.acquire(source, func() *uritemplate.Template {
		return c.parse(source)
	})
	if old, ok := c.templates.swap(name, t); ok {
		c.parsed.release(old.Source())
	}
	return t
}

// Save registers source under name and writes it to the store.
// Returns ErrNoStore if the catalog has no store; the template is not
// registered when the write fails.
func (c *Catalog) Save(ctx context.Context, name, source string) (*uritemplate.Template, error) {
	if c.store == nil {
		return nil, ErrNoStore
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := c.store.Save(name, source); err != nil {
		observability.LogStoreError(c.logger, "save", name, err)
		return nil, fmt.Errorf("save %q: %w", name, err)
	}
	return c.Register(name, source), nil
}

// Get returns the template registered under name.
func (c *Catalog) Get(name string) (*uritemplate.Template, bool) {
	return c.templates.get(name)
}

// MustGet returns the template registered under name, panicking if absent.
func (c *Catalog) MustGet(name string) *uritemplate.Template {
	t, ok := c.templates.get(name)
	if !ok {
		panic(fmt.Sprintf("registry: template %q not registered", name))
	}
	return t
}

// Has reports whether name is registered.
func (c *Catalog) Has(name string) bool {
	_, ok := c.templates.get(name)
	return ok
}

// Delete removes name from the catalog. The store is only updated by
// Persist.
func (c *Catalog) Delete(name string) {
	if old, ok := c.templates.remove(name); ok {
		c.parsed.release(old.Source())
	}
}

// Names returns the registered names in sorted order.
func (c *Catalog) Names() []string {
	return c.templates.sortedKeys()
}

// Len returns the number of registered templates.
func (c *Catalog) Len() int {
	return c.templates.len()
}

// Range calls fn for each template in name order until fn returns false.
// It iterates over a snapshot, so fn may Register or Delete.
func (c *Catalog) Range(fn func(name string, t *uritemplate.Template) bool) {
	snapshot := c.templates.snapshot()
	for _, name := range sortedNames(snapshot) {
		if !fn(name, snapshot[name]) {
			return
		}
	}
}

// Expand expands the template registered under name.
// Returns ErrTemplateNotFound if name is not registered.
func (c *Catalog) Expand(ctx context.Context, name string, vars uritemplate.Variables) (string, error) {
	t, ok := c.templates.get(name)
	c.expander.Metrics().RecordCatalogLookup(ctx, name, ok)
	if !ok {
		observability.LogCatalogMiss(c.logger, name)
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	return c.expander.Expand(ctx, t, vars), nil
}

// Load registers every template in the store and returns how many were
// loaded. Existing registrations with other names are kept.
func (c *Catalog) Load(ctx context.Context) (int, error) {
	if c.store == nil {
		return 0, ErrNoStore
	}
	done := observability.TimedOperation()

	records, err := c.store.List()
	if err != nil {
		observability.LogStoreError(c.logger, "list", "", err)
		return 0, fmt.Errorf("load catalog: %w", err)
	}
	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		c.Register(rec.Name, rec.Source)
	}

	observability.LogCatalogLoad(c.logger, len(records), done())
	return len(records), nil
}

// Persist writes every registered template to the store and removes stored
// templates that are no longer registered. Unchanged sources are not
// rewritten.
func (c *Catalog) Persist(ctx context.Context) error {
	if c.store == nil {
		return ErrNoStore
	}

	records, err := c.store.List()
	if err != nil {
		observability.LogStoreError(c.logger, "list", "", err)
		return fmt.Errorf("persist catalog: %w", err)
	}
	stored := make(map[string]string, len(records))
	for _, rec := range records {
		stored[rec.Name] = rec.Source
	}

	snapshot := c.templates.snapshot()
	for _, name := range sortedNames(snapshot) {
		if err := ctx.Err(); err != nil {
			return err
		}
		src := snapshot[name].Source()
		if prev, ok := stored[name]; ok && prev == src {
			continue
		}
		if _, err := c.store.Save(name, src); err != nil {
			observability.LogStoreError(observability.EnrichLogger(c.logger, "", src), "save", name, err)
			return fmt.Errorf("persist %q: %w", name, err)
		}
	}

	for name := range stored {
		if _, ok := snapshot[name]; ok {
			continue
		}
		if err := c.store.Delete(name); err != nil {
			observability.LogStoreError(c.logger, "delete", name, err)
			return fmt.Errorf("persist delete %q: %w", name, err)
		}
	}
	return nil
}

func sortedNames(m map[string]*uritemplate.Template) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
