// Package store persists named URI template sources.
package store

import (
	"errors"
	"time"
)

// Store persists template sources by name.
// Implementations must be safe for concurrent use.
type Store interface {
	// Save stores source under name, replacing any existing source.
	// The first save assigns a new ID and revision 1; each later save keeps
	// the ID and increments the revision.
	Save(name, source string) (Record, error)

	// Load retrieves a record.
	// Returns ErrNotFound if name doesn't exist.
	Load(name string) (Record, error)

	// List returns all records ordered by name.
	// Returns empty slice (not error) if the store is empty.
	List() ([]Record, error)

	// Delete removes a record.
	// Returns nil if name doesn't exist.
	Delete(name string) error

	// Close releases any resources (connections, files).
	Close() error
}

// Record is a stored template with its metadata.
type Record struct {
	ID       string
	Name     string
	Source   string
	Revision int
	Updated  time.Time
}

// Sentinel errors for store operations.
var (
	// ErrNotFound indicates a template doesn't exist.
	ErrNotFound = errors.New("template not found in store")

	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("template store closed")

	// ErrEmptyName indicates Save was called without a name.
	ErrEmptyName = errors.New("template name is empty")
)
