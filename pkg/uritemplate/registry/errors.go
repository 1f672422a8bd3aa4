package registry

import "errors"

// Sentinel errors for catalog operations.
var (
	// ErrTemplateNotFound indicates no template is registered under a name.
	ErrTemplateNotFound = errors.New("template not registered")

	// ErrNoStore indicates a store operation on a catalog without a store.
	ErrNoStore = errors.New("catalog has no store")
)
