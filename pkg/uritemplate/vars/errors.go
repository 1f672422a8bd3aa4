package vars

import (
	"errors"
	"fmt"
)

// Sentinel errors for binding conversion and loading.
var (
	// ErrUnsupportedValue is returned when a value has no template
	// representation, such as a nested list.
	ErrUnsupportedValue = errors.New("unsupported variable value")

	// ErrUnsupportedFormat is returned by FromFile for unknown extensions.
	ErrUnsupportedFormat = errors.New("unsupported bindings format")

	// ErrInvalidDocument is returned when a document's top level is not an
	// object.
	ErrInvalidDocument = errors.New("bindings document must be an object")
)

// ValueError reports a variable whose value could not be converted.
type ValueError struct {
	Name   string
	Reason string
}

// Error implements the error interface.
func (e *ValueError) Error() string {
	return fmt.Sprintf("variable %q: %s", e.Name, e.Reason)
}

// Unwrap returns ErrUnsupportedValue so errors.Is matches.
func (e *ValueError) Unwrap() error {
	return ErrUnsupportedValue
}
