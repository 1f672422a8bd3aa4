package vars

import (
	"github.com/randalmurphal/uritemplate/pkg/uritemplate"
)

// Set is an ordered set of variable bindings.
// The zero value is an empty Set ready to use.
type Set struct {
	values map[string]uritemplate.Value
	order  []string
}

var _ uritemplate.Variables = (*Set)(nil)

// New creates an empty Set.
func New() *Set {
	return &Set{values: make(map[string]uritemplate.Value)}
}

// Set binds name to v, replacing any previous binding without changing
// the name's position.
func (s *Set) Set(name string, v uritemplate.Value) *Set {
	if s.values == nil {
		s.values = make(map[string]uritemplate.Value)
	}
	if _, exists := s.values[name]; !exists {
		s.order = append(s.order, name)
	}
	s.values[name] = v
	return s
}

// SetString binds name to a string value.
func (s *Set) SetString(name, value string) *Set {
	return s.Set(name, uritemplate.StringValue(value))
}

// SetList binds name to a list value.
func (s *Set) SetList(name string, items ...string) *Set {
	return s.Set(name, uritemplate.ListValue(items...))
}

// SetAssoc binds name to an associative array.
func (s *Set) SetAssoc(name string, pairs ...uritemplate.Pair) *Set {
	return s.Set(name, uritemplate.AssocValue(pairs...))
}

// Unset removes the binding for name. Unset names expand as undefined.
func (s *Set) Unset(name string) *Set {
	if _, exists := s.values[name]; !exists {
		return s
	}
	delete(s.values, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return s
}

// Get implements uritemplate.Variables.
func (s *Set) Get(name string) (uritemplate.Value, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Has reports whether name is bound.
func (s *Set) Has(name string) bool {
	_, ok := s.values[name]
	return ok
}

// Names returns the bound names in the order they were first set.
func (s *Set) Names() []string {
	return append([]string(nil), s.order...)
}

// Len returns the number of bindings.
func (s *Set) Len() int { return len(s.order) }
