/*
Package vars builds variable bindings for URI template expansion.

# Overview

A Set is an ordered collection of named values that satisfies
uritemplate.Variables. Build one in code, or load one from a YAML or JSON
document.

	v := vars.New().
	    SetString("id", "42").
	    SetList("fields", "name", "email").
	    SetAssoc("filter", uritemplate.Pair{Key: "active", Value: "true"})

	out := uritemplate.Parse("/users/{id}{?fields,filter*}").Expand(v)

# Loading Documents

A document is a top-level object whose members are variables:

	id: 42
	fields: [name, email]
	filter:
	  active: true
	deleted: null

Conversion rules:
  - strings are used as-is
  - numbers and booleans become their textual form
  - arrays of scalars become lists
  - objects of scalars become associative arrays, keeping document order
  - null leaves the variable undefined

Nested arrays or objects inside a list or associative array are rejected
with a *ValueError wrapping ErrUnsupportedValue.

	v, err := vars.FromFile("bindings.yaml")
	v, err = vars.FromYAML(yamlBytes)
	v, err = vars.FromJSON(jsonBytes)

FromMap converts an already-decoded map. Go maps carry no order, so
associative arrays built from them are sorted by key.

# Thread Safety

A Set is not safe for concurrent mutation. Once built it may be read by any
number of concurrent expansions.
*/
package vars
