package uritemplate

import "strings"

// Template is a parsed URI template.
//
// A Template is immutable and safe for concurrent use; it can be expanded
// any number of times against different Variables without re-parsing.
type Template struct {
	source   string
	items    []Item
	degraded []string
}

// Parse parses a URI template. It never fails: any {...} span that is not a
// valid expression is kept as literal text, byte for byte.
//
// Example:
//
//	t := uritemplate.Parse("/users/{id}{?fields*}")
func Parse(s string) *Template {
	items, degraded := parseTemplate(s)
	return &Template{source: s, items: items, degraded: degraded}
}

// Expand renders the template. Undefined variables, and lists or
// associative arrays with no entries, produce no output.
// A nil vars expands every expression as undefined.
//
// Example:
//
//	t := uritemplate.Parse("{?q,lang}")
//	s := t.Expand(uritemplate.Map{"q": uritemplate.StringValue("go")})
//	// s: "?q=go"
func (t *Template) Expand(vars Variables) string {
	return t.expand(vars, nil)
}

func (t *Template) expand(vars Variables, missing func(string)) string {
	if vars == nil {
		vars = noVariables{}
	}
	var b strings.Builder
	b.Grow(len(t.source))
	expandItems(&b, t.items, vars, missing)
	return b.String()
}

// Source returns the text the template was parsed from.
func (t *Template) Source() string { return t.source }

// String returns the template source.
func (t *Template) String() string { return t.source }

// Items returns a deep copy of the parsed items in expansion order.
func (t *Template) Items() []Item {
	items := make([]Item, len(t.items))
	for i, item := range t.items {
		if expr, ok := item.(*Expression); ok {
			item = &Expression{
				Operator: expr.Operator,
				Varspecs: append([]Varspec(nil), expr.Varspecs...),
			}
		}
		items[i] = item
	}
	return items
}

// Degraded returns the source of every span that failed to parse as an
// expression and is expanded as literal text instead.
func (t *Template) Degraded() []string {
	return append([]string(nil), t.degraded...)
}

// Varnames returns the variable names referenced by the template, each once,
// in order of first appearance.
func (t *Template) Varnames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, item := range t.items {
		expr, ok := item.(*Expression)
		if !ok {
			continue
		}
		for _, vs := range expr.Varspecs {
			if !seen[vs.Name] {
				seen[vs.Name] = true
				names = append(names, vs.Name)
			}
		}
	}
	return names
}
