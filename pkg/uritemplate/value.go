package uritemplate

// Kind is the shape of a Value.
type Kind int

const (
	// KindString is a scalar string.
	KindString Kind = iota
	// KindList is an ordered list of strings.
	KindList
	// KindAssoc is an ordered associative array; keys may repeat.
	KindAssoc
)

// String returns a readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindAssoc:
		return "assoc"
	default:
		return "unknown"
	}
}

// Pair is one key/value entry of an associative array.
type Pair struct {
	Key   string
	Value string
}

// Value is a variable binding: a string, a list, or an associative array.
// The zero Value is the empty string.
type Value struct {
	kind  Kind
	str   string
	list  []string
	pairs []Pair
}

// StringValue returns a string Value.
func StringValue(s string) Value {
	return Value{kind: KindString, str: s}
}

// ListValue returns a list Value holding a copy of items.
func ListValue(items ...string) Value {
	return Value{kind: KindList, list: append([]string(nil), items...)}
}

// AssocValue returns an associative array Value holding a copy of pairs.
// Order is preserved.
func AssocValue(pairs ...Pair) Value {
	return Value{kind: KindAssoc, pairs: append([]Pair(nil), pairs...)}
}

// Kind returns the shape of v.
func (v Value) Kind() Kind { return v.kind }

// Str returns the string of a KindString value, or "" otherwise.
func (v Value) Str() string { return v.str }

// List returns a copy of the items of a KindList value.
func (v Value) List() []string { return append([]string(nil), v.list...) }

// Pairs returns a copy of the entries of a KindAssoc value.
func (v Value) Pairs() []Pair { return append([]Pair(nil), v.pairs...) }

// Len returns the number of items or pairs, or the byte length of a string.
func (v Value) Len() int {
	switch v.kind {
	case KindList:
		return len(v.list)
	case KindAssoc:
		return len(v.pairs)
	default:
		return len(v.str)
	}
}

// emptyCollection reports whether v is a list or associative array with no
// entries. Such values expand exactly like undefined variables.
func (v Value) emptyCollection() bool {
	return v.kind != KindString && v.Len() == 0
}

// Variables resolves variable names to values during expansion.
// Implementations need only be safe for reads for the duration of a call.
type Variables interface {
	Get(name string) (Value, bool)
}

// VariablesFunc adapts a function to Variables.
type VariablesFunc func(name string) (Value, bool)

// Get calls f(name).
func (f VariablesFunc) Get(name string) (Value, bool) { return f(name) }

// Map is a Variables backed by a Go map.
type Map map[string]Value

// Get implements Variables.
func (m Map) Get(name string) (Value, bool) {
	v, ok := m[name]
	return v, ok
}

// Binding is a named value in a Bindings list.
type Binding struct {
	Name  string
	Value Value
}

// Bindings is an ordered Variables; the first binding with a matching name wins.
type Bindings []Binding

// Get implements Variables.
func (b Bindings) Get(name string) (Value, bool) {
	for _, binding := range b {
		if binding.Name == name {
			return binding.Value, true
		}
	}
	return Value{}, false
}

// noVariables resolves nothing.
type noVariables struct{}

func (noVariables) Get(string) (Value, bool) { return Value{}, false }
