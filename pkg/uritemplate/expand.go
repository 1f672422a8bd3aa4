package uritemplate

import (
	"strings"
	"unicode/utf8"

	"github.com/randalmurphal/uritemplate/pkg/uritemplate/pctencode"
)

// writeFunc appends s to b, escaping characters outside an allowed set.
type writeFunc func(b *strings.Builder, s string)

func writeUnreserved(b *strings.Builder, s string) {
	pctencode.WriteEscaped(b, pctencode.IsUnreserved, s)
}

// writeReserved lets reserved characters and existing %XX triplets through.
func writeReserved(b *strings.Builder, s string) {
	pctencode.WriteEncoded(b, pctencode.IsUnreservedOrReserved, s)
}

// writeName emits a varname. Names may hold pct-encoded octets, which are
// kept as written.
func writeName(b *strings.Builder, s string) {
	pctencode.WriteEncoded(b, pctencode.IsUnreserved, s)
}

// operatorRules is the fixed expansion table for one operator.
type operatorRules struct {
	first string
	sep   string
	named bool
	ifemp string
	write writeFunc
}

func rulesFor(op Operator) operatorRules {
	switch op {
	case OpReserved:
		return operatorRules{first: "", sep: ",", write: writeReserved}
	case OpFragment:
		return operatorRules{first: "#", sep: ",", write: writeReserved}
	case OpLabel:
		return operatorRules{first: ".", sep: ".", write: writeUnreserved}
	case OpPathSegment:
		return operatorRules{first: "/", sep: "/", write: writeUnreserved}
	case OpPathParameter:
		return operatorRules{first: ";", sep: ";", named: true, write: writeUnreserved}
	case OpFormQuery:
		return operatorRules{first: "?", sep: "&", named: true, ifemp: "=", write: writeUnreserved}
	case OpFormContinuation:
		return operatorRules{first: "&", sep: "&", named: true, ifemp: "=", write: writeUnreserved}
	default:
		return operatorRules{first: "", sep: ",", write: writeUnreserved}
	}
}

// separator writes its first string on the first call and sep afterwards.
type separator struct {
	next string
	sep  string
}

func newSeparator(first, sep string) *separator {
	return &separator{next: first, sep: sep}
}

func (s *separator) write(b *strings.Builder) {
	b.WriteString(s.next)
	s.next = s.sep
}

// expandItems renders items against vars. missing, if non-nil, is called
// with the name of every variable the lookup did not resolve.
func expandItems(b *strings.Builder, items []Item, vars Variables, missing func(name string)) {
	for _, item := range items {
		switch it := item.(type) {
		case Literal:
			b.WriteString(string(it))
		case *Expression:
			expandExpression(b, it, vars, missing)
		}
	}
}

func expandExpression(b *strings.Builder, expr *Expression, vars Variables, missing func(string)) {
	rules := rulesFor(expr.Operator)
	sep := newSeparator(rules.first, rules.sep)

	for _, vs := range expr.Varspecs {
		value, ok := vars.Get(vs.Name)
		if !ok {
			if missing != nil {
				missing(vs.Name)
			}
			continue
		}
		if value.emptyCollection() {
			continue
		}

		sep.write(b)
		if vs.Modifier.Kind == ModExplode && value.kind != KindString {
			explodeValue(b, rules, vs, value)
		} else {
			expandValue(b, rules, vs, value)
		}
	}
}

func expandValue(b *strings.Builder, rules operatorRules, vs Varspec, value Value) {
	switch value.kind {
	case KindList:
		if rules.named {
			writeName(b, vs.Name)
			b.WriteByte('=')
		}
		inner := newSeparator("", ",")
		for _, item := range value.list {
			inner.write(b)
			rules.write(b, item)
		}

	case KindAssoc:
		if rules.named {
			writeName(b, vs.Name)
			b.WriteByte('=')
		}
		inner := newSeparator("", ",")
		for _, p := range value.pairs {
			inner.write(b)
			rules.write(b, p.Key)
			b.WriteByte(',')
			rules.write(b, p.Value)
		}

	default:
		s := value.str
		if vs.Modifier.Kind == ModPrefix {
			s = truncate(s, vs.Modifier.Length)
		}
		if rules.named {
			writeName(b, vs.Name)
			if s == "" {
				b.WriteString(rules.ifemp)
				return
			}
			b.WriteByte('=')
		}
		rules.write(b, s)
	}
}

func explodeValue(b *strings.Builder, rules operatorRules, vs Varspec, value Value) {
	inner := newSeparator("", rules.sep)

	if value.kind == KindList {
		for _, item := range value.list {
			inner.write(b)
			if rules.named {
				writeNamedValue(b, rules, vs.Name, item)
			} else {
				rules.write(b, item)
			}
		}
		return
	}

	for _, p := range value.pairs {
		inner.write(b)
		if rules.named {
			writeNamedValue(b, rules, p.Key, p.Value)
			continue
		}
		// Unnamed explode of an associative array always shows the key.
		rules.write(b, p.Key)
		b.WriteByte('=')
		rules.write(b, p.Value)
	}
}

// writeNamedValue writes name=value, or name followed by ifemp when value is empty.
func writeNamedValue(b *strings.Builder, rules operatorRules, name, value string) {
	writeName(b, name)
	if value == "" {
		b.WriteString(rules.ifemp)
		return
	}
	b.WriteByte('=')
	rules.write(b, value)
}

// truncate returns the first n code points of s. Invalid UTF-8 bytes count
// as one code point each.
func truncate(s string, n int) string {
	i := 0
	for count := 0; i < len(s) && count < n; count++ {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return s[:i]
}
