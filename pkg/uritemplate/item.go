package uritemplate

import (
	"strconv"
	"strings"
)

// Item is one element of a parsed template: a Literal or an *Expression.
// Items are immutable once parsed.
type Item interface {
	isItem()
}

// Literal is template text copied to the output verbatim.
type Literal string

func (Literal) isItem() {}

// Expression is a single {...} construct.
type Expression struct {
	Operator Operator
	Varspecs []Varspec
}

func (*Expression) isItem() {}

// String reconstructs the expression source, braces included.
func (e *Expression) String() string {
	var b strings.Builder
	b.WriteByte('{')
	b.WriteString(e.Operator.String())
	for i, vs := range e.Varspecs {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(vs.String())
	}
	b.WriteByte('}')
	return b.String()
}

// Operator selects the expansion rules of an expression.
type Operator int

const (
	// OpSimple is the default operator (no sigil).
	OpSimple Operator = iota
	// OpReserved is "+".
	OpReserved
	// OpFragment is "#".
	OpFragment
	// OpLabel is ".".
	OpLabel
	// OpPathSegment is "/".
	OpPathSegment
	// OpPathParameter is ";".
	OpPathParameter
	// OpFormQuery is "?".
	OpFormQuery
	// OpFormContinuation is "&".
	OpFormContinuation
)

// String returns the operator sigil, or "" for OpSimple.
func (o Operator) String() string {
	switch o {
	case OpReserved:
		return "+"
	case OpFragment:
		return "#"
	case OpLabel:
		return "."
	case OpPathSegment:
		return "/"
	case OpPathParameter:
		return ";"
	case OpFormQuery:
		return "?"
	case OpFormContinuation:
		return "&"
	default:
		return ""
	}
}

// operatorFor maps a leading sigil to its operator.
func operatorFor(c byte) (Operator, bool) {
	switch c {
	case '+':
		return OpReserved, true
	case '#':
		return OpFragment, true
	case '.':
		return OpLabel, true
	case '/':
		return OpPathSegment, true
	case ';':
		return OpPathParameter, true
	case '?':
		return OpFormQuery, true
	case '&':
		return OpFormContinuation, true
	}
	return OpSimple, false
}

// ModifierKind identifies the level-4 modifier of a varspec.
type ModifierKind int

const (
	// ModNone means no modifier.
	ModNone ModifierKind = iota
	// ModPrefix truncates string values to Length code points.
	ModPrefix
	// ModExplode expands lists and associative arrays element by element.
	ModExplode
)

// maxPrefixLength is the largest prefix length the grammar accepts.
const maxPrefixLength = 9999

// Modifier is a varspec modifier. Length is only meaningful for ModPrefix.
type Modifier struct {
	Kind   ModifierKind
	Length int
}

// Varspec is a variable reference inside an expression.
type Varspec struct {
	Name     string
	Modifier Modifier
}

// String returns the varspec as written in a template.
func (v Varspec) String() string {
	switch v.Modifier.Kind {
	case ModPrefix:
		return v.Name + ":" + strconv.Itoa(v.Modifier.Length)
	case ModExplode:
		return v.Name + "*"
	default:
		return v.Name
	}
}
