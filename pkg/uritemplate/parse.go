package uritemplate

import (
	"errors"
	"strconv"
	"strings"

	"github.com/randalmurphal/uritemplate/pkg/uritemplate/pctencode"
)

// Parse failures. These never leave the package: a failed expression is
// turned back into literal text by parseTemplate.
var (
	errEmptyExpression      = errors.New("empty expression")
	errEmptyVarspec         = errors.New("empty varspec")
	errConflictingModifiers = errors.New("prefix and explode modifiers together")
	errInvalidPrefix        = errors.New("invalid prefix length")
	errMisplacedExplode     = errors.New("explode modifier not at end of varspec")
	errInvalidVarname       = errors.New("invalid varname")
)

// parseTemplate splits s into literal and expression items. It never fails;
// the second result lists the source of every span that could not be parsed
// as an expression and was kept as a literal instead.
func parseTemplate(s string) (items []Item, degraded []string) {
	for s != "" {
		literal, rest, found := strings.Cut(s, "{")
		if !found {
			items = append(items, Literal(s))
			break
		}
		if literal != "" {
			items = append(items, Literal(literal))
		}

		body, remainder, closed := strings.Cut(rest, "}")
		if !closed {
			// An unterminated expression swallows the rest of the input.
			raw := "{" + rest
			items = append(items, Literal(raw))
			degraded = append(degraded, raw)
			break
		}

		expr, err := parseExpression(body)
		if err != nil {
			raw := "{" + body + "}"
			items = append(items, Literal(raw))
			degraded = append(degraded, raw)
		} else {
			items = append(items, expr)
		}
		s = remainder
	}
	return items, degraded
}

// parseExpression parses the text between a pair of braces. Every varspec
// must parse or the whole expression fails.
func parseExpression(body string) (*Expression, error) {
	if body == "" {
		return nil, errEmptyExpression
	}

	op, ok := operatorFor(body[0])
	if ok {
		body = body[1:]
	}

	specs := strings.Split(body, ",")
	varspecs := make([]Varspec, 0, len(specs))
	for _, spec := range specs {
		vs, err := parseVarspec(spec)
		if err != nil {
			return nil, err
		}
		varspecs = append(varspecs, vs)
	}

	return &Expression{Operator: op, Varspecs: varspecs}, nil
}

func parseVarspec(s string) (Varspec, error) {
	if s == "" {
		return Varspec{}, errEmptyVarspec
	}

	star := strings.IndexByte(s, '*')
	colon := strings.IndexByte(s, ':')

	switch {
	case star >= 0 && colon >= 0:
		return Varspec{}, errConflictingModifiers

	case colon >= 0:
		name, err := parseVarname(s[:colon])
		if err != nil {
			return Varspec{}, err
		}
		n, err := parsePrefixLength(s[colon+1:])
		if err != nil {
			return Varspec{}, err
		}
		return Varspec{Name: name, Modifier: Modifier{Kind: ModPrefix, Length: n}}, nil

	case star >= 0:
		if star != len(s)-1 {
			return Varspec{}, errMisplacedExplode
		}
		name, err := parseVarname(s[:star])
		if err != nil {
			return Varspec{}, err
		}
		return Varspec{Name: name, Modifier: Modifier{Kind: ModExplode}}, nil

	default:
		name, err := parseVarname(s)
		if err != nil {
			return Varspec{}, err
		}
		return Varspec{Name: name}, nil
	}
}

// parsePrefixLength accepts 1 to 9999 written without a leading zero or sign.
func parsePrefixLength(s string) (int, error) {
	if s == "" || s[0] == '0' || len(s) > len(strconv.Itoa(maxPrefixLength)) {
		return 0, errInvalidPrefix
	}
	for i := 0; i < len(s); i++ {
		if !pctencode.IsDigit(rune(s[i])) {
			return 0, errInvalidPrefix
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n > maxPrefixLength {
		return 0, errInvalidPrefix
	}
	return n, nil
}

// parseVarname validates ALPHA / DIGIT / "_" / "." / pct-encoded characters.
// A leading "." is accepted.
func parseVarname(s string) (string, error) {
	if s == "" {
		return "", errInvalidVarname
	}
	for i := 0; i < len(s); {
		c := rune(s[i])
		switch {
		case c == '%':
			if i+2 >= len(s) || !pctencode.IsHexDigit(rune(s[i+1])) || !pctencode.IsHexDigit(rune(s[i+2])) {
				return "", errInvalidVarname
			}
			i += 3
		case pctencode.IsAlpha(c), pctencode.IsDigit(c), c == '_', c == '.':
			i++
		default:
			return "", errInvalidVarname
		}
	}
	return s, nil
}
