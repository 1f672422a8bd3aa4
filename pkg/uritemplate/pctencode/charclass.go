package pctencode

// Allowed reports whether r may appear in the output without escaping.
type Allowed func(r rune) bool

// IsAlpha reports whether r is an ASCII letter.
func IsAlpha(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

// IsDigit reports whether r is an ASCII decimal digit.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsHexDigit reports whether r is a hex digit in either case.
func IsHexDigit(r rune) bool {
	return IsDigit(r) || (r >= 'A' && r <= 'F') || (r >= 'a' && r <= 'f')
}

// IsUnreserved reports whether r is in the RFC 3986 unreserved set.
func IsUnreserved(r rune) bool {
	if IsAlpha(r) || IsDigit(r) {
		return true
	}
	switch r {
	case '-', '.', '_', '~':
		return true
	}
	return false
}

// IsGenDelim reports whether r is an RFC 3986 gen-delim.
func IsGenDelim(r rune) bool {
	switch r {
	case ':', '/', '?', '#', '[', ']', '@':
		return true
	}
	return false
}

// IsSubDelim reports whether r is an RFC 3986 sub-delim.
func IsSubDelim(r rune) bool {
	switch r {
	case '!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=':
		return true
	}
	return false
}

// IsReserved reports whether r is a gen-delim or sub-delim.
func IsReserved(r rune) bool {
	return IsGenDelim(r) || IsSubDelim(r)
}

// IsUnreservedOrReserved reports whether r is unreserved or reserved.
func IsUnreservedOrReserved(r rune) bool {
	return IsUnreserved(r) || IsReserved(r)
}
