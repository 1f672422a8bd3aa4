package pctencode

import (
	"strings"
	"unicode/utf8"
)

const upperhex = "0123456789ABCDEF"

// state tracks how much of a %XX triplet has been consumed.
type state int

const (
	stateNormal state = iota
	stateSawPercent
	stateSawPercentHex
)

// encoder is the triplet-preserving state machine behind Encode.
type encoder struct {
	b       *strings.Builder
	allowed Allowed
	state   state
	hex     byte // first hex digit, valid in stateSawPercentHex
}

// Encode returns s with every character rejected by allowed percent-escaped.
// Well-formed %XX triplets are copied through unchanged; a '%' that does not
// start one is escaped as %25.
func Encode(allowed Allowed, s string) string {
	var b strings.Builder
	b.Grow(len(s))
	WriteEncoded(&b, allowed, s)
	return b.String()
}

// WriteEncoded appends the Encode form of s to b.
func WriteEncoded(b *strings.Builder, allowed Allowed, s string) {
	e := encoder{b: b, allowed: allowed}
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		e.step(s[i:i+size], r)
		i += size
	}
	e.flush()
}

// Escape returns s with every character rejected by allowed percent-escaped,
// including any '%'.
func Escape(allowed Allowed, s string) string {
	var b strings.Builder
	b.Grow(len(s))
	WriteEscaped(&b, allowed, s)
	return b.String()
}

// WriteEscaped appends the Escape form of s to b.
func WriteEscaped(b *strings.Builder, allowed Allowed, s string) {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		writeRune(b, allowed, s[i:i+size], r)
		i += size
	}
}

func (e *encoder) step(raw string, r rune) {
	switch e.state {
	case stateSawPercent:
		if IsHexDigit(r) {
			e.state = stateSawPercentHex
			e.hex = byte(r)
			return
		}
		e.flush()
	case stateSawPercentHex:
		if IsHexDigit(r) {
			e.b.WriteByte('%')
			e.b.WriteByte(e.hex)
			e.b.WriteByte(byte(r))
			e.state = stateNormal
			return
		}
		e.flush()
	}

	if r == '%' {
		e.state = stateSawPercent
		return
	}
	writeRune(e.b, e.allowed, raw, r)
}

// flush emits an incomplete triplet with its '%' escaped.
func (e *encoder) flush() {
	switch e.state {
	case stateSawPercent:
		e.b.WriteString("%25")
	case stateSawPercentHex:
		e.b.WriteString("%25")
		writeRune(e.b, e.allowed, string(e.hex), rune(e.hex))
	}
	e.state = stateNormal
}

// writeRune writes raw (the UTF-8 bytes of r) either verbatim or escaped.
func writeRune(b *strings.Builder, allowed Allowed, raw string, r rune) {
	invalid := r == utf8.RuneError && len(raw) == 1
	if !invalid && allowed(r) {
		b.WriteString(raw)
		return
	}
	for i := 0; i < len(raw); i++ {
		writeHexByte(b, raw[i])
	}
}

func writeHexByte(b *strings.Builder, c byte) {
	b.WriteByte('%')
	b.WriteByte(upperhex[c>>4])
	b.WriteByte(upperhex[c&0x0F])
}
