/*
Package pctencode implements the percent-encoding rules used by URI templates.

# Overview

Two encoders are provided. Both escape every character rejected by a
caller-supplied Allowed predicate as the %XX form of its UTF-8 bytes, using
uppercase hex digits:

  - Encode keeps well-formed %XX triplets from the input untouched and
    escapes any stray '%' as %25.
  - Escape treats '%' like any other character, so it is always escaped
    unless the predicate allows it.

	pctencode.Encode(pctencode.IsUnreserved, "Hello World!") // "Hello%20World%21"
	pctencode.Encode(pctencode.IsUnreserved, "50%20off")     // "50%20off"
	pctencode.Escape(pctencode.IsUnreserved, "50%20off")     // "50%2520off"

# Character Classes

The predicates follow RFC 3986 §2:

	unreserved = ALPHA / DIGIT / "-" / "." / "_" / "~"
	gen-delims = ":" / "/" / "?" / "#" / "[" / "]" / "@"
	sub-delims = "!" / "$" / "&" / "'" / "(" / ")" / "*" / "+" / "," / ";" / "="

IsUnreservedOrReserved is the allowed set for reserved (+) and fragment (#)
expansion; IsUnreserved is the allowed set everywhere else.

# Invalid UTF-8

Bytes that do not form valid UTF-8 are escaped one byte at a time rather
than being replaced with U+FFFD.
*/
package pctencode
