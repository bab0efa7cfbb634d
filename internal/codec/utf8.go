package codec

import "unicode/utf8"

// isValidUTF8 reports whether b holds well-formed UTF-8. Keys and values are
// validated on decode only; encode writes them verbatim per the codec
// contract.
func isValidUTF8(b []byte) bool {
	return utf8.Valid(b)
}
