// Package encoding centralizes the codepoint-to-byte mapping shared by every
// PrefixIndex in shobdo.
//
// Both the patterns index and the words index store string keys as byte
// sequences obtained by taking the low 8 bits of each Unicode scalar value
// of the key. This is a lossy, domain-specific encoding: it relies on the
// Bengali block and the ASCII letters used as pattern keys each colliding
// with at most one other scalar per index in practice. Build and query must
// apply the exact same mapping, so it lives here instead of being
// reimplemented at each call site.
package encoding

// Byte returns the low 8 bits of r's scalar value, the transition label
// used for r in every PrefixIndex.
func Byte(r rune) byte {
	return byte(r & 0xFF)
}

// Encode maps every scalar of s to its transition label, in order.
func Encode(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		out = append(out, Byte(r))
	}
	return out
}
