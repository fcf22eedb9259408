package index

import "github.com/bengalinput/shobdo/internal/encoding"

// Handle anchors a position inside one PrefixIndex together with the key
// string that reached it. The zero Handle is not valid; obtain one from
// PrefixIndex.NodeFor, Handle.Extend, or Handle.ExtendByte.
type Handle struct {
	idx   *PrefixIndex
	state int32
	key   string
}

// Final reports whether the state h is anchored at corresponds to a
// complete key in the index.
func (h Handle) Final() bool {
	return h.idx.nodes[h.state].final
}

// Key returns the accumulated key string that reached h's state.
func (h Handle) Key() string {
	return h.key
}

// Word returns h's key and true iff h is anchored at a final state, i.e.
// the accumulated key is itself a complete dictionary entry or pattern key.
func (h Handle) Word() (string, bool) {
	if !h.Final() {
		return "", false
	}
	return h.key, true
}

// Extend walks suffix scalar by scalar from h's state and returns the
// resulting Handle. It reports false the moment any scalar of suffix has
// no outgoing transition, leaving the returned Handle zero.
func (h Handle) Extend(suffix string) (Handle, bool) {
	cur := h.state
	for _, r := range suffix {
		next, ok := h.idx.nodes[cur].children[encoding.Byte(r)]
		if !ok {
			return Handle{}, false
		}
		cur = next
	}
	return Handle{idx: h.idx, state: cur, key: h.key + suffix}, true
}

// ExtendByte walks a single scalar from h's state. The method is named
// for the transition label the scalar produces, a byte, even though callers
// pass a full rune; only its low 8 bits address the transition.
func (h Handle) ExtendByte(scalar rune) (Handle, bool) {
	next, ok := h.idx.nodes[h.state].children[encoding.Byte(scalar)]
	if !ok {
		return Handle{}, false
	}
	return Handle{idx: h.idx, state: next, key: h.key + string(scalar)}, true
}
