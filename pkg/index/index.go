/*
Package index implements PrefixIndex, the read-only compact automaton that
backs both the Roman pattern table and the Bengali dictionary in shobdo.

A PrefixIndex is a deterministic acyclic byte automaton: a designated root,
per-transition labels in [0,255], and a final-state flag per node. Keys are
encoded scalar-by-scalar through internal/encoding before being inserted, so
two indices built from the same key set are interchangeable regardless of
which scalars happened to produce which transition labels.

# Construction vs. query

A Builder accumulates keys (via Insert) and produces an immutable
*PrefixIndex (via Build). Once built, every exported operation on the index
and on the Handle values it hands out is read-only: no query can mutate the
automaton, so concurrent readers need no synchronization.

	b := index.NewBuilder()
	b.Insert("কখগ")
	b.Insert("কখগঘঙ")
	idx := b.Build()

# Node handles

A Handle pairs a state inside one PrefixIndex with the accumulated key
string that reached it. Handles are cheap to copy; only constructing one
(via NodeFor, Extend, or ExtendByte) allocates, and only for the accumulated
key.
*/
package index

import "github.com/bengalinput/shobdo/internal/encoding"

// node is one state in the automaton. children is nil for leaves to avoid
// an allocation per inserted word; Builder.Insert only ever grows it.
type node struct {
	final    bool
	children map[byte]int32
}

// PrefixIndex is an immutable deterministic acyclic byte automaton.
// The zero value is not usable; build one with Builder.
type PrefixIndex struct {
	nodes []node
}

// Builder accumulates keys before producing an immutable PrefixIndex.
type Builder struct {
	nodes []node
}

// NewBuilder returns a Builder seeded with just the root state.
func NewBuilder() *Builder {
	return &Builder{nodes: []node{{}}}
}

// Insert adds key to the automaton under construction, marking its final
// state. Re-inserting the same key is a no-op beyond re-marking finality.
// Insert reports whether key was already present (a duplicate key in the
// raw build data, which callers may want to treat as a construction error).
func (b *Builder) Insert(key string) (alreadyPresent bool) {
	cur := int32(0)
	for _, label := range encoding.Encode(key) {
		n := &b.nodes[cur]
		if n.children == nil {
			n.children = make(map[byte]int32, 1)
		}
		next, ok := n.children[label]
		if !ok {
			b.nodes = append(b.nodes, node{})
			next = int32(len(b.nodes) - 1)
			n.children[label] = next
		}
		cur = next
	}
	already := b.nodes[cur].final
	b.nodes[cur].final = true
	return already
}

// Len returns the number of keys inserted so far that are reachable as
// final states.
func (b *Builder) Len() int {
	count := 0
	for _, n := range b.nodes {
		if n.final {
			count++
		}
	}
	return count
}

// Build freezes the automaton. The Builder must not be reused afterward.
func (b *Builder) Build() *PrefixIndex {
	return &PrefixIndex{nodes: b.nodes}
}

// LongestPrefixWalk walks from the root following the byte-encoded scalars
// of input one scalar at a time until no transition exists. It returns the
// input split at the last successful position and whether the state
// reached there is final. matched may be empty; remaining may be empty.
func (idx *PrefixIndex) LongestPrefixWalk(input string) (matched, remaining string, final bool) {
	cur := int32(0)
	lastGood := 0
	pos := 0
	for _, r := range input {
		label := encoding.Byte(r)
		next, ok := idx.nodes[cur].children[label]
		if !ok {
			break
		}
		cur = next
		pos += len(string(r))
		lastGood = pos
	}
	return input[:lastGood], input[lastGood:], idx.nodes[cur].final
}

// NodeFor walks the whole key and returns a Handle anchored at the state
// reached, iff every scalar transitioned successfully. Finality of that
// state is irrelevant: NodeFor is used to anchor inside an arbitrary
// prefix of a dictionary word, not only at complete words.
func (idx *PrefixIndex) NodeFor(key string) (Handle, bool) {
	cur := int32(0)
	for _, r := range key {
		label := encoding.Byte(r)
		next, ok := idx.nodes[cur].children[label]
		if !ok {
			return Handle{}, false
		}
		cur = next
	}
	return Handle{idx: idx, state: cur, key: key}, true
}
