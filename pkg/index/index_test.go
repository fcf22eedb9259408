package index

import "testing"

// specSampleKeys is the exact ten-key table from the PrefixIndex worked
// example: five Bengali keys forming two disjoint chains, a lone Bengali
// digit, and three Roman keys sharing a common prefix.
var specSampleKeys = []string{
	"ক", "কখগ", "কখগঘঙ",
	"চ", "চছজ", "চছজঝঞ",
	"১",
	"a", "bc", "abcd",
}

func buildSample(t *testing.T) *PrefixIndex {
	t.Helper()
	b := NewBuilder()
	for _, k := range specSampleKeys {
		if b.Insert(k) {
			t.Fatalf("unexpected duplicate key %q in sample table", k)
		}
	}
	return b.Build()
}

func TestLongestPrefixWalkFullChain(t *testing.T) {
	idx := buildSample(t)

	matched, remaining, final := idx.LongestPrefixWalk("কখগঘঙচছজঝঞ")
	if matched != "কখগঘঙ" || remaining != "চছজঝঞ" || !final {
		t.Fatalf("got (%q, %q, %v), want (%q, %q, true)",
			matched, remaining, final, "কখগঘঙ", "চছজঝঞ")
	}
}

func TestLongestPrefixWalkNoMatch(t *testing.T) {
	idx := buildSample(t)

	matched, remaining, final := idx.LongestPrefixWalk("1234")
	if matched != "" || remaining != "1234" || final {
		t.Fatalf("got (%q, %q, %v), want (%q, %q, false)", matched, remaining, final, "", "1234")
	}
}

func TestLongestPrefixWalkEmptyInput(t *testing.T) {
	idx := buildSample(t)

	matched, remaining, final := idx.LongestPrefixWalk("")
	if matched != "" || remaining != "" || final {
		t.Fatalf("got (%q, %q, %v), want empty match, not final", matched, remaining, final)
	}
}

func TestLongestPrefixWalkStopsAtFirstBrokenTransition(t *testing.T) {
	idx := buildSample(t)

	// "a" is a key and "ab" continues toward "abcd", so the walk passes
	// "a" and breaks at x, one scalar past "ab". "ab" is not itself a key,
	// so the state reached is not final; the walk does not back up to the
	// last final state it passed.
	matched, remaining, final := idx.LongestPrefixWalk("abx")
	if matched != "ab" || remaining != "x" || final {
		t.Fatalf("got (%q, %q, %v), want (%q, %q, false)", matched, remaining, final, "ab", "x")
	}
}

func TestNodeForRequiresCompleteTransitionChain(t *testing.T) {
	idx := buildSample(t)

	if _, ok := idx.NodeFor("কখগ"); !ok {
		t.Fatal("NodeFor(কখগ) should succeed: it is a key in the sample table")
	}
	if _, ok := idx.NodeFor("কখগX"); ok {
		t.Fatal("NodeFor(কখগX) should fail: X has no outgoing transition")
	}
}

func TestNodeForOnNonFinalPrefix(t *testing.T) {
	idx := buildSample(t)

	// "ab" is a prefix of "abcd" but not itself a key.
	h, ok := idx.NodeFor("ab")
	if !ok {
		t.Fatal("NodeFor(ab) should succeed: ab is a prefix of abcd")
	}
	if h.Final() {
		t.Fatal("ab should not be a final state: it is not itself a key")
	}
	if _, ok := h.Word(); ok {
		t.Fatal("Word() should fail on a non-final handle")
	}
}

func TestHandleExtendWalksToCompleteWord(t *testing.T) {
	idx := buildSample(t)

	h, ok := idx.NodeFor("a")
	if !ok {
		t.Fatal("NodeFor(a) should succeed")
	}
	h, ok = h.Extend("bcd")
	if !ok {
		t.Fatal("Extend(bcd) from a should succeed: abcd is a key")
	}
	word, ok := h.Word()
	if !ok || word != "abcd" {
		t.Fatalf("got (%q, %v), want (abcd, true)", word, ok)
	}
}

func TestHandleExtendFailsOnMissingTransition(t *testing.T) {
	idx := buildSample(t)

	h, ok := idx.NodeFor("a")
	if !ok {
		t.Fatal("NodeFor(a) should succeed")
	}
	if _, ok := h.Extend("z"); ok {
		t.Fatal("Extend(z) from a should fail: no such transition")
	}
}

func TestHandleExtendByteStepsOneScalar(t *testing.T) {
	idx := buildSample(t)

	h, ok := idx.NodeFor("")
	if !ok {
		t.Fatal("NodeFor(\"\") should always succeed at the root")
	}
	h, ok = h.ExtendByte('ক')
	if !ok {
		t.Fatal("ExtendByte(ক) from root should succeed")
	}
	if !h.Final() {
		t.Fatal("ক alone is a key in the sample table and should be final")
	}
	h, ok = h.ExtendByte('খ')
	if !ok {
		t.Fatal("ExtendByte(খ) should succeed, continuing toward কখগ")
	}
	if h.Final() {
		t.Fatal("কখ is not itself a key")
	}
}

func TestBuilderDetectsDuplicateKey(t *testing.T) {
	b := NewBuilder()
	if b.Insert("a") {
		t.Fatal("first insert of a should report no prior duplicate")
	}
	if !b.Insert("a") {
		t.Fatal("second insert of a should report it was already present")
	}
}

func TestBuilderLenCountsFinalStates(t *testing.T) {
	b := NewBuilder()
	for _, k := range specSampleKeys {
		b.Insert(k)
	}
	if got := b.Len(); got != len(specSampleKeys) {
		t.Fatalf("Len() = %d, want %d", got, len(specSampleKeys))
	}
}
