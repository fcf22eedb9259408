package suggest

import (
	"github.com/bengalinput/shobdo/pkg/dictionary"
	"github.com/bengalinput/shobdo/pkg/index"
	"github.com/bengalinput/shobdo/pkg/normalize"
)

// AvroSuggester expands Roman (Avro-style phonetic) input into the set of
// dictionary-attested Bengali words it could plausibly represent. The
// zero value is usable; NewAvroSuggester exists only to attach options.
type AvroSuggester struct {
	cache *resultCache
}

// NewAvroSuggester constructs an AvroSuggester. The shared pattern and
// dictionary indices are built lazily on first Suggest call, not here.
func NewAvroSuggester(opts ...Option) *AvroSuggester {
	return &AvroSuggester{cache: applyOptions(opts)}
}

// Suggest normalizes raw and returns the unordered set of dictionary words
// it could expand to. It never errors: any unmatched or malformed input
// simply yields an empty slice.
func (s *AvroSuggester) Suggest(raw string) []string {
	normalized := normalize.Normalize(raw)
	if normalized == "" {
		return nil
	}
	if words, ok := s.cache.get(normalized); ok {
		return words
	}
	words := avroWalk(normalized)
	s.cache.add(normalized, words)
	return words
}

func avroWalk(remaining string) []string {
	patternsIdx := dictionary.Patterns()
	wordsIdx := dictionary.Words()
	table := dictionary.Table()
	suffixes := []string(dictionary.Suffixes())

	matched, rest, _ := patternsIdx.LongestPrefixWalk(remaining)
	block, ok := table[matched]
	if matched == "" || !ok {
		return nil
	}
	remaining = rest

	frontier := make([]index.Handle, 0, len(block.Expansions))
	for _, p := range block.Expansions {
		if h, ok := wordsIdx.NodeFor(p); ok {
			frontier = append(frontier, h)
		}
	}
	frontier = extendWithSuffixes(frontier, suffixes)

	for remaining != "" {
		var nextMatched string
		matched, nextRemaining, final := patternsIdx.LongestPrefixWalk(remaining)
		if final {
			nextMatched = matched
			remaining = nextRemaining
		} else {
			recoveredMatched, recoveredRest, ok := recoverByRightTruncation(patternsIdx, remaining)
			if !ok {
				break
			}
			nextMatched = recoveredMatched
			remaining = recoveredRest
		}

		block, ok := table[nextMatched]
		if !ok {
			break
		}

		extended := make([]index.Handle, 0, len(frontier)*len(block.Expansions))
		for _, h := range frontier {
			for _, p := range block.Expansions {
				if nh, ok := h.Extend(p); ok {
					extended = append(extended, nh)
				}
			}
		}

		if block.WholeBlockOptional {
			frontier = append(frontier, extended...)
		} else {
			frontier = extended
		}

		frontier = extendWithSuffixes(frontier, suffixes)
	}

	return collectWords(frontier)
}

// recoverByRightTruncation absorbs a spurious leading fragment of
// remaining by retrying the pattern walk against progressively shorter
// prefixes from the right, stopping at the first one that ends in a final
// state. It reports false if no prefix length (down to and including the
// empty string) succeeds.
func recoverByRightTruncation(patternsIdx *index.PrefixIndex, remaining string) (matched, rest string, ok bool) {
	for i := len(remaining) - 1; i >= 0; i-- {
		m, _, final := patternsIdx.LongestPrefixWalk(remaining[:i])
		if final {
			return m, remaining[i:], true
		}
	}
	return "", "", false
}
