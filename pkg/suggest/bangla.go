package suggest

import (
	"unicode/utf8"

	"github.com/bengalinput/shobdo/pkg/dictionary"
	"github.com/bengalinput/shobdo/pkg/index"
)

// allowedBengaliChars is the fixed set of 61 scalars BanglaSuggester may
// append while walking the dictionary index: independent vowels, vowel
// signs (kar), consonants, nukta forms, candrabindu/anusvara/visarga,
// khanda ta, and the virama.
var allowedBengaliChars = []rune{
	// independent vowels
	'অ', 'আ', 'ই', 'ঈ', 'উ', 'ঊ', 'ঋ', 'এ', 'ঐ', 'ও', 'ঔ',
	// vowel signs (kar)
	'া', 'ি', 'ী', 'ু', 'ূ', 'ৃ', 'ে', 'ৈ', 'ো', 'ৌ',
	// consonants
	'ক', 'খ', 'গ', 'ঘ', 'ঙ', 'চ', 'ছ', 'জ', 'ঝ', 'ঞ',
	'ট', 'ঠ', 'ড', 'ঢ', 'ণ', 'ত', 'থ', 'দ', 'ধ', 'ন',
	'প', 'ফ', 'ব', 'ভ', 'ম', 'য', 'র', 'ল', 'শ', 'ষ', 'স', 'হ',
	// nukta forms
	'ড়', 'ঢ়', 'য়',
	// candrabindu, anusvara, visarga
	'ঁ', 'ং', 'ঃ',
	// khanda ta
	'ৎ',
	// virama
	'্',
}

// BanglaSuggester expands a partial Bengali prefix into the dictionary
// words reachable within a bounded number of further scalars. The zero
// value is usable; NewBanglaSuggester exists only to attach options.
type BanglaSuggester struct {
	cache *resultCache
}

// NewBanglaSuggester constructs a BanglaSuggester.
func NewBanglaSuggester(opts ...Option) *BanglaSuggester {
	return &BanglaSuggester{cache: applyOptions(opts)}
}

// Suggest treats input as an already-typed partial word and returns the
// dictionary words it could complete to. It never errors: an input with
// no dictionary continuation yields an empty slice.
func (s *BanglaSuggester) Suggest(input string) []string {
	if input == "" {
		return nil
	}
	if words, ok := s.cache.get(input); ok {
		return words
	}
	words := banglaWalk(input)
	s.cache.add(input, words)
	return words
}

func banglaWalk(input string) []string {
	wordsIdx := dictionary.Words()

	anchor, ok := wordsIdx.NodeFor(input)
	if !ok {
		return nil
	}

	depth := banglaDepth(input)

	frontier := make([]index.Handle, 0, len(allowedBengaliChars))
	for _, c := range allowedBengaliChars {
		if h, ok := anchor.ExtendByte(c); ok {
			frontier = append(frontier, h)
		}
	}

	for i := 0; i < depth-1; i++ {
		current := frontier
		for _, h := range current {
			for _, c := range allowedBengaliChars {
				if nh, ok := h.ExtendByte(c); ok {
					frontier = append(frontier, nh)
				}
			}
		}
	}

	return collectWords(frontier)
}

// banglaDepth implements the 0/1/5 rule: depth 0 for a single-scalar
// input, 1 for 2-3 scalars, 5 for 4 or more. banglaWalk takes one hop and
// then depth-1 further hops, so depths 0 and 1 both give one hop and
// depth 5 gives five. Go's signed int
// arithmetic makes depth-1 well-defined (and negative, so the hop loop
// runs zero times) when depth is 0, avoiding the wraparound the reference
// implementation's unsigned subtraction produces for that case.
func banglaDepth(input string) int {
	switch n := utf8.RuneCountInString(input); {
	case n <= 1:
		return 0
	case n <= 3:
		return 1
	default:
		return 5
	}
}
