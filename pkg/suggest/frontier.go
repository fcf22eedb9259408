/*
Package suggest implements the two query-time engines shobdo exposes:
AvroSuggester, which drives a joint walk of the pattern and dictionary
automatons over Roman input, and BanglaSuggester, a bounded-depth
dictionary-only walk over a partial Bengali prefix. Both share the
frontier primitives in this file and the shared, immutable indices built
lazily by the dictionary package.

Neither suggester ever mutates shared state, and neither ever returns an
error: a query that cannot produce any suggestion returns an empty slice.
Construction failures in the underlying indices panic from the dictionary
package the first time either suggester is used; see that package's
doc comment.
*/
package suggest

import "github.com/bengalinput/shobdo/pkg/index"

// extendWithSuffixes adds h.Extend(s) to frontier for every handle h
// already in frontier and every suffix s in suffixes, for which the
// extension exists. It ranges over a snapshot of frontier taken before any
// additions, so the newly added handles are never themselves extended by
// this call.
func extendWithSuffixes(frontier []index.Handle, suffixes []string) []index.Handle {
	base := frontier
	for _, h := range base {
		for _, s := range suffixes {
			if nh, ok := h.Extend(s); ok {
				frontier = append(frontier, nh)
			}
		}
	}
	return frontier
}

// collectWords gathers the distinct accumulated keys of every final handle
// in frontier. Duplicate handles (and duplicate words reached by different
// handles) collapse into one entry.
func collectWords(frontier []index.Handle) []string {
	seen := make(map[string]struct{}, len(frontier))
	words := make([]string, 0, len(frontier))
	for _, h := range frontier {
		w, ok := h.Word()
		if !ok {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}
	return words
}
