/*
Package dictionary builds the shared, process-lifetime state every suggester
queries against: the two PrefixIndex automatons (patterns and dictionary
words), the PatternTable, and the CommonSuffixes list.

There is no runtime file I/O and no offline build step shipped with this
package: the three source artifacts (a dictionary word list, the pattern
table, and the common-suffix list) are embedded into the binary with
go:embed and parsed into their in-memory automatons the first time any
suggester is used. Construction happens once, behind a sync.Once, and
every exported accessor is safe for concurrent callers thereafter.

	idx := dictionary.Words()
	tbl := dictionary.Table()

A malformed embedded table is a programmer error in this repository, not a
recoverable runtime condition, so construction failures panic with a
*ConstructionError rather than being returned.
*/
package dictionary

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/bengalinput/shobdo/internal/logger"
	"github.com/bengalinput/shobdo/pkg/index"
	"github.com/bengalinput/shobdo/pkg/pattern"
	"github.com/tchap/go-patricia/v2/patricia"
)

var log = logger.New("dictionary")

//go:embed data/words.txt
var wordsData []byte

//go:embed data/patterns.json
var patternsData []byte

//go:embed data/suffixes.json
var suffixesData []byte

// requiredPatternKeys are the single-character keys normalize.Normalize can
// ever emit. The pattern table must define all of them so that a
// nonempty longestPrefixWalk match is never lost to a missing key.
var requiredPatternKeys = func() []string {
	keys := make([]string, 0, 26+10+4)
	for c := 'a'; c <= 'z'; c++ {
		keys = append(keys, string(c))
	}
	for c := '0'; c <= '9'; c++ {
		keys = append(keys, string(c))
	}
	return append(keys, "O", "`", "'", "’")
}()

// ConstructionError reports a fatal failure building the shared indices:
// corrupt embedded bytes, a malformed pattern table, a duplicate key, or a
// required single-character pattern key missing from the table.
type ConstructionError struct {
	Reason string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("dictionary: construction error: %s", e.Reason)
}

// Loader holds the shared state built from the embedded data files. Use
// the package-level accessors (Words, Patterns, Table, Suffixes) rather
// than constructing a Loader directly; they share one lazily-built
// instance for the life of the process.
type Loader struct {
	once sync.Once

	words    *index.PrefixIndex
	patterns *index.PrefixIndex
	table    pattern.Table
	suffixes pattern.CommonSuffixes
}

var shared Loader

// Ensure builds the shared state on the first call from any goroutine and
// is a cheap no-op on every subsequent call. It panics with a
// *ConstructionError if the embedded data cannot produce a valid table and
// pair of indices.
func Ensure() {
	shared.once.Do(shared.build)
}

// Words returns the shared dictionary-words PrefixIndex, building it first
// if necessary.
func Words() *index.PrefixIndex {
	Ensure()
	return shared.words
}

// Patterns returns the shared Roman-pattern PrefixIndex.
func Patterns() *index.PrefixIndex {
	Ensure()
	return shared.patterns
}

// Table returns the shared PatternTable.
func Table() pattern.Table {
	Ensure()
	return shared.table
}

// Suffixes returns the shared CommonSuffixes list.
func Suffixes() pattern.CommonSuffixes {
	Ensure()
	return shared.suffixes
}

func (l *Loader) build() {
	table, err := pattern.ParseTable(patternsData)
	if err != nil {
		panic(&ConstructionError{Reason: err.Error()})
	}
	for _, key := range requiredPatternKeys {
		if _, ok := table[key]; !ok {
			panic(&ConstructionError{Reason: fmt.Sprintf("pattern table missing required key %q", key)})
		}
	}

	suffixes, err := pattern.ParseCommonSuffixes(suffixesData)
	if err != nil {
		panic(&ConstructionError{Reason: err.Error()})
	}

	patternsBuilder := index.NewBuilder()
	seenPatterns := patricia.NewTrie()
	for key := range table {
		if seenPatterns.Get(patricia.Prefix(key)) != nil {
			panic(&ConstructionError{Reason: fmt.Sprintf("duplicate pattern key %q", key)})
		}
		seenPatterns.Insert(patricia.Prefix(key), true)
		if patternsBuilder.Insert(key) {
			panic(&ConstructionError{Reason: fmt.Sprintf("pattern key %q collided building the index", key)})
		}
	}

	words := splitNonEmptyLines(string(wordsData))
	if len(words) == 0 {
		panic(&ConstructionError{Reason: "embedded dictionary word list is empty"})
	}
	wordsBuilder := index.NewBuilder()
	seenWords := patricia.NewTrie()
	for _, w := range words {
		if seenWords.Get(patricia.Prefix(w)) != nil {
			panic(&ConstructionError{Reason: fmt.Sprintf("duplicate dictionary word %q", w)})
		}
		seenWords.Insert(patricia.Prefix(w), true)
		if wordsBuilder.Insert(w) {
			panic(&ConstructionError{Reason: fmt.Sprintf("word %q collided building the index", w)})
		}
	}

	l.table = table
	l.suffixes = suffixes
	l.patterns = patternsBuilder.Build()
	l.words = wordsBuilder.Build()

	log.Infof("dictionary: loaded %d pattern keys, %d words, %d common suffixes",
		len(table), len(words), len(suffixes))
}

func splitNonEmptyLines(s string) []string {
	lines := strings.Split(s, "\n")
	out := lines[:0]
	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
