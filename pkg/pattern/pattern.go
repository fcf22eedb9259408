// Package pattern holds the Roman-fragment pattern table and common-suffix
// list that AvroSuggester drives its joint walk against.
package pattern

import (
	"encoding/json"
	"fmt"
)

// Block is one pattern-table entry: the Bengali expansions of a single
// Roman fragment key, plus whether the block as a whole may contribute
// nothing to a frontier.
type Block struct {
	// Expansions is the ordered, nonempty list of Bengali fragments this
	// key may expand to. An individual expansion may itself be the empty
	// string.
	Expansions []string

	// WholeBlockOptional, when true, means the matcher unions this
	// block's contribution onto the current frontier instead of
	// replacing it: the key is allowed to produce no Bengali output at
	// all without collapsing the walk.
	WholeBlockOptional bool
}

// Table maps a Roman fragment key to its Block. Every single ASCII
// character that can appear in normalized input must be present as a key;
// Loader enforces this when building a Table from embedded JSON.
type Table map[string]Block

// rawBlock mirrors the wire shape of one entry in the embedded pattern
// table JSON: {"transliterate": [...], "entireBlockOptional": bool}.
type rawBlock struct {
	Transliterate       []string `json:"transliterate"`
	EntireBlockOptional *bool    `json:"entireBlockOptional,omitempty"`
}

// ParseTable decodes the embedded pattern table JSON (an object mapping
// Roman key strings to rawBlock) into a Table. It reports an error for any
// key with zero expansions; decoding a malformed document is the caller's
// (Loader's) responsibility to treat as a ConstructionError.
func ParseTable(data []byte) (Table, error) {
	var raw map[string]rawBlock
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("pattern: decode table: %w", err)
	}
	table := make(Table, len(raw))
	for key, rb := range raw {
		if key == "" {
			return nil, fmt.Errorf("pattern: empty key in table")
		}
		if len(rb.Transliterate) == 0 {
			return nil, fmt.Errorf("pattern: key %q has zero expansions", key)
		}
		optional := rb.EntireBlockOptional != nil && *rb.EntireBlockOptional
		table[key] = Block{
			Expansions:         rb.Transliterate,
			WholeBlockOptional: optional,
		}
	}
	return table, nil
}

// CommonSuffixes is the small ordered list of Bengali fragments tried as
// optional extensions after every step of the joint walk.
type CommonSuffixes []string

// ParseCommonSuffixes decodes the embedded common-suffix JSON array.
func ParseCommonSuffixes(data []byte) (CommonSuffixes, error) {
	var suffixes []string
	if err := json.Unmarshal(data, &suffixes); err != nil {
		return nil, fmt.Errorf("pattern: decode common suffixes: %w", err)
	}
	return CommonSuffixes(suffixes), nil
}
