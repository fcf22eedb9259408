// Package normalize canonicalises raw Roman input before AvroSuggester
// walks it.
package normalize

import "strings"

// sentinel stands in for "no scalar seen yet" as the initial lookbehind;
// it is not ASCII alphabetic, which is the only property Normalize rule 3
// depends on for the lookbehind.
const sentinel = rune(0)

// Normalize cleans raw Roman text into the ASCII form AvroSuggester
// expects: trimmed, lowercased, with a leading or post-non-alphabetic 'o'
// promoted to 'O' and everything except ASCII letters and digits, backtick,
// and the apostrophes ' and ’ dropped.
func Normalize(raw string) string {
	raw = strings.TrimSpace(raw)

	var out strings.Builder
	out.Grow(len(raw))

	prev := sentinel
	for _, c := range raw {
		switch {
		case (c == 'o' || c == 'O') && !isASCIIAlpha(prev):
			out.WriteRune('O')
		case isASCIIAlnum(c) || c == '`' || c == '\'' || c == '’':
			out.WriteRune(toASCIILower(c))
		}
		prev = c
	}
	return out.String()
}

func isASCIIAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isASCIIAlnum(c rune) bool {
	return isASCIIAlpha(c) || (c >= '0' && c <= '9')
}

func toASCIILower(c rune) rune {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}
