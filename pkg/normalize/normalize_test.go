package normalize

import "testing"

func TestNormalizeExamples(t *testing.T) {
	cases := map[string]string{
		"o":        "O",
		"o!o":      "OO",
		"osomapto": "Osomapto",
		"6t``":     "6t``",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeTrimsWhitespace(t *testing.T) {
	if got := Normalize("  ami  "); got != "ami" {
		t.Errorf("Normalize trims whitespace, got %q", got)
	}
}

func TestNormalizeUppercasesOnlyStandaloneO(t *testing.T) {
	got := Normalize("TUMI")
	if got != "tumi" {
		t.Errorf("Normalize(%q) = %q, want lowercase", "TUMI", got)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"o", "o!o", "osomapto", "6t``", "  Amra Ki Korbo  ", ""}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent on %q: once=%q twice=%q", in, once, twice)
		}
	}
}

func TestNormalizeDropsPunctuationExceptBacktickAndQuotes(t *testing.T) {
	got := Normalize("a.b,c;d!e?f")
	if got != "abcdef" {
		t.Errorf("Normalize(%q) = %q, want %q", "a.b,c;d!e?f", got, "abcdef")
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	if got := Normalize(""); got != "" {
		t.Errorf("Normalize(\"\") = %q, want empty", got)
	}
}
