package suggest

import (
	"testing"

	"github.com/bengalinput/shobdo/pkg/dictionary"
)

// These scenarios are built from this repository's own small embedded
// sample dictionary and pattern table (see pkg/dictionary/data), not the
// production Avro dataset: the reference implementation's data files were
// not available, only its source structure. Each case below was hand
// traced against the sample data before being written here.

func setEquals(t *testing.T, got []string, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v (len %d), want %v (len %d)", got, len(got), want, len(want))
	}
	wantSet := make(map[string]bool, len(want))
	for _, w := range want {
		wantSet[w] = true
	}
	for _, g := range got {
		if !wantSet[g] {
			t.Fatalf("got %v, want set %v: unexpected member %q", got, want, g)
		}
	}
}

func TestAvroSuggestSampleWords(t *testing.T) {
	s := NewAvroSuggester()

	cases := []struct {
		input string
		want  []string
	}{
		{"ami", []string{"আমি"}},
		{"amra", []string{"আমরা"}},
		{"ktha", []string{"কথা"}},
		{"bi", []string{"বই"}},
		{"nam", []string{"নাম"}},
		{"gan", []string{"গান"}},
		{"desh", []string{"দেশ"}},
		{"phul", []string{"ফুল"}},
		{"hat", []string{"হাত"}},
		{"pani", []string{"পানি"}},
		{"alo", []string{"আলো"}},
		{"o", []string{"ও"}},
	}
	for _, c := range cases {
		got := s.Suggest(c.input)
		setEquals(t, got, c.want...)
	}
}

func TestAvroSuggestEmptyInput(t *testing.T) {
	s := NewAvroSuggester()
	if got := s.Suggest(""); len(got) != 0 {
		t.Fatalf("Suggest(\"\") = %v, want empty", got)
	}
	if got := s.Suggest("   "); len(got) != 0 {
		t.Fatalf("Suggest on all-whitespace input = %v, want empty", got)
	}
}

func TestAvroSuggestUnknownDigitYieldsEmpty(t *testing.T) {
	s := NewAvroSuggester()
	// "6" maps to a Bengali digit outside the sample dictionary, so the
	// bootstrap seed is empty and the whole query yields nothing -
	// exercising the same graceful-empty-result path the reference
	// implementation's "6t``" example exercises.
	if got := s.Suggest("6t``"); len(got) != 0 {
		t.Fatalf("Suggest(6t``) = %v, want empty", got)
	}
}

func TestAvroSuggestResultsAreDictionaryWords(t *testing.T) {
	s := NewAvroSuggester()
	for _, in := range []string{"ami", "amra", "ktha", "bi", "nam", "gan", "desh", "phul", "hat", "pani", "alo"} {
		for _, w := range s.Suggest(in) {
			h, ok := dictionary.Words().NodeFor(w)
			if !ok || !h.Final() {
				t.Errorf("Suggest(%q) returned %q, not a dictionary word", in, w)
			}
		}
	}
}

func TestAvroSuggestWithCacheReturnsSameResult(t *testing.T) {
	s := NewAvroSuggester(WithCache(16))
	first := s.Suggest("ami")
	second := s.Suggest("ami")
	setEquals(t, first, "আমি")
	setEquals(t, second, "আমি")
}

func TestAvroSuggestConcurrentMatchesSequential(t *testing.T) {
	s := NewAvroSuggester()
	inputs := []string{"ami", "amra", "ktha", "nam", "gan", "desh"}

	sequential := make([][]string, len(inputs))
	for i, in := range inputs {
		sequential[i] = s.Suggest(in)
	}

	results := make(chan struct {
		i    int
		want []string
	}, len(inputs))
	for i, in := range inputs {
		go func(i int, in string) {
			results <- struct {
				i    int
				want []string
			}{i, s.Suggest(in)}
		}(i, in)
	}
	for range inputs {
		r := <-results
		setEquals(t, r.want, sequential[r.i]...)
	}
}
