package spell

import "testing"

func TestSuggestionsSortByDistanceThenCount(t *testing.T) {
	s := Suggestions{
		{Term: "far", Output: "far", Distance: 2, Count: 100},
		{Term: "close", Output: "close", Distance: 1, Count: 1},
		{Term: "tied-low", Output: "tied-low", Distance: 1, Count: 5},
		{Term: "tied-high", Output: "tied-high", Distance: 1, Count: 50},
	}
	s.Sort()

	want := []string{"tied-high", "tied-low", "close", "far"}
	for i, term := range want {
		if s[i].Term != term {
			t.Fatalf("position %d: got %q, want %q (full order: %v)", i, s[i].Term, term, s.Words())
		}
	}
}

func TestSuggestionsWordsUsesOutputNotTerm(t *testing.T) {
	s := Suggestions{{Term: "teh", Output: "the", Distance: 1, Count: 1}}
	words := s.Words()
	if len(words) != 1 || words[0] != "the" {
		t.Fatalf("Words() = %v, want [the]", words)
	}
}

func TestUnknownSuggestion(t *testing.T) {
	u := unknownSuggestion("xyzzy", 2)
	if u.Term != "xyzzy" || u.Output != "xyzzy" || u.Distance != 3 || u.Count != 0 {
		t.Fatalf("unknownSuggestion = %+v", u)
	}
}

func TestVerbatimSuggestionWins(t *testing.T) {
	v := verbatimSuggestion("NASA")
	if v.Distance != 0 || v.Count != maxInt64 {
		t.Fatalf("verbatimSuggestion = %+v", v)
	}
}
