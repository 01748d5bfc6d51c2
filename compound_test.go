package spell

import (
	"strings"
	"testing"
)

func newCompoundTestIndex(t *testing.T) *Index {
	t.Helper()
	idx, err := NewIndex(0, DefaultMaxEditDistance, DefaultPrefixLength, DefaultCountThreshold)
	if err != nil {
		t.Fatalf("NewIndex: %v", err)
	}
	words := map[string]int64{
		"where": 1000, "is": 1000, "the": 1000, "love": 1000,
		"he": 1000, "had": 1000, "dated": 10, "for": 1000, "much": 1000,
		"of": 1000, "past": 1000, "who": 1000, "couldn't": 100,
		"read": 1000, "in": 1000, "sixth": 100, "grade": 100, "and": 1000,
		"inspired": 10, "him": 1000,
	}
	for w, c := range words {
		idx.CreateDictionaryEntry(w, c, "")
	}
	return idx
}

func TestLookupCompoundJoinsSplitWords(t *testing.T) {
	idx := newCompoundTestIndex(t)
	suggestions, err := idx.LookupCompound("whereis th elove", 2, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(suggestions) != 1 {
		t.Fatalf("LookupCompound = %v, want exactly 1 suggestion", suggestions)
	}
	got := suggestions[0].Output
	want := "where is the love"
	if got != want {
		t.Errorf("LookupCompound(%q) = %q, want %q", "whereis th elove", got, want)
	}
}

func TestLookupCompoundPreservesAcronymsAndNumbers(t *testing.T) {
	idx := newCompoundTestIndex(t)
	idx.CreateDictionaryEntry("the", 1000, "")
	idx.CreateDictionaryEntry("big", 1000, "")
	idx.CreateDictionaryEntry("fun", 1000, "")

	suggestions, err := idx.LookupCompound("the bigjest PLETY of 12 funn", 2, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(suggestions) != 1 {
		t.Fatalf("LookupCompound = %v, want exactly 1 suggestion", suggestions)
	}
	output := suggestions[0].Output
	if !containsAll(output, []string{"PLETY", "12"}) {
		t.Errorf("LookupCompound(ignoreNonWords) = %q, want PLETY and 12 preserved verbatim", output)
	}
}

func TestLookupCompoundEmptyPhrase(t *testing.T) {
	idx := newCompoundTestIndex(t)
	suggestions, err := idx.LookupCompound("   ", 2, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(suggestions) != 1 || suggestions[0].Distance != 0 {
		t.Fatalf("LookupCompound empty phrase = %v", suggestions)
	}
}

func containsAll(s string, substrs []string) bool {
	for _, sub := range substrs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
