package spell

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/eskriett/strmet"
)

func newTestIndex(t *testing.T, entries map[string]int64) *Index {
	t.Helper()
	idx, err := NewIndex(len(entries), DefaultMaxEditDistance, DefaultPrefixLength, DefaultCountThreshold)
	if err != nil {
		t.Fatalf("NewIndex: %v", err)
	}
	for term, count := range entries {
		idx.CreateDictionaryEntry(term, count, "")
	}
	return idx
}

func ExampleIndex_Lookup() {
	idx, _ := NewIndex(1, DefaultMaxEditDistance, DefaultPrefixLength, DefaultCountThreshold)
	idx.CreateDictionaryEntry("example", 1, "")

	suggestions, _ := idx.Lookup("eample", Top)
	fmt.Println(suggestions)
	// Output:
	// [example]
}

func ExampleIndex_Lookup_editDistance() {
	idx, _ := NewIndex(1, DefaultMaxEditDistance, DefaultPrefixLength, DefaultCountThreshold)
	idx.CreateDictionaryEntry("example", 1, "")

	suggestions, _ := idx.Lookup("eample", Top, EditDistance(0))
	fmt.Println(len(suggestions))
	// Output:
	// 0
}

func TestLookupExactMatch(t *testing.T) {
	idx := newTestIndex(t, map[string]int64{"example": 10})
	suggestions, err := idx.Lookup("example", Top)
	if err != nil {
		t.Fatal(err)
	}
	if len(suggestions) != 1 || suggestions[0].Distance != 0 {
		t.Fatalf("Lookup exact match = %+v", suggestions)
	}
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	idx := newTestIndex(t, map[string]int64{"example": 10})
	suggestions, err := idx.Lookup("EXAMPLE", Top)
	if err != nil {
		t.Fatal(err)
	}
	if len(suggestions) != 1 || suggestions[0].Term != "example" {
		t.Fatalf("Lookup case-insensitive = %+v", suggestions)
	}
}

func TestLookupTopPrefersHigherFrequencyAtSameDistance(t *testing.T) {
	idx := newTestIndex(t, map[string]int64{
		"cat": 1000,
		"car": 1,
	})
	suggestions, err := idx.Lookup("cay", Top)
	if err != nil {
		t.Fatal(err)
	}
	if len(suggestions) != 1 || suggestions[0].Term != "cat" {
		t.Fatalf("Lookup Top = %+v, want cat", suggestions)
	}
}

func TestLookupClosestReturnsAllAtMinDistance(t *testing.T) {
	idx := newTestIndex(t, map[string]int64{
		"cat": 5,
		"car": 5,
		"cats": 1, // distance 2 from "cay", should not appear
	})
	suggestions, err := idx.Lookup("cay", Closest)
	if err != nil {
		t.Fatal(err)
	}
	if len(suggestions) != 2 {
		t.Fatalf("Lookup Closest = %+v, want 2 suggestions at distance 1", suggestions)
	}
	for _, sg := range suggestions {
		if sg.Distance != 1 {
			t.Fatalf("Lookup Closest returned non-minimal distance: %+v", sg)
		}
	}
}

func TestLookupNoMatchReturnsEmpty(t *testing.T) {
	idx := newTestIndex(t, map[string]int64{"example": 1})
	suggestions, err := idx.Lookup("zzzzzzzzzzzz", Top)
	if err != nil {
		t.Fatal(err)
	}
	if len(suggestions) != 0 {
		t.Fatalf("Lookup no match = %+v, want empty", suggestions)
	}
}

func TestLookupIncludeUnknown(t *testing.T) {
	idx := newTestIndex(t, map[string]int64{"example": 1})
	suggestions, err := idx.Lookup("zzzzzzzzzzzz", Top, IncludeUnknown())
	if err != nil {
		t.Fatal(err)
	}
	if len(suggestions) != 1 || suggestions[0].Term != "zzzzzzzzzzzz" || suggestions[0].Count != 0 {
		t.Fatalf("Lookup IncludeUnknown = %+v", suggestions)
	}
}

func TestLookupIgnoreToken(t *testing.T) {
	idx := newTestIndex(t, map[string]int64{"example": 1})
	suggestions, err := idx.Lookup("XK47", Top, IgnoreToken(regexp.MustCompile(`^[A-Z0-9]+$`)))
	if err != nil {
		t.Fatal(err)
	}
	if len(suggestions) != 1 || suggestions[0].Term != "XK47" || suggestions[0].Distance != 0 {
		t.Fatalf("Lookup IgnoreToken = %+v", suggestions)
	}
}

func TestLookupRejectsEditDistanceAboveIndexBudget(t *testing.T) {
	idx := newTestIndex(t, map[string]int64{"example": 1})
	_, err := idx.Lookup("eample", Top, EditDistance(idx.MaxDictionaryEditDistance()+1))
	if err == nil {
		t.Fatal("expected an error requesting an edit distance above the index budget")
	}
}

func TestLookupCanonicalOutput(t *testing.T) {
	idx := newTestIndex(t, map[string]int64{})
	idx.CreateDictionaryEntry("teh", 5, "the")
	suggestions, err := idx.Lookup("teh", Top)
	if err != nil {
		t.Fatal(err)
	}
	if len(suggestions) != 1 || suggestions[0].Output != "the" || suggestions[0].Term != "teh" {
		t.Fatalf("Lookup canonical output = %+v", suggestions)
	}
}

func TestLookupWithDistanceFuncUsesStrmet(t *testing.T) {
	idx := newTestIndex(t, map[string]int64{"example": 10})

	suggestions, err := idx.Lookup("eample", Top, WithDistanceFunc(strmet.DamerauLevenshtein))
	if err != nil {
		t.Fatal(err)
	}
	if len(suggestions) != 1 || suggestions[0].Term != "example" || suggestions[0].Distance != 1 {
		t.Fatalf("Lookup with strmet.DamerauLevenshtein = %+v", suggestions)
	}

	suggestions, err = idx.Lookup("eample", Top, WithDistanceFunc(strmet.Levenshtein))
	if err != nil {
		t.Fatal(err)
	}
	if len(suggestions) != 1 || suggestions[0].Term != "example" || suggestions[0].Distance != 1 {
		t.Fatalf("Lookup with strmet.Levenshtein = %+v", suggestions)
	}
}

func TestLookupWithDistanceFuncRejectsNil(t *testing.T) {
	idx := newTestIndex(t, map[string]int64{"example": 1})
	_, err := idx.Lookup("eample", Top, WithDistanceFunc(nil))
	if err == nil {
		t.Fatal("expected an error for a nil distance func")
	}
}

// spec.md §8's literal small-dictionary scenarios, reproduced verbatim.

func TestLookupSharedPrefixCounts(t *testing.T) {
	idx := newTestIndex(t, map[string]int64{"pipe": 5, "pips": 10})
	suggestions, err := idx.Lookup("pip", All, EditDistance(1))
	if err != nil {
		t.Fatal(err)
	}
	if len(suggestions) != 2 {
		t.Fatalf("lookup(pip, ALL, 1) = %v, want 2 suggestions", suggestions)
	}
	if suggestions[0].Term != "pips" || suggestions[0].Count != 10 || suggestions[0].Distance != 1 {
		t.Fatalf("suggestion 0 = %+v, want pips(count=10,d=1)", suggestions[0])
	}
	if suggestions[1].Term != "pipe" || suggestions[1].Count != 5 || suggestions[1].Distance != 1 {
		t.Fatalf("suggestion 1 = %+v, want pipe(count=5,d=1)", suggestions[1])
	}
}

func TestLookupFrequencyWinsOverTie(t *testing.T) {
	idx := newTestIndex(t, map[string]int64{"steama": 4, "steamb": 6, "steamc": 2})
	suggestions, err := idx.Lookup("stream", Top, EditDistance(2))
	if err != nil {
		t.Fatal(err)
	}
	if len(suggestions) != 1 || suggestions[0].Term != "steamb" || suggestions[0].Count != 6 {
		t.Fatalf("lookup(stream, TOP, 2) = %v, want [steamb(count=6)]", suggestions)
	}
}

func TestLookupCountThresholdSuppressesLowFrequency(t *testing.T) {
	idx, err := NewIndex(0, DefaultMaxEditDistance, DefaultPrefixLength, 10)
	if err != nil {
		t.Fatal(err)
	}
	idx.CreateDictionaryEntry("pawn", 1, "")
	suggestions, err := idx.Lookup("pawn", Top, EditDistance(0))
	if err != nil {
		t.Fatal(err)
	}
	if len(suggestions) != 0 {
		t.Fatalf("lookup(pawn, TOP, 0) = %v, want []", suggestions)
	}

	idx.CreateDictionaryEntry("flame", 20, "")
	idx.CreateDictionaryEntry("flam", 1, "")
	suggestions, err = idx.Lookup("flam", Top, EditDistance(0))
	if err != nil {
		t.Fatal(err)
	}
	if len(suggestions) != 0 {
		t.Fatalf("lookup(flam, TOP, 0) = %v, want []", suggestions)
	}
}

func TestLookupAllOrdersByDistanceThenCount(t *testing.T) {
	idx := newTestIndex(t, map[string]int64{
		"cat":  5,
		"car":  5,
		"cats": 100,
	})
	suggestions, err := idx.Lookup("cay", All)
	if err != nil {
		t.Fatal(err)
	}
	if len(suggestions) < 2 {
		t.Fatalf("Lookup All = %+v, want >= 2", suggestions)
	}
	for i := 1; i < len(suggestions); i++ {
		if suggestions[i-1].Distance > suggestions[i].Distance {
			t.Fatalf("Lookup All not sorted by distance: %+v", suggestions)
		}
		if suggestions[i-1].Distance == suggestions[i].Distance && suggestions[i-1].Count < suggestions[i].Count {
			t.Fatalf("Lookup All not sorted by count within a distance: %+v", suggestions)
		}
	}
}
