package spell

import (
	"fmt"
	"sort"
	"strings"
)

// Suggestion is a single correction candidate returned from Lookup or
// LookupCompound.
type Suggestion struct {
	// Input is the token the suggestion was produced for.
	Input string
	// Term is the dictionary key that was matched (lowercased).
	Term string
	// Output is the display form of the match: Term's canonical spelling
	// if it has one, otherwise Term itself.
	Output string
	// Distance is the edit distance between Input and Term.
	Distance int
	// Count is the matched term's corpus frequency.
	Count int64
}

func (s Suggestion) String() string {
	return s.Output
}

// Suggestions is a list of Suggestion, sortable per the package's ranking
// rule (see Suggestions.Less).
type Suggestions []Suggestion

// Words returns the display form of every suggestion in order.
func (s Suggestions) Words() []string {
	words := make([]string, 0, len(s))
	for _, suggestion := range s {
		words = append(words, suggestion.Output)
	}
	return words
}

func (s Suggestions) String() string {
	return "[" + strings.Join(s.Words(), ", ") + "]"
}

func (s Suggestions) Len() int      { return len(s) }
func (s Suggestions) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

// Less implements the total ordering suggestions are ranked by: smaller
// distance wins; on a tie, higher count wins; on a further tie, among
// suggestions whose Output differs from their Term (i.e. canonicalized),
// the one whose matched key was textually closer to Input wins. Any
// remaining tie preserves insertion order (sort.Stable is required for
// that guarantee, not plain sort.Sort).
func (s Suggestions) Less(i, j int) bool {
	a, b := s[i], s[j]

	if a.Distance != b.Distance {
		return a.Distance < b.Distance
	}
	if a.Count != b.Count {
		return a.Count > b.Count
	}

	aCanon := a.Output != a.Term
	bCanon := b.Output != b.Term
	if aCanon != bCanon {
		return false
	}
	if aCanon && bCanon {
		aSim := Similarity(Distance(a.Input, a.Term, len(a.Input)+len(a.Term)), len(a.Term))
		bSim := Similarity(Distance(b.Input, b.Term, len(b.Input)+len(b.Term)), len(b.Term))
		if aSim != bSim {
			return aSim > bSim
		}
	}
	return false
}

// Sort ranks suggestions in place per Less, preserving insertion order
// among ties.
func (s Suggestions) Sort() {
	sort.Stable(s)
}

func newWordSuggestion(input, term string, entry wordEntry, distance int) Suggestion {
	output := entry.canonical
	if output == "" {
		output = term
	}
	return Suggestion{
		Input:    input,
		Term:     term,
		Output:   output,
		Distance: distance,
		Count:    entry.count,
	}
}

func unknownSuggestion(input string, maxEditDistance int) Suggestion {
	return Suggestion{
		Input:    input,
		Term:     input,
		Output:   input,
		Distance: maxEditDistance + 1,
		Count:    0,
	}
}

// verbatimSuggestion represents a token that bypasses correction entirely
// (an ignore-pattern match, or a preserved acronym/number in compound
// lookup): distance 0, maximal count so it always wins ranking ties.
func verbatimSuggestion(input string) Suggestion {
	return Suggestion{
		Input:    input,
		Term:     input,
		Output:   input,
		Distance: 0,
		Count:    maxInt64,
	}
}

// debugString renders every field of a Suggestion, unlike the Stringer
// above, which shows only Output. Nothing in the package calls it.
func (s Suggestion) debugString() string {
	return fmt.Sprintf("%s(term=%s,output=%s,dist=%d,count=%d)", s.Input, s.Term, s.Output, s.Distance, s.Count)
}
