package spell

import (
	"strings"
)

// LookupCompound corrects a whitespace-damaged, noisily misspelled phrase:
// it tokenizes phrase, corrects each token, and considers joining adjacent
// tokens when doing so scores better than correcting them apart — this is
// what repairs missing and spurious spaces, not just misspelled words.
//
// The result always has exactly one element: a single Suggestion whose
// Output is the reconstructed phrase, whose Distance is the sum of the
// per-token distances, and whose Count is the minimum per-token count (a
// conservative estimate of how well-attested the whole phrase is).
//
// When ignoreNonWords is true, tokens that are acronyms (spec.md §4.7: all
// uppercase letters and/or digits, length >= 2) are preserved verbatim in
// their original casing instead of being corrected or joined.
func (idx *Index) LookupCompound(phrase string, maxEditDistance int, ignoreNonWords bool) (Suggestions, error) {
	tokens := tokenize(phrase, ignoreNonWords)
	if len(tokens) == 0 {
		return Suggestions{{Input: phrase, Term: phrase, Output: phrase, Distance: 0, Count: maxInt64}}, nil
	}

	parts := make(Suggestions, 0, len(tokens))
	lastWasJoin := false

	for i, tok := range tokens {
		var current Suggestion
		if tok.ignore {
			current = verbatimSuggestion(tok.text)
		} else {
			current = idx.bestSingleTokenSuggestion(tok.text, maxEditDistance)
		}

		if i > 0 && !lastWasJoin && !tok.ignore && !tokens[i-1].ignore {
			if joined, ok := idx.tryJoin(parts[len(parts)-1], current, maxEditDistance); ok {
				parts[len(parts)-1] = joined
				lastWasJoin = true
				continue
			}
		}
		lastWasJoin = false

		if !tok.ignore && current.Distance != 0 && len([]rune(tok.text)) > 1 {
			current = idx.bestSplitSuggestion(tok.text, current, maxEditDistance)
		}

		parts = append(parts, current)
	}

	var sb strings.Builder
	totalDistance := 0
	minCount := int64(maxInt64)
	for i, p := range parts {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(p.Output)
		totalDistance += p.Distance
		if p.Count < minCount {
			minCount = p.Count
		}
	}

	composed := sb.String()
	result := Suggestion{
		Input:    phrase,
		Term:     composed,
		Output:   composed,
		Distance: totalDistance,
		Count:    minCount,
	}
	return Suggestions{result}, nil
}

// bestSingleTokenSuggestion returns the best Top-verbosity correction for
// tok, or a synthetic unknown suggestion (with the estimated-frequency
// heuristic used when no dictionary match exists at all) if tok has no
// match.
func (idx *Index) bestSingleTokenSuggestion(tok string, maxEditDistance int) Suggestion {
	suggestions, _ := idx.Lookup(tok, Top, EditDistance(maxEditDistance))
	if len(suggestions) > 0 {
		return suggestions[0]
	}
	// No dictionary match at all: Lookup matches on the lowercased token,
	// so the fallback surfaces lowercased too rather than leaking the
	// input's original casing into the output.
	lowered := strings.ToLower(tok)
	return Suggestion{
		Input:    tok,
		Term:     lowered,
		Output:   lowered,
		Distance: maxEditDistance + 1,
		Count:    estimatedFrequency(tok),
	}
}

// estimatedFrequency is the Naive Bayes-style fallback frequency SymSpell
// assigns to a word with no dictionary entry: P = 10 / 10^length, scaled
// to an integer count so it can still be compared against real counts.
func estimatedFrequency(term string) int64 {
	length := len([]rune(term))
	freq := int64(10)
	for i := 0; i < length; i++ {
		freq /= 10
		if freq == 0 {
			return 0
		}
	}
	return freq
}

// tryJoin considers merging the suggestion for the previous token with the
// suggestion for the current token, by looking up their concatenation.
// Per spec.md §4.6 step 3 and §9's "Open question — compound tie
// semantics", the join wins whenever it strictly improves on the summed
// distance, and also wins on an exact distance tie if its count is
// strictly higher than the previous token's — favoring a real compound
// over two short unrelated corrections agreeing by chance. On a distance
// tie with an equal or lower count, the tokens stay apart.
func (idx *Index) tryJoin(prev, current Suggestion, maxEditDistance int) (Suggestion, bool) {
	combined := prev.Input + current.Input
	joinedSuggestions, _ := idx.Lookup(combined, Top, EditDistance(maxEditDistance))
	if len(joinedSuggestions) == 0 {
		return Suggestion{}, false
	}
	joined := joinedSuggestions[0]

	separateDistance := prev.Distance + current.Distance

	// The joined candidate already paid for merging two tokens into one;
	// charge it one extra point of distance to compare fairly against
	// keeping them apart.
	joinedDistancePlusOne := joined.Distance + 1

	better := joinedDistancePlusOne < separateDistance
	tie := joinedDistancePlusOne == separateDistance && joined.Count > prev.Count
	if !better && !tie {
		return Suggestion{}, false
	}

	joined.Distance++
	joined.Input = combined
	return joined, true
}

// bestSplitSuggestion looks for a two-way split of tok (at every internal
// boundary) whose pieces' best corrections, joined with a space, beat
// whatever single-token correction was already found.
func (idx *Index) bestSplitSuggestion(tok string, best Suggestion, maxEditDistance int) Suggestion {
	runes := []rune(tok)
	result := best

	for j := 1; j < len(runes); j++ {
		left := string(runes[:j])
		right := string(runes[j:])

		leftSuggestions, _ := idx.Lookup(left, Top, EditDistance(maxEditDistance))
		if len(leftSuggestions) == 0 {
			continue
		}
		rightSuggestions, _ := idx.Lookup(right, Top, EditDistance(maxEditDistance))
		if len(rightSuggestions) == 0 {
			continue
		}

		splitTerm := leftSuggestions[0].Output + " " + rightSuggestions[0].Output
		splitDistance := Distance(tok, splitTerm, maxEditDistance+1)
		if splitDistance < 0 {
			splitDistance = maxEditDistance + 1
		}

		if splitDistance > result.Distance {
			continue
		}
		if splitDistance == result.Distance && result.Term == best.Term && best.Distance <= result.Distance {
			// No improvement over the already-accepted candidate; keep it.
			continue
		}

		count := leftSuggestions[0].Count
		if rightSuggestions[0].Count < count {
			count = rightSuggestions[0].Count
		}

		candidate := Suggestion{
			Input:    tok,
			Term:     splitTerm,
			Output:   splitTerm,
			Distance: splitDistance,
			Count:    count,
		}

		if splitDistance < result.Distance || (result.Term == tok) {
			result = candidate
		}
	}

	return result
}
