package spell

import (
	"errors"
	"regexp"
	"strings"
)

// Verbosity controls how many suggestions Lookup returns.
type Verbosity int

const (
	// Top returns the single best suggestion: the highest-frequency term
	// among those at the smallest edit distance found.
	Top Verbosity = iota
	// Closest returns every suggestion at the smallest edit distance
	// found, ordered by frequency.
	Closest
	// All returns every suggestion within the edit-distance budget,
	// ordered by distance then frequency. Slower: no early termination.
	All
)

type lookupOptions struct {
	maxEditDistance    int
	maxEditDistanceSet bool
	includeUnknown     bool
	ignoreToken        *regexp.Regexp
	distanceFunc       DistanceFunc
}

// LookupOption configures a call to Lookup.
type LookupOption func(*lookupOptions) error

// EditDistance caps the edit distance Lookup will consider. It must not
// exceed the Index's MaxDictionaryEditDistance; if omitted, Lookup uses
// MaxDictionaryEditDistance itself.
func EditDistance(maxEditDistance int) LookupOption {
	return func(o *lookupOptions) error {
		if maxEditDistance < 0 {
			return errors.New("spell: maxEditDistance must be >= 0")
		}
		o.maxEditDistance = maxEditDistance
		o.maxEditDistanceSet = true
		return nil
	}
}

// IncludeUnknown makes Lookup return a synthetic suggestion (Term ==
// Input, Distance == maxEditDistance+1, Count == 0) when no dictionary
// match is found, instead of an empty result.
func IncludeUnknown() LookupOption {
	return func(o *lookupOptions) error {
		o.includeUnknown = true
		return nil
	}
}

// IgnoreToken makes Lookup pass inputs matching pattern straight through
// as a verbatim suggestion (distance 0, maximal count), bypassing
// correction entirely. Useful for tokens the caller already trusts, e.g.
// identifiers or codes matched upstream.
func IgnoreToken(pattern *regexp.Regexp) LookupOption {
	return func(o *lookupOptions) error {
		o.ignoreToken = pattern
		return nil
	}
}

// WithDistanceFunc overrides the distance metric Lookup verifies
// candidates with. The default is Distance (this package's OSA
// implementation); github.com/eskriett/strmet's DamerauLevenshtein or
// Levenshtein are drop-in alternatives.
func WithDistanceFunc(f DistanceFunc) LookupOption {
	return func(o *lookupOptions) error {
		if f == nil {
			return errors.New("spell: distance func must not be nil")
		}
		o.distanceFunc = f
		return nil
	}
}

// Lookup returns ranked correction candidates for input from idx's
// dictionary, as many as verbosity allows. Unless EditDistance narrows it,
// the search uses the index's full edit-distance budget.
func (idx *Index) Lookup(input string, verbosity Verbosity, opts ...LookupOption) (Suggestions, error) {
	o := &lookupOptions{
		maxEditDistance: idx.maxDictionaryEditDistance,
		distanceFunc:    Distance,
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	if o.maxEditDistanceSet && o.maxEditDistance > idx.maxDictionaryEditDistance {
		return nil, errors.New("spell: maxEditDistance exceeds the index's maxDictionaryEditDistance")
	}

	if o.ignoreToken != nil && o.ignoreToken.MatchString(input) {
		return Suggestions{verbatimSuggestion(input)}, nil
	}

	return idx.lookup(strings.ToLower(input), verbosity, o.maxEditDistance, o.includeUnknown, o.distanceFunc)
}

func (idx *Index) lookup(input string, verbosity Verbosity, maxEditDistance int, includeUnknown bool, distanceFn DistanceFunc) (Suggestions, error) {
	inputRunes := []rune(input)
	inputLen := len(inputRunes)

	var suggestions Suggestions

	if inputLen-maxEditDistance > idx.maxLength {
		return finishLookup(suggestions, input, maxEditDistance, includeUnknown), nil
	}

	if entry, found := idx.words[input]; found {
		suggestions = append(suggestions, newWordSuggestion(input, input, entry, 0))
		if verbosity != All {
			return finishLookup(suggestions, input, maxEditDistance, includeUnknown), nil
		}
	}

	if maxEditDistance == 0 {
		return finishLookup(suggestions, input, maxEditDistance, includeUnknown), nil
	}

	consideredDeletes := make(map[string]struct{})
	consideredSuggestions := make(map[string]struct{})
	consideredSuggestions[input] = struct{}{}

	maxEditDistance2 := maxEditDistance

	inputPrefixLen := inputLen
	var candidates []string
	if inputPrefixLen > idx.prefixLength {
		inputPrefixLen = idx.prefixLength
		candidates = append(candidates, string(inputRunes[:inputPrefixLen]))
	} else {
		candidates = append(candidates, input)
	}

	for ci := 0; ci < len(candidates); ci++ {
		candidate := candidates[ci]
		candidateLen := len([]rune(candidate))
		lengthDiff := inputPrefixLen - candidateLen

		if lengthDiff > maxEditDistance2 {
			if verbosity == All {
				continue
			}
			break
		}

		if sourceTerms, found := idx.deletes[candidate]; found {
			for _, term := range sourceTerms {
				if term == input {
					continue
				}
				termLen := len([]rune(term))

				if absInt(termLen-inputLen) > maxEditDistance2 ||
					termLen < candidateLen ||
					(termLen == candidateLen && term != candidate) {
					continue
				}

				termPrefixLen := minInt(termLen, idx.prefixLength)
				if termPrefixLen > inputPrefixLen && (termPrefixLen-candidateLen) > maxEditDistance2 {
					continue
				}

				distance := 0
				switch {
				case candidateLen == 0:
					distance = maxInt(inputLen, termLen)
					if distance > maxEditDistance2 || !markConsidered(consideredSuggestions, term) {
						continue
					}
				case termLen == 1:
					if runeIn(inputRunes, []rune(term)[0]) {
						distance = inputLen - 1
					} else {
						distance = inputLen
					}
					if distance > maxEditDistance2 || !markConsidered(consideredSuggestions, term) {
						continue
					}
				default:
					// Cheap pre-filter: when the candidate's length is
					// exactly prefixLength-maxEditDistance, a trailing-rune
					// mismatch rules out a match without running the full
					// distance function.
					if idx.prefixLength-maxEditDistance == candidateLen {
						minLen := minInt(inputLen, termLen) - idx.prefixLength
						if !suffixesAgree(inputRunes, []rune(term), minLen) {
							continue
						}
					}
					if verbosity != All && !deleteInTermPrefix(candidate, candidateLen, term, termLen, idx.prefixLength) {
						continue
					}
					if !markConsidered(consideredSuggestions, term) {
						continue
					}
					distance = distanceFn(input, term, maxEditDistance2)
					if distance < 0 {
						continue
					}
				}

				if distance > maxEditDistance2 {
					continue
				}

				entry := idx.words[term]
				suggestion := newWordSuggestion(input, term, entry, distance)

				if len(suggestions) > 0 {
					switch verbosity {
					case Closest:
						if distance < maxEditDistance2 {
							suggestions = suggestions[:0]
						}
					case Top:
						if distance < maxEditDistance2 || entry.count > suggestions[0].Count {
							maxEditDistance2 = distance
							suggestions[0] = suggestion
						}
						continue
					}
				}

				if verbosity != All {
					maxEditDistance2 = distance
				}
				suggestions = append(suggestions, suggestion)
			}
		}

		if lengthDiff < maxEditDistance && candidateLen <= idx.prefixLength {
			if verbosity != All && lengthDiff >= maxEditDistance2 {
				continue
			}
			candRunes := []rune(candidate)
			for i := range candRunes {
				deleted := string(candRunes[:i]) + string(candRunes[i+1:])
				if _, seen := consideredDeletes[deleted]; !seen {
					consideredDeletes[deleted] = struct{}{}
					candidates = append(candidates, deleted)
				}
			}
		}
	}

	if len(suggestions) > 1 {
		suggestions.Sort()
	}

	return finishLookup(suggestions, input, maxEditDistance, includeUnknown), nil
}

func finishLookup(suggestions Suggestions, input string, maxEditDistance int, includeUnknown bool) Suggestions {
	if includeUnknown && len(suggestions) == 0 {
		return Suggestions{unknownSuggestion(input, maxEditDistance)}
	}
	return suggestions
}

func markConsidered(set map[string]struct{}, key string) bool {
	if _, found := set[key]; found {
		return false
	}
	set[key] = struct{}{}
	return true
}

func runeIn(haystack []rune, needle rune) bool {
	for _, r := range haystack {
		if r == needle {
			return true
		}
	}
	return false
}

// suffixesAgree implements the symmetry check used when the candidate's
// length sits exactly at prefixLength-maxEditDistance: rather than run
// the full distance function, compare the trailing minLen runes of input
// and term (and their near-neighbors), which is enough to rule out a
// match cheaply.
func suffixesAgree(input, term []rune, minLen int) bool {
	if minLen > 1 && string(input[len(input)-minLen:]) != string(term[len(term)-minLen:]) {
		return false
	}
	if minLen > 0 &&
		input[len(input)-minLen] != term[len(term)-minLen] &&
		(input[len(input)-minLen-1] != term[len(term)-minLen] ||
			input[len(input)-minLen] != term[len(term)-minLen-1]) {
		return false
	}
	return true
}

// deleteInTermPrefix reports whether every rune of delete appears within
// term's leading prefixLength runes, each at or after the position where
// the previous rune matched (repeated runes may match the same position,
// so this is looser than a subsequence test). It is a cheap
// necessary-condition filter applied before the real distance function
// runs, to avoid computing it for candidates that can't possibly match.
func deleteInTermPrefix(deleteStr string, deleteLen int, term string, termLen, prefixLength int) bool {
	if deleteLen == 0 {
		return true
	}
	if prefixLength < termLen {
		termLen = prefixLength
	}
	termRunes := []rune(term)
	deleteRunes := []rune(deleteStr)

	j := 0
	for i := 0; i < deleteLen; i++ {
		d := deleteRunes[i]
		for j < termLen && d != termRunes[j] {
			j++
		}
		if j == termLen {
			return false
		}
	}
	return true
}
