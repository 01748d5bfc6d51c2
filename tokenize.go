package spell

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/eskriett/confusables"
)

// token is one piece of a phrase split out by tokenize.
type token struct {
	text string
	// ignore is set when the token should be passed through LookupCompound
	// untouched: an acronym or a run of digits (spec.md §4.7).
	ignore bool
}

// wordPattern matches a run of letters, marks and digits, optionally
// continued across a single apostrophe (so "don't" is one token, not
// three). This mirrors the teacher's parseWords regex, generalized from
// ASCII letters to \p{L}\p{M}\p{N} so it holds for non-Latin scripts too.
var wordPattern = regexp.MustCompile(`[\p{L}\p{M}\p{N}]+('[\p{L}\p{M}\p{N}]+)*`)

// tokenize splits phrase into its word-character runs, discarding
// whitespace and punctuation between them. When ignoreNonWords is true,
// any token classified as an acronym (isAcronym) is flagged with
// token.ignore so callers can pass it through uncorrected.
func tokenize(phrase string, ignoreNonWords bool) []token {
	matches := wordPattern.FindAllString(phrase, -1)
	tokens := make([]token, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, token{
			text:   m,
			ignore: ignoreNonWords && isAcronym(m),
		})
	}
	return tokens
}

// isAcronym reports whether term looks like an acronym or code rather
// than a misspelled word: every rune is an uppercase letter or a digit,
// at least one is a digit or uppercase letter, and the term is at least
// two runes long. A rune that is neither is first normalized to its
// skeleton form via github.com/eskriett/confusables, so a lookalike from
// another script still counts when its skeleton is uppercase letters or
// digits. Runes that already pass are not folded, since the skeleton maps
// some Latin capitals and digits (e.g. "I", "1") onto a lowercase "l".
func isAcronym(term string) bool {
	runes := []rune(term)
	if len(runes) < 2 {
		return false
	}
	for _, r := range runes {
		if unicode.IsDigit(r) || unicode.IsUpper(r) {
			continue
		}
		folded := confusables.Skeleton(string(r))
		if folded == "" {
			return false
		}
		for _, f := range folded {
			if !unicode.IsDigit(f) && !unicode.IsUpper(f) {
				return false
			}
		}
	}
	return true
}

func allUpper(runes []rune) bool {
	for _, r := range runes {
		if unicode.IsLetter(r) && !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

// normalizeForLookup lowercases and trims term the same way
// CreateDictionaryEntry and Lookup do, exposed so dictionary loaders can
// pre-normalize keys before counting duplicates themselves.
func normalizeForLookup(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}
