package spell

import (
	"fmt"
	"io"
	"io/ioutil"

	"github.com/tidwall/gjson"
)

// LoadCanonicalOverrides reads a JSON document of the form
// {"teh": "the", "recieve": "receive"} mapping a misspelled or variant
// term to the canonical spelling Suggestion.Output should report for it,
// and returns it as a plain map.
//
// This is parsed with github.com/tidwall/gjson rather than
// encoding/json: the source is typically hand-maintained and often
// embedded inside a larger configuration document, and gjson lets
// LoadCanonicalOverridesAtPath below pull just the "canonical" object
// out of such a document via a path expression instead of needing its own
// struct shape.
func LoadCanonicalOverrides(r io.Reader) (map[string]string, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parseCanonicalOverrides(data, "@this")
}

// LoadCanonicalOverridesAtPath is LoadCanonicalOverrides, but first
// navigates to path within data (gjson path syntax, e.g. "spelling.canonical")
// before reading the term->canonical pairs from the object found there.
func LoadCanonicalOverridesAtPath(r io.Reader, path string) (map[string]string, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parseCanonicalOverrides(data, path)
}

func parseCanonicalOverrides(data []byte, path string) (map[string]string, error) {
	result := gjson.GetBytes(data, path)
	if !result.Exists() {
		return nil, fmt.Errorf("spell: no value at path %q", path)
	}
	if !result.IsObject() {
		return nil, fmt.Errorf("spell: value at path %q is not an object", path)
	}

	overrides := make(map[string]string)
	var parseErr error
	result.ForEach(func(key, value gjson.Result) bool {
		if value.Type != gjson.String {
			parseErr = fmt.Errorf("spell: canonical override for %q must be a string", key.String())
			return false
		}
		overrides[normalizeForLookup(key.String())] = value.String()
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return overrides, nil
}

// ApplyCanonicalOverrides sets the canonical spelling for every key of
// overrides that already has a dictionary entry. Keys with no matching
// entry are silently ignored: an override is a refinement of an existing
// term, not a way to introduce a new one (use CreateDictionaryEntry for
// that). Applying the same key twice overwrites the prior canonical form
// (spec.md §9 "Open question — canonical collision": last write wins).
func (idx *Index) ApplyCanonicalOverrides(overrides map[string]string) int {
	applied := 0
	for term, canonical := range overrides {
		key := normalizeForLookup(term)
		entry, found := idx.words[key]
		if !found {
			continue
		}
		entry.canonical = canonical
		idx.words[key] = entry
		applied++
	}
	return applied
}
