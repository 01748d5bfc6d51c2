package spell

import (
	"errors"
	"strings"

	yaml "gopkg.in/yaml.v2"
)

const (
	// DefaultMaxEditDistance is the conventional delete budget to pass to
	// NewIndex. It is not applied implicitly: a zero
	// Config.MaxDictionaryEditDistance builds an index with budget zero.
	DefaultMaxEditDistance = 2
	// DefaultPrefixLength is the teacher's (and symspell's) conventional
	// window size: large enough to disambiguate most English words, small
	// enough to keep the delete index compact.
	DefaultPrefixLength = 7
	// DefaultCountThreshold admits every term on first sight.
	DefaultCountThreshold = 1
)

// wordEntry is the value stored per dictionary key.
type wordEntry struct {
	count     int64
	canonical string
}

// Index is the symmetric-delete dictionary and delete-neighborhood index.
// It is owned exclusively by its holder: readers and writers must not run
// concurrently against the same Index without external synchronization
// (spec.md §5).
type Index struct {
	initialCapacity           int
	maxDictionaryEditDistance int
	prefixLength              int
	countThreshold            int64

	words               map[string]wordEntry
	belowThresholdWords map[string]int64
	deletes             map[string][]string
	deleteSeen          map[string]map[string]struct{} // dedup per delete key, not retained in deletes' ordering

	maxLength int
	bigrams   map[string]int64 // reserved for future use, per spec.md §3
}

// Config describes the tuning parameters an Index is constructed from. It
// is the YAML-loadable form of NewIndex's arguments (spec.md §6
// "Construction parameters").
type Config struct {
	InitialCapacity           int   `yaml:"initial_capacity"`
	MaxDictionaryEditDistance int   `yaml:"max_dictionary_edit_distance"`
	PrefixLength              int   `yaml:"prefix_length"`
	CountThreshold            int64 `yaml:"count_threshold"`
}

// LoadConfig parses a YAML document (see Config's field tags for key
// names) into a Config. It does not validate the result; pass it to
// NewIndexFromConfig, which does.
func LoadConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewIndex constructs an Index. initialCapacity is a sizing hint for the
// word map. maxDictionaryEditDistance must be >= 0. prefixLength must be
// >= 1 and >= maxDictionaryEditDistance. countThreshold must be >= 0.
func NewIndex(initialCapacity, maxDictionaryEditDistance, prefixLength int, countThreshold int64) (*Index, error) {
	if initialCapacity < 0 {
		return nil, errors.New("spell: initialCapacity must be >= 0")
	}
	if maxDictionaryEditDistance < 0 {
		return nil, errors.New("spell: maxDictionaryEditDistance must be >= 0")
	}
	if prefixLength < 1 {
		return nil, errors.New("spell: prefixLength must be >= 1")
	}
	if prefixLength < maxDictionaryEditDistance {
		return nil, errors.New("spell: prefixLength must be >= maxDictionaryEditDistance")
	}
	if countThreshold < 0 {
		return nil, errors.New("spell: countThreshold must be >= 0")
	}

	return &Index{
		initialCapacity:           initialCapacity,
		maxDictionaryEditDistance: maxDictionaryEditDistance,
		prefixLength:              prefixLength,
		countThreshold:            countThreshold,
		words:                     make(map[string]wordEntry, initialCapacity),
		belowThresholdWords:       make(map[string]int64),
		deletes:                   make(map[string][]string),
		deleteSeen:                make(map[string]map[string]struct{}),
		bigrams:                   make(map[string]int64),
	}, nil
}

// NewIndexFromConfig validates cfg and constructs an Index from it.
func NewIndexFromConfig(cfg Config) (*Index, error) {
	return NewIndex(cfg.InitialCapacity, cfg.MaxDictionaryEditDistance, cfg.PrefixLength, cfg.CountThreshold)
}

// WordCount returns the number of terms that have been promoted into the
// active dictionary (i.e. have reached countThreshold).
func (idx *Index) WordCount() int {
	return len(idx.words)
}

// MaxDictionaryEditDistance returns the delete budget the index was built
// with; Lookup's maxEditDistance option cannot exceed it.
func (idx *Index) MaxDictionaryEditDistance() int {
	return idx.maxDictionaryEditDistance
}

// CreateDictionaryEntry inserts or updates the dictionary entry for term,
// lowercasing it first. count is saturating-added to any existing entry.
// canonical, if non-empty, overwrites any previously stored canonical form
// (last write wins, spec.md §9 "Open question — canonical collision").
// Returns true iff a brand-new dictionary key was created (i.e. not just a
// count bump and not merely accumulated below countThreshold).
func (idx *Index) CreateDictionaryEntry(term string, count int64, canonical string) bool {
	key := strings.ToLower(term)

	if entry, found := idx.words[key]; found {
		entry.count = saturatingAdd(entry.count, count)
		if canonical != "" {
			entry.canonical = canonical
		}
		idx.words[key] = entry
		return false
	}

	if idx.countThreshold > 1 {
		accumulated := saturatingAdd(idx.belowThresholdWords[key], count)
		if accumulated < idx.countThreshold {
			idx.belowThresholdWords[key] = accumulated
			return false
		}
		delete(idx.belowThresholdWords, key)
		count = accumulated
	} else if count < idx.countThreshold {
		idx.belowThresholdWords[key] = saturatingAdd(idx.belowThresholdWords[key], count)
		return false
	}

	idx.words[key] = wordEntry{count: count, canonical: canonical}

	if n := len([]rune(key)); n > idx.maxLength {
		idx.maxLength = n
	}

	for deleteKey := range editsPrefix(key, idx.maxDictionaryEditDistance, idx.prefixLength) {
		idx.addDelete(deleteKey, key)
	}

	return true
}

func (idx *Index) addDelete(deleteKey, term string) {
	seen, ok := idx.deleteSeen[deleteKey]
	if !ok {
		seen = make(map[string]struct{})
		idx.deleteSeen[deleteKey] = seen
	}
	if _, dup := seen[term]; dup {
		return
	}
	seen[term] = struct{}{}
	idx.deletes[deleteKey] = append(idx.deletes[deleteKey], term)
}
