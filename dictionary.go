package spell

import (
	"bufio"
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// DictionaryIterator yields successive (term, count, canonical) triples
// for LoadDictionary to insert. Next returns ok == false once exhausted;
// canonical may be empty when the source has no canonical-spelling column.
type DictionaryIterator interface {
	Next() (term string, count int64, canonical string, ok bool)
	Err() error
}

// LoadStats summarizes the result of a LoadDictionary call, replacing the
// progress logging a service-oriented loader would otherwise emit: callers
// that want visibility log LoadStats themselves, this package stays
// silent (see SPEC_FULL.md §2.4).
type LoadStats struct {
	// LinesRead is the number of records the iterator produced, valid or not.
	LinesRead int
	// EntriesCreated is the number of brand-new dictionary keys inserted.
	EntriesCreated int
	// EntriesMerged is the number of records that bumped an existing
	// entry's count instead of creating a new one.
	EntriesMerged int
	// Skipped is the number of records the iterator produced with an empty
	// term. Lines the iterators themselves discard as malformed (too few
	// fields, an unparseable count) never reach LoadDictionary and are not
	// counted here or in LinesRead.
	Skipped int
}

// LoadDictionary drains iter, inserting every entry via
// CreateDictionaryEntry.
func (idx *Index) LoadDictionary(iter DictionaryIterator) (LoadStats, error) {
	var stats LoadStats
	for {
		term, count, canonical, ok := iter.Next()
		if !ok {
			break
		}
		stats.LinesRead++
		if term == "" {
			stats.Skipped++
			continue
		}
		if idx.CreateDictionaryEntry(term, count, canonical) {
			stats.EntriesCreated++
		} else {
			stats.EntriesMerged++
		}
	}
	if err := iter.Err(); err != nil {
		return stats, err
	}
	return stats, nil
}

// spaceDelimitedIterator reads "term count" pairs, one per line, in the
// layout SymSpell's frequency_dictionary_en_82_765.txt uses.
type spaceDelimitedIterator struct {
	scanner        lineScanner
	termIndex      int
	countIndex     int
	canonicalIndex int
	err            error
}

// lineScanner is the minimal surface of bufio.Scanner this package
// depends on, so tests can supply a fake without constructing a real
// io.Reader pipeline.
type lineScanner interface {
	Scan() bool
	Text() string
	Err() error
}

// NewSpaceDelimitedIterator builds a DictionaryIterator over lines of the
// form "<term> <count>" (column order configurable via termIndex/countIndex),
// reading from r via bufio.Scanner. canonicalIndex names the column holding
// the term's canonical spelling, e.g. the "travelling 6271787 traveling"
// layout (spec.md §3); pass a negative value (-1) when the source has no
// canonical column.
func NewSpaceDelimitedIterator(r io.Reader, termIndex, countIndex, canonicalIndex int) DictionaryIterator {
	return &spaceDelimitedIterator{
		scanner:        newBufioLineScanner(r),
		termIndex:      termIndex,
		countIndex:     countIndex,
		canonicalIndex: canonicalIndex,
	}
}

func (it *spaceDelimitedIterator) Next() (string, int64, string, bool) {
	for it.scanner.Scan() {
		fields := strings.Fields(it.scanner.Text())
		if len(fields) <= it.termIndex || len(fields) <= it.countIndex {
			continue
		}
		count, err := strconv.ParseInt(fields[it.countIndex], 10, 64)
		if err != nil {
			continue
		}
		canonical := ""
		if it.canonicalIndex >= 0 && it.canonicalIndex < len(fields) {
			canonical = fields[it.canonicalIndex]
		}
		return fields[it.termIndex], count, canonical, true
	}
	it.err = it.scanner.Err()
	return "", 0, "", false
}

func (it *spaceDelimitedIterator) Err() error { return it.err }

// columnarRow is the shape a columnar dictionary source's record is
// decoded into via mapstructure before being handed to CreateDictionaryEntry.
// The caller's actual column names (termCol/countCol/canonicalCol) are
// remapped onto this fixed "term"/"count"/"canonical" shape in Next,
// since spec.md §6 requires the source column names to be configurable.
type columnarRow struct {
	Term      string `mapstructure:"term"`
	Count     int64  `mapstructure:"count"`
	Canonical string `mapstructure:"canonical"`
}

// columnarIterator reads a CSV document whose header names the term,
// count and (optionally) canonical columns, decoding each record through
// mapstructure so column order in the source file doesn't matter.
type columnarIterator struct {
	reader       *csv.Reader
	header       []string
	termCol      string
	countCol     string
	canonicalCol string
	err          error
}

// NewColumnarIterator builds a DictionaryIterator over a CSV document
// (encoding/csv) with a header row. termCol and countCol name the columns
// holding the term and its frequency count; canonicalCol names the column
// holding the canonical spelling, or "" if the source has none. Column
// order in the file is irrelevant; each record is decoded through
// github.com/mitchellh/mapstructure's WeaklyTypedInput so that a numeric
// count column read as a CSV string still converts cleanly.
func NewColumnarIterator(r io.Reader, termCol, countCol, canonicalCol string) (DictionaryIterator, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err != nil {
		return nil, err
	}
	return &columnarIterator{
		reader:       cr,
		header:       header,
		termCol:      termCol,
		countCol:     countCol,
		canonicalCol: canonicalCol,
	}, nil
}

func (it *columnarIterator) Next() (string, int64, string, bool) {
	for {
		record, err := it.reader.Read()
		if err == io.EOF {
			return "", 0, "", false
		}
		if err != nil {
			it.err = err
			return "", 0, "", false
		}

		raw := make(map[string]interface{}, len(it.header))
		for i, col := range it.header {
			if i < len(record) {
				raw[col] = record[i]
			}
		}

		mapped := map[string]interface{}{
			"term":  raw[it.termCol],
			"count": raw[it.countCol],
		}
		if it.canonicalCol != "" {
			mapped["canonical"] = raw[it.canonicalCol]
		}

		var row columnarRow
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &row,
		})
		if err != nil {
			it.err = err
			return "", 0, "", false
		}
		if err := decoder.Decode(mapped); err != nil {
			continue
		}
		if row.Term == "" {
			continue
		}
		return row.Term, row.Count, row.Canonical, true
	}
}

func (it *columnarIterator) Err() error { return it.err }

// listIterator adapts an in-memory slice of already-parsed entries, for
// callers building a dictionary programmatically (tests, or a caller that
// already has the data decoded some other way).
type listIterator struct {
	entries []DictionaryEntry
	pos     int
}

// DictionaryEntry is one pre-parsed record for NewListIterator.
type DictionaryEntry struct {
	Term      string
	Count     int64
	Canonical string
}

// NewListIterator builds a DictionaryIterator over an in-memory slice.
func NewListIterator(entries []DictionaryEntry) DictionaryIterator {
	return &listIterator{entries: entries}
}

func (it *listIterator) Next() (string, int64, string, bool) {
	if it.pos >= len(it.entries) {
		return "", 0, "", false
	}
	e := it.entries[it.pos]
	it.pos++
	return e.Term, e.Count, e.Canonical, true
}

func (it *listIterator) Err() error { return nil }

func newBufioLineScanner(r io.Reader) lineScanner {
	return bufio.NewScanner(r)
}
