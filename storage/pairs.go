// Package storage reads the external word tables (syllable counts, frequency
// ranks) and turns them into validated word to value maps.
package storage

import (
	"errors"
	"iter"
	"maps"
	"slices"
)

// Pair is one (word, value) entry of a source table. Value is a syllable
// count or a frequency rank depending on the table.
type Pair struct {
	Word  string
	Value int
	// Line is the 1-based position in the source, 0 for in-memory sources.
	Line int
}

// Source yields table entries in order. A non-nil error ends the load.
type Source = iter.Seq2[Pair, error]

// FromPairs builds a Source from in-memory entries.
func FromPairs(pairs ...Pair) Source {
	return func(yield func(Pair, error) bool) {
		for _, p := range pairs {
			if !yield(p, nil) {
				return
			}
		}
	}
}

// FromMap builds a Source from a map, in sorted word order so loads are
// reproducible.
func FromMap(m map[string]int) Source {
	return func(yield func(Pair, error) bool) {
		for _, w := range slices.Sorted(maps.Keys(m)) {
			if !yield(Pair{Word: w, Value: m[w]}, nil) {
				return
			}
		}
	}
}

// Collect drains src into a map keyed by key(word). Entries with a
// non-positive value and keys seen twice with different values are rejected;
// identical duplicates are accepted. Any failure aborts the whole load.
func Collect(name string, src Source, key func(string) string) (map[string]int, error) {
	out := make(map[string]int)
	for p, err := range src {
		if err != nil {
			return nil, asLoadError(name, err)
		}

		k := key(p.Word)
		if k == "" {
			return nil, &DataLoadError{Source: name, Line: p.Line, Word: p.Word, Err: ErrMalformedEntry}
		}
		if p.Value <= 0 {
			return nil, &DataLoadError{Source: name, Line: p.Line, Word: p.Word, Err: ErrNonPositiveValue}
		}
		if prev, ok := out[k]; ok && prev != p.Value {
			return nil, &DataLoadError{Source: name, Line: p.Line, Word: p.Word, Err: ErrConflictingDuplicate}
		}
		out[k] = p.Value
	}
	return out, nil
}

func asLoadError(name string, err error) error {
	var le *DataLoadError
	if errors.As(err, &le) {
		if le.Source == "" {
			le.Source = name
		}
		return le
	}
	return &DataLoadError{Source: name, Err: err}
}
