// Package frequency classifies words as familiar or unfamiliar from a ranked
// frequency list.
package frequency

import (
	"io"

	"github.com/c360studio/leesbaar/storage"
	"github.com/c360studio/leesbaar/token"
)

// DefaultCutoff is the highest rank that still counts as familiar.
const DefaultCutoff = 2000

// Table maps words to frequency ranks (1 is the most frequent word). Ranks
// beyond the cutoff behave exactly like absent words. A Table is immutable
// once built and safe for concurrent reads.
type Table struct {
	ranks     map[string]int
	cutoff    int
	stopWords map[string]struct{}
}

// Option configures a Table.
type Option func(*Table)

// WithCutoff sets the familiarity cutoff rank. Zero or less disables the
// cutoff, making every listed word familiar; use that for lists that are
// already the familiar set, like the freq77 lists.
func WithCutoff(rank int) Option {
	return func(t *Table) {
		t.cutoff = rank
	}
}

// WithStopWords marks words as familiar whatever their rank.
func WithStopWords(words []string) Option {
	return func(t *Table) {
		for _, w := range words {
			if k := token.Fold(w); k != "" {
				t.stopWords[k] = struct{}{}
			}
		}
	}
}

// NewTable loads a ranked word source. Non-positive ranks and words listed
// with two different ranks fail the load with a *storage.DataLoadError.
func NewTable(src storage.Source, opts ...Option) (*Table, error) {
	ranks, err := storage.Collect("frequency", src, token.Fold)
	if err != nil {
		return nil, err
	}

	t := &Table{
		ranks:     ranks,
		cutoff:    DefaultCutoff,
		stopWords: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// LoadRankedList loads a one-word-per-line file, most frequent first.
func LoadRankedList(path string, opts ...Option) (*Table, error) {
	return NewTable(storage.File(path, storage.ReadRankedList), opts...)
}

// LoadCSV loads a CSV word list, ranking the values of column by row order.
func LoadCSV(path, column string, opts ...Option) (*Table, error) {
	return NewTable(storage.File(path, func(r io.Reader) storage.Source {
		return storage.ReadCSVWordList(r, column)
	}), opts...)
}

// RankOf returns the rank of word, or false when the word is absent or
// ranked beyond the cutoff.
func (t *Table) RankOf(word string) (int, bool) {
	if t == nil {
		return 0, false
	}
	rank, ok := t.ranks[token.Fold(word)]
	if !ok || (t.cutoff > 0 && rank > t.cutoff) {
		return 0, false
	}
	return rank, true
}

// IsFamiliar reports whether word is a stop word or ranks within the cutoff.
func (t *Table) IsFamiliar(word string) bool {
	if t == nil {
		return false
	}
	if _, ok := t.stopWords[token.Fold(word)]; ok {
		return true
	}
	_, ok := t.RankOf(word)
	return ok
}

// Len returns the number of listed words, including those beyond the cutoff.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.ranks)
}

// Cutoff returns the familiarity cutoff, 0 when disabled.
func (t *Table) Cutoff() int {
	if t == nil || t.cutoff < 0 {
		return 0
	}
	return t.cutoff
}
