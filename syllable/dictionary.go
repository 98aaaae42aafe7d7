// Package syllable counts syllables in Dutch words: exact dictionary lookups
// first, compound splitting over the dictionary next, and a vowel-cluster
// estimate for everything else.
package syllable

import (
	"github.com/c360studio/leesbaar/storage"
	"github.com/c360studio/leesbaar/token"
)

// Dictionary maps words to their authoritative syllable count. It is built
// once and never mutated, so concurrent lookups need no locking.
type Dictionary struct {
	entries map[string]int
}

// NewDictionary loads src into a Dictionary. Non-positive counts and words
// listed twice with different counts fail the whole load with a
// *storage.DataLoadError.
func NewDictionary(src storage.Source) (*Dictionary, error) {
	entries, err := storage.Collect("syllables", src, token.Fold)
	if err != nil {
		return nil, err
	}
	return &Dictionary{entries: entries}, nil
}

// LoadCELEX reads a CELEX dpw.cd file into a Dictionary.
func LoadCELEX(path string) (*Dictionary, error) {
	return NewDictionary(storage.File(path, storage.ReadCELEX))
}

// Lookup returns the stored count for word. Matching is case-insensitive
// and exact.
func (d *Dictionary) Lookup(word string) (int, bool) {
	if d == nil {
		return 0, false
	}
	n, ok := d.entries[token.Fold(word)]
	return n, ok
}

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}
