package textstats

import (
	"github.com/c360studio/leesbaar/syllable"
	"github.com/c360studio/leesbaar/token"
)

// DefaultPolysyllableThreshold is the syllable count from which a word is
// polysyllabic.
const DefaultPolysyllableThreshold = 3

// SyllableCounter returns the syllable count of a token.
type SyllableCounter interface {
	Count(t token.Token) syllable.Count
}

// FamiliarityClassifier tells familiar words from unfamiliar ones.
type FamiliarityClassifier interface {
	IsFamiliar(word string) bool
}

// Aggregator computes Statistics. It keeps no state between documents, so
// one Aggregator can be shared by concurrent workers as long as its counter
// and classifier are read-only.
type Aggregator struct {
	counter           SyllableCounter
	familiarity       FamiliarityClassifier
	threshold         int
	excludeNonLexical bool
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithPolysyllableThreshold sets the minimum syllables of a polysyllabic word.
func WithPolysyllableThreshold(n int) Option {
	return func(a *Aggregator) {
		if n > 0 {
			a.threshold = n
		}
	}
}

// WithExcludeNonLexical drops tokens without letters instead of counting
// them as one-syllable words.
func WithExcludeNonLexical(exclude bool) Option {
	return func(a *Aggregator) {
		a.excludeNonLexical = exclude
	}
}

// NewAggregator creates an Aggregator. A nil familiarity classifier makes
// every word unfamiliar.
func NewAggregator(counter SyllableCounter, familiarity FamiliarityClassifier, opts ...Option) *Aggregator {
	a := &Aggregator{
		counter:     counter,
		familiarity: familiarity,
		threshold:   DefaultPolysyllableThreshold,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Compute visits every token once and fills all counters together. Only
// sentences with at least one counted word add to SentenceCount. A document
// without words yields the zero Statistics.
func (a *Aggregator) Compute(sentences [][]token.Token) Statistics {
	var s Statistics
	seen := make(map[token.Token]struct{})

	for _, sentence := range sentences {
		words := 0
		for _, t := range sentence {
			if t.IsEmpty() {
				continue
			}
			lexical := t.IsLexical()
			if !lexical && a.excludeNonLexical {
				continue
			}

			c := a.counter.Count(t)
			syllables := max(c.Syllables, 1)

			words++
			s.WordCount++
			s.SyllableCount += syllables
			s.TotalCharacters += t.CharacterCount()
			if syllables >= a.threshold {
				s.PolysyllabicWordCount++
			}
			if a.familiarity == nil || !a.familiarity.IsFamiliar(string(t)) {
				s.UnfamiliarWordCount++
			}
			if !lexical {
				s.NonLexicalCount++
			}
			if c.Source == syllable.SourceEstimator {
				s.EstimatedWordCount++
			}
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				s.UniqueWordCount++
			}
		}
		if words > 0 {
			s.SentenceCount++
		}
	}

	if s.WordCount == 0 {
		return Statistics{}
	}
	return s
}
