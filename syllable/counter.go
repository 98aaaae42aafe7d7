package syllable

import (
	"strings"

	"github.com/c360studio/leesbaar/metrics"
	"github.com/c360studio/leesbaar/token"
)

// Source tells which strategy produced a count.
type Source string

const (
	SourceDictionary Source = "dictionary"
	SourceCompound   Source = "compound"
	SourceEstimator  Source = "estimator"
)

// minPartLen keeps compound splitting away from single-letter parts.
const minPartLen = 2

// A known head with one of these endings may have taken its final s from
// the next part; the s is then handed back to the tail.
var pluralHeadSuffixes = []string{"es", "els", "ens", "ers", "ems", "ies", "eaus"}

// Count is the syllable count of one token.
type Count struct {
	Syllables  int
	Source     Source
	NonLexical bool
}

// Counter combines the dictionary, compound splitting and the estimator.
// After construction it is read-only and safe for concurrent use.
type Counter struct {
	dict      *Dictionary
	estimator *Estimator
	compound  bool
	metrics   *metrics.Metrics
}

// Option configures a Counter.
type Option func(*Counter)

// WithCompoundSplitting toggles splitting unknown words into known parts.
// It is on by default.
func WithCompoundSplitting(enabled bool) Option {
	return func(c *Counter) {
		c.compound = enabled
	}
}

// WithMetrics records which source answered each lookup.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Counter) {
		c.metrics = m
	}
}

// WithEstimator replaces the default Dutch estimator.
func WithEstimator(e *Estimator) Option {
	return func(c *Counter) {
		c.estimator = e
	}
}

// NewCounter creates a Counter over dict. A nil dict sends every word to the
// estimator.
func NewCounter(dict *Dictionary, opts ...Option) *Counter {
	c := &Counter{
		dict:      dict,
		estimator: NewEstimator(),
		compound:  true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Count returns the syllable count of t. The result is always at least 1.
func (c *Counter) Count(t token.Token) Count {
	word := string(t)

	if n, ok := c.dict.Lookup(word); ok {
		c.metrics.ObserveLookup(string(SourceDictionary))
		return Count{Syllables: n, Source: SourceDictionary}
	}

	if c.compound && c.dict.Len() > 0 {
		if n, ok := c.splitCompound([]rune(word), false); ok && n > 0 {
			c.metrics.ObserveLookup(string(SourceCompound))
			return Count{Syllables: n, Source: SourceCompound}
		}
	}

	est := c.estimator.Estimate(word)
	c.metrics.ObserveLookup(string(SourceEstimator))
	return Count{Syllables: est.Syllables, Source: SourceEstimator, NonLexical: est.NonLexical}
}

// part counts a fragment produced by compound splitting. Fragments without
// a vowel (the "s" of a genitive, a linking "t") count as zero.
func (c *Counter) part(word []rune) int {
	if n, ok := c.dict.Lookup(string(word)); ok {
		return n
	}
	if n, ok := c.splitCompound(word, true); ok {
		return n
	}
	return c.estimator.Nuclei(string(word))
}

// splitCompound looks for a known head, scanning split points from the
// right. inner is set for fragments of a larger word, where a leading
// linking s may be dropped.
func (c *Counter) splitCompound(word []rune, inner bool) (int, bool) {
	for i := len(word) - minPartLen; i >= minPartLen; i-- {
		head := string(word[:i])
		headCount, ok := c.dict.Lookup(head)
		if !ok {
			continue
		}

		tail := word[i:]
		if tailCount, ok := c.dict.Lookup(string(tail)); ok {
			return headCount + tailCount, true
		}

		// an earlier split point may give two known words
		for j := i - 1; j >= minPartLen; j-- {
			a, okA := c.dict.Lookup(string(word[:j]))
			b, okB := c.dict.Lookup(string(word[j:]))
			if okA && okB {
				return a + b, true
			}
		}

		if hasPluralSuffix(head) {
			if n, ok := c.dict.Lookup(head[:len(head)-1]); ok {
				return n + c.part(append([]rune{'s'}, tail...)), true
			}
		}

		return headCount + c.part(tail), true
	}

	if inner && len(word) > 1 && word[0] == 's' {
		return c.part(word[1:]), true
	}
	return 0, false
}

func hasPluralSuffix(head string) bool {
	for _, suffix := range pluralHeadSuffixes {
		if strings.HasSuffix(head, suffix) {
			return true
		}
	}
	return false
}
