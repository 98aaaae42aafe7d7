// Package textstats aggregates the per-document counts every readability
// formula needs in a single pass over the tokens.
package textstats

// Statistics holds the lexical counts of one document. It is a plain value:
// computed once, then only read.
type Statistics struct {
	WordCount             int `json:"word_count" yaml:"word_count"`
	SentenceCount         int `json:"sentence_count" yaml:"sentence_count"`
	SyllableCount         int `json:"syllable_count" yaml:"syllable_count"`
	PolysyllabicWordCount int `json:"polysyllabic_word_count" yaml:"polysyllabic_word_count"`
	UnfamiliarWordCount   int `json:"unfamiliar_word_count" yaml:"unfamiliar_word_count"`
	TotalCharacters       int `json:"total_characters" yaml:"total_characters"`

	// UniqueWordCount is the number of distinct tokens (types).
	UniqueWordCount int `json:"unique_word_count" yaml:"unique_word_count"`
	// NonLexicalCount counts tokens without letters that were kept as words.
	NonLexicalCount int `json:"non_lexical_count" yaml:"non_lexical_count"`
	// EstimatedWordCount counts words whose syllables came from the
	// estimator rather than the dictionary.
	EstimatedWordCount int `json:"estimated_word_count" yaml:"estimated_word_count"`
}

// IsEmpty reports whether the document has no words or no sentences.
func (s Statistics) IsEmpty() bool {
	return s.WordCount == 0 || s.SentenceCount == 0
}

// FamiliarWordCount is the number of words within the frequency cutoff.
func (s Statistics) FamiliarWordCount() int {
	return s.WordCount - s.UnfamiliarWordCount
}

// WordsPerSentence is the average sentence length in words.
func (s Statistics) WordsPerSentence() float64 {
	return ratio(s.WordCount, s.SentenceCount)
}

// SyllablesPerWord is the average word length in syllables.
func (s Statistics) SyllablesPerWord() float64 {
	return ratio(s.SyllableCount, s.WordCount)
}

// AverageWordLength is the average word length in characters.
func (s Statistics) AverageWordLength() float64 {
	return ratio(s.TotalCharacters, s.WordCount)
}

// PercentFamiliar is the share of familiar words, 0 to 100.
func (s Statistics) PercentFamiliar() float64 {
	return 100 * ratio(s.FamiliarWordCount(), s.WordCount)
}

// PercentPolysyllabic is the share of words at or above the polysyllable
// threshold, 0 to 100.
func (s Statistics) PercentPolysyllabic() float64 {
	return 100 * ratio(s.PolysyllabicWordCount, s.WordCount)
}

// TypeTokenRatio is the share of distinct words, 0 to 100.
func (s Statistics) TypeTokenRatio() float64 {
	return 100 * ratio(s.UniqueWordCount, s.WordCount)
}

// SentencesPer100Words is the sentence count per hundred words.
func (s Statistics) SentencesPer100Words() float64 {
	return 100 * ratio(s.SentenceCount, s.WordCount)
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}
