package readability

import (
	"slices"

	"github.com/c360studio/leesbaar/textstats"
)

// Variable names a document measure derived from textstats.Statistics.
type Variable string

const (
	WordsPerSentence     Variable = "words_per_sentence"
	SyllablesPerWord     Variable = "syllables_per_word"
	LettersPerWord       Variable = "letters_per_word"
	PercentFamiliar      Variable = "percent_familiar"
	PercentUnfamiliar    Variable = "percent_unfamiliar"
	PercentPolysyllabic  Variable = "percent_polysyllabic"
	TypeTokenRatio       Variable = "type_token_ratio"
	SentencesPer100Words Variable = "sentences_per_100_words"
)

var variables = map[Variable]func(textstats.Statistics) float64{
	WordsPerSentence:     textstats.Statistics.WordsPerSentence,
	SyllablesPerWord:     textstats.Statistics.SyllablesPerWord,
	LettersPerWord:       textstats.Statistics.AverageWordLength,
	PercentFamiliar:      textstats.Statistics.PercentFamiliar,
	PercentUnfamiliar:    func(s textstats.Statistics) float64 { return 100 - s.PercentFamiliar() },
	PercentPolysyllabic:  textstats.Statistics.PercentPolysyllabic,
	TypeTokenRatio:       textstats.Statistics.TypeTokenRatio,
	SentencesPer100Words: textstats.Statistics.SentencesPer100Words,
}

// Variables lists the known variable names in sorted order.
func Variables() []Variable {
	out := make([]Variable, 0, len(variables))
	for v := range variables {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

// Value derives v from s. ok is false for unknown variables.
func (v Variable) Value(s textstats.Statistics) (float64, bool) {
	fn, ok := variables[v]
	if !ok {
		return 0, false
	}
	return fn(s), true
}
