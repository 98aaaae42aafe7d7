// Package readability turns document statistics into readability scores.
// A formula is an intercept plus weighted variables; new formulas are added
// by registering their coefficients.
package readability

import (
	"fmt"

	"github.com/c360studio/leesbaar/textstats"
)

// FormulaID identifies a registered formula.
type FormulaID string

// EmptyScore is returned for every formula when a document has no words or
// no sentences.
const EmptyScore = 0.0

// Term is one weighted variable of a formula.
type Term struct {
	Variable    Variable `json:"variable" yaml:"variable"`
	Coefficient float64  `json:"coefficient" yaml:"coefficient"`
}

// Formula is a linear combination of document measures:
//
//	score = Intercept + Σ Coefficient·Variable
//
// Scores are on the formula's own scale; scores of different formulas are
// not comparable.
type Formula struct {
	ID        FormulaID `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	Intercept float64   `json:"intercept" yaml:"intercept"`
	Terms     []Term    `json:"terms" yaml:"terms"`
	// Grades maps truncated scores to school grades. Optional.
	Grades GradeScale `json:"grades,omitempty" yaml:"grades,omitempty"`
}

// Validate checks that the formula has an ID, at least one term and only
// known variables.
func (f Formula) Validate() error {
	if f.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidFormula)
	}
	if len(f.Terms) == 0 {
		return fmt.Errorf("%w: %s has no terms", ErrInvalidFormula, f.ID)
	}
	for _, t := range f.Terms {
		if _, ok := variables[t.Variable]; !ok {
			return fmt.Errorf("formula %s: %w %q", f.ID, ErrUnknownVariable, t.Variable)
		}
	}
	return f.Grades.Validate()
}

// Evaluate computes the score for s. Empty statistics give EmptyScore.
func (f Formula) Evaluate(s textstats.Statistics) float64 {
	if s.IsEmpty() {
		return EmptyScore
	}
	score := f.Intercept
	for _, t := range f.Terms {
		v, _ := t.Variable.Value(s)
		score += t.Coefficient * v
	}
	return score
}

// Built-in Dutch formulas.
const (
	FleschDouma FormulaID = "flesch-douma"
	LeesindexA  FormulaID = "leesindex-a"
	CLIB        FormulaID = "clib"
	CILT        FormulaID = "cilt"
)

// BuiltinFormulas returns the four classic Dutch formulas with their grade
// bands.
func BuiltinFormulas() []Formula {
	return []Formula{
		{
			ID:        FleschDouma,
			Name:      "Flesch-Douma",
			Intercept: 206.84,
			Terms: []Term{
				{Variable: WordsPerSentence, Coefficient: -0.93},
				{Variable: SyllablesPerWord, Coefficient: -77},
			},
			Grades: fleschDoumaGrades,
		},
		{
			ID:        LeesindexA,
			Name:      "Leesindex A",
			Intercept: 195,
			Terms: []Term{
				{Variable: WordsPerSentence, Coefficient: -2},
				{Variable: SyllablesPerWord, Coefficient: -66.67},
			},
			Grades: leesindexAGrades,
		},
		{
			ID:        CLIB,
			Name:      "CLIB",
			Intercept: 46,
			Terms: []Term{
				{Variable: PercentFamiliar, Coefficient: 0.474},
				{Variable: LettersPerWord, Coefficient: -6.603},
				{Variable: TypeTokenRatio, Coefficient: -0.364},
				{Variable: SentencesPer100Words, Coefficient: 1.425},
			},
			Grades: clibGrades,
		},
		{
			// 150 - (114.49 + 0.28·freq - 12.33·let/w), rewritten as one linear form
			ID:        CILT,
			Name:      "CILT",
			Intercept: 150 - 114.49,
			Terms: []Term{
				{Variable: PercentFamiliar, Coefficient: -0.28},
				{Variable: LettersPerWord, Coefficient: 12.33},
			},
			Grades: ciltGrades,
		},
	}
}
