package storage

import (
	"errors"
	"fmt"
)

// Common table loading errors.
var (
	// ErrMalformedEntry is returned when a line cannot be parsed into a word and a value.
	ErrMalformedEntry = errors.New("malformed entry")

	// ErrNonPositiveValue is returned when a syllable count or rank is zero or negative.
	ErrNonPositiveValue = errors.New("value must be a positive integer")

	// ErrConflictingDuplicate is returned when a word appears twice with different values.
	ErrConflictingDuplicate = errors.New("duplicate word with conflicting value")
)

// DataLoadError reports why a source table was rejected. Loading is all or
// nothing: when a DataLoadError is returned no table is built.
type DataLoadError struct {
	// Source names the table being loaded ("syllables", "frequency", a file path).
	Source string
	// Line is the 1-based line or row number, 0 when unknown.
	Line int
	// Word is the offending entry, empty when the line could not be split.
	Word string
	Err  error
}

func (e *DataLoadError) Error() string {
	msg := "load " + e.Source
	if e.Source == "" {
		msg = "load table"
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(": line %d", e.Line)
	}
	if e.Word != "" {
		msg += fmt.Sprintf(": word %q", e.Word)
	}
	return msg + ": " + e.Err.Error()
}

func (e *DataLoadError) Unwrap() error {
	return e.Err
}
