package readability

import "errors"

// Common engine errors.
var (
	// ErrUnknownFormula is returned when a formula ID is not registered.
	ErrUnknownFormula = errors.New("unknown formula")

	// ErrUnknownVariable is returned when a formula term names a variable the
	// engine cannot derive from the statistics.
	ErrUnknownVariable = errors.New("unknown variable")

	// ErrDuplicateFormula is returned when an ID is registered twice.
	ErrDuplicateFormula = errors.New("formula already registered")

	// ErrInvalidFormula is returned for formulas without an ID or terms.
	ErrInvalidFormula = errors.New("invalid formula")

	// ErrScoreOutOfRange is returned when no grade band covers a score.
	ErrScoreOutOfRange = errors.New("score outside grade bands")
)
