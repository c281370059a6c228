// Package errors provides centralized error definitions for the application.
// Errors are organized by domain to avoid duplication and provide consistent naming.
//
// Moderation outcomes are never errors: they are reported as data in a Verdict.
// The sentinels below cover operational failures only.
//
// Naming conventions:
//   - Exported errors (Err*): Use for errors that callers need to check with errors.Is
//   - All sentinel errors should be defined as variables, not inline errors.New calls
//   - Use fmt.Errorf with %w to wrap sentinel errors with context
package errors

import "errors"

// Configuration errors.
var (
	// ErrInvalidLimits indicates the configured length or hashtag limits are inconsistent.
	ErrInvalidLimits = errors.New("invalid limits")
)

// Lexicon errors.
var (
	// ErrEmptyLexicon indicates a lexicon source contained no terms at all.
	ErrEmptyLexicon = errors.New("lexicon is empty")

	// ErrInvalidTerm indicates a lexicon term could not be compiled into a matcher.
	ErrInvalidTerm = errors.New("invalid lexicon term")
)

// Validation and transport errors.
var (
	// ErrInvalidInput indicates invalid input was provided.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownFlow indicates an editor flow name that is neither create nor edit.
	ErrUnknownFlow = errors.New("unknown flow")
)

// Is is a convenience wrapper around errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is a convenience wrapper around errors.As.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
