// ABOUTME: Error types for duration spec parsing
// ABOUTME: ParseError carries the offending token and an optional corrected spelling

package duration

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalid is returned for tokens that match none of the accepted forms.
	ErrInvalid = errors.New("expected <number>h, <number>m or <number>s")

	// ErrOverflow is returned when a value does not fit in 64-bit seconds.
	ErrOverflow = errors.New("value overflows 64-bit seconds")
)

// ParseError reports a token that could not be turned into seconds.
type ParseError struct {
	Token      string
	Err        error
	Suggestion string
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("invalid duration spec %q: %v", e.Token, e.Err)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
