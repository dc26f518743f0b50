package input

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySequence indicates the sequence text holds no values.
	ErrEmptySequence = errors.New("input: enter at least one number for the array")

	// ErrEmptyTarget indicates the target text is blank.
	ErrEmptyTarget = errors.New("input: target value is empty")

	// ErrMalformedValue indicates a token that is not an integer.
	ErrMalformedValue = errors.New("input: values must be integers separated by commas")
)

// ParseError wraps an error with the position of the offending token.
type ParseError struct {
	Field    string
	Position int
	Text     string
	Err      error
}

func (e *ParseError) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("%s[%d] %q: %v", e.Field, e.Position, e.Text, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Field, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
