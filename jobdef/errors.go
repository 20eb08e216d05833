// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package jobdef

import "errors"

var (
	ErrMissingTitle         = errors.New("job title is required")
	ErrInvalidQuestionCount = errors.New("job must have between 1 and 5 screening questions")
	ErrIncompleteQuestion   = errors.New("all question fields are required")
	ErrInvalidCorrectIndex  = errors.New("correct option index is out of range")
)

// ValidationError names the input field that failed and wraps one of the
// sentinel errors above.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Err.Error()
	}
	return e.Field + ": " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
