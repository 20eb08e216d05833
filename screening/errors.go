// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package screening

import "errors"

var (
	ErrInvalidSelection        = errors.New("selected option does not exist for the current question")
	ErrIncompleteApplicantInfo = errors.New("name, email and resume are required")
	ErrAlreadySubmitted        = errors.New("application already submitted")
	ErrWrongStage              = errors.New("operation not allowed in the current stage")
	ErrInvalidSnapshot         = errors.New("session snapshot is inconsistent with its job")
)
