// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package jobdef validates job definitions: a title, a free-text description,
and an ordered set of multiple-choice screening questions.

# Validation

Validate either returns a complete *Definition or an error; it never returns
a partially built value:

	def, err := jobdef.Validate(title, description, []jobdef.Question{
		{Prompt: "Which hook runs side effects?", Options: []string{"useState", "useEffect"}, CorrectOptionIndex: 1},
	})

Checks run in this order and the first failure is returned:

  - ErrMissingTitle: title empty or whitespace-only
  - ErrInvalidQuestionCount: fewer than 1 or more than 5 questions
  - ErrIncompleteQuestion: empty prompt, empty option, or fewer than 2 options
  - ErrInvalidCorrectIndex: correct option index outside the option list

Errors are *ValidationError values carrying the offending field path
(for example "questions[1].options[3]"); use errors.Is against the sentinels.

# Immutability

A Definition has no setters and its accessors return copies, so it can be
shared by any number of concurrent screening sessions.
*/
package jobdef
