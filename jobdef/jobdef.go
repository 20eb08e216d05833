// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package jobdef

import (
	"fmt"
	"strings"
)

// Structural limits for a job's question set
const (
	MinQuestions = 1
	MaxQuestions = 5
	MinOptions   = 2
)

// Question is one multiple-choice screening question as entered by the employer.
type Question struct {
	Prompt             string
	Options            []string
	CorrectOptionIndex int
}

func (q Question) clone() Question {
	opts := make([]string, len(q.Options))
	copy(opts, q.Options)
	return Question{Prompt: q.Prompt, Options: opts, CorrectOptionIndex: q.CorrectOptionIndex}
}

// Definition is a validated job. It is never mutated after Validate returns it,
// so a single value can back any number of concurrent screening sessions.
type Definition struct {
	title       string
	description string
	questions   []Question
}

// Validate checks raw authoring input and builds a Definition from it.
// Nothing is constructed unless every check passes.
func Validate(title, description string, questions []Question) (*Definition, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, &ValidationError{Field: "title", Err: ErrMissingTitle}
	}

	if len(questions) < MinQuestions || len(questions) > MaxQuestions {
		return nil, &ValidationError{Field: "questions", Err: ErrInvalidQuestionCount}
	}

	checked := make([]Question, len(questions))
	for i, q := range questions {
		field := fmt.Sprintf("questions[%d]", i)

		prompt := strings.TrimSpace(q.Prompt)
		if prompt == "" {
			return nil, &ValidationError{Field: field + ".prompt", Err: ErrIncompleteQuestion}
		}
		if len(q.Options) < MinOptions {
			return nil, &ValidationError{Field: field + ".options", Err: ErrIncompleteQuestion}
		}

		opts := make([]string, len(q.Options))
		for j, opt := range q.Options {
			opt = strings.TrimSpace(opt)
			if opt == "" {
				return nil, &ValidationError{Field: fmt.Sprintf("%s.options[%d]", field, j), Err: ErrIncompleteQuestion}
			}
			opts[j] = opt
		}

		if q.CorrectOptionIndex < 0 || q.CorrectOptionIndex >= len(opts) {
			return nil, &ValidationError{Field: field + ".correct_option_index", Err: ErrInvalidCorrectIndex}
		}

		checked[i] = Question{Prompt: prompt, Options: opts, CorrectOptionIndex: q.CorrectOptionIndex}
	}

	return &Definition{
		title:       title,
		description: description,
		questions:   checked,
	}, nil
}

func (d *Definition) Title() string       { return d.title }
func (d *Definition) Description() string { return d.description }
func (d *Definition) NumQuestions() int   { return len(d.questions) }

// Question returns a copy of the i-th question. It panics if i is out of range,
// like a slice index would.
func (d *Definition) Question(i int) Question {
	return d.questions[i].clone()
}

// Questions returns copies of all questions in order.
func (d *Definition) Questions() []Question {
	out := make([]Question, len(d.questions))
	for i, q := range d.questions {
		out[i] = q.clone()
	}
	return out
}

// IsLast reports whether i is the index of the final question.
func (d *Definition) IsLast(i int) bool {
	return i == len(d.questions)-1
}

// ValidOption reports whether selected names an option of question i.
func (d *Definition) ValidOption(i, selected int) bool {
	if i < 0 || i >= len(d.questions) {
		return false
	}
	return selected >= 0 && selected < len(d.questions[i].Options)
}

// IsCorrect reports whether selected is the correct option of question i.
func (d *Definition) IsCorrect(i, selected int) bool {
	return d.ValidOption(i, selected) && d.questions[i].CorrectOptionIndex == selected
}
