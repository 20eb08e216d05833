// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package screening

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Applicant is the profile a candidate submits after passing every question.
// ResumeReference is an opaque handle from the upload collaborator; its
// contents are never inspected here.
type Applicant struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	ResumeReference string `json:"resume_reference" validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func (a Applicant) normalized() Applicant {
	return Applicant{
		Name:            strings.TrimSpace(a.Name),
		Email:           strings.TrimSpace(a.Email),
		ResumeReference: strings.TrimSpace(a.ResumeReference),
	}
}

// check trims the profile and validates it. Failures wrap
// ErrIncompleteApplicantInfo with the first offending field.
func (a Applicant) check() (Applicant, error) {
	a = a.normalized()
	if err := validate.Struct(a); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return Applicant{}, fmt.Errorf("%w: %s (%s)", ErrIncompleteApplicantInfo, verrs[0].Field(), verrs[0].Tag())
		}
		return Applicant{}, fmt.Errorf("%w: %v", ErrIncompleteApplicantInfo, err)
	}
	return a, nil
}
