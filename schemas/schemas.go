// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package schemas

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ErrMalformedDocument is returned when the document is not valid JSON.
var ErrMalformedDocument = errors.New("malformed JSON document")

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Schema string
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString(ve.Schema)
	sb.WriteString(" validation failed: ")
	for i, err := range ve.Errors {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(err.Field)
		sb.WriteString(": ")
		sb.WriteString(err.Message)
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Name  string
	Cause error
}

func (e *SchemaLoadError) Error() string {
	return fmt.Sprintf("failed to load schema %s: %v", e.Name, e.Cause)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// Schema is a compiled JSON Schema for one request body.
type Schema struct {
	name   string
	schema *gojsonschema.Schema
}

// Compile parses a JSON Schema document.
func Compile(name, content string) (*Schema, error) {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(content))
	if err != nil {
		return nil, &SchemaLoadError{Name: name, Cause: err}
	}
	return &Schema{name: name, schema: s}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(name, content string) *Schema {
	s, err := Compile(name, content)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Schema) Name() string { return s.name }

// Validate checks a JSON document against the schema. It returns
// ErrMalformedDocument for unparseable input and *ValidationError when the
// document does not conform.
func (s *Schema) Validate(doc []byte) error {
	result, err := s.schema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Schema: s.name,
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
