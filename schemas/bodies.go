// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package schemas

// Request body schemas. They check shape and JSON types only; content rules
// such as question counts and required applicant fields belong to jobdef and
// screening so that each failure keeps its domain error code.

const createJobSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "title": {"type": ["string", "null"]},
    "description": {"type": ["string", "null"]},
    "questions": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "properties": {
          "prompt": {"type": ["string", "null"]},
          "options": {"type": ["array", "null"], "items": {"type": "string"}},
          "correct_option_index": {"type": "integer"}
        },
        "required": ["correct_option_index"]
      }
    }
  }
}`

const answerSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "selected_option_index": {"type": "integer"}
  },
  "required": ["selected_option_index"]
}`

const applicationSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "name": {"type": ["string", "null"]},
    "email": {"type": ["string", "null"]},
    "resume_reference": {"type": ["string", "null"]}
  }
}`

var (
	CreateJob   = MustCompile("create_job", createJobSchema)
	Answer      = MustCompile("answer", answerSchema)
	Application = MustCompile("application", applicationSchema)
)
