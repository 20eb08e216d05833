// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request and response types for the API.

# Request Types

  - CreateJobRequest: title, description, questions
  - QuestionInput: prompt, options, correct_option_index
  - AnswerRequest: selected_option_index
  - SubmitApplicationRequest: name, email, resume_reference

# Response Types

  - CreateJobResponse: job_id, admin_key, share_slug, share_url
  - JobDetail: employer view with the answer key and stats
  - PublicJob: screening link intro (no answer key)
  - CreateSessionResponse: session_id, candidate_token, stage
  - SessionResponse: stage, progress and the current question view
  - CloseJobResponse: closed_at, stats
  - DashboardResponse: totals and per-job JobStats
  - ErrorResponse: error, message, code, field

Only JobDetail carries correct_option_index. Candidate responses use
screening.QuestionView, which has no answer field.
*/
package models
