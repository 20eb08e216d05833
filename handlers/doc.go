// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the dmless API.

# Handler Types

  - JobHandler: job authoring, admin view, close, stats
  - ScreeningHandler: screening link intro and candidate sessions
  - DashboardHandler: per-job counts and totals

Handlers are created with the store and config:

	jobs := handlers.NewJobHandler(st, cfg)
	screen := handlers.NewScreeningHandler(st, aggregator, cfg)

# Job Lifecycle

	POST /jobs             → CreateJob (returns admin_key and share_url)
	GET  /jobs/{id}/admin  → GetJobAdmin
	POST /jobs/{id}/close  → CloseJob
	GET  /jobs/{id}/stats  → GetJobStats

Admin operations require the X-Admin-Key header.

# Screening Flow

A candidate opens the link, gets a session and token, then moves it through
intro → in_progress → knocked_out | passed → resume_submitted:

	POST /links/{slug}/sessions      → CreateSession (returns candidate_token)
	POST /sessions/{id}/start        → StartSession
	POST /sessions/{id}/answers      → Answer
	POST /sessions/{id}/application  → SubmitApplication

Every session change loads the stored snapshot, applies one screening
operation and saves it under the version it was loaded at. A concurrent
change to the same session makes the later save fail with 409 conflict.
Tally events are stored in the same transaction and forwarded to the live
aggregator after commit.

# Errors

Domain errors carry a code in the JSON body:

	400 missing_title, invalid_question_count, incomplete_question,
	    invalid_correct_index, invalid_selection, incomplete_applicant_info,
	    invalid_request, invalid_json
	401 bad admin key or candidate token
	404 not_found
	409 already_submitted, wrong_stage, conflict, job_closed
*/
package handlers
