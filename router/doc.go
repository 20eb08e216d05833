// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the dmless API.

# Route Registration

	mux := router.NewRouter(db, cfg)

NewRouter builds the store, a Prometheus registry and the tally aggregator,
then wires the handlers to them.

# Endpoints

Health:

	GET /health

Job management (X-Admin-Key, except creation):

	POST /jobs              - Create job, returns admin key and share link
	GET  /jobs/{id}/admin   - Definition with answer key and stats
	POST /jobs/{id}/close   - Stop accepting new candidates
	GET  /jobs/{id}/stats   - Applied, knocked out and shortlisted counts

Screening link (public):

	GET  /links/{slug}          - Intro data
	POST /links/{slug}/sessions - Start a new attempt

Candidate sessions (X-Candidate-Token):

	GET  /sessions/{id}             - Stage and current question
	POST /sessions/{id}/start       - Intro to first question
	POST /sessions/{id}/answers     - Answer current question
	POST /sessions/{id}/application - Submit applicant profile

Dashboard:

	GET /dashboard - Totals and per-job counts
	GET /metrics   - Prometheus exposition
*/
package router
