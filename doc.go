// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the dmless API server.

dmless replaces the back-and-forth of screening messages with a link. An
employer defines a job with up to five multiple-choice screening questions,
shares the link, and candidates answer one question at a time. One wrong
answer ends the attempt; answering all correctly unlocks the application
form. The dashboard counts who applied, who was knocked out and who was
shortlisted.

# Starting the Server

	DATABASE_URL=file:dmless.db ADMIN_KEY_SALT=... LINK_SLUG_SALT=... go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..."

Settings may also come from a .env file in the working directory.

# Configuration

Required settings:

  - DATABASE_URL (-d): connection string
  - ADMIN_KEY_SALT (-admin-salt): Secret for admin key HMAC
  - LINK_SLUG_SALT (-slug-salt): Secret for screening link slugs

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - BASE_URL (-base-url): Origin used in share URLs

# Architecture

  - jobdef: validated job definitions
  - screening: the per-candidate state machine and its events
  - tally: applied/knocked out/shortlisted counters and Prometheus metrics
  - store, db: persistence on PostgreSQL or SQLite
  - schemas: JSON Schema checks for request bodies
  - handlers, router, middleware, models: the HTTP surface
  - auth: admin keys, candidate tokens, share slugs
  - cliparse: configuration parsing
*/
package main
