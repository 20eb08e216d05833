// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates the schema.

# Connecting

Open selects the driver from the configured database type:

	conn, err := db.Open(db.TypePostgres, "postgres://...")  // github.com/lib/pq
	conn, err := db.Open(db.TypeSQLite, "file:dmless.db")    // modernc.org/sqlite

SQLite connections are limited to one open connection.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The same statements run on PostgreSQL and SQLite.

# Tables

  - job: title, description, open/closed status, share slug
  - question: prompt and correct option per position
  - question_option: option labels per question
  - candidate_session: one screening attempt, its stage and applicant profile
  - tally_event: applied/knocked_out/shortlisted, one row per session and kind

# Relationships

	job 1──* question 1──* question_option
	job 1──* candidate_session 1──* tally_event

All foreign keys use ON DELETE CASCADE.
*/
package db
