// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported database types
const (
	TypePostgres = "postgres"
	TypeSQLite   = "sqlite"
)

// Open connects to a PostgreSQL or SQLite database and verifies the connection.
func Open(dbType, url string) (*sql.DB, error) {
	var driver string
	switch dbType {
	case TypePostgres:
		driver = "postgres"
	case TypeSQLite:
		driver = "sqlite"
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dbType, err)
	}

	// SQLite allows a single writer; serialize access through one connection.
	if dbType == TypeSQLite {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", dbType, err)
	}

	return conn, nil
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Jobs
CREATE TABLE IF NOT EXISTS job (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL DEFAULT 'open' CHECK (status IN ('open', 'closed')),
    share_slug TEXT NOT NULL UNIQUE,
    created_at TIMESTAMP NOT NULL,
    closed_at TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_job_share_slug ON job(share_slug);
CREATE INDEX IF NOT EXISTS idx_job_status ON job(status);

-- Screening questions
CREATE TABLE IF NOT EXISTS question (
    job_id TEXT NOT NULL REFERENCES job(id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    prompt TEXT NOT NULL,
    correct_option INTEGER NOT NULL,
    PRIMARY KEY (job_id, position)
);

-- Answer options
CREATE TABLE IF NOT EXISTS question_option (
    job_id TEXT NOT NULL,
    question_position INTEGER NOT NULL,
    position INTEGER NOT NULL,
    label TEXT NOT NULL,
    PRIMARY KEY (job_id, question_position, position),
    FOREIGN KEY (job_id, question_position) REFERENCES question(job_id, position) ON DELETE CASCADE
);

-- Candidate sessions
CREATE TABLE IF NOT EXISTS candidate_session (
    id TEXT PRIMARY KEY,
    job_id TEXT NOT NULL REFERENCES job(id) ON DELETE CASCADE,
    candidate_token TEXT NOT NULL UNIQUE,
    stage TEXT NOT NULL CHECK (stage IN ('intro', 'in_progress', 'knocked_out', 'passed', 'resume_submitted')),
    question_index INTEGER NOT NULL DEFAULT 0,
    applicant_name TEXT,
    applicant_email TEXT,
    resume_reference TEXT,
    ip_hash TEXT,
    user_agent TEXT,
    version INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_candidate_session_job_id ON candidate_session(job_id);

-- Tally events, one per session per milestone
CREATE TABLE IF NOT EXISTS tally_event (
    session_id TEXT NOT NULL REFERENCES candidate_session(id) ON DELETE CASCADE,
    job_id TEXT NOT NULL REFERENCES job(id) ON DELETE CASCADE,
    kind TEXT NOT NULL CHECK (kind IN ('applied', 'knocked_out', 'shortlisted')),
    recorded_at TIMESTAMP NOT NULL,
    PRIMARY KEY (session_id, kind)
);

CREATE INDEX IF NOT EXISTS idx_tally_event_job_id ON tally_event(job_id);
`
