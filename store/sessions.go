// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/dmless/screening"
)

// CreateSession inserts a new session at version 0.
func (s *Store) CreateSession(ctx context.Context, rec SessionRecord) error {
	snap := rec.Snapshot
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO candidate_session (id, job_id, candidate_token, stage, question_index,
		                               ip_hash, user_agent, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 0, $8, $9)
	`, snap.ID, snap.JobID, rec.CandidateToken, string(snap.Stage), snap.QuestionIndex,
		nullString(rec.IPHash), nullString(rec.UserAgent), rec.CreatedAt, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}

// LoadSession reads a session by id.
func (s *Store) LoadSession(ctx context.Context, id string) (*SessionRecord, error) {
	var (
		rec                 SessionRecord
		stage               string
		name, email, resume sql.NullString
		ipHash, userAgent   sql.NullString
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, job_id, candidate_token, stage, question_index,
		       applicant_name, applicant_email, resume_reference,
		       ip_hash, user_agent, version, created_at, updated_at
		FROM candidate_session
		WHERE id = $1
	`, id).Scan(
		&rec.Snapshot.ID, &rec.Snapshot.JobID, &rec.CandidateToken, &stage, &rec.Snapshot.QuestionIndex,
		&name, &email, &resume,
		&ipHash, &userAgent, &rec.Version, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query session: %w", err)
	}

	rec.Snapshot.Stage, err = screening.ParseStage(stage)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", id, err)
	}
	if name.Valid || email.Valid || resume.Valid {
		rec.Snapshot.Applicant = &screening.Applicant{
			Name:            name.String,
			Email:           email.String,
			ResumeReference: resume.String,
		}
	}
	rec.IPHash = ipHash.String
	rec.UserAgent = userAgent.String

	return &rec, nil
}

// SaveSession writes a session's new state if it is still at version and
// records its tally events in the same transaction. Events already stored
// for the session are ignored, so each milestone is counted once.
func (s *Store) SaveSession(ctx context.Context, snap screening.Snapshot, version int, events []screening.Event) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var name, email, resume sql.NullString
	if a := snap.Applicant; a != nil {
		name, email, resume = nullString(a.Name), nullString(a.Email), nullString(a.ResumeReference)
	}

	now := time.Now()
	res, err := tx.ExecContext(ctx, `
		UPDATE candidate_session
		SET stage = $1, question_index = $2,
		    applicant_name = $3, applicant_email = $4, resume_reference = $5,
		    version = version + 1, updated_at = $6
		WHERE id = $7 AND version = $8
	`, string(snap.Stage), snap.QuestionIndex, name, email, resume, now, snap.ID, version)
	if err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("session %s at version %d: %w", snap.ID, version, ErrConflict)
	}

	for _, ev := range events {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO tally_event (session_id, job_id, kind, recorded_at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (session_id, kind) DO NOTHING
		`, ev.SessionID, ev.JobID, string(ev.Kind), now)
		if err != nil {
			return fmt.Errorf("failed to record %s event: %w", ev.Kind, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit session: %w", err)
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
