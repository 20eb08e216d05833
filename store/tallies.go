// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const tallyColumns = `
	COALESCE(SUM(CASE WHEN e.kind = 'applied' THEN 1 ELSE 0 END), 0),
	COALESCE(SUM(CASE WHEN e.kind = 'knocked_out' THEN 1 ELSE 0 END), 0),
	COALESCE(SUM(CASE WHEN e.kind = 'shortlisted' THEN 1 ELSE 0 END), 0)`

// JobTally returns the durable counters for one job.
func (s *Store) JobTally(ctx context.Context, jobID string) (*JobTally, error) {
	var jt JobTally
	err := s.db.QueryRowContext(ctx, `
		SELECT j.id, j.title, j.status, j.share_slug, j.created_at,`+tallyColumns+`
		FROM job j
		LEFT JOIN tally_event e ON e.job_id = j.id
		WHERE j.id = $1
		GROUP BY j.id, j.title, j.status, j.share_slug, j.created_at
	`, jobID).Scan(
		&jt.JobID, &jt.Title, &jt.Status, &jt.ShareSlug, &jt.CreatedAt,
		&jt.Tally.Applied, &jt.Tally.KnockedOut, &jt.Tally.Shortlisted,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("job %s: %w", jobID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query job tally: %w", err)
	}
	return &jt, nil
}

// ListJobTallies returns every job with its counters, newest first.
func (s *Store) ListJobTallies(ctx context.Context) ([]JobTally, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT j.id, j.title, j.status, j.share_slug, j.created_at,`+tallyColumns+`
		FROM job j
		LEFT JOIN tally_event e ON e.job_id = j.id
		GROUP BY j.id, j.title, j.status, j.share_slug, j.created_at
		ORDER BY j.created_at DESC, j.id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query job tallies: %w", err)
	}
	defer rows.Close()

	jobs := []JobTally{}
	for rows.Next() {
		var jt JobTally
		if err := rows.Scan(
			&jt.JobID, &jt.Title, &jt.Status, &jt.ShareSlug, &jt.CreatedAt,
			&jt.Tally.Applied, &jt.Tally.KnockedOut, &jt.Tally.Shortlisted,
		); err != nil {
			return nil, fmt.Errorf("failed to scan job tally: %w", err)
		}
		jobs = append(jobs, jt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read job tallies: %w", err)
	}
	return jobs, nil
}
