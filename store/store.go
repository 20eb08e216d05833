// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/dmless/jobdef"
	"github.com/danielhkuo/dmless/screening"
	"github.com/danielhkuo/dmless/tally"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("modified concurrently")

	// ErrInvalidJob wraps the jobdef error of a stored job that no longer validates.
	ErrInvalidJob = errors.New("stored job is invalid")
)

// Job status values
const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

// JobRecord is a stored job and its validated definition.
type JobRecord struct {
	ID         string
	ShareSlug  string
	Status     string
	CreatedAt  time.Time
	ClosedAt   *time.Time
	Definition *jobdef.Definition
}

// SessionRecord is a stored screening session.
type SessionRecord struct {
	Snapshot       screening.Snapshot
	CandidateToken string
	Version        int
	IPHash         string
	UserAgent      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// JobTally pairs a job summary with its durable counters.
type JobTally struct {
	JobID     string
	Title     string
	Status    string
	ShareSlug string
	CreatedAt time.Time
	Tally     tally.Tally
}

// Store persists jobs, sessions and tally events.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// SaveJob inserts a job with its questions and options in one transaction.
func (s *Store) SaveJob(ctx context.Context, job JobRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	def := job.Definition
	_, err = tx.ExecContext(ctx, `
		INSERT INTO job (id, title, description, status, share_slug, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, job.ID, def.Title(), def.Description(), StatusOpen, job.ShareSlug, job.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert job: %w", err)
	}

	for i, q := range def.Questions() {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO question (job_id, position, prompt, correct_option)
			VALUES ($1, $2, $3, $4)
		`, job.ID, i, q.Prompt, q.CorrectOptionIndex)
		if err != nil {
			return fmt.Errorf("failed to insert question %d: %w", i, err)
		}

		for j, label := range q.Options {
			_, err = tx.ExecContext(ctx, `
				INSERT INTO question_option (job_id, question_position, position, label)
				VALUES ($1, $2, $3, $4)
			`, job.ID, i, j, label)
			if err != nil {
				return fmt.Errorf("failed to insert option %d of question %d: %w", j, i, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit job: %w", err)
	}
	return nil
}

// LoadJob reads a job and rebuilds its definition through jobdef.Validate.
func (s *Store) LoadJob(ctx context.Context, id string) (*JobRecord, error) {
	var (
		rec         JobRecord
		title, desc string
		closedAt    sql.NullTime
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, description, status, share_slug, created_at, closed_at
		FROM job
		WHERE id = $1
	`, id).Scan(&rec.ID, &title, &desc, &rec.Status, &rec.ShareSlug, &rec.CreatedAt, &closedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("job %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query job: %w", err)
	}
	if closedAt.Valid {
		rec.ClosedAt = &closedAt.Time
	}

	questions, err := s.loadQuestions(ctx, id)
	if err != nil {
		return nil, err
	}

	def, err := jobdef.Validate(title, desc, questions)
	if err != nil {
		return nil, fmt.Errorf("job %s: %w: %w", id, ErrInvalidJob, err)
	}
	rec.Definition = def
	return &rec, nil
}

func (s *Store) loadQuestions(ctx context.Context, jobID string) ([]jobdef.Question, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT prompt, correct_option
		FROM question
		WHERE job_id = $1
		ORDER BY position
	`, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	var questions []jobdef.Question
	for rows.Next() {
		var q jobdef.Question
		if err := rows.Scan(&q.Prompt, &q.CorrectOptionIndex); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read questions: %w", err)
	}

	optRows, err := s.db.QueryContext(ctx, `
		SELECT question_position, label
		FROM question_option
		WHERE job_id = $1
		ORDER BY question_position, position
	`, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to query options: %w", err)
	}
	defer optRows.Close()

	for optRows.Next() {
		var (
			pos   int
			label string
		)
		if err := optRows.Scan(&pos, &label); err != nil {
			return nil, fmt.Errorf("failed to scan option: %w", err)
		}
		if pos < 0 || pos >= len(questions) {
			return nil, fmt.Errorf("option references missing question %d", pos)
		}
		questions[pos].Options = append(questions[pos].Options, label)
	}
	if err := optRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read options: %w", err)
	}

	return questions, nil
}

// LoadJobBySlug resolves a screening link to its job.
func (s *Store) LoadJobBySlug(ctx context.Context, slug string) (*JobRecord, error) {
	var id string
	err := s.db.QueryRowContext(ctx, `SELECT id FROM job WHERE share_slug = $1`, slug).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("link %s: %w", slug, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query job by slug: %w", err)
	}
	return s.LoadJob(ctx, id)
}

// CloseJob stops a job from accepting new candidates. Closing a closed job
// returns ErrConflict.
func (s *Store) CloseJob(ctx context.Context, id string, at time.Time) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE job
		SET status = $1, closed_at = $2
		WHERE id = $3 AND status = $4
	`, StatusClosed, at, id, StatusOpen)
	if err != nil {
		return fmt.Errorf("failed to close job: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to close job: %w", err)
	}
	if n > 0 {
		return nil
	}

	var status string
	err = s.db.QueryRowContext(ctx, `SELECT status FROM job WHERE id = $1`, id).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("job %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to query job: %w", err)
	}
	return fmt.Errorf("job %s already %s: %w", id, status, ErrConflict)
}
