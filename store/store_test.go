// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/dmless/db"
	"github.com/danielhkuo/dmless/jobdef"
	"github.com/danielhkuo/dmless/screening"
	"github.com/danielhkuo/dmless/tally"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	conn, err := db.Open(db.TypeSQLite, "file::memory:?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, db.CreateSchema(conn))
	return New(conn)
}

func testDefinition(t *testing.T, title string, correct ...int) *jobdef.Definition {
	t.Helper()
	qs := make([]jobdef.Question, len(correct))
	for i, c := range correct {
		qs[i] = jobdef.Question{
			Prompt:             "Which option is right?",
			Options:            []string{"first", "second", "third", "fourth"},
			CorrectOptionIndex: c,
		}
	}
	def, err := jobdef.Validate(title, "role description", qs)
	require.NoError(t, err)
	return def
}

func saveTestJob(t *testing.T, s *Store, id, slug string, createdAt time.Time, correct ...int) *jobdef.Definition {
	t.Helper()
	def := testDefinition(t, "Job "+id, correct...)
	require.NoError(t, s.SaveJob(context.Background(), JobRecord{
		ID:         id,
		ShareSlug:  slug,
		CreatedAt:  createdAt,
		Definition: def,
	}))
	return def
}

func TestJobRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	def := saveTestJob(t, s, "job1", "slug1", time.Now(), 1, 2, 0)

	got, err := s.LoadJob(ctx, "job1")
	require.NoError(t, err)
	assert.Equal(t, "job1", got.ID)
	assert.Equal(t, "slug1", got.ShareSlug)
	assert.Equal(t, StatusOpen, got.Status)
	assert.Nil(t, got.ClosedAt)
	assert.Equal(t, def.Title(), got.Definition.Title())
	assert.Equal(t, def.Description(), got.Definition.Description())
	assert.Equal(t, def.Questions(), got.Definition.Questions())

	bySlug, err := s.LoadJobBySlug(ctx, "slug1")
	require.NoError(t, err)
	assert.Equal(t, "job1", bySlug.ID)
}

func TestLoadJob_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.LoadJob(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.LoadJobBySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadJob_InvalidStoredJob(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	saveTestJob(t, s, "job1", "slug1", time.Now(), 1, 2)

	_, err := s.db.ExecContext(ctx, `UPDATE question SET correct_option = 9 WHERE job_id = 'job1' AND position = 1`)
	require.NoError(t, err)

	_, err = s.LoadJob(ctx, "job1")
	assert.ErrorIs(t, err, ErrInvalidJob)
	assert.ErrorIs(t, err, jobdef.ErrInvalidCorrectIndex)

	var ve *jobdef.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "questions[1].correct_option_index", ve.Field)
}

func TestSaveJob_DuplicateSlugRollsBack(t *testing.T) {
	s := newTestStore(t)
	saveTestJob(t, s, "job1", "same", time.Now(), 0)

	err := s.SaveJob(context.Background(), JobRecord{
		ID:         "job2",
		ShareSlug:  "same",
		CreatedAt:  time.Now(),
		Definition: testDefinition(t, "Other", 0),
	})
	require.Error(t, err)

	_, err = s.LoadJob(context.Background(), "job2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCloseJob(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	saveTestJob(t, s, "job1", "slug1", time.Now(), 0)

	require.NoError(t, s.CloseJob(ctx, "job1", time.Now()))

	got, err := s.LoadJob(ctx, "job1")
	require.NoError(t, err)
	assert.Equal(t, StatusClosed, got.Status)
	assert.NotNil(t, got.ClosedAt)

	assert.ErrorIs(t, s.CloseJob(ctx, "job1", time.Now()), ErrConflict)
	assert.ErrorIs(t, s.CloseJob(ctx, "missing", time.Now()), ErrNotFound)
}

func createTestSession(t *testing.T, s *Store, id, jobID string) {
	t.Helper()
	require.NoError(t, s.CreateSession(context.Background(), SessionRecord{
		Snapshot:       screening.Snapshot{ID: id, JobID: jobID, Stage: screening.StageIntro},
		CandidateToken: "token-" + id,
		IPHash:         "abc123",
		UserAgent:      "test-agent",
		CreatedAt:      time.Now(),
	}))
}

func TestSessionLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	def := saveTestJob(t, s, "job1", "slug1", time.Now(), 1)
	createTestSession(t, s, "s1", "job1")

	rec, err := s.LoadSession(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, screening.StageIntro, rec.Snapshot.Stage)
	assert.Equal(t, "token-s1", rec.CandidateToken)
	assert.Equal(t, 0, rec.Version)
	assert.Equal(t, "abc123", rec.IPHash)
	assert.Nil(t, rec.Snapshot.Applicant)

	events := &screening.Recorder{}
	session, err := screening.Restore(def, rec.Snapshot, events)
	require.NoError(t, err)
	require.NoError(t, session.Start())
	require.NoError(t, session.Answer(1))
	require.NoError(t, session.SubmitApplication(screening.Applicant{
		Name: "Jane Doe", Email: "jane@example.com", ResumeReference: "uploads/jane.pdf",
	}))
	require.NoError(t, s.SaveSession(ctx, session.Snapshot(), rec.Version, events.Events()))

	rec, err = s.LoadSession(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, screening.StageResumeSubmitted, rec.Snapshot.Stage)
	assert.Equal(t, 1, rec.Version)
	require.NotNil(t, rec.Snapshot.Applicant)
	assert.Equal(t, "jane@example.com", rec.Snapshot.Applicant.Email)

	jt, err := s.JobTally(ctx, "job1")
	require.NoError(t, err)
	assert.Equal(t, tally.Tally{Applied: 1, Shortlisted: 1}, jt.Tally)
}

func TestSaveSession_StaleVersionConflicts(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	saveTestJob(t, s, "job1", "slug1", time.Now(), 1)
	createTestSession(t, s, "s1", "job1")

	snap := screening.Snapshot{ID: "s1", JobID: "job1", Stage: screening.StageInProgress}
	applied := []screening.Event{{Kind: screening.EventApplied, JobID: "job1", SessionID: "s1"}}

	require.NoError(t, s.SaveSession(ctx, snap, 0, applied))

	err := s.SaveSession(ctx, snap, 0, applied)
	assert.ErrorIs(t, err, ErrConflict)

	jt, err := s.JobTally(ctx, "job1")
	require.NoError(t, err)
	assert.Equal(t, 1, jt.Tally.Applied)
}

func TestSaveSession_ReplayedEventsCountOnce(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	saveTestJob(t, s, "job1", "slug1", time.Now(), 1)
	createTestSession(t, s, "s1", "job1")

	applied := screening.Event{Kind: screening.EventApplied, JobID: "job1", SessionID: "s1"}
	snap := screening.Snapshot{ID: "s1", JobID: "job1", Stage: screening.StageInProgress}
	require.NoError(t, s.SaveSession(ctx, snap, 0, []screening.Event{applied}))
	require.NoError(t, s.SaveSession(ctx, snap, 1, []screening.Event{applied, applied}))

	jt, err := s.JobTally(ctx, "job1")
	require.NoError(t, err)
	assert.Equal(t, tally.Tally{Applied: 1}, jt.Tally)
}

func TestLoadSession_NotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.LoadSession(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListJobTallies(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Now()
	saveTestJob(t, s, "old", "slug-old", now.Add(-time.Hour), 0)
	saveTestJob(t, s, "new", "slug-new", now, 0)

	createTestSession(t, s, "s1", "old")
	createTestSession(t, s, "s2", "old")
	require.NoError(t, s.SaveSession(ctx, screening.Snapshot{ID: "s1", JobID: "old", Stage: screening.StageKnockedOut}, 0, []screening.Event{
		{Kind: screening.EventApplied, JobID: "old", SessionID: "s1"},
		{Kind: screening.EventKnockedOut, JobID: "old", SessionID: "s1"},
	}))
	require.NoError(t, s.SaveSession(ctx, screening.Snapshot{ID: "s2", JobID: "old", Stage: screening.StageInProgress}, 0, []screening.Event{
		{Kind: screening.EventApplied, JobID: "old", SessionID: "s2"},
	}))

	jobs, err := s.ListJobTallies(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Equal(t, "new", jobs[0].JobID)
	assert.Equal(t, tally.Tally{}, jobs[0].Tally)
	assert.Equal(t, "old", jobs[1].JobID)
	assert.Equal(t, "slug-old", jobs[1].ShareSlug)
	assert.Equal(t, tally.Tally{Applied: 2, KnockedOut: 1}, jobs[1].Tally)

	_, err = s.JobTally(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return New(conn), mock
}

func TestSaveSession_MockConflictRollsBack(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE candidate_session").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := s.SaveSession(context.Background(),
		screening.Snapshot{ID: "s1", JobID: "job1", Stage: screening.StagePassed},
		3,
		[]screening.Event{{Kind: screening.EventApplied, JobID: "job1", SessionID: "s1"}},
	)
	assert.ErrorIs(t, err, ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveSession_MockEventFailureRollsBack(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE candidate_session").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO tally_event").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := s.SaveSession(context.Background(),
		screening.Snapshot{ID: "s1", JobID: "job1", Stage: screening.StageKnockedOut},
		0,
		[]screening.Event{{Kind: screening.EventKnockedOut, JobID: "job1", SessionID: "s1"}},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "knocked_out")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveJob_MockQuestionFailureRollsBack(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO job").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO question").WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	err := s.SaveJob(context.Background(), JobRecord{
		ID:         "job1",
		ShareSlug:  "slug1",
		CreatedAt:  time.Now(),
		Definition: testDefinition(t, "Designer", 0),
	})
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadJob_MockQueryError(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery("SELECT id, title, description").
		WithArgs("job1").
		WillReturnError(sql.ErrConnDone)

	_, err := s.LoadJob(context.Background(), "job1")
	require.Error(t, err)
	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
