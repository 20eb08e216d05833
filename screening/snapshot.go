// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package screening

import (
	"fmt"

	"github.com/danielhkuo/dmless/jobdef"
)

// Snapshot is the persistable state of a session.
type Snapshot struct {
	ID            string
	JobID         string
	Stage         Stage
	QuestionIndex int
	Applicant     *Applicant
}

// Snapshot captures the session's current state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		ID:            s.id,
		JobID:         s.jobID,
		Stage:         s.stage,
		QuestionIndex: s.index,
	}
	if s.applicant != nil {
		a := *s.applicant
		snap.Applicant = &a
	}
	return snap
}

// Restore rebuilds a session from a snapshot taken against the same job.
// Events already emitted before the snapshot are not replayed.
func Restore(job *jobdef.Definition, snap Snapshot, sink Sink) (*Session, error) {
	if _, err := ParseStage(string(snap.Stage)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	if snap.QuestionIndex < 0 || snap.QuestionIndex >= job.NumQuestions() {
		return nil, fmt.Errorf("%w: question index %d of %d", ErrInvalidSnapshot, snap.QuestionIndex, job.NumQuestions())
	}
	if snap.Stage == StageIntro && snap.QuestionIndex != 0 {
		return nil, fmt.Errorf("%w: intro at question %d", ErrInvalidSnapshot, snap.QuestionIndex)
	}
	if snap.Stage == StagePassed && !job.IsLast(snap.QuestionIndex) {
		return nil, fmt.Errorf("%w: passed before the last question", ErrInvalidSnapshot)
	}
	if (snap.Stage == StageResumeSubmitted) != (snap.Applicant != nil) {
		return nil, fmt.Errorf("%w: applicant profile does not match stage %s", ErrInvalidSnapshot, snap.Stage)
	}

	s := New(snap.ID, snap.JobID, job, sink)
	s.stage = snap.Stage
	s.index = snap.QuestionIndex
	if snap.Applicant != nil {
		a := *snap.Applicant
		s.applicant = &a
	}
	return s, nil
}
