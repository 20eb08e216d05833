// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package screening

import (
	"fmt"

	"github.com/danielhkuo/dmless/jobdef"
)

// QuestionView is what the candidate sees for the current question.
// It deliberately has no correct option index.
type QuestionView struct {
	Index   int      `json:"index"`
	Total   int      `json:"total"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
}

// Session drives one candidate through a job's questions. It is not safe
// for concurrent use; one caller owns a session at a time.
type Session struct {
	id        string
	jobID     string
	job       *jobdef.Definition
	sink      Sink
	stage     Stage
	index     int
	applicant *Applicant
}

// New creates a session in StageIntro. A nil sink discards events.
func New(id, jobID string, job *jobdef.Definition, sink Sink) *Session {
	if sink == nil {
		sink = discard{}
	}
	return &Session{
		id:    id,
		jobID: jobID,
		job:   job,
		sink:  sink,
		stage: StageIntro,
	}
}

func (s *Session) ID() string         { return s.id }
func (s *Session) JobID() string      { return s.jobID }
func (s *Session) Stage() Stage       { return s.stage }
func (s *Session) QuestionIndex() int { return s.index }
func (s *Session) QuestionCount() int { return s.job.NumQuestions() }

// Applicant returns the submitted profile, if any.
func (s *Session) Applicant() (Applicant, bool) {
	if s.applicant == nil {
		return Applicant{}, false
	}
	return *s.applicant, true
}

// CurrentQuestion returns the question to display. It is only defined while
// the session is in progress.
func (s *Session) CurrentQuestion() (QuestionView, bool) {
	if s.stage != StageInProgress {
		return QuestionView{}, false
	}
	q := s.job.Question(s.index)
	return QuestionView{
		Index:   s.index,
		Total:   s.job.NumQuestions(),
		Prompt:  q.Prompt,
		Options: q.Options,
	}, true
}

// Start moves the session from the intro to the first question.
func (s *Session) Start() error {
	if s.stage != StageIntro {
		return fmt.Errorf("start from %s: %w", s.stage, ErrWrongStage)
	}
	s.stage = StageInProgress
	s.index = 0
	s.emit(EventApplied)
	return nil
}

// Answer scores the selected option for the current question. One wrong
// answer knocks the candidate out, whatever questions remain.
func (s *Session) Answer(selected int) error {
	if s.stage != StageInProgress {
		return fmt.Errorf("answer in %s: %w", s.stage, ErrWrongStage)
	}
	if !s.job.ValidOption(s.index, selected) {
		return fmt.Errorf("option %d for question %d: %w", selected, s.index, ErrInvalidSelection)
	}

	switch {
	case !s.job.IsCorrect(s.index, selected):
		s.stage = StageKnockedOut
		s.emit(EventKnockedOut)
	case s.job.IsLast(s.index):
		s.stage = StagePassed
	default:
		s.index++
	}
	return nil
}

// SubmitApplication stores the applicant profile once the candidate passed.
func (s *Session) SubmitApplication(a Applicant) error {
	switch s.stage {
	case StagePassed:
	case StageResumeSubmitted:
		return ErrAlreadySubmitted
	default:
		return fmt.Errorf("submit application in %s: %w", s.stage, ErrWrongStage)
	}

	checked, err := a.check()
	if err != nil {
		return err
	}

	s.applicant = &checked
	s.stage = StageResumeSubmitted
	s.emit(EventShortlisted)
	return nil
}

func (s *Session) emit(kind EventKind) {
	s.sink.Record(Event{Kind: kind, JobID: s.jobID, SessionID: s.id})
}
