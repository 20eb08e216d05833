package models

import (
	"time"

	"github.com/danielhkuo/dmless/screening"
	"github.com/danielhkuo/dmless/tally"
)

// Job status constants
const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

// Request types

type QuestionInput struct {
	Prompt             string   `json:"prompt"`
	Options            []string `json:"options"`
	CorrectOptionIndex int      `json:"correct_option_index"`
}

type CreateJobRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Questions   []QuestionInput `json:"questions"`
}

type AnswerRequest struct {
	SelectedOptionIndex int `json:"selected_option_index"`
}

type SubmitApplicationRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	ResumeReference string `json:"resume_reference"`
}

// Response types

type CreateJobResponse struct {
	JobID     string `json:"job_id"`
	AdminKey  string `json:"admin_key"`
	ShareSlug string `json:"share_slug"`
	ShareURL  string `json:"share_url"`
}

type CloseJobResponse struct {
	ClosedAt time.Time   `json:"closed_at"`
	Stats    tally.Tally `json:"stats"`
}

// JobDetail is the employer's view of a job, answer key included.
type JobDetail struct {
	JobID       string          `json:"job_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
	ShareSlug   string          `json:"share_slug"`
	ShareURL    string          `json:"share_url"`
	Questions   []QuestionInput `json:"questions"`
	Stats       tally.Tally     `json:"stats"`
	CreatedAt   time.Time       `json:"created_at"`
	ClosedAt    *time.Time      `json:"closed_at,omitempty"`
}

// PublicJob is what a candidate sees on the screening link before starting.
type PublicJob struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	QuestionCount int    `json:"question_count"`
	Status        string `json:"status"`
}

type CreateSessionResponse struct {
	SessionID      string          `json:"session_id"`
	CandidateToken string          `json:"candidate_token"`
	Stage          screening.Stage `json:"stage"`
}

type SessionResponse struct {
	SessionID     string                  `json:"session_id"`
	JobID         string                  `json:"job_id"`
	Stage         screening.Stage         `json:"stage"`
	QuestionIndex int                     `json:"question_index"`
	QuestionCount int                     `json:"question_count"`
	Question      *screening.QuestionView `json:"question,omitempty"`
	Applicant     *screening.Applicant    `json:"applicant,omitempty"`
}

type JobStats struct {
	JobID     string      `json:"job_id"`
	Title     string      `json:"title"`
	Status    string      `json:"status"`
	ShareURL  string      `json:"share_url"`
	CreatedAt time.Time   `json:"created_at"`
	Stats     tally.Tally `json:"stats"`
}

type DashboardResponse struct {
	Totals tally.Tally `json:"totals"`
	Jobs   []JobStats  `json:"jobs"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
	Field   string `json:"field,omitempty"`
}
