// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/dmless/auth"
	"github.com/danielhkuo/dmless/cliparse"
	"github.com/danielhkuo/dmless/jobdef"
	"github.com/danielhkuo/dmless/middleware"
	"github.com/danielhkuo/dmless/models"
	"github.com/danielhkuo/dmless/schemas"
	"github.com/danielhkuo/dmless/store"
)

type JobHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewJobHandler(st *store.Store, cfg cliparse.Config) *JobHandler {
	return &JobHandler{store: st, cfg: cfg}
}

// CreateJob handles POST /jobs
func (h *JobHandler) CreateJob(w http.ResponseWriter, r *http.Request) {
	var req models.CreateJobRequest
	if err := middleware.ReadJSONBody(r, schemas.CreateJob, &req); err != nil {
		middleware.BodyErrorResponse(w, err)
		return
	}

	questions := make([]jobdef.Question, len(req.Questions))
	for i, q := range req.Questions {
		questions[i] = jobdef.Question{
			Prompt:             q.Prompt,
			Options:            q.Options,
			CorrectOptionIndex: q.CorrectOptionIndex,
		}
	}
	def, err := jobdef.Validate(req.Title, req.Description, questions)
	if err != nil {
		writeError(w, err)
		return
	}

	jobID, err := auth.GenerateID(16)
	if err != nil {
		slog.Error("failed to generate job ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create job")
		return
	}
	shareSlug := auth.GenerateShareSlug(jobID, h.cfg.LinkSlugSalt)

	err = h.store.SaveJob(r.Context(), store.JobRecord{
		ID:         jobID,
		ShareSlug:  shareSlug,
		CreatedAt:  time.Now(),
		Definition: def,
	})
	if err != nil {
		writeError(w, err, "job_id", jobID)
		return
	}

	slog.Info("job created", "job_id", jobID, "questions", def.NumQuestions())

	middleware.JSONResponse(w, http.StatusCreated, models.CreateJobResponse{
		JobID:     jobID,
		AdminKey:  auth.GenerateAdminKey(jobID, h.cfg.AdminKeySalt),
		ShareSlug: shareSlug,
		ShareURL:  h.cfg.ShareURL(shareSlug),
	})
}

// authorize checks the X-Admin-Key header for the job in the path.
func (h *JobHandler) authorize(w http.ResponseWriter, r *http.Request) (string, bool) {
	jobID := r.PathValue("id")
	if jobID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "job_id is required")
		return "", false
	}
	if err := auth.ValidateAdminKey(jobID, r.Header.Get("X-Admin-Key"), h.cfg.AdminKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return "", false
	}
	return jobID, true
}

// GetJobAdmin handles GET /jobs/{id}/admin
// Returns the full definition, answer key included.
func (h *JobHandler) GetJobAdmin(w http.ResponseWriter, r *http.Request) {
	jobID, ok := h.authorize(w, r)
	if !ok {
		return
	}

	job, err := h.store.LoadJob(r.Context(), jobID)
	if err != nil {
		writeError(w, err, "job_id", jobID)
		return
	}
	jt, err := h.store.JobTally(r.Context(), jobID)
	if err != nil {
		writeError(w, err, "job_id", jobID)
		return
	}

	def := job.Definition
	questions := make([]models.QuestionInput, 0, def.NumQuestions())
	for _, q := range def.Questions() {
		questions = append(questions, models.QuestionInput{
			Prompt:             q.Prompt,
			Options:            q.Options,
			CorrectOptionIndex: q.CorrectOptionIndex,
		})
	}

	middleware.JSONResponse(w, http.StatusOK, models.JobDetail{
		JobID:       job.ID,
		Title:       def.Title(),
		Description: def.Description(),
		Status:      job.Status,
		ShareSlug:   job.ShareSlug,
		ShareURL:    h.cfg.ShareURL(job.ShareSlug),
		Questions:   questions,
		Stats:       jt.Tally,
		CreatedAt:   job.CreatedAt,
		ClosedAt:    job.ClosedAt,
	})
}

// CloseJob handles POST /jobs/{id}/close
// New sessions are refused afterwards; sessions already started may finish.
func (h *JobHandler) CloseJob(w http.ResponseWriter, r *http.Request) {
	jobID, ok := h.authorize(w, r)
	if !ok {
		return
	}

	closedAt := time.Now()
	if err := h.store.CloseJob(r.Context(), jobID, closedAt); err != nil {
		writeError(w, err, "job_id", jobID)
		return
	}
	jt, err := h.store.JobTally(r.Context(), jobID)
	if err != nil {
		writeError(w, err, "job_id", jobID)
		return
	}

	slog.Info("job closed", "job_id", jobID, "applied", jt.Tally.Applied)

	middleware.JSONResponse(w, http.StatusOK, models.CloseJobResponse{
		ClosedAt: closedAt,
		Stats:    jt.Tally,
	})
}

// GetJobStats handles GET /jobs/{id}/stats
func (h *JobHandler) GetJobStats(w http.ResponseWriter, r *http.Request) {
	jobID, ok := h.authorize(w, r)
	if !ok {
		return
	}

	jt, err := h.store.JobTally(r.Context(), jobID)
	if err != nil {
		writeError(w, err, "job_id", jobID)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.JobStats{
		JobID:     jt.JobID,
		Title:     jt.Title,
		Status:    jt.Status,
		ShareURL:  h.cfg.ShareURL(jt.ShareSlug),
		CreatedAt: jt.CreatedAt,
		Stats:     jt.Tally,
	})
}
