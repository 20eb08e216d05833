// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/dmless/auth"
	"github.com/danielhkuo/dmless/cliparse"
	"github.com/danielhkuo/dmless/middleware"
	"github.com/danielhkuo/dmless/models"
	"github.com/danielhkuo/dmless/schemas"
	"github.com/danielhkuo/dmless/screening"
	"github.com/danielhkuo/dmless/store"
)

type ScreeningHandler struct {
	store *store.Store
	sink  screening.Sink
	cfg   cliparse.Config
}

// NewScreeningHandler creates the candidate-facing handler. Events from
// committed session changes are forwarded to sink.
func NewScreeningHandler(st *store.Store, sink screening.Sink, cfg cliparse.Config) *ScreeningHandler {
	return &ScreeningHandler{store: st, sink: sink, cfg: cfg}
}

// GetLink handles GET /links/{slug}
// Returns the intro screen data. The answer key is never included.
func (h *ScreeningHandler) GetLink(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	job, err := h.store.LoadJobBySlug(r.Context(), slug)
	if err != nil {
		writeError(w, err, "slug", slug)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.PublicJob{
		Title:         job.Definition.Title(),
		Description:   job.Definition.Description(),
		QuestionCount: job.Definition.NumQuestions(),
		Status:        job.Status,
	})
}

// CreateSession handles POST /links/{slug}/sessions
// Each call starts a fresh attempt in the intro stage.
func (h *ScreeningHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	job, err := h.store.LoadJobBySlug(r.Context(), slug)
	if err != nil {
		writeError(w, err, "slug", slug)
		return
	}
	if job.Status != store.StatusOpen {
		middleware.ErrorResponseWithCode(w, http.StatusConflict, "job_closed", "", "This job is no longer accepting candidates")
		return
	}

	token, err := auth.GenerateCandidateToken()
	if err != nil {
		slog.Error("failed to generate candidate token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to start session")
		return
	}

	sess := screening.New(uuid.NewString(), job.ID, job.Definition, nil)
	err = h.store.CreateSession(r.Context(), store.SessionRecord{
		Snapshot:       sess.Snapshot(),
		CandidateToken: token,
		IPHash:         auth.HashIP(middleware.GetClientIP(r), h.cfg.AdminKeySalt),
		UserAgent:      r.UserAgent(),
		CreatedAt:      time.Now(),
	})
	if err != nil {
		writeError(w, err, "job_id", job.ID)
		return
	}

	slog.Info("session created", "job_id", job.ID, "session_id", sess.ID())

	middleware.JSONResponse(w, http.StatusCreated, models.CreateSessionResponse{
		SessionID:      sess.ID(),
		CandidateToken: token,
		Stage:          sess.Stage(),
	})
}

// load fetches the session in the path, checks the candidate token and
// restores it against its job. Events raised by later operations collect in
// events until the change is saved.
func (h *ScreeningHandler) load(w http.ResponseWriter, r *http.Request, events screening.Sink) (*screening.Session, *store.SessionRecord, bool) {
	sessionID := r.PathValue("id")
	rec, err := h.store.LoadSession(r.Context(), sessionID)
	if err != nil {
		writeError(w, err, "session_id", sessionID)
		return nil, nil, false
	}
	if err := auth.ValidateCandidateToken(r.Header.Get("X-Candidate-Token"), rec.CandidateToken); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid candidate token")
		return nil, nil, false
	}

	job, err := h.store.LoadJob(r.Context(), rec.Snapshot.JobID)
	if err != nil {
		writeError(w, err, "session_id", sessionID)
		return nil, nil, false
	}
	sess, err := screening.Restore(job.Definition, rec.Snapshot, events)
	if err != nil {
		writeError(w, err, "session_id", sessionID)
		return nil, nil, false
	}
	return sess, rec, true
}

// apply runs op on the session and saves the result. Events are forwarded
// only after the save commits.
func (h *ScreeningHandler) apply(w http.ResponseWriter, r *http.Request, op func(*screening.Session) error) {
	events := &screening.Recorder{}
	sess, rec, ok := h.load(w, r, events)
	if !ok {
		return
	}

	from := sess.Stage()
	if err := op(sess); err != nil {
		writeError(w, err, "session_id", sess.ID())
		return
	}

	if err := h.store.SaveSession(r.Context(), sess.Snapshot(), rec.Version, events.Events()); err != nil {
		writeError(w, err, "session_id", sess.ID())
		return
	}
	events.Forward(h.sink)

	if sess.Stage() != from {
		slog.Info("session stage changed",
			"job_id", sess.JobID(),
			"session_id", sess.ID(),
			"from", from,
			"stage", sess.Stage(),
		)
	}

	middleware.JSONResponse(w, http.StatusOK, sessionResponse(sess))
}

// GetSession handles GET /sessions/{id}
func (h *ScreeningHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sess, _, ok := h.load(w, r, nil)
	if !ok {
		return
	}
	middleware.JSONResponse(w, http.StatusOK, sessionResponse(sess))
}

// StartSession handles POST /sessions/{id}/start
func (h *ScreeningHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, func(s *screening.Session) error {
		return s.Start()
	})
}

// Answer handles POST /sessions/{id}/answers
func (h *ScreeningHandler) Answer(w http.ResponseWriter, r *http.Request) {
	var req models.AnswerRequest
	if err := middleware.ReadJSONBody(r, schemas.Answer, &req); err != nil {
		middleware.BodyErrorResponse(w, err)
		return
	}

	h.apply(w, r, func(s *screening.Session) error {
		return s.Answer(req.SelectedOptionIndex)
	})
}

// SubmitApplication handles POST /sessions/{id}/application
func (h *ScreeningHandler) SubmitApplication(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitApplicationRequest
	if err := middleware.ReadJSONBody(r, schemas.Application, &req); err != nil {
		middleware.BodyErrorResponse(w, err)
		return
	}

	h.apply(w, r, func(s *screening.Session) error {
		return s.SubmitApplication(screening.Applicant{
			Name:            req.Name,
			Email:           req.Email,
			ResumeReference: req.ResumeReference,
		})
	})
}

func sessionResponse(s *screening.Session) models.SessionResponse {
	resp := models.SessionResponse{
		SessionID:     s.ID(),
		JobID:         s.JobID(),
		Stage:         s.Stage(),
		QuestionIndex: s.QuestionIndex(),
		QuestionCount: s.QuestionCount(),
	}
	if q, ok := s.CurrentQuestion(); ok {
		resp.Question = &q
	}
	if a, ok := s.Applicant(); ok {
		resp.Applicant = &a
	}
	return resp
}
