// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/dmless/models"
	"github.com/danielhkuo/dmless/screening"
	"github.com/danielhkuo/dmless/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	mux := NewRouter(testutil.SetupTestDB(t), testutil.GetTestConfig())

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	if w.Code != http.StatusOK || w.Body.String() != "OK" {
		t.Errorf("Expected 200 OK, got %d %q", w.Code, w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux := NewRouter(testutil.SetupTestDB(t), testutil.GetTestConfig())

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	if w.Body.String() != "dmless API v1" {
		t.Errorf("Expected body 'dmless API v1', got '%s'", w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	mux := NewRouter(testutil.SetupTestDB(t), testutil.GetTestConfig())

	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},
		{"POST", "/jobs"},
		{"GET", "/jobs/test-id/admin"},
		{"POST", "/jobs/test-id/close"},
		{"GET", "/jobs/test-id/stats"},
		{"GET", "/links/test-slug"},
		{"POST", "/links/test-slug/sessions"},
		{"GET", "/sessions/test-id"},
		{"POST", "/sessions/test-id/start"},
		{"POST", "/sessions/test-id/answers"},
		{"POST", "/sessions/test-id/application"},
		{"GET", "/dashboard"},
		{"GET", "/metrics"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))

			// 400, 401, 404 are all valid handler responses here
			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux := NewRouter(testutil.SetupTestDB(t), testutil.GetTestConfig())

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"DELETE", "/jobs/test-id/admin"},
		{"PUT", "/sessions/test-id/answers"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

// candidate drives one screening session through the mux.
type candidate struct {
	t         *testing.T
	mux       *http.ServeMux
	sessionID string
	token     string
}

func newCandidate(t *testing.T, mux *http.ServeMux, slug string) *candidate {
	t.Helper()
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/links/"+slug+"/sessions", nil, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.CreateSessionResponse
	testutil.AssertJSON(t, w, &resp)
	return &candidate{t: t, mux: mux, sessionID: resp.SessionID, token: resp.CandidateToken}
}

func (c *candidate) do(method, action string, body interface{}) *httptest.ResponseRecorder {
	c.t.Helper()
	path := "/sessions/" + c.sessionID
	if action != "" {
		path += "/" + action
	}
	w := httptest.NewRecorder()
	c.mux.ServeHTTP(w, testutil.MakeRequest(method, path, body, map[string]string{"X-Candidate-Token": c.token}))
	return w
}

func (c *candidate) session(w *httptest.ResponseRecorder) models.SessionResponse {
	c.t.Helper()
	testutil.AssertStatus(c.t, w, http.StatusOK)
	var resp models.SessionResponse
	testutil.AssertJSON(c.t, w, &resp)
	return resp
}

func createJob(t *testing.T, mux *http.ServeMux, correct ...int) models.CreateJobResponse {
	t.Helper()
	req := models.CreateJobRequest{Title: "Product Designer", Description: "Remote"}
	for _, c := range correct {
		req.Questions = append(req.Questions, models.QuestionInput{
			Prompt:             "Pick one",
			Options:            []string{"A", "B", "C"},
			CorrectOptionIndex: c,
		})
	}

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/jobs", req, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.CreateJobResponse
	testutil.AssertJSON(t, w, &resp)
	return resp
}

func TestScreeningFlow_EndToEnd(t *testing.T) {
	mux := NewRouter(testutil.SetupTestDB(t), testutil.GetTestConfig())
	job := createJob(t, mux, 1, 0)

	if !strings.HasSuffix(job.ShareURL, "/links/"+job.ShareSlug) {
		t.Errorf("Unexpected share URL %q", job.ShareURL)
	}

	// Knocked out on the second question.
	knocked := newCandidate(t, mux, job.ShareSlug)
	knocked.session(knocked.do("POST", "start", nil))
	knocked.session(knocked.do("POST", "answers", models.AnswerRequest{SelectedOptionIndex: 1}))
	resp := knocked.session(knocked.do("POST", "answers", models.AnswerRequest{SelectedOptionIndex: 2}))
	if resp.Stage != screening.StageKnockedOut {
		t.Fatalf("Expected knocked_out, got %s", resp.Stage)
	}

	// Shortlisted.
	passed := newCandidate(t, mux, job.ShareSlug)
	passed.session(passed.do("POST", "start", nil))
	passed.session(passed.do("POST", "answers", models.AnswerRequest{SelectedOptionIndex: 1}))
	resp = passed.session(passed.do("POST", "answers", models.AnswerRequest{SelectedOptionIndex: 0}))
	if resp.Stage != screening.StagePassed {
		t.Fatalf("Expected passed, got %s", resp.Stage)
	}
	resp = passed.session(passed.do("POST", "application", models.SubmitApplicationRequest{
		Name: "Jane Doe", Email: "jane@example.com", ResumeReference: "uploads/jane.pdf",
	}))
	if resp.Stage != screening.StageResumeSubmitted || resp.Applicant == nil {
		t.Fatalf("Expected resume_submitted with applicant, got %+v", resp)
	}

	// Still in intro, not counted.
	newCandidate(t, mux, job.ShareSlug)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/dashboard", nil))
	var dash models.DashboardResponse
	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertJSON(t, w, &dash)
	if dash.Totals.Applied != 2 || dash.Totals.KnockedOut != 1 || dash.Totals.Shortlisted != 1 {
		t.Errorf("Unexpected dashboard totals %+v", dash.Totals)
	}

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	body := w.Body.String()
	for _, line := range []string{
		`dmless_screening_outcomes_total{kind="applied"} 2`,
		`dmless_screening_outcomes_total{kind="knocked_out"} 1`,
		`dmless_screening_outcomes_total{kind="shortlisted"} 1`,
	} {
		if !strings.Contains(body, line) {
			t.Errorf("Expected metrics to contain %q", line)
		}
	}
}

func TestAdminRoutes(t *testing.T) {
	mux := NewRouter(testutil.SetupTestDB(t), testutil.GetTestConfig())
	job := createJob(t, mux, 2)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/jobs/"+job.JobID+"/admin", nil)
	req.Header.Set("X-Admin-Key", job.AdminKey)
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var detail models.JobDetail
	testutil.AssertJSON(t, w, &detail)
	if len(detail.Questions) != 1 || detail.Questions[0].CorrectOptionIndex != 2 {
		t.Errorf("Expected answer key in admin view, got %+v", detail.Questions)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/jobs/"+job.JobID+"/close", nil)
	req.Header.Set("X-Admin-Key", "wrong")
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusUnauthorized)
}
