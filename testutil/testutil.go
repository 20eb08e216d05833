// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/dmless/auth"
	"github.com/danielhkuo/dmless/cliparse"
	"github.com/danielhkuo/dmless/db"
	"github.com/danielhkuo/dmless/jobdef"
	"github.com/danielhkuo/dmless/screening"
	"github.com/danielhkuo/dmless/store"
)

// TestDBURL is an in-memory SQLite database private to one *sql.DB
const TestDBURL = "file::memory:?_pragma=foreign_keys(1)"

// SetupTestDB creates a fresh in-memory database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         cliparse.DefaultPort,
		DatabaseURL:  TestDBURL,
		DatabaseType: db.TypeSQLite,
		AdminKeySalt: "test-admin-salt",
		LinkSlugSalt: "test-slug-salt",
		BaseURL:      "https://dmless.test",
	}
}

// TestQuestions builds one question per entry in correct, each with four
// options and the given correct index.
func TestQuestions(correct ...int) []jobdef.Question {
	qs := make([]jobdef.Question, len(correct))
	for i, c := range correct {
		qs[i] = jobdef.Question{
			Prompt:             "Screening question",
			Options:            []string{"Option A", "Option B", "Option C", "Option D"},
			CorrectOptionIndex: c,
		}
	}
	return qs
}

// CreateTestJob stores an open job and returns its ID, admin key and share slug
func CreateTestJob(t *testing.T, st *store.Store, cfg cliparse.Config, correct ...int) (jobID, adminKey, shareSlug string) {
	t.Helper()

	def, err := jobdef.Validate("Test Job", "A test job", TestQuestions(correct...))
	if err != nil {
		t.Fatalf("Invalid test job: %v", err)
	}

	jobID, _ = auth.GenerateID(16)
	shareSlug = auth.GenerateShareSlug(jobID, cfg.LinkSlugSalt)
	err = st.SaveJob(context.Background(), store.JobRecord{
		ID:         jobID,
		ShareSlug:  shareSlug,
		CreatedAt:  time.Now(),
		Definition: def,
	})
	if err != nil {
		t.Fatalf("Failed to create test job: %v", err)
	}

	return jobID, auth.GenerateAdminKey(jobID, cfg.AdminKeySalt), shareSlug
}

// CreateTestSession stores a new intro-stage session and returns its ID and token
func CreateTestSession(t *testing.T, st *store.Store, jobID string) (sessionID, token string) {
	t.Helper()

	sessionID = uuid.NewString()
	token, _ = auth.GenerateCandidateToken()
	err := st.CreateSession(context.Background(), store.SessionRecord{
		Snapshot:       screening.Snapshot{ID: sessionID, JobID: jobID, Stage: screening.StageIntro},
		CandidateToken: token,
		CreatedAt:      time.Now(),
	})
	if err != nil {
		t.Fatalf("Failed to create test session: %v", err)
	}
	return sessionID, token
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// AssertErrorCode decodes an error response and checks its code
func AssertErrorCode(t *testing.T, w *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	AssertStatus(t, w, status)

	var resp struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	if resp.Code != code {
		t.Errorf("Expected error code %q, got %q", code, resp.Code)
	}
}
