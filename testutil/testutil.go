// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/talentflow/cliparse"
	"github.com/danielhkuo/talentflow/db"
	"github.com/danielhkuo/talentflow/models"
	"github.com/danielhkuo/talentflow/simulate"
)

// SetupTestStore opens a fresh SQLite store in a per-test temp directory
// with the full schema applied. It is closed when the test ends.
func SetupTestStore(t *testing.T) *db.Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "talentflow-test.db")
	store, err := db.Open(context.Background(), db.DialectSQLite, path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3318,
		DatabaseURL:   ":memory:",
		DatabaseType:  db.DialectSQLite,
		SessionSalt:   "test-session-salt",
		AdminUsername: "admin",
		AdminPassword: "password123",
		MinDelay:      0,
		MaxDelay:      0,
		FailureRate:   0,
		Seed:          false,
	}
}

// NewTestSimulator returns a simulator with no delay and no failures.
func NewTestSimulator() *simulate.Simulator {
	return simulate.New(simulate.Config{}, rand.NewPCG(1, 1))
}

// NewFailingSimulator returns a simulator that fails every call.
func NewFailingSimulator() *simulate.Simulator {
	return simulate.New(simulate.Config{FailureRate: 1}, rand.NewPCG(1, 1))
}

// CreateTestJob creates an active job whose slug is derived from title.
// Titles must be unique within a test.
func CreateTestJob(t *testing.T, store *db.Store, title string, tags ...string) models.Job {
	t.Helper()

	job := models.Job{
		Title:    title,
		Slug:     models.GenerateSlug(title),
		Status:   models.JobStatusActive,
		Location: "Remote",
		Type:     "Full-time",
		Tags:     tags,
	}
	if err := store.CreateJob(context.Background(), &job); err != nil {
		t.Fatalf("Failed to create test job: %v", err)
	}

	return job
}

var candidateSeq int

// CreateTestCandidate creates a candidate with an initial timeline event
// and returns it.
func CreateTestCandidate(t *testing.T, store *db.Store, jobID int64, stage string) models.Candidate {
	t.Helper()

	candidateSeq++
	c := models.Candidate{
		Name:       fmt.Sprintf("Test Candidate %d", candidateSeq),
		Email:      fmt.Sprintf("candidate%d@example.com", candidateSeq),
		Stage:      stage,
		JobID:      jobID,
		Experience: 3,
		Skills:     []string{"Go"},
	}
	if _, err := store.CreateCandidate(context.Background(), &c, "Initial application"); err != nil {
		t.Fatalf("Failed to create test candidate: %v", err)
	}

	return c
}

// CreateTestAssessment creates a one-section assessment for jobID.
func CreateTestAssessment(t *testing.T, store *db.Store, jobID int64) models.Assessment {
	t.Helper()

	a := models.Assessment{
		JobID: jobID,
		Title: "Test Assessment",
		Sections: []models.Section{{
			ID:    "section-1",
			Title: "Basics",
			Questions: []models.Question{
				{ID: "q1", Type: models.QuestionShortText, Title: "Why this role?", Required: true},
			},
		}},
	}
	if err := store.InsertAssessment(context.Background(), &a); err != nil {
		t.Fatalf("Failed to create test assessment: %v", err)
	}

	return a
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
