// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/talentflow/cliparse"
	"github.com/danielhkuo/talentflow/db"
	"github.com/danielhkuo/talentflow/middleware"
	"github.com/danielhkuo/talentflow/models"
)

// AssessmentHandler serves the assessment attached to each job. Routes
// are keyed by job id; a job has at most one assessment.
type AssessmentHandler struct {
	store *db.Store
	cfg   cliparse.Config
}

func NewAssessmentHandler(store *db.Store, cfg cliparse.Config) *AssessmentHandler {
	return &AssessmentHandler{store: store, cfg: cfg}
}

// List handles GET /api/assessments
func (h *AssessmentHandler) List(w http.ResponseWriter, r *http.Request) {
	assessments, err := h.store.ListAssessments(r.Context())
	if err != nil {
		storeFailed(w, r, err, "Assessment not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, assessments)
}

// Get handles GET /api/assessments/{jobId}
func (h *AssessmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	a, ok := h.lookup(w, r)
	if !ok {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, a)
}

// Upsert handles PUT /api/assessments/{jobId}
func (h *AssessmentHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	jobID, ok := pathID(w, r, "jobId")
	if !ok {
		return
	}

	var req models.UpsertAssessmentRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	a, err := h.store.GetAssessmentByJob(r.Context(), jobID)
	switch {
	case errors.Is(err, db.ErrNotFound):
		a = models.Assessment{JobID: jobID, Sections: []models.Section{}}
		req.Apply(&a)
		if err := h.store.InsertAssessment(r.Context(), &a); err != nil {
			storeFailed(w, r, err, "Assessment not found")
			return
		}
		slog.Info("assessment created", "assessment_id", a.ID, "job_id", jobID)
		middleware.JSONResponse(w, http.StatusCreated, a)

	case err != nil:
		storeFailed(w, r, err, "Assessment not found")

	default:
		req.Apply(&a)
		if err := h.store.UpdateAssessment(r.Context(), &a); err != nil {
			storeFailed(w, r, err, "Assessment not found")
			return
		}
		slog.Info("assessment updated", "assessment_id", a.ID, "job_id", jobID)
		middleware.JSONResponse(w, http.StatusOK, a)
	}
}

// Submit handles POST /api/assessments/{jobId}/submit
func (h *AssessmentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	jobID, ok := pathID(w, r, "jobId")
	if !ok {
		return
	}

	var req models.SubmitAssessmentRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.CandidateID <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "candidateId is required")
		return
	}

	a, err := h.store.GetAssessmentByJob(r.Context(), jobID)
	if err != nil {
		storeFailed(w, r, err, "Assessment not found")
		return
	}

	resp := models.AssessmentResponse{
		AssessmentID: a.ID,
		CandidateID:  req.CandidateID,
		Responses:    req.Responses,
	}
	if err := h.store.InsertResponse(r.Context(), &resp); err != nil {
		storeFailed(w, r, err, "Assessment not found")
		return
	}

	slog.Info("assessment submitted",
		"assessment_id", a.ID,
		"candidate_id", req.CandidateID,
		"answers", len(resp.Responses),
	)
	middleware.JSONResponse(w, http.StatusCreated, resp)
}

// Responses handles GET /api/assessments/{jobId}/responses
func (h *AssessmentHandler) Responses(w http.ResponseWriter, r *http.Request) {
	a, ok := h.lookup(w, r)
	if !ok {
		return
	}

	responses, err := h.store.ListResponses(r.Context(), a.ID)
	if err != nil {
		storeFailed(w, r, err, "Assessment not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, responses)
}

// Delete handles DELETE /api/assessments/{jobId}
func (h *AssessmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	a, ok := h.lookup(w, r)
	if !ok {
		return
	}

	if err := h.store.DeleteAssessmentCascade(r.Context(), a.ID); err != nil {
		storeFailed(w, r, err, "Assessment not found")
		return
	}

	slog.Info("assessment deleted", "assessment_id", a.ID, "job_id", a.JobID)
	middleware.JSONResponse(w, http.StatusOK, a)
}

// lookup resolves the jobId path value to its assessment, writing the
// error response itself on failure.
func (h *AssessmentHandler) lookup(w http.ResponseWriter, r *http.Request) (models.Assessment, bool) {
	jobID, ok := pathID(w, r, "jobId")
	if !ok {
		return models.Assessment{}, false
	}

	a, err := h.store.GetAssessmentByJob(r.Context(), jobID)
	if err != nil {
		storeFailed(w, r, err, "Assessment not found")
		return models.Assessment{}, false
	}
	return a, true
}
