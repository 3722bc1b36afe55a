// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/danielhkuo/talentflow/cliparse"
	"github.com/danielhkuo/talentflow/db"
	"github.com/danielhkuo/talentflow/middleware"
	"github.com/danielhkuo/talentflow/models"
	"github.com/danielhkuo/talentflow/query"
)

const defaultCandidatePageSize = 50

type CandidateHandler struct {
	store *db.Store
	cfg   cliparse.Config
}

func NewCandidateHandler(store *db.Store, cfg cliparse.Config) *CandidateHandler {
	return &CandidateHandler{store: store, cfg: cfg}
}

// List handles GET /api/candidates
func (h *CandidateHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		candidates []models.Candidate
		err        error
	)
	// the job filter runs in SQL; the rest in memory
	if raw := q.Get("jobId"); raw != "" && raw != query.All {
		jobID, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid jobId")
			return
		}
		candidates, err = h.store.ListCandidatesByJob(r.Context(), jobID)
	} else {
		candidates, err = h.store.ListCandidates(r.Context())
	}
	if err != nil {
		storeFailed(w, r, err, "Candidate not found")
		return
	}

	candidates = query.Search(candidates, q.Get("search"), "name", "email")
	candidates = query.Filter(candidates, map[string]any{"stage": q.Get("stage")})
	candidates = query.Sort(candidates, queryString(r, "sort", "createdAt"), queryString(r, "order", query.Desc))

	middleware.JSONResponse(w, http.StatusOK,
		query.Paginate(candidates, queryInt(r, "page", 1), queryInt(r, "pageSize", defaultCandidatePageSize)))
}

// Create handles POST /api/candidates
func (h *CandidateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCandidateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	c := models.Candidate{
		Name:       strings.TrimSpace(req.Name),
		Email:      strings.TrimSpace(req.Email),
		Phone:      req.Phone,
		Stage:      req.Stage,
		JobID:      req.JobID,
		Experience: req.Experience,
		Skills:     req.Skills,
		Resume:     req.Resume,
		Location:   req.Location,
	}
	if c.Stage == "" {
		c.Stage = models.StageApplied
	}
	if msg := validateCandidate(c); msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	if _, err := h.store.CreateCandidate(r.Context(), &c, "Initial application"); err != nil {
		storeFailed(w, r, err, "Candidate not found")
		return
	}

	slog.Info("candidate created", "candidate_id", c.ID, "job_id", c.JobID, "stage", c.Stage)
	middleware.JSONResponse(w, http.StatusCreated, c)
}

// Get handles GET /api/candidates/{id}
func (h *CandidateHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	c, err := h.store.GetCandidate(r.Context(), id)
	if err != nil {
		storeFailed(w, r, err, "Candidate not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, c)
}

// Update handles PATCH /api/candidates/{id}
func (h *CandidateHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.UpdateCandidateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	prev, err := h.store.GetCandidate(r.Context(), id)
	if err != nil {
		storeFailed(w, r, err, "Candidate not found")
		return
	}

	next := prev
	req.Apply(&next)
	next.Name = strings.TrimSpace(next.Name)
	next.Email = strings.TrimSpace(next.Email)
	if msg := validateCandidate(next); msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	if err := h.store.UpdateCandidate(r.Context(), prev, &next); err != nil {
		storeFailed(w, r, err, "Candidate not found")
		return
	}

	if next.Stage != prev.Stage {
		slog.Info("candidate stage changed", "candidate_id", id, "from", prev.Stage, "to", next.Stage)
	}
	middleware.JSONResponse(w, http.StatusOK, next)
}

// Delete handles DELETE /api/candidates/{id}
func (h *CandidateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	c, err := h.store.GetCandidate(r.Context(), id)
	if err != nil {
		storeFailed(w, r, err, "Candidate not found")
		return
	}

	if err := h.store.DeleteCandidateCascade(r.Context(), id); err != nil {
		storeFailed(w, r, err, "Candidate not found")
		return
	}

	slog.Info("candidate deleted", "candidate_id", id)
	middleware.JSONResponse(w, http.StatusOK, c)
}

// Timeline handles GET /api/candidates/{id}/timeline
func (h *CandidateHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if _, err := h.store.GetCandidate(r.Context(), id); err != nil {
		storeFailed(w, r, err, "Candidate not found")
		return
	}

	events, err := h.store.ListTimeline(r.Context(), id)
	if err != nil {
		storeFailed(w, r, err, "Candidate not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, events)
}

// AddNote handles POST /api/candidates/{id}/notes
func (h *CandidateHandler) AddNote(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.AddNoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if strings.TrimSpace(req.Notes) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Notes are required")
		return
	}

	c, err := h.store.GetCandidate(r.Context(), id)
	if err != nil {
		storeFailed(w, r, err, "Candidate not found")
		return
	}

	event := models.TimelineEvent{
		CandidateID: id,
		Stage:       c.Stage,
		Notes:       req.Notes,
	}
	if err := h.store.AppendTimeline(r.Context(), &event); err != nil {
		storeFailed(w, r, err, "Candidate not found")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, event)
}

func validateCandidate(c models.Candidate) string {
	switch {
	case c.Name == "":
		return "Name is required"
	case c.Email == "":
		return "Email is required"
	case !models.IsValidStage(c.Stage):
		return "Invalid stage"
	}
	return ""
}
