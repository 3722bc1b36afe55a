// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/talentflow/cliparse"
	"github.com/danielhkuo/talentflow/db"
	"github.com/danielhkuo/talentflow/middleware"
	"github.com/danielhkuo/talentflow/models"
	"github.com/danielhkuo/talentflow/query"
)

const defaultJobPageSize = 10

type JobHandler struct {
	store *db.Store
	cfg   cliparse.Config
}

func NewJobHandler(store *db.Store, cfg cliparse.Config) *JobHandler {
	return &JobHandler{store: store, cfg: cfg}
}

// List handles GET /api/jobs
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.store.ListJobs(r.Context())
	if err != nil {
		storeFailed(w, r, err, "Job not found")
		return
	}

	q := r.URL.Query()
	jobs = query.Search(jobs, q.Get("search"), "title", "description", "tags")
	jobs = query.Filter(jobs, map[string]any{"status": q.Get("status")})
	jobs = query.Sort(jobs, queryString(r, "sort", "createdAt"), queryString(r, "order", query.Desc))

	middleware.JSONResponse(w, http.StatusOK,
		query.Paginate(jobs, queryInt(r, "page", 1), queryInt(r, "pageSize", defaultJobPageSize)))
}

// Create handles POST /api/jobs
func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateJobRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	job := models.Job{
		Title:        strings.TrimSpace(req.Title),
		Slug:         req.Slug,
		Description:  req.Description,
		Location:     req.Location,
		Type:         req.Type,
		Status:       req.Status,
		Salary:       req.Salary,
		Tags:         req.Tags,
		Requirements: req.Requirements,
	}
	if job.Slug == "" {
		job.Slug = models.GenerateSlug(job.Title)
	}
	if job.Status == "" {
		job.Status = models.JobStatusActive
	}
	if msg := validateJob(job); msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	if err := h.store.CreateJob(r.Context(), &job); err != nil {
		storeFailed(w, r, err, "Job not found")
		return
	}

	slog.Info("job created", "job_id", job.ID, "slug", job.Slug)
	middleware.JSONResponse(w, http.StatusCreated, job)
}

// Get handles GET /api/jobs/{id}
func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	job, err := h.store.GetJob(r.Context(), id)
	if err != nil {
		storeFailed(w, r, err, "Job not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, job)
}

// Update handles PATCH /api/jobs/{id}
func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.UpdateJobRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	job, err := h.store.GetJob(r.Context(), id)
	if err != nil {
		storeFailed(w, r, err, "Job not found")
		return
	}

	req.Apply(&job)
	job.Title = strings.TrimSpace(job.Title)
	if msg := validateJob(job); msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	if err := h.store.UpdateJob(r.Context(), &job); err != nil {
		storeFailed(w, r, err, "Job not found")
		return
	}

	slog.Info("job updated", "job_id", job.ID)
	middleware.JSONResponse(w, http.StatusOK, job)
}

// Delete handles DELETE /api/jobs/{id}
func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	job, err := h.store.GetJob(r.Context(), id)
	if err != nil {
		storeFailed(w, r, err, "Job not found")
		return
	}

	if err := h.store.DeleteJob(r.Context(), id); err != nil {
		storeFailed(w, r, err, "Job not found")
		return
	}

	slog.Info("job deleted", "job_id", id)
	middleware.JSONResponse(w, http.StatusOK, job)
}

// Reorder handles PATCH /api/jobs/{id}/reorder
func (h *JobHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.ReorderJobRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.NewOrder == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "newOrder is required")
		return
	}
	if *req.NewOrder < 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "newOrder must not be negative")
		return
	}

	job, err := h.store.ReorderJob(r.Context(), id, *req.NewOrder)
	if err != nil {
		storeFailed(w, r, err, "Job not found")
		return
	}

	slog.Info("job reordered", "job_id", id, "order", job.Order)
	middleware.JSONResponse(w, http.StatusOK, job)
}

// validateJob returns a client-facing message, or "" if j is acceptable.
func validateJob(j models.Job) string {
	switch {
	case j.Title == "":
		return "Title is required"
	case !models.IsValidSlug(j.Slug):
		return "Invalid slug"
	case !models.IsValidJobStatus(j.Status):
		return "Invalid status"
	}
	return ""
}
