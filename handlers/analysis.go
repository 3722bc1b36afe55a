// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"sort"

	"github.com/danielhkuo/talentflow/cliparse"
	"github.com/danielhkuo/talentflow/db"
	"github.com/danielhkuo/talentflow/middleware"
	"github.com/danielhkuo/talentflow/models"
)

type AnalysisHandler struct {
	store *db.Store
	cfg   cliparse.Config
}

func NewAnalysisHandler(store *db.Store, cfg cliparse.Config) *AnalysisHandler {
	return &AnalysisHandler{store: store, cfg: cfg}
}

// Get handles GET /api/analysis
func (h *AnalysisHandler) Get(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.store.ListJobs(r.Context())
	if err != nil {
		storeFailed(w, r, err, "Job not found")
		return
	}
	candidates, err := h.store.ListCandidates(r.Context())
	if err != nil {
		storeFailed(w, r, err, "Candidate not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, ComputeAnalysis(jobs, candidates))
}

// ComputeAnalysis summarizes the hiring pipeline. Stages are reported in
// pipeline order, including empty ones.
func ComputeAnalysis(jobs []models.Job, candidates []models.Candidate) models.AnalysisResponse {
	resp := models.AnalysisResponse{
		JobsByStatus: map[string]int{
			models.JobStatusActive:   0,
			models.JobStatusArchived: 0,
		},
		Stages: make([]models.StageStats, 0, len(models.Stages)),
	}
	for _, j := range jobs {
		resp.JobsByStatus[j.Status]++
	}

	experience := make(map[string][]float64, len(models.Stages))
	for _, c := range candidates {
		experience[c.Stage] = append(experience[c.Stage], float64(c.Experience))
	}

	total := len(candidates)
	for _, stage := range models.Stages {
		years := experience[stage]
		sort.Float64s(years)

		stat := models.StageStats{
			Stage:            stage,
			Count:            len(years),
			ExperienceMedian: percentile(years, 0.5),
			ExperienceP10:    percentile(years, 0.1),
			ExperienceP90:    percentile(years, 0.9),
			ExperienceMean:   mean(years),
		}
		if total > 0 {
			stat.Share = float64(stat.Count) / float64(total)
		}
		resp.Stages = append(resp.Stages, stat)
	}

	hired := len(experience[models.StageHired])
	rejected := len(experience[models.StageRejected])
	resp.Totals = models.AnalysisTotals{
		Candidates: total,
		Hired:      hired,
		Rejected:   rejected,
		InProcess:  total - hired - rejected,
	}
	return resp
}

// percentile calculates the p-th percentile of sorted data
// p should be in range [0, 1]
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0.0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}

	// Linear interpolation between closest ranks
	rank := p * float64(len(sorted)-1)
	lower := int(rank)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := rank - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
