// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/talentflow/cliparse"
	"github.com/danielhkuo/talentflow/db"
	"github.com/danielhkuo/talentflow/handlers"
	"github.com/danielhkuo/talentflow/middleware"
	"github.com/danielhkuo/talentflow/seed"
	"github.com/danielhkuo/talentflow/simulate"
)

func NewRouter(store *db.Store, sim *simulate.Simulator, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	jobHandler := handlers.NewJobHandler(store, cfg)
	candidateHandler := handlers.NewCandidateHandler(store, cfg)
	assessmentHandler := handlers.NewAssessmentHandler(store, cfg)
	analysisHandler := handlers.NewAnalysisHandler(store, cfg)
	adminHandler := handlers.NewAdminHandler(store, seed.Options{})
	authHandler := handlers.NewAuthHandler(cfg)

	// mock routes pay the simulated network cost
	mock := func(pattern string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, middleware.WithLogging(middleware.WithNetworkSimulation(sim, h)))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Jobs
	mock("GET /api/jobs", jobHandler.List)
	mock("POST /api/jobs", jobHandler.Create)
	mock("GET /api/jobs/{id}", jobHandler.Get)
	mock("PATCH /api/jobs/{id}", jobHandler.Update)
	mock("DELETE /api/jobs/{id}", jobHandler.Delete)
	mock("PATCH /api/jobs/{id}/reorder", jobHandler.Reorder)

	// Candidates
	mock("GET /api/candidates", candidateHandler.List)
	mock("POST /api/candidates", candidateHandler.Create)
	mock("GET /api/candidates/{id}", candidateHandler.Get)
	mock("PATCH /api/candidates/{id}", candidateHandler.Update)
	mock("DELETE /api/candidates/{id}", candidateHandler.Delete)
	mock("GET /api/candidates/{id}/timeline", candidateHandler.Timeline)
	mock("POST /api/candidates/{id}/notes", candidateHandler.AddNote)

	// Assessments, keyed by job id
	mock("GET /api/assessments", assessmentHandler.List)
	mock("GET /api/assessments/{jobId}", assessmentHandler.Get)
	mock("PUT /api/assessments/{jobId}", assessmentHandler.Upsert)
	mock("DELETE /api/assessments/{jobId}", assessmentHandler.Delete)
	mock("POST /api/assessments/{jobId}/submit", assessmentHandler.Submit)
	mock("GET /api/assessments/{jobId}/responses", assessmentHandler.Responses)

	// Analysis
	mock("GET /api/analysis", analysisHandler.Get)

	// Admin and auth (no simulated latency)
	mux.HandleFunc("POST /api/admin/reset", middleware.WithLogging(adminHandler.Reset))
	mux.HandleFunc("GET /api/admin/counts", middleware.WithLogging(adminHandler.Counts))
	mux.HandleFunc("POST /api/auth/login", middleware.WithLogging(authHandler.Login))
	mux.HandleFunc("GET /api/auth/session", middleware.WithLogging(authHandler.Session))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("talentflow API v1"))
	})

	return mux
}
