// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the talentflow mock API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(store, sim, cfg)

Every route except /health is wrapped in request logging. Resource
routes also run behind the network simulator.

# Endpoints

Health:

	GET /health

Jobs (simulated):

	GET    /api/jobs
	POST   /api/jobs
	GET    /api/jobs/{id}
	PATCH  /api/jobs/{id}
	DELETE /api/jobs/{id}
	PATCH  /api/jobs/{id}/reorder

Candidates (simulated):

	GET    /api/candidates
	POST   /api/candidates
	GET    /api/candidates/{id}
	PATCH  /api/candidates/{id}
	DELETE /api/candidates/{id}
	GET    /api/candidates/{id}/timeline
	POST   /api/candidates/{id}/notes

Assessments, keyed by job id (simulated):

	GET    /api/assessments
	GET    /api/assessments/{jobId}
	PUT    /api/assessments/{jobId}
	DELETE /api/assessments/{jobId}
	POST   /api/assessments/{jobId}/submit
	GET    /api/assessments/{jobId}/responses

Analysis (simulated):

	GET /api/analysis

Admin and auth:

	POST /api/admin/reset
	GET  /api/admin/counts
	POST /api/auth/login
	GET  /api/auth/session
*/
package router
