// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote, request_id) and completion
(status, duration_ms). The request id comes from the X-Request-ID header
or is a fresh UUID; it is echoed in the response and available to
handlers via RequestID(r.Context()).

# Network Simulation

Mock API routes run behind a simulator that adds latency and fails a
fraction of requests:

	mux.HandleFunc("GET /api/jobs", middleware.WithLogging(
		middleware.WithNetworkSimulation(sim, jobHandler.List)))

Injected failures produce 503 {"error": "Network error: Operation failed"}
without calling the handler. A client that disconnects during the delay
gets nothing and the handler never runs.

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, PUT, PATCH, DELETE, OPTIONS with headers
Content-Type, Authorization, X-Request-ID.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusNotFound, "Job not found")

Errors are always {"error": "<message>"}.

Parse JSON request bodies:

	var req models.CreateJobRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Logged with every request.
*/
package middleware
