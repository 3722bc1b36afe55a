// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the talentflow mock API.

# Handler Types

Each handler is a struct with store and config dependencies:

  - JobHandler: job CRUD and reordering
  - CandidateHandler: candidate CRUD, timeline and notes
  - AssessmentHandler: per-job assessments and submitted responses
  - AnalysisHandler: hiring pipeline statistics
  - AdminHandler: reset and record counts
  - AuthHandler: admin login and session check

Handlers are created via constructor functions:

	jobHandler := handlers.NewJobHandler(store, cfg)

# List Endpoints

List endpoints load the collection and run it through query.Search,
query.Filter, query.Sort and query.Paginate, in that order. Page and
pageSize fall back to their defaults when missing or not positive.

	GET /api/jobs?search=go&status=active&page=2&pageSize=10&sort=order&order=asc

# Error Responses

All errors are {"error": "<message>"}:

  - 400: malformed JSON, non-numeric id, failed validation, slug conflict
  - 401: bad login or session token
  - 404: "<Resource> not found"
  - 500: "Database error"

# Timelines

Creating a candidate appends an "Initial application" event. Changing
the stage appends "Moved to <stage> stage"; saving the same stage
appends nothing. Notes are appended at the candidate's current stage.

# Analysis

ComputeAnalysis reports candidate counts per stage with the median,
p10, p90 and mean of years of experience. Percentiles interpolate
linearly between closest ranks.
*/
package handlers
