// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

  - Job: posting with slug, status, tags and a manual display order
  - Candidate: applicant attached to a job, in one pipeline stage
  - TimelineEvent: append-only stage change or note for a candidate
  - Assessment: per-job questionnaire of sections and questions
  - AssessmentResponse: one candidate's answers, keyed by question id

Job, Candidate and TimelineEvent implement Field so the query package
can search, filter and sort them by JSON field name.

# Request Types

Create requests carry plain values. Update requests use pointer fields
and an Apply method; nil fields leave the record unchanged:

	var req models.UpdateJobRequest
	req.Apply(&job)

# Response Types

  - LoginResponse: token, user
  - Counts: per-collection record counts
  - AnalysisResponse: totals, jobs by status, per-stage statistics
  - ErrorResponse: error

# Constants

Job status:

	JobStatusActive   = "active"
	JobStatusArchived = "archived"

Stages, in pipeline order (see Stages):

	applied, screening, interview, offer, hired, rejected

Question types:

	single_choice, multi_choice, short_text, long_text,
	numeric_range, file_upload

# Slugs

GenerateSlug lowercases a title, drops punctuation and joins words with
dashes. IsValidSlug accepts only [a-z0-9-].
*/
package models
