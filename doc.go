// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the talentflow mock API server.

talentflow serves jobs, candidates and assessments for a hiring
dashboard frontend. Resource endpoints add simulated network latency and
fail a share of requests so the frontend's loading and error states get
exercised.

# Starting the Server

Only the session salt is required; everything else has a default:

	SESSION_SALT=dev go run .

Or with flags:

	go run . -p 3318 -t sqlite -d talentflow.db

Settings may also come from a .env file or a config file passed with -c.

# Configuration

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): SQLite file or PostgreSQL connection string
  - SESSION_SALT: Secret for signing session tokens
  - ADMIN_USERNAME, ADMIN_PASSWORD: Login credentials
  - SIM_MIN_DELAY, SIM_MAX_DELAY, SIM_FAILURE_RATE: Network simulation
  - SEED: Populate an empty database with demo data (default: true)

# Architecture

  - handlers: HTTP request handlers (jobs, candidates, assessments, analysis, admin, auth)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, network simulation, JSON helpers
  - models: Domain and request/response types
  - db: Schema and store for SQLite and PostgreSQL
  - seed: Demo data generation
  - query: Search, filter, sort and pagination
  - simulate: Latency and failure injection
  - auth: Credential check and session tokens
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
