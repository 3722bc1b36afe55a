// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: SQLite file path or PostgreSQL connection string (default: talentflow.db)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - SessionSalt: Secret for session token HMAC (required)
  - AdminUsername, AdminPassword: Login account (default: admin / password123)
  - MinDelay, MaxDelay: Simulated latency bounds (default: 200ms..1200ms)
  - FailureRate: Fraction of simulated requests that fail (default: 0.07)
  - Seed: Seed demo data into an empty database (default: true)

# CLI Flags

	-p              Server port
	-d              Database URL
	-t              Database type
	-session-salt   Session token salt
	-admin-user     Login username
	-admin-pass     Login password
	-min-delay      Minimum simulated latency
	-max-delay      Maximum simulated latency
	-failure-rate   Simulated failure rate
	-seed           Seed demo data
	-c              Config file

# Environment Variables

Flags fall back to environment variables:

	PORT              → -p
	DATABASE_URL      → -d
	DATABASE_TYPE     → -t
	SESSION_SALT      → -session-salt
	ADMIN_USERNAME    → -admin-user
	ADMIN_PASSWORD    → -admin-pass
	SIM_MIN_DELAY     → -min-delay
	SIM_MAX_DELAY     → -max-delay
	SIM_FAILURE_RATE  → -failure-rate
	SEED              → -seed
	TALENTFLOW_CONFIG → -c

# Config File

An optional YAML, TOML or JSON file (read with viper) supplies values
under snake_case keys:

	port: 8080
	session_salt: change-me
	min_delay: 50ms
	failure_rate: 0

Precedence is CLI flag, then environment variable, then config file,
then default.

# Validation

ParseFlags returns an error if:

  - SESSION_SALT is missing
  - the database type is not sqlite or postgres
  - min delay exceeds max delay
  - the failure rate is outside [0, 1]
*/
package cliparse
