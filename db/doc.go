// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db is the persistence layer: schema creation and the Store type
that owns every read and write.

# Opening a Store

Open connects, applies the schema and returns a ready Store:

	store, err := db.Open(ctx, db.DialectSQLite, "talentflow.db")
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

Two dialects are supported. "sqlite" uses modernc.org/sqlite (pure Go,
no cgo) and is the default. "postgres" uses github.com/lib/pq. Queries
are written once with ? placeholders and rewritten to $N for postgres.

# Schema Creation

CreateSchema is safe to call multiple times - uses IF NOT EXISTS for all
tables and indexes.

  - job: Job postings; slug is unique, sort_order drives display order
  - candidate: Applicants, each attached to a job by job_id
  - candidate_timeline: Append-only stage changes and notes
  - assessment: Per-job questionnaires; sections stored as JSON text
  - assessment_response: Submitted answers; responses stored as JSON text

List-valued fields (tags, requirements, skills) are JSON arrays in TEXT
columns so both dialects share one layout.

# Relationships

	job 1──* candidate            (candidate.job_id)
	job 1──* assessment           (assessment.job_id)
	candidate 1──* candidate_timeline
	assessment 1──* assessment_response

References are not enforced by the database. Cascades are explicit:

  - DeleteCandidateCascade removes a candidate and its timeline
  - DeleteAssessmentCascade removes an assessment and its responses

Both run in a single transaction. Deleting a job does not cascade.

# Transactions

InTx runs a function against a Store bound to one transaction. Nested
calls reuse the outer transaction, so transactional operations such as
CreateJob compose inside a larger InTx (the seeder relies on this).

	err := store.InTx(ctx, func(tx *db.Store) error {
		if err := tx.InsertJob(ctx, &job); err != nil {
			return err
		}
		return tx.InsertAssessment(ctx, &assessment)
	})

Candidate creation and stage changes are two sequential writes instead.
If the timeline write fails the candidate write is undone.

# Errors

ErrNotFound is returned for missing records, including updates and
deletes that affect no rows. ErrSlugTaken is returned when a job would
share its slug with another job.
*/
package db
