// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/danielhkuo/talentflow/models"
)

const assessmentColumns = `id, job_id, title, description, sections, created_at, updated_at`

func scanAssessment(row scanner) (models.Assessment, error) {
	var (
		a        models.Assessment
		sections string
	)
	err := row.Scan(&a.ID, &a.JobID, &a.Title, &a.Description, &sections, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return a, err
	}
	a.Sections = []models.Section{}
	if sections != "" {
		if err := json.Unmarshal([]byte(sections), &a.Sections); err != nil {
			return a, fmt.Errorf("failed to decode sections: %w", err)
		}
	}
	if a.Sections == nil {
		a.Sections = []models.Section{}
	}
	return a, nil
}

func encodeSections(sections []models.Section) (string, error) {
	if sections == nil {
		sections = []models.Section{}
	}
	b, err := json.Marshal(sections)
	return string(b), err
}

// ListAssessments returns every assessment in id order.
func (s *Store) ListAssessments(ctx context.Context) ([]models.Assessment, error) {
	rows, err := s.query(ctx, `SELECT `+assessmentColumns+` FROM assessment ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list assessments: %w", err)
	}
	defer rows.Close()

	out := []models.Assessment{}
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *Store) GetAssessment(ctx context.Context, id int64) (models.Assessment, error) {
	a, err := scanAssessment(s.queryRow(ctx, `SELECT `+assessmentColumns+` FROM assessment WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return a, ErrNotFound
	}
	return a, err
}

// GetAssessmentByJob returns the lowest-id assessment bound to jobID.
func (s *Store) GetAssessmentByJob(ctx context.Context, jobID int64) (models.Assessment, error) {
	a, err := scanAssessment(s.queryRow(ctx,
		`SELECT `+assessmentColumns+` FROM assessment WHERE job_id = ? ORDER BY id LIMIT 1`, jobID))
	if errors.Is(err, sql.ErrNoRows) {
		return a, ErrNotFound
	}
	return a, err
}

// InsertAssessment stores a and sets a.ID.
func (s *Store) InsertAssessment(ctx context.Context, a *models.Assessment) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = s.now()
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = a.CreatedAt
	}
	sections, err := encodeSections(a.Sections)
	if err != nil {
		return fmt.Errorf("failed to encode sections: %w", err)
	}

	id, err := s.insert(ctx, `
		INSERT INTO assessment (job_id, title, description, sections, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		a.JobID, a.Title, a.Description, sections, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert assessment: %w", err)
	}
	a.ID = id
	return nil
}

// UpdateAssessment overwrites the stored assessment and stamps UpdatedAt.
func (s *Store) UpdateAssessment(ctx context.Context, a *models.Assessment) error {
	a.UpdatedAt = s.now()
	sections, err := encodeSections(a.Sections)
	if err != nil {
		return fmt.Errorf("failed to encode sections: %w", err)
	}
	res, err := s.exec(ctx, `
		UPDATE assessment
		SET job_id = ?, title = ?, description = ?, sections = ?, updated_at = ?
		WHERE id = ?`,
		a.JobID, a.Title, a.Description, sections, a.UpdatedAt, a.ID)
	if err != nil {
		return fmt.Errorf("failed to update assessment: %w", err)
	}
	return requireAffected(res)
}

// DeleteAssessmentCascade removes the assessment and its responses in
// one transaction.
func (s *Store) DeleteAssessmentCascade(ctx context.Context, id int64) error {
	return s.InTx(ctx, func(tx *Store) error {
		res, err := tx.exec(ctx, `DELETE FROM assessment WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("failed to delete assessment: %w", err)
		}
		if err := requireAffected(res); err != nil {
			return err
		}
		if _, err := tx.exec(ctx, `DELETE FROM assessment_response WHERE assessment_id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete responses: %w", err)
		}
		return nil
	})
}

// InsertResponse stores r and sets r.ID.
func (s *Store) InsertResponse(ctx context.Context, r *models.AssessmentResponse) error {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = s.now()
	}
	if r.Responses == nil {
		r.Responses = map[string]any{}
	}
	b, err := json.Marshal(r.Responses)
	if err != nil {
		return fmt.Errorf("failed to encode responses: %w", err)
	}

	id, err := s.insert(ctx, `
		INSERT INTO assessment_response (assessment_id, candidate_id, responses, created_at)
		VALUES (?, ?, ?, ?)`,
		r.AssessmentID, r.CandidateID, string(b), r.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert response: %w", err)
	}
	r.ID = id
	return nil
}

// ListResponses returns the responses submitted for an assessment.
func (s *Store) ListResponses(ctx context.Context, assessmentID int64) ([]models.AssessmentResponse, error) {
	rows, err := s.query(ctx, `
		SELECT id, assessment_id, candidate_id, responses, created_at
		FROM assessment_response
		WHERE assessment_id = ?
		ORDER BY id`, assessmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list responses: %w", err)
	}
	defer rows.Close()

	out := []models.AssessmentResponse{}
	for rows.Next() {
		var (
			r   models.AssessmentResponse
			raw string
		)
		if err := rows.Scan(&r.ID, &r.AssessmentID, &r.CandidateID, &raw, &r.CreatedAt); err != nil {
			return nil, err
		}
		r.Responses = map[string]any{}
		if raw != "" {
			if err := json.Unmarshal([]byte(raw), &r.Responses); err != nil {
				return nil, fmt.Errorf("failed to decode responses: %w", err)
			}
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
