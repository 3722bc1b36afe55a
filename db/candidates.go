// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/talentflow/models"
	"github.com/danielhkuo/talentflow/query"
)

const candidateColumns = `id, name, email, phone, stage, job_id, experience, skills, resume, location,
	created_at, updated_at`

func scanCandidate(row scanner) (models.Candidate, error) {
	var (
		c      models.Candidate
		skills string
	)
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Stage, &c.JobID, &c.Experience,
		&skills, &c.Resume, &c.Location, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return c, err
	}
	if c.Skills, err = decodeList(skills); err != nil {
		return c, fmt.Errorf("failed to decode skills: %w", err)
	}
	return c, nil
}

func (s *Store) listCandidates(ctx context.Context, where string, args ...any) ([]models.Candidate, error) {
	rows, err := s.query(ctx, `SELECT `+candidateColumns+` FROM candidate `+where+` ORDER BY id`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	out := []models.Candidate{}
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ListCandidates returns every candidate in id order.
func (s *Store) ListCandidates(ctx context.Context) ([]models.Candidate, error) {
	return s.listCandidates(ctx, "")
}

func (s *Store) ListCandidatesByJob(ctx context.Context, jobID int64) ([]models.Candidate, error) {
	return s.listCandidates(ctx, "WHERE job_id = ?", jobID)
}

func (s *Store) GetCandidate(ctx context.Context, id int64) (models.Candidate, error) {
	c, err := scanCandidate(s.queryRow(ctx, `SELECT `+candidateColumns+` FROM candidate WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return c, ErrNotFound
	}
	return c, err
}

// InsertCandidate stores c as given and sets c.ID.
func (s *Store) InsertCandidate(ctx context.Context, c *models.Candidate) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = s.now()
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = c.CreatedAt
	}
	skills, err := encodeList(c.Skills)
	if err != nil {
		return fmt.Errorf("failed to encode skills: %w", err)
	}

	id, err := s.insert(ctx, `
		INSERT INTO candidate (name, email, phone, stage, job_id, experience, skills, resume, location,
			created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.Name, c.Email, c.Phone, c.Stage, c.JobID, c.Experience, skills, c.Resume, c.Location,
		c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert candidate: %w", err)
	}
	c.ID = id
	return nil
}

// CreateCandidate stores c and its first timeline event. The two writes
// are sequential; if the event cannot be written the candidate is
// removed again.
func (s *Store) CreateCandidate(ctx context.Context, c *models.Candidate, notes string) (models.TimelineEvent, error) {
	now := s.now()
	c.CreatedAt, c.UpdatedAt = now, now
	if err := s.InsertCandidate(ctx, c); err != nil {
		return models.TimelineEvent{}, err
	}

	event := models.TimelineEvent{
		CandidateID: c.ID,
		Stage:       c.Stage,
		Notes:       notes,
		CreatedAt:   now,
	}
	if err := s.AppendTimeline(ctx, &event); err != nil {
		if _, delErr := s.exec(context.WithoutCancel(ctx), `DELETE FROM candidate WHERE id = ?`, c.ID); delErr != nil {
			slog.Error("failed to remove candidate after timeline error", "candidate_id", c.ID, "error", delErr)
		}
		return models.TimelineEvent{}, err
	}
	return event, nil
}

func (s *Store) writeCandidate(ctx context.Context, c *models.Candidate) error {
	skills, err := encodeList(c.Skills)
	if err != nil {
		return fmt.Errorf("failed to encode skills: %w", err)
	}
	res, err := s.exec(ctx, `
		UPDATE candidate
		SET name = ?, email = ?, phone = ?, stage = ?, job_id = ?, experience = ?, skills = ?,
			resume = ?, location = ?, updated_at = ?
		WHERE id = ?`,
		c.Name, c.Email, c.Phone, c.Stage, c.JobID, c.Experience, skills, c.Resume, c.Location,
		c.UpdatedAt, c.ID)
	if err != nil {
		return fmt.Errorf("failed to update candidate: %w", err)
	}
	return requireAffected(res)
}

// UpdateCandidate writes next over prev. When the stage changes a
// "Moved to <stage> stage" event is appended; if that append fails the
// candidate is restored to prev and the error returned.
func (s *Store) UpdateCandidate(ctx context.Context, prev models.Candidate, next *models.Candidate) error {
	next.ID = prev.ID
	next.CreatedAt = prev.CreatedAt
	next.UpdatedAt = s.now()
	if err := s.writeCandidate(ctx, next); err != nil {
		return err
	}
	if next.Stage == prev.Stage {
		return nil
	}

	event := models.TimelineEvent{
		CandidateID: next.ID,
		Stage:       next.Stage,
		Notes:       fmt.Sprintf("Moved to %s stage", next.Stage),
		CreatedAt:   next.UpdatedAt,
	}
	if err := s.AppendTimeline(ctx, &event); err != nil {
		if restoreErr := s.writeCandidate(context.WithoutCancel(ctx), &prev); restoreErr != nil {
			slog.Error("failed to restore candidate after timeline error", "candidate_id", prev.ID, "error", restoreErr)
		}
		return err
	}
	return nil
}

// DeleteCandidateCascade removes the candidate and its timeline in one
// transaction.
func (s *Store) DeleteCandidateCascade(ctx context.Context, id int64) error {
	return s.InTx(ctx, func(tx *Store) error {
		res, err := tx.exec(ctx, `DELETE FROM candidate WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("failed to delete candidate: %w", err)
		}
		if err := requireAffected(res); err != nil {
			return err
		}
		if _, err := tx.exec(ctx, `DELETE FROM candidate_timeline WHERE candidate_id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete timeline: %w", err)
		}
		return nil
	})
}

// AppendTimeline stores e and sets e.ID.
func (s *Store) AppendTimeline(ctx context.Context, e *models.TimelineEvent) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = s.now()
	}
	id, err := s.insert(ctx, `
		INSERT INTO candidate_timeline (candidate_id, stage, notes, created_at)
		VALUES (?, ?, ?, ?)`,
		e.CandidateID, e.Stage, e.Notes, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to append timeline: %w", err)
	}
	e.ID = id
	return nil
}

// ListTimeline returns a candidate's events oldest first.
func (s *Store) ListTimeline(ctx context.Context, candidateID int64) ([]models.TimelineEvent, error) {
	rows, err := s.query(ctx, `
		SELECT id, candidate_id, stage, notes, created_at
		FROM candidate_timeline
		WHERE candidate_id = ?
		ORDER BY id`, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to list timeline: %w", err)
	}
	defer rows.Close()

	events := []models.TimelineEvent{}
	for rows.Next() {
		var e models.TimelineEvent
		if err := rows.Scan(&e.ID, &e.CandidateID, &e.Stage, &e.Notes, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Seeded events are backdated, so id order is not time order.
	return query.Sort(events, "createdAt", query.Asc), nil
}
