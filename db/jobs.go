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

const jobColumns = `id, title, slug, description, location, employment_type, status, salary,
	tags, requirements, sort_order, created_at, updated_at`

func scanJob(row scanner) (models.Job, error) {
	var (
		j          models.Job
		salary     sql.NullString
		tags, reqs string
	)
	err := row.Scan(&j.ID, &j.Title, &j.Slug, &j.Description, &j.Location, &j.Type, &j.Status,
		&salary, &tags, &reqs, &j.Order, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return j, err
	}

	if salary.Valid && salary.String != "" {
		var sr models.SalaryRange
		if err := json.Unmarshal([]byte(salary.String), &sr); err != nil {
			return j, fmt.Errorf("failed to decode salary: %w", err)
		}
		j.Salary = &sr
	}
	if j.Tags, err = decodeList(tags); err != nil {
		return j, fmt.Errorf("failed to decode tags: %w", err)
	}
	if j.Requirements, err = decodeList(reqs); err != nil {
		return j, fmt.Errorf("failed to decode requirements: %w", err)
	}
	return j, nil
}

func jobArgs(j *models.Job) ([]any, error) {
	var salary sql.NullString
	if j.Salary != nil {
		b, err := json.Marshal(j.Salary)
		if err != nil {
			return nil, err
		}
		salary = sql.NullString{String: string(b), Valid: true}
	}
	tags, err := encodeList(j.Tags)
	if err != nil {
		return nil, err
	}
	reqs, err := encodeList(j.Requirements)
	if err != nil {
		return nil, err
	}
	return []any{j.Title, j.Slug, j.Description, j.Location, j.Type, j.Status, salary, tags, reqs, j.Order}, nil
}

// ListJobs returns every job in id order.
func (s *Store) ListJobs(ctx context.Context) ([]models.Job, error) {
	rows, err := s.query(ctx, `SELECT `+jobColumns+` FROM job ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	jobs := []models.Job{}
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

func (s *Store) GetJob(ctx context.Context, id int64) (models.Job, error) {
	j, err := scanJob(s.queryRow(ctx, `SELECT `+jobColumns+` FROM job WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return j, ErrNotFound
	}
	return j, err
}

func (s *Store) GetJobBySlug(ctx context.Context, slug string) (models.Job, error) {
	j, err := scanJob(s.queryRow(ctx, `SELECT `+jobColumns+` FROM job WHERE slug = ?`, slug))
	if errors.Is(err, sql.ErrNoRows) {
		return j, ErrNotFound
	}
	return j, err
}

// slugOwner returns the id of the job holding slug, or 0.
func (s *Store) slugOwner(ctx context.Context, slug string) (int64, error) {
	var id int64
	err := s.queryRow(ctx, `SELECT id FROM job WHERE slug = ?`, slug).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return id, err
}

// InsertJob stores j as given and sets j.ID. It does not check the slug
// or assign an order; use CreateJob for that.
func (s *Store) InsertJob(ctx context.Context, j *models.Job) error {
	if j.CreatedAt.IsZero() {
		j.CreatedAt = s.now()
	}
	if j.UpdatedAt.IsZero() {
		j.UpdatedAt = j.CreatedAt
	}
	args, err := jobArgs(j)
	if err != nil {
		return fmt.Errorf("failed to encode job: %w", err)
	}
	args = append(args, j.CreatedAt, j.UpdatedAt)

	id, err := s.insert(ctx, `
		INSERT INTO job (title, slug, description, location, employment_type, status, salary,
			tags, requirements, sort_order, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, args...)
	if err != nil {
		return fmt.Errorf("failed to insert job: %w", err)
	}
	j.ID = id
	return nil
}

// CreateJob inserts j at the end of the ordering. Returns ErrSlugTaken
// if another job already uses j.Slug; nothing is written in that case.
func (s *Store) CreateJob(ctx context.Context, j *models.Job) error {
	return s.InTx(ctx, func(tx *Store) error {
		owner, err := tx.slugOwner(ctx, j.Slug)
		if err != nil {
			return fmt.Errorf("failed to check slug: %w", err)
		}
		if owner != 0 {
			return ErrSlugTaken
		}

		var next int
		if err := tx.queryRow(ctx, `SELECT COALESCE(MAX(sort_order) + 1, 0) FROM job`).Scan(&next); err != nil {
			return fmt.Errorf("failed to compute order: %w", err)
		}
		j.Order = next

		now := tx.now()
		j.CreatedAt, j.UpdatedAt = now, now
		return tx.InsertJob(ctx, j)
	})
}

// UpdateJob overwrites the stored job with j and stamps UpdatedAt.
// Returns ErrSlugTaken if j.Slug belongs to a different job.
func (s *Store) UpdateJob(ctx context.Context, j *models.Job) error {
	return s.InTx(ctx, func(tx *Store) error {
		owner, err := tx.slugOwner(ctx, j.Slug)
		if err != nil {
			return fmt.Errorf("failed to check slug: %w", err)
		}
		if owner != 0 && owner != j.ID {
			return ErrSlugTaken
		}

		j.UpdatedAt = tx.now()
		args, err := jobArgs(j)
		if err != nil {
			return fmt.Errorf("failed to encode job: %w", err)
		}
		args = append(args, j.UpdatedAt, j.ID)

		res, err := tx.exec(ctx, `
			UPDATE job
			SET title = ?, slug = ?, description = ?, location = ?, employment_type = ?, status = ?,
				salary = ?, tags = ?, requirements = ?, sort_order = ?, updated_at = ?
			WHERE id = ?`, args...)
		if err != nil {
			return fmt.Errorf("failed to update job: %w", err)
		}
		return requireAffected(res)
	})
}

func (s *Store) DeleteJob(ctx context.Context, id int64) error {
	res, err := s.exec(ctx, `DELETE FROM job WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	return requireAffected(res)
}

// ReorderJob renumbers every job 0..n-1 in id order, then gives the
// target newOrder. All writes happen in one transaction.
func (s *Store) ReorderJob(ctx context.Context, id int64, newOrder int) (models.Job, error) {
	var out models.Job
	err := s.InTx(ctx, func(tx *Store) error {
		if _, err := tx.GetJob(ctx, id); err != nil {
			return err
		}

		rows, err := tx.query(ctx, `SELECT id FROM job ORDER BY id`)
		if err != nil {
			return fmt.Errorf("failed to list job ids: %w", err)
		}
		var ids []int64
		for rows.Next() {
			var jobID int64
			if err := rows.Scan(&jobID); err != nil {
				rows.Close()
				return err
			}
			ids = append(ids, jobID)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}

		for i, jobID := range ids {
			if _, err := tx.exec(ctx, `UPDATE job SET sort_order = ? WHERE id = ?`, i, jobID); err != nil {
				return fmt.Errorf("failed to renumber job %d: %w", jobID, err)
			}
		}

		if _, err := tx.exec(ctx, `UPDATE job SET sort_order = ?, updated_at = ? WHERE id = ?`,
			newOrder, tx.now(), id); err != nil {
			return fmt.Errorf("failed to reorder job: %w", err)
		}

		out, err = tx.GetJob(ctx, id)
		return err
	})
	return out, err
}
