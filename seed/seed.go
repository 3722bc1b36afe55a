// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seed

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/talentflow/db"
	"github.com/danielhkuo/talentflow/models"
)

// DefaultCandidates is the number of candidates generated when
// Options.Candidates is zero.
const DefaultCandidates = 1200

const day = 24 * time.Hour

// stageWeights are cumulative thresholds for PickStage, in Stages order.
var stageWeights = []struct {
	stage string
	upTo  float64
}{
	{models.StageApplied, 0.35},
	{models.StageScreening, 0.60},
	{models.StageInterview, 0.80},
	{models.StageOffer, 0.90},
	{models.StageHired, 0.95},
	{models.StageRejected, 1.00},
}

type Options struct {
	Candidates int
	Rand       *rand.Rand       // nil seeds from the clock
	Now        func() time.Time // nil uses time.Now
}

// Result reports how many records Seed inserted.
type Result struct {
	Skipped     bool `json:"skipped"`
	Jobs        int  `json:"jobs"`
	Candidates  int  `json:"candidates"`
	Timeline    int  `json:"timeline"`
	Assessments int  `json:"assessments"`
}

// PickStage maps r in [0,1) onto the weighted stage distribution.
func PickStage(r float64) string {
	for _, w := range stageWeights {
		if r <= w.upTo {
			return w.stage
		}
	}
	return models.StageApplied
}

// Seed populates an empty store with demo data. If any jobs, candidates
// or assessments exist it does nothing. All inserts share one transaction.
func Seed(ctx context.Context, store *db.Store, opts Options) (Result, error) {
	counts, err := store.Counts(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("failed to count records: %w", err)
	}
	if counts.Jobs+counts.Candidates+counts.Assessments > 0 {
		slog.Info("seed skipped, store not empty",
			"jobs", humanize.Comma(int64(counts.Jobs)),
			"candidates", humanize.Comma(int64(counts.Candidates)))
		return Result{Skipped: true}, nil
	}

	g := newGenerator(opts)
	n := opts.Candidates
	if n <= 0 {
		n = DefaultCandidates
	}

	start := time.Now()
	var res Result
	err = store.InTx(ctx, func(tx *db.Store) error {
		jobIDs := make([]int64, 0, len(jobTitles))
		for i, title := range jobTitles {
			job := g.job(i, title)
			if err := tx.InsertJob(ctx, &job); err != nil {
				return err
			}
			jobIDs = append(jobIDs, job.ID)
		}
		res.Jobs = len(jobIDs)

		for i := 0; i < n; i++ {
			c := g.candidate(i, jobIDs[g.rng.IntN(len(jobIDs))])
			if err := tx.InsertCandidate(ctx, &c); err != nil {
				return err
			}
			res.Candidates++

			event := models.TimelineEvent{
				CandidateID: c.ID,
				Stage:       c.Stage,
				Notes:       fmt.Sprintf("Initial application for %s stage", c.Stage),
				CreatedAt:   g.ago(30 * day),
			}
			if err := tx.AppendTimeline(ctx, &event); err != nil {
				return err
			}
			res.Timeline++
		}

		for i, title := range assessmentTitles {
			a := g.assessment(title, jobIDs[i%len(jobIDs)])
			if err := tx.InsertAssessment(ctx, &a); err != nil {
				return err
			}
			res.Assessments++
		}
		return nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("failed to seed database: %w", err)
	}

	slog.Info("database seeded",
		"jobs", humanize.Comma(int64(res.Jobs)),
		"candidates", humanize.Comma(int64(res.Candidates)),
		"timeline", humanize.Comma(int64(res.Timeline)),
		"assessments", humanize.Comma(int64(res.Assessments)),
		"duration_ms", time.Since(start).Milliseconds())

	return res, nil
}

// Clear removes all records from every collection.
func Clear(ctx context.Context, store *db.Store) error {
	if err := store.Clear(ctx); err != nil {
		return err
	}
	slog.Info("database cleared")
	return nil
}

type generator struct {
	rng *rand.Rand
	now time.Time
}

func newGenerator(opts Options) *generator {
	rng := opts.Rand
	if rng == nil {
		t := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(t, t>>1))
	}
	now := time.Now()
	if opts.Now != nil {
		now = opts.Now()
	}
	return &generator{rng: rng, now: now.UTC()}
}

func (g *generator) pick(xs []string) string {
	return xs[g.rng.IntN(len(xs))]
}

// sample returns between lo and hi distinct elements of xs.
func (g *generator) sample(xs []string, lo, hi int) []string {
	n := lo + g.rng.IntN(hi-lo+1)
	out := make([]string, 0, n)
	for _, i := range g.rng.Perm(len(xs))[:n] {
		out = append(out, xs[i])
	}
	return out
}

// ago returns a random instant up to window before now.
func (g *generator) ago(window time.Duration) time.Time {
	return g.now.Add(-time.Duration(g.rng.Int64N(int64(window))))
}

func (g *generator) job(index int, title string) models.Job {
	status := models.JobStatusActive
	if g.rng.Float64() < 0.2 {
		status = models.JobStatusArchived
	}
	jobType := "Full-time"
	if g.rng.Float64() < 0.3 {
		jobType = "Contract"
	}

	return models.Job{
		Title: title,
		Slug:  fmt.Sprintf("%s-%d", models.GenerateSlug(title), index),
		Description: fmt.Sprintf("We are looking for a talented %s to join our growing team. "+
			"This is an excellent opportunity to work with cutting-edge technologies and make a significant impact.", title),
		Location: g.pick(jobLocations),
		Type:     jobType,
		Status:   status,
		Salary: &models.SalaryRange{
			Min:      60000 + g.rng.IntN(80000),
			Max:      100000 + g.rng.IntN(100000),
			Currency: "USD",
		},
		Tags: g.sample(jobTags, 2, 5),
		Requirements: []string{
			fmt.Sprintf("3+ years of experience in %s", strings.ToLower(title)),
			"Strong problem-solving skills",
			"Excellent communication skills",
			"Team player with leadership potential",
		},
		Order:     index,
		CreatedAt: g.ago(60 * day),
		UpdatedAt: g.ago(30 * day),
	}
}

func (g *generator) candidate(index int, jobID int64) models.Candidate {
	first, last := g.pick(firstNames), g.pick(lastNames)
	lf, ll := strings.ToLower(first), strings.ToLower(last)

	return models.Candidate{
		Name:       first + " " + last,
		Email:      fmt.Sprintf("%s.%s%d@%s", lf, ll, index, g.pick(emailDomains)),
		Phone:      fmt.Sprintf("+91 %d", 1000000000+g.rng.Int64N(9000000000)),
		Stage:      PickStage(g.rng.Float64()),
		JobID:      jobID,
		Experience: 1 + g.rng.IntN(15),
		Skills:     g.sample(skills, 2, 6),
		Resume:     fmt.Sprintf("https://drive.google.com/resumes/%s-%s.pdf", lf, ll),
		Location:   g.pick(candidateLocations),
		CreatedAt:  g.ago(120 * day),
		UpdatedAt:  g.ago(30 * day),
	}
}

func (g *generator) assessment(title string, jobID int64) models.Assessment {
	return models.Assessment{
		JobID:       jobID,
		Title:       title,
		Description: title + " - Comprehensive evaluation of candidate skills, knowledge, and experience",
		Sections:    standardSections(),
		CreatedAt:   g.ago(30 * day),
		UpdatedAt:   g.ago(7 * day),
	}
}
