// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"strings"
	"time"
)

// Job status constants
const (
	JobStatusActive   = "active"
	JobStatusArchived = "archived"
)

// Candidate stage constants
const (
	StageApplied   = "applied"
	StageScreening = "screening"
	StageInterview = "interview"
	StageOffer     = "offer"
	StageHired     = "hired"
	StageRejected  = "rejected"
)

// Stages lists every pipeline stage in display order.
var Stages = []string{
	StageApplied,
	StageScreening,
	StageInterview,
	StageOffer,
	StageHired,
	StageRejected,
}

// Question type constants
const (
	QuestionSingleChoice = "single_choice"
	QuestionMultiChoice  = "multi_choice"
	QuestionShortText    = "short_text"
	QuestionLongText     = "long_text"
	QuestionNumericRange = "numeric_range"
	QuestionFileUpload   = "file_upload"
)

func IsValidStage(stage string) bool {
	for _, s := range Stages {
		if s == stage {
			return true
		}
	}
	return false
}

func IsValidJobStatus(status string) bool {
	return status == JobStatusActive || status == JobStatusArchived
}

// Domain types

type SalaryRange struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

type Job struct {
	ID           int64        `json:"id"`
	Title        string       `json:"title"`
	Slug         string       `json:"slug"`
	Description  string       `json:"description"`
	Location     string       `json:"location"`
	Type         string       `json:"type"`
	Status       string       `json:"status"`
	Salary       *SalaryRange `json:"salary,omitempty"`
	Tags         []string     `json:"tags"`
	Requirements []string     `json:"requirements"`
	Order        int          `json:"order"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// Field returns the value of a named field for querying.
// Nested salary fields use dotted paths ("salary.min").
func (j Job) Field(name string) any {
	switch name {
	case "id":
		return j.ID
	case "title":
		return j.Title
	case "slug":
		return j.Slug
	case "description":
		return j.Description
	case "location":
		return j.Location
	case "type":
		return j.Type
	case "status":
		return j.Status
	case "tags":
		return j.Tags
	case "requirements":
		return j.Requirements
	case "order":
		return j.Order
	case "createdAt":
		return j.CreatedAt
	case "updatedAt":
		return j.UpdatedAt
	}
	if sub, ok := strings.CutPrefix(name, "salary."); ok && j.Salary != nil {
		switch sub {
		case "min":
			return j.Salary.Min
		case "max":
			return j.Salary.Max
		case "currency":
			return j.Salary.Currency
		}
	}
	return nil
}

type Candidate struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Stage      string    `json:"stage"`
	JobID      int64     `json:"jobId"`
	Experience int       `json:"experience"`
	Skills     []string  `json:"skills"`
	Resume     string    `json:"resume,omitempty"`
	Location   string    `json:"location,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (c Candidate) Field(name string) any {
	switch name {
	case "id":
		return c.ID
	case "name":
		return c.Name
	case "email":
		return c.Email
	case "phone":
		return c.Phone
	case "stage":
		return c.Stage
	case "jobId":
		return c.JobID
	case "experience":
		return c.Experience
	case "skills":
		return c.Skills
	case "resume":
		return c.Resume
	case "location":
		return c.Location
	case "createdAt":
		return c.CreatedAt
	case "updatedAt":
		return c.UpdatedAt
	}
	return nil
}

// TimelineEvent is an append-only record of a stage change or a note.
type TimelineEvent struct {
	ID          int64     `json:"id"`
	CandidateID int64     `json:"candidateId"`
	Stage       string    `json:"stage"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (e TimelineEvent) Field(name string) any {
	switch name {
	case "id":
		return e.ID
	case "candidateId":
		return e.CandidateID
	case "stage":
		return e.Stage
	case "notes":
		return e.Notes
	case "createdAt":
		return e.CreatedAt
	}
	return nil
}

// Conditional shows ShowQuestionID when the owning question's answer
// equals ShowIfAnswer.
type Conditional struct {
	ShowQuestionID string `json:"showQuestionId"`
	ShowIfAnswer   any    `json:"showIfAnswer"`
}

type Question struct {
	ID             string       `json:"id"`
	Type           string       `json:"type"`
	Title          string       `json:"title"`
	Required       bool         `json:"required"`
	Options        []string     `json:"options,omitempty"`
	CorrectAnswer  *int         `json:"correctAnswer,omitempty"`
	CorrectAnswers []int        `json:"correctAnswers,omitempty"`
	MaxLength      *int         `json:"maxLength,omitempty"`
	Min            *float64     `json:"min,omitempty"`
	Max            *float64     `json:"max,omitempty"`
	AcceptedTypes  []string     `json:"acceptedTypes,omitempty"`
	Conditional    *Conditional `json:"conditional,omitempty"`
	DependsOn      string       `json:"dependsOn,omitempty"`
}

type Section struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

type Assessment struct {
	ID          int64     `json:"id"`
	JobID       int64     `json:"jobId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Sections    []Section `json:"sections"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// question id -> answer (index, index list, text, number, file name)
type AssessmentResponse struct {
	ID           int64          `json:"id"`
	AssessmentID int64          `json:"assessmentId"`
	CandidateID  int64          `json:"candidateId"`
	Responses    map[string]any `json:"responses"`
	CreatedAt    time.Time      `json:"createdAt"`
}

// Request types

type CreateJobRequest struct {
	Title        string       `json:"title"`
	Slug         string       `json:"slug"`
	Description  string       `json:"description"`
	Location     string       `json:"location"`
	Type         string       `json:"type"`
	Status       string       `json:"status"`
	Salary       *SalaryRange `json:"salary"`
	Tags         []string     `json:"tags"`
	Requirements []string     `json:"requirements"`
}

// UpdateJobRequest carries a partial update; nil fields are left unchanged.
type UpdateJobRequest struct {
	Title        *string      `json:"title"`
	Slug         *string      `json:"slug"`
	Description  *string      `json:"description"`
	Location     *string      `json:"location"`
	Type         *string      `json:"type"`
	Status       *string      `json:"status"`
	Salary       *SalaryRange `json:"salary"`
	Tags         *[]string    `json:"tags"`
	Requirements *[]string    `json:"requirements"`
	Order        *int         `json:"order"`
}

// Apply merges the request into j.
func (u UpdateJobRequest) Apply(j *Job) {
	if u.Title != nil {
		j.Title = *u.Title
	}
	if u.Slug != nil {
		j.Slug = *u.Slug
	}
	if u.Description != nil {
		j.Description = *u.Description
	}
	if u.Location != nil {
		j.Location = *u.Location
	}
	if u.Type != nil {
		j.Type = *u.Type
	}
	if u.Status != nil {
		j.Status = *u.Status
	}
	if u.Salary != nil {
		j.Salary = u.Salary
	}
	if u.Tags != nil {
		j.Tags = *u.Tags
	}
	if u.Requirements != nil {
		j.Requirements = *u.Requirements
	}
	if u.Order != nil {
		j.Order = *u.Order
	}
}

type ReorderJobRequest struct {
	NewOrder *int `json:"newOrder"`
}

type CreateCandidateRequest struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Stage      string   `json:"stage"`
	JobID      int64    `json:"jobId"`
	Experience int      `json:"experience"`
	Skills     []string `json:"skills"`
	Resume     string   `json:"resume"`
	Location   string   `json:"location"`
}

type UpdateCandidateRequest struct {
	Name       *string   `json:"name"`
	Email      *string   `json:"email"`
	Phone      *string   `json:"phone"`
	Stage      *string   `json:"stage"`
	JobID      *int64    `json:"jobId"`
	Experience *int      `json:"experience"`
	Skills     *[]string `json:"skills"`
	Resume     *string   `json:"resume"`
	Location   *string   `json:"location"`
}

func (u UpdateCandidateRequest) Apply(c *Candidate) {
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.Email != nil {
		c.Email = *u.Email
	}
	if u.Phone != nil {
		c.Phone = *u.Phone
	}
	if u.Stage != nil && *u.Stage != "" {
		c.Stage = *u.Stage
	}
	if u.JobID != nil {
		c.JobID = *u.JobID
	}
	if u.Experience != nil {
		c.Experience = *u.Experience
	}
	if u.Skills != nil {
		c.Skills = *u.Skills
	}
	if u.Resume != nil {
		c.Resume = *u.Resume
	}
	if u.Location != nil {
		c.Location = *u.Location
	}
}

type AddNoteRequest struct {
	Notes string `json:"notes"`
}

type UpsertAssessmentRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Sections    *[]Section `json:"sections"`
}

func (u UpsertAssessmentRequest) Apply(a *Assessment) {
	if u.Title != nil {
		a.Title = *u.Title
	}
	if u.Description != nil {
		a.Description = *u.Description
	}
	if u.Sections != nil {
		a.Sections = *u.Sections
	}
}

type SubmitAssessmentRequest struct {
	CandidateID int64          `json:"candidateId"`
	Responses   map[string]any `json:"responses"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Response types

type User struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Counts holds per-collection record counts.
type Counts struct {
	Jobs        int `json:"jobs"`
	Candidates  int `json:"candidates"`
	Timeline    int `json:"timeline"`
	Assessments int `json:"assessments"`
	Responses   int `json:"responses"`
}

// Hiring analysis types

type StageStats struct {
	Stage            string  `json:"stage"`
	Count            int     `json:"count"`
	Share            float64 `json:"share"`
	ExperienceMedian float64 `json:"experienceMedian"`
	ExperienceP10    float64 `json:"experienceP10"`
	ExperienceP90    float64 `json:"experienceP90"`
	ExperienceMean   float64 `json:"experienceMean"`
}

type AnalysisTotals struct {
	Candidates int `json:"candidates"`
	Hired      int `json:"hired"`
	InProcess  int `json:"inProcess"`
	Rejected   int `json:"rejected"`
}

type AnalysisResponse struct {
	Totals       AnalysisTotals `json:"totals"`
	JobsByStatus map[string]int `json:"jobsByStatus"`
	Stages       []StageStats   `json:"stages"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
