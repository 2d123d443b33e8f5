// Package types provides type definitions for structured data used throughout the resume-matcher system.
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// JobStatus constants. Only active jobs participate in matching.
const (
	JobStatusActive  = "active"
	JobStatusFilled  = "filled"
	JobStatusExpired = "expired"
)

// SalaryRange represents an optional salary band on a job posting.
type SalaryRange struct {
	Min      *int   `json:"min,omitempty"`
	Max      *int   `json:"max,omitempty"`
	Currency string `json:"currency,omitempty"`
}

// Job represents a job posting as stored and as consumed by the match engine.
// RequiredSkills and PreferredSkills keep their stored order; matching
// lowercases them for comparison but reports them as stored.
type Job struct {
	ID              uuid.UUID    `json:"id"`
	Title           string       `json:"title"`
	Company         string       `json:"company"`
	Location        string       `json:"location"`
	Description     string       `json:"description"`
	RequiredSkills  []string     `json:"required_skills"`
	PreferredSkills []string     `json:"preferred_skills,omitempty"`
	SalaryRange     *SalaryRange `json:"salary_range,omitempty"`
	JobType         string       `json:"job_type,omitempty"`
	Status          string       `json:"status"`
	SourceURL       string       `json:"source_url,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// CreateJobRequest represents the request to create a job posting.
// Either Description or SourceURL must be provided; when only SourceURL is
// set the server fetches and cleans the posting text itself.
type CreateJobRequest struct {
	Title           string       `json:"title" validate:"required,min=1"`
	Company         string       `json:"company" validate:"required,min=1"`
	Location        string       `json:"location"`
	Description     string       `json:"description"`
	SourceURL       string       `json:"source_url,omitempty" validate:"omitempty,url"`
	RequiredSkills  []string     `json:"required_skills"`
	PreferredSkills []string     `json:"preferred_skills,omitempty"`
	SalaryRange     *SalaryRange `json:"salary_range,omitempty"`
	JobType         string       `json:"job_type,omitempty"`
	Status          string       `json:"status,omitempty" validate:"omitempty,oneof=active filled expired"`
}

// Validate validates the CreateJobRequest using the validator.
func (r *CreateJobRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
