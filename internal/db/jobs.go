package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-matcher/internal/types"
)

// -----------------------------------------------------------------------------
// Job Posting Methods
// -----------------------------------------------------------------------------

const jobColumns = `id, title, company, location, description, required_skills,
	        preferred_skills, salary_range, job_type, status, source_url,
	        created_at, updated_at`

// scanJob scans a single job row into a types.Job
func scanJob(row pgx.Row) (*types.Job, error) {
	var j types.Job
	var required, preferred StringArray
	var salaryJSON []byte

	err := row.Scan(&j.ID, &j.Title, &j.Company, &j.Location, &j.Description,
		&required, &preferred, &salaryJSON, &j.JobType, &j.Status, &j.SourceURL,
		&j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return nil, err
	}

	j.RequiredSkills = required
	j.PreferredSkills = preferred
	if salaryJSON != nil {
		var sr types.SalaryRange
		if err := json.Unmarshal(salaryJSON, &sr); err == nil {
			j.SalaryRange = &sr
		}
	}
	return &j, nil
}

// CreateJob creates a new job posting and returns the stored record
func (db *DB) CreateJob(ctx context.Context, req *types.CreateJobRequest) (*types.Job, error) {
	status := req.Status
	if status == "" {
		status = types.JobStatusActive
	}

	var salaryJSON []byte
	if req.SalaryRange != nil {
		var err error
		salaryJSON, err = json.Marshal(req.SalaryRange)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal salary range: %w", err)
		}
	}

	row := db.pool.QueryRow(ctx,
		`INSERT INTO jobs (title, company, location, description, required_skills,
		                   preferred_skills, salary_range, job_type, status, source_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING `+jobColumns,
		req.Title, req.Company, req.Location, req.Description,
		StringArray(req.RequiredSkills), StringArray(req.PreferredSkills),
		salaryJSON, req.JobType, status, req.SourceURL,
	)

	job, err := scanJob(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return job, nil
}

// GetJob retrieves a job posting by ID. Returns nil when no job exists.
func (db *DB) GetJob(ctx context.Context, id uuid.UUID) (*types.Job, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)

	job, err := scanJob(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return job, nil
}

// JobFilters holds optional filters for listing jobs
type JobFilters struct {
	Status   string
	Company  string
	Location string
	Limit    int
}

// ListJobs retrieves job postings with optional filters, newest first
func (db *DB) ListJobs(ctx context.Context, filters JobFilters) ([]types.Job, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT ` + jobColumns + ` FROM jobs WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argNum)
		args = append(args, filters.Status)
		argNum++
	}
	if filters.Company != "" {
		query += fmt.Sprintf(" AND company ILIKE $%d", argNum)
		args = append(args, "%"+filters.Company+"%")
		argNum++
	}
	if filters.Location != "" {
		query += fmt.Sprintf(" AND location ILIKE $%d", argNum)
		args = append(args, "%"+filters.Location+"%")
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []types.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, *job)
	}
	return jobs, nil
}

// ListActiveJobs retrieves every active job posting. This is the corpus
// the match engine scores resumes against.
func (db *DB) ListActiveJobs(ctx context.Context) ([]types.Job, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE status = $1 ORDER BY created_at DESC`,
		types.JobStatusActive,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list active jobs: %w", err)
	}
	defer rows.Close()

	var jobs []types.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, *job)
	}
	return jobs, nil
}

// UpdateJob updates a job posting's mutable fields and returns the new record
func (db *DB) UpdateJob(ctx context.Context, id uuid.UUID, req *types.CreateJobRequest) (*types.Job, error) {
	var salaryJSON []byte
	if req.SalaryRange != nil {
		var err error
		salaryJSON, err = json.Marshal(req.SalaryRange)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal salary range: %w", err)
		}
	}

	row := db.pool.QueryRow(ctx,
		`UPDATE jobs SET title = $1, company = $2, location = $3, description = $4,
		        required_skills = $5, preferred_skills = $6, salary_range = $7,
		        job_type = $8, status = COALESCE(NULLIF($9, ''), status),
		        source_url = $10, updated_at = NOW()
		 WHERE id = $11
		 RETURNING `+jobColumns,
		req.Title, req.Company, req.Location, req.Description,
		StringArray(req.RequiredSkills), StringArray(req.PreferredSkills),
		salaryJSON, req.JobType, req.Status, req.SourceURL, id,
	)

	job, err := scanJob(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	return job, nil
}

// UpdateJobStatus transitions a job posting between active, filled, and expired
func (db *DB) UpdateJobStatus(ctx context.Context, id uuid.UUID, status string) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE jobs SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update job status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("job not found: %s", id)
	}
	return nil
}

// DeleteJob deletes a job posting
func (db *DB) DeleteJob(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("job not found: %s", id)
	}
	return nil
}
