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
// Resume Methods
// -----------------------------------------------------------------------------

const resumeColumns = `id, user_id, file_name, raw_text, ats_score, analysis,
	        created_at, updated_at`

// scanResume scans a single resume row into a types.Resume
func scanResume(row pgx.Row) (*types.Resume, error) {
	var r types.Resume
	var analysisJSON []byte

	err := row.Scan(&r.ID, &r.UserID, &r.FileName, &r.RawText, &r.ATSScore,
		&analysisJSON, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if analysisJSON != nil {
		var analysis types.ResumeAnalysis
		if err := json.Unmarshal(analysisJSON, &analysis); err == nil {
			r.Analysis = &analysis
		}
	}
	return &r, nil
}

// CreateResume stores a resume's raw text for a user and returns the record
func (db *DB) CreateResume(ctx context.Context, userID uuid.UUID, fileName, rawText string) (*types.Resume, error) {
	row := db.pool.QueryRow(ctx,
		`INSERT INTO resumes (user_id, file_name, raw_text)
		 VALUES ($1, $2, $3)
		 RETURNING `+resumeColumns,
		userID, fileName, rawText,
	)

	resume, err := scanResume(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create resume: %w", err)
	}
	return resume, nil
}

// GetResume retrieves a resume by ID. Returns nil when no resume exists.
func (db *DB) GetResume(ctx context.Context, id uuid.UUID) (*types.Resume, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+resumeColumns+` FROM resumes WHERE id = $1`, id)

	resume, err := scanResume(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	return resume, nil
}

// ListResumesByUser retrieves a user's resumes, newest first
func (db *DB) ListResumesByUser(ctx context.Context, userID uuid.UUID) ([]types.Resume, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+resumeColumns+` FROM resumes WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var resumes []types.Resume
	for rows.Next() {
		resume, err := scanResume(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		resumes = append(resumes, *resume)
	}
	return resumes, nil
}

// SaveResumeAnalysis stores the latest analysis snapshot and ATS score for a resume
func (db *DB) SaveResumeAnalysis(ctx context.Context, id uuid.UUID, analysis *types.ResumeAnalysis, atsScore int) error {
	analysisJSON, err := json.Marshal(analysis)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE resumes SET analysis = $1, ats_score = $2, updated_at = NOW()
		 WHERE id = $3`,
		analysisJSON, atsScore, id,
	)
	if err != nil {
		return fmt.Errorf("failed to save resume analysis: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("resume not found: %s", id)
	}
	return nil
}

// DeleteResume deletes a resume
func (db *DB) DeleteResume(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("resume not found: %s", id)
	}
	return nil
}
