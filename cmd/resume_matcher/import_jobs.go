package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/types"
)

var importJobsCmd = &cobra.Command{
	Use:   "import-jobs",
	Short: "Import job postings from a JSON file into the database",
	Long:  "Read a JSON array of job postings and insert each one as an active posting.",
	RunE:  runImportJobs,
}

var (
	importJobsFile        string
	importJobsDatabaseURL string
)

func init() {
	importJobsCmd.Flags().StringVarP(&importJobsFile, "jobs", "j", "", "Path to JSON file containing an array of job postings (required)")
	importJobsCmd.Flags().StringVar(&importJobsDatabaseURL, "database-url", "", "PostgreSQL connection URL (defaults to DATABASE_URL env var)")

	importJobsCmd.MarkFlagRequired("jobs")

	rootCmd.AddCommand(importJobsCmd)
}

func runImportJobs(cmd *cobra.Command, _ []string) error {
	databaseURL := importJobsDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("--database-url or the DATABASE_URL environment variable is required")
	}

	jobs, err := loadJobsFile(importJobsFile)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		return fmt.Errorf("jobs file %s contains no job postings", importJobsFile)
	}

	database, err := db.Connect(cmd.Context(), databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	imported := 0
	for i := range jobs {
		job := &jobs[i]
		req := &types.CreateJobRequest{
			Title:           job.Title,
			Company:         job.Company,
			Location:        job.Location,
			Description:     job.Description,
			SourceURL:       job.SourceURL,
			RequiredSkills:  job.RequiredSkills,
			PreferredSkills: job.PreferredSkills,
			SalaryRange:     job.SalaryRange,
			JobType:         job.JobType,
			Status:          job.Status,
		}
		if err := req.Validate(); err != nil {
			return fmt.Errorf("job %d is invalid: %w", i+1, err)
		}

		created, err := database.CreateJob(cmd.Context(), req)
		if err != nil {
			return fmt.Errorf("failed to import job %q: %w", job.Title, err)
		}
		imported++
		fmt.Fprintf(os.Stdout, "Imported %s @ %s (%s)\n", created.Title, created.Company, created.ID)
	}

	fmt.Fprintf(os.Stdout, "Imported %d job postings\n", imported)
	return nil
}
