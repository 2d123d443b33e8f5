package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match a resume against a file of job postings",
	Long:  "Score a plain-text resume against every job posting in a JSON file and print the ranked, filtered recommendation list.",
	RunE:  runMatch,
}

var (
	matchResume string
	matchJobs   string
	matchJSON   bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchResume, "resume", "r", "", "Path to resume text file (required)")
	matchCmd.Flags().StringVarP(&matchJobs, "jobs", "j", "", "Path to JSON file containing an array of job postings (required)")
	matchCmd.Flags().BoolVar(&matchJSON, "json", false, "Output match results as JSON")

	matchCmd.MarkFlagRequired("resume")
	matchCmd.MarkFlagRequired("jobs")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	resumeText, err := ingestion.IngestFromFile(matchResume)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	jobs, err := loadJobsFile(matchJobs)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		return fmt.Errorf("jobs file %s contains no job postings", matchJobs)
	}

	engine := matching.NewEngine()
	results, err := engine.Match(cmd.Context(), resumeText, jobs)
	if err != nil {
		return fmt.Errorf("matching failed: %w", err)
	}
	recommendations := matching.Filter(results)

	if matchJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(recommendations)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintMatchResults(recommendations)

	return nil
}

// loadJobsFile reads a JSON array of job postings.
func loadJobsFile(path string) ([]types.Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read jobs file %s: %w", path, err)
	}

	var jobs []types.Job
	if err := json.Unmarshal(data, &jobs); err != nil {
		return nil, fmt.Errorf("failed to parse jobs file %s: %w", path, err)
	}
	return jobs, nil
}
