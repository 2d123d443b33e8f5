package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/observability"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend active job postings for a stored user",
	Long: `Match a user's most recent stored resume against every active job posting in the database and print the ranked recommendation list.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runRecommend,
}

var (
	recommendConfigPath  string
	recommendUserID      string
	recommendDatabaseURL string
	recommendJSON        bool
)

func init() {
	recommendCmd.Flags().StringVar(&recommendConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	recommendCmd.Flags().StringVarP(&recommendUserID, "user", "u", "", "User UUID whose latest resume is matched")
	recommendCmd.Flags().StringVar(&recommendDatabaseURL, "database-url", "", "PostgreSQL connection URL (defaults to DATABASE_URL env var)")
	recommendCmd.Flags().BoolVar(&recommendJSON, "json", false, "Output recommendations as JSON")

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	flags := config.Config{
		UserID:      recommendUserID,
		DatabaseURL: recommendDatabaseURL,
	}
	if recommendConfigPath != "" {
		fileCfg, err := config.LoadConfig(recommendConfigPath)
		if err != nil {
			return err
		}
		flags = flags.MergeWithDefaults(*fileCfg)
	}
	if flags.DatabaseURL == "" {
		flags.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if flags.DatabaseURL == "" {
		return fmt.Errorf("--database-url or the DATABASE_URL environment variable is required")
	}
	if flags.UserID == "" {
		return fmt.Errorf("--user is required (or set 'user_id' in the config file)")
	}

	userID, err := uuid.Parse(flags.UserID)
	if err != nil {
		return fmt.Errorf("invalid user ID %q: %w", flags.UserID, err)
	}

	database, err := db.Connect(cmd.Context(), flags.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	resumes, err := database.ListResumesByUser(cmd.Context(), userID)
	if err != nil {
		return fmt.Errorf("failed to list resumes: %w", err)
	}
	if len(resumes) == 0 {
		return fmt.Errorf("user %s has no stored resumes", userID)
	}
	// Newest first
	resume := resumes[0]

	jobs, err := database.ListActiveJobs(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list active jobs: %w", err)
	}

	engine := matching.NewEngine()
	results, err := engine.Match(cmd.Context(), resume.RawText, jobs)
	if err != nil {
		return fmt.Errorf("matching failed: %w", err)
	}
	recommendations := matching.Filter(results)

	if recommendJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(recommendations)
	}

	fmt.Fprintf(os.Stdout, "Matching resume %q (%s)\n", resume.FileName, resume.ID)
	printer := observability.NewPrinter(os.Stdout)
	printer.PrintMatchResults(recommendations)

	return nil
}
