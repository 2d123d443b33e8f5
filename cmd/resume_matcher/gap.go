package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/extraction"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/suggestions"
	"github.com/jonathan/resume-matcher/internal/types"
)

var gapCmd = &cobra.Command{
	Use:   "gap",
	Short: "Analyze the skills gap between a resume and one job posting",
	Long: `Score a plain-text resume against a single job posting, taken from a text file or fetched from a URL, and report the matching skills, the missing skills, and learning suggestions for the gap.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runGap,
}

var (
	gapConfigPath string
	gapResume     string
	gapJob        string
	gapJobURL     string
	gapAPIKey     string
	gapUseBrowser bool
	gapVerbose    bool
	gapJSON       bool
)

func init() {
	// Config file flag (processed first)
	gapCmd.Flags().StringVar(&gapConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	gapCmd.Flags().StringVarP(&gapResume, "resume", "r", "", "Path to resume text file")
	gapCmd.Flags().StringVarP(&gapJob, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	gapCmd.Flags().StringVar(&gapJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	gapCmd.Flags().BoolVar(&gapUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	gapCmd.Flags().BoolVarP(&gapVerbose, "verbose", "v", false, "Print detailed debug information")
	gapCmd.Flags().BoolVar(&gapJSON, "json", false, "Output the skills gap as JSON")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	gapCmd.Flags().StringVar(&gapAPIKey, "api-key", "", "Gemini API Key for learning suggestions (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(gapCmd)
}

func runGap(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveGapConfig()
	if err != nil {
		return err
	}

	resumeText, err := ingestion.IngestFromFile(cfg.Resume)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	jobText, err := loadJobText(cmd, cfg)
	if err != nil {
		return err
	}

	// The job posting arrives as free text, so its skill requirements are
	// extracted the same way resume skills are.
	job := types.Job{
		Title:          "",
		Description:    jobText,
		RequiredSkills: extraction.Skills(jobText),
		Status:         types.JobStatusActive,
	}

	engine := matching.NewEngine()
	results, err := engine.Match(cmd.Context(), resumeText, []types.Job{job})
	if err != nil {
		return fmt.Errorf("matching failed: %w", err)
	}
	result := results[0]

	suggester, cleanup, err := buildSuggester(cmd, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	gapSuggestions := suggester.ForMissingSkills(cmd.Context(), job.Title, result.MissingSkills)

	if gapJSON {
		out := struct {
			MatchScore     int                      `json:"match_score"`
			ATSScore       int                      `json:"ats_score"`
			MatchingSkills []string                 `json:"matching_skills"`
			MissingSkills  []string                 `json:"missing_skills"`
			Suggestions    []suggestions.Suggestion `json:"suggestions,omitempty"`
		}{result.MatchScore, result.ATSScore, result.MatchingSkills, result.MissingSkills, gapSuggestions}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(out)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintSkillsGap(&result)

	for _, sg := range gapSuggestions {
		fmt.Fprintf(os.Stdout, "• %s: %s\n", sg.Skill, sg.Advice)
	}

	return nil
}

// resolveGapConfig merges the optional config file with CLI flags; flags win.
func resolveGapConfig() (config.Config, error) {
	flags := config.Config{
		Resume:     gapResume,
		Job:        gapJob,
		JobURL:     gapJobURL,
		APIKey:     gapAPIKey,
		UseBrowser: gapUseBrowser,
		Verbose:    gapVerbose,
	}

	if gapConfigPath != "" {
		fileCfg, err := config.LoadConfig(gapConfigPath)
		if err != nil {
			return config.Config{}, err
		}
		flags = flags.MergeWithDefaults(*fileCfg)
	}

	if err := flags.Validate(); err != nil {
		return config.Config{}, err
	}
	if flags.Resume == "" {
		return config.Config{}, fmt.Errorf("--resume is required (or set 'resume' in the config file)")
	}
	if flags.Job == "" && flags.JobURL == "" {
		return config.Config{}, fmt.Errorf("either --job or --job-url must be provided")
	}

	if flags.APIKey == "" {
		flags.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	return flags, nil
}

// loadJobText reads the job posting from a file or fetches it from a URL.
func loadJobText(cmd *cobra.Command, cfg config.Config) (string, error) {
	if cfg.Job != "" {
		text, err := ingestion.IngestFromFile(cfg.Job)
		if err != nil {
			return "", fmt.Errorf("failed to read job posting: %w", err)
		}
		return text, nil
	}

	text, err := ingestion.IngestFromURL(cmd.Context(), cfg.JobURL, cfg.UseBrowser, cfg.Verbose)
	if err != nil {
		return "", fmt.Errorf("failed to fetch job posting: %w", err)
	}
	return text, nil
}

// buildSuggester returns an LLM-backed suggester when an API key is available,
// otherwise one that serves deterministic fallbacks. The cleanup closes the
// LLM client when one was created.
func buildSuggester(cmd *cobra.Command, cfg config.Config) (*suggestions.Suggester, func(), error) {
	if cfg.APIKey == "" {
		return suggestions.NewSuggester(nil), func() {}, nil
	}

	client, err := llm.NewClient(cmd.Context(), llm.DefaultGeminiConfig(), cfg.APIKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return suggestions.NewSuggester(client), func() { _ = client.Close() }, nil
}
