package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/ats"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/observability"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume text file",
	Long:  "Extract skills, keywords and location from a plain-text resume and report its structural ATS score.",
	RunE:  runAnalyze,
}

var (
	analyzeResume string
	analyzeJSON   bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume text file (required)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Output the analysis as JSON")

	analyzeCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	text, err := ingestion.IngestFromFile(analyzeResume)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	analysis := matching.Analyze(text)
	atsScore := ats.Score(text, "")

	if analyzeJSON {
		out := struct {
			Skills   any `json:"skills"`
			Keywords any `json:"keywords"`
			Location any `json:"location"`
			ATSScore int `json:"ats_score"`
		}{analysis.Skills, analysis.Keywords, analysis.Location, atsScore}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(out)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintAnalysis(analysis)
	fmt.Fprintf(os.Stdout, "ATS structure score: %d/100\n", atsScore)

	return nil
}
