// Package main provides the entry point for the Resume Matcher server and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_matcher",
	Short: "Resume Matcher job recommendation engine",
	Long:  "Resume Matcher analyzes plain-text resumes, scores them against job postings with skill, location and ATS signals, and serves ranked recommendations via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
