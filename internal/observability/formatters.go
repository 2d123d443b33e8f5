// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAnalysis outputs a human-readable summary of a resume analysis.
func (p *Printer) PrintAnalysis(analysis *types.ResumeAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder

	if len(analysis.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills found: %d\n", len(analysis.Skills)))
		count := min(len(analysis.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", analysis.Skills[i]))
		}
		if len(analysis.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.Skills)-maxItemsToShow))
		}
	} else {
		sb.WriteString("No known skills found\n")
	}

	if analysis.Location.City != "" {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("Location: %s", analysis.Location.City))
		if analysis.Location.State != "" {
			sb.WriteString(fmt.Sprintf(", %s", analysis.Location.State))
		}
		sb.WriteString(fmt.Sprintf(" (confidence %.1f)\n", analysis.Location.Confidence))
	}

	if len(analysis.Keywords) > 0 {
		keywords := strings.Join(analysis.Keywords, ", ")
		if len(keywords) > 50 {
			keywords = keywords[:47] + "..."
		}
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("Keywords: %s\n", keywords))
	}

	p.printBox("RESUME ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchResults outputs the ranked recommendation list with scores and
// matched skills.
func (p *Printer) PrintMatchResults(results []types.MatchResult) {
	if len(results) == 0 {
		p.printBox("JOB MATCHES", "No jobs matched this resume")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total matches: %d\n\n", len(results)))

	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		result := results[i]
		title := result.Job.Title
		if result.Job.Company != "" {
			title = fmt.Sprintf("%s @ %s", title, result.Job.Company)
		}
		if len(title) > 45 {
			title = title[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, title))
		sb.WriteString(fmt.Sprintf("    Match: %d  ATS: %d", result.MatchScore, result.ATSScore))
		if result.LocationMatch.Bonus > 0 {
			sb.WriteString(fmt.Sprintf("  Location: +%d", result.LocationMatch.Bonus))
		}
		sb.WriteString("\n")
		if len(result.MatchingSkills) > 0 {
			skills := strings.Join(result.MatchingSkills, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", skills))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more matches", len(results)-maxItemsToShow))
	}

	p.printBox("JOB MATCHES", sb.String())
}

// PrintSkillsGap outputs the matching and missing skills for one job.
func (p *Printer) PrintSkillsGap(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Match score: %d  ATS score: %d\n", result.MatchScore, result.ATSScore))

	if len(result.MatchingSkills) > 0 {
		sb.WriteString("\nMatching skills:\n")
		for _, skill := range result.MatchingSkills {
			sb.WriteString(fmt.Sprintf("  ✓ %s\n", skill))
		}
	}

	if len(result.MissingSkills) > 0 {
		sb.WriteString("\nMissing skills:\n")
		for _, skill := range result.MissingSkills {
			sb.WriteString(fmt.Sprintf("  ✗ %s\n", skill))
		}
	} else {
		sb.WriteString("\nNo missing skills\n")
	}

	p.printBox("SKILLS GAP", strings.TrimSuffix(sb.String(), "\n"))
}
