// Package ats estimates how well a resume would pass automated keyword
// screening against a job description.
package ats

import (
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/extraction"
)

// MinScore is the floor applied to every score: any resume is treated as
// having baseline ATS viability.
const MinScore = 45

// keywordWeight scales the token-overlap ratio into the base score.
const keywordWeight = 60

// phonePattern matches phone-number-shaped substrings (3/3/4 digits with
// optional separators).
var phonePattern = regexp.MustCompile(`\d{3}[-.]?\d{3}[-.]?\d{4}`)

// Score computes a compatibility score in [MinScore, 100] between resume
// text and a job description. The base is the share of the job's token set
// present in the resume, weighted to 60 points; structural-content bonuses
// reward recognizable resume sections and contact information.
func Score(resumeText, jobDescription string) int {
	resumeTokens := extraction.TokenSet(resumeText)
	jobTokens := extraction.TokenSet(jobDescription)

	matching := 0
	for token := range resumeTokens {
		if jobTokens[token] {
			matching++
		}
	}

	base := 0.0
	if len(jobTokens) > 0 {
		base = float64(matching) / float64(len(jobTokens)) * keywordWeight
	}

	total := int(math.Round(base)) + structureBonus(resumeText)
	if total > 100 {
		total = 100
	}
	if total < MinScore {
		total = MinScore
	}
	return total
}

// structureBonus rewards common resume sections and contact details.
func structureBonus(resumeText string) int {
	lower := strings.ToLower(resumeText)
	bonus := 0

	if strings.Contains(lower, "experience") || strings.Contains(lower, "work") {
		bonus += 10
	}
	if strings.Contains(lower, "education") || strings.Contains(lower, "degree") {
		bonus += 8
	}
	if strings.Contains(lower, "skills") || strings.Contains(lower, "technical") {
		bonus += 8
	}
	if strings.Contains(lower, "project") || strings.Contains(lower, "portfolio") {
		bonus += 6
	}
	if strings.Contains(resumeText, "@") || strings.Contains(lower, "email") {
		bonus += 4
	}
	if strings.Contains(lower, "phone") || phonePattern.MatchString(resumeText) {
		bonus += 4
	}
	return bonus
}
