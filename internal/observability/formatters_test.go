package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-matcher/internal/types"
)

func TestPrinter_PrintAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalysis(&types.ResumeAnalysis{
		Skills:   []string{"python", "django", "postgresql"},
		Keywords: []string{"services", "backend"},
		Location: types.LocationInfo{City: "seattle", State: "WA", Confidence: 0.8},
	})

	out := buf.String()
	assert.Contains(t, out, "RESUME ANALYSIS")
	assert.Contains(t, out, "python")
	assert.Contains(t, out, "seattle")
}

func TestPrinter_PrintAnalysis_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalysis(nil)
	assert.Empty(t, buf.String())
}

func TestPrinter_PrintAnalysis_NoSkills(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalysis(&types.ResumeAnalysis{})
	assert.Contains(t, buf.String(), "No known skills found")
}

func TestPrinter_PrintMatchResults(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatchResults([]types.MatchResult{
		{
			Job:            &types.Job{Title: "Backend Engineer", Company: "Acme"},
			MatchScore:     72,
			ATSScore:       65,
			MatchingSkills: []string{"Python", "PostgreSQL"},
			LocationMatch:  types.LocationMatchSummary{Bonus: 15},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "JOB MATCHES")
	assert.Contains(t, out, "Backend Engineer @ Acme")
	assert.Contains(t, out, "Match: 72")
	assert.Contains(t, out, "Location: +15")
}

func TestPrinter_PrintMatchResults_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatchResults(nil)
	assert.Contains(t, buf.String(), "No jobs matched this resume")
}

func TestPrinter_PrintSkillsGap(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSkillsGap(&types.MatchResult{
		MatchScore:     48,
		ATSScore:       60,
		MatchingSkills: []string{"Python"},
		MissingSkills:  []string{"Kubernetes"},
	})

	out := buf.String()
	assert.Contains(t, out, "SKILLS GAP")
	assert.Contains(t, out, "✓ Python")
	assert.Contains(t, out, "✗ Kubernetes")
}
