package matching

import (
	"github.com/jonathan/resume-matcher/internal/extraction"
	"github.com/jonathan/resume-matcher/internal/location"
	"github.com/jonathan/resume-matcher/internal/types"
)

// keywordLimit caps the keyword list returned by resume analysis.
const keywordLimit = 20

// Analyze produces the full analysis snapshot for a resume: extracted
// skills, the top keywords, and the resolved location.
func Analyze(resumeText string) *types.ResumeAnalysis {
	return &types.ResumeAnalysis{
		Skills:   extraction.Skills(resumeText),
		Keywords: extraction.Keywords(resumeText, keywordLimit),
		Location: location.Extract(resumeText),
	}
}
