package matching

import "github.com/jonathan/resume-matcher/internal/types"

// Recommendation filter thresholds. A job is retained when it has a good
// overall score, at least two matching skills, or one matching skill backed
// by a moderate score.
const (
	goodMatchScore     = 25
	strongSkillCount   = 2
	oneSkillMinScore   = 15
	maxRecommendations = 15
	fallbackLimit      = 5
)

// Filter applies the recommendation filter to sorted match results: retain
// meaningful matches capped at 15; when nothing qualifies, fall back to the
// best-scoring jobs with any positive score, capped at 5.
func Filter(results []types.MatchResult) []types.MatchResult {
	var filtered []types.MatchResult
	for _, r := range results {
		if retain(r) {
			filtered = append(filtered, r)
		}
	}

	if len(filtered) > 0 {
		if len(filtered) > maxRecommendations {
			filtered = filtered[:maxRecommendations]
		}
		return filtered
	}

	var fallback []types.MatchResult
	for _, r := range results {
		if r.MatchScore > 0 {
			fallback = append(fallback, r)
			if len(fallback) >= fallbackLimit {
				break
			}
		}
	}
	return fallback
}

func retain(r types.MatchResult) bool {
	if r.MatchScore >= goodMatchScore {
		return true
	}
	if len(r.MatchingSkills) >= strongSkillCount {
		return true
	}
	return len(r.MatchingSkills) >= 1 && r.MatchScore >= oneSkillMinScore
}
