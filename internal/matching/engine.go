// Package matching combines skill extraction, location proximity and ATS
// scoring into one weighted match score per job, and produces the ranked,
// filtered recommendation list.
package matching

import (
	"context"
	"math"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/ats"
	"github.com/jonathan/resume-matcher/internal/extraction"
	"github.com/jonathan/resume-matcher/internal/location"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/vocabulary"
)

// Scoring weights and thresholds. These literals are contractual: the
// ranking tests depend on the exact arithmetic.
const (
	skillRatioWeight   = 60.0
	preferredWeight    = 8.0
	relevanceCap       = 8.0
	exactBonusPerSkill = 5.0
	exactBonusCap      = 12.0
	contextCap         = 25.0
	titleWeight        = 10.0

	partialMatchBonus = 0.4
	relatedSkillBonus = 0.3

	// Gate: jobs below 30% required-skill coverage with fewer than two
	// matching skills contribute no skill component at all.
	gateRatio  = 0.3
	gateSkills = 2

	atsHighThreshold = 80
	atsHighBonus     = 5
	atsMidThreshold  = 60
	atsMidBonus      = 2
)

// Engine scores jobs against a resume. It is stateless across calls; every
// Match recomputes skill extraction and location resolution from scratch.
type Engine struct {
	// Workers bounds concurrent per-job scoring. Zero means the NewEngine
	// default of min(GOMAXPROCS, 8).
	Workers int
}

// NewEngine returns an Engine with a worker bound suited to the host.
func NewEngine() *Engine {
	return &Engine{Workers: defaultWorkers()}
}

func defaultWorkers() int {
	workers := runtime.GOMAXPROCS(0)
	if workers > 8 {
		workers = 8
	}
	return workers
}

// resumeProfile is the per-resume precomputation shared by all jobs in a batch.
type resumeProfile struct {
	text     string
	skillSet map[string]bool
	words    map[string]bool
	location types.LocationInfo
}

// Match scores every job against the resume text and returns results sorted
// by descending match score, with near-ties (spread under 5 points) broken
// by descending ATS score. Jobs are evaluated concurrently; the only error
// condition is context cancellation.
func (e *Engine) Match(ctx context.Context, resumeText string, jobs []types.Job) ([]types.MatchResult, error) {
	profile := buildProfile(resumeText)

	results := make([]types.MatchResult, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers())

	for i := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = scoreJob(profile, &jobs[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sortResults(results)
	return results, nil
}

func (e *Engine) workers() int {
	if e.Workers > 0 {
		return e.Workers
	}
	return defaultWorkers()
}

func buildProfile(resumeText string) *resumeProfile {
	skillSet := make(map[string]bool)
	for _, skill := range extraction.Skills(resumeText) {
		skillSet[strings.ToLower(skill)] = true
	}

	words := make(map[string]bool)
	for _, word := range strings.Fields(strings.ToLower(resumeText)) {
		words[word] = true
	}

	return &resumeProfile{
		text:     resumeText,
		skillSet: skillSet,
		words:    words,
		location: location.Extract(resumeText),
	}
}

// scoreJob computes one MatchResult. MatchingSkills and MissingSkills
// partition the job's required skills exactly (case-insensitive identity,
// stored display form preserved).
func scoreJob(profile *resumeProfile, job *types.Job) types.MatchResult {
	required := dedupeLower(job.RequiredSkills)
	preferred := dedupeLower(job.PreferredSkills)

	// Empty, not nil: API responses always encode these as JSON arrays.
	matching := make([]string, 0, len(required))
	missing := make([]string, 0, len(required))
	for _, skill := range required {
		if profile.skillSet[skill.lower] {
			matching = append(matching, skill.display)
		} else {
			missing = append(missing, skill.display)
		}
	}

	var score float64

	skillMatchRatio := 0.0
	if len(required) > 0 {
		skillMatchRatio = float64(len(matching)) / float64(len(required))
	}

	if skillMatchRatio < gateRatio && len(matching) < gateSkills {
		// Precision gate: the skill component is forced to zero. The job can
		// still surface through context, title and location signals.
		score = 0
	} else {
		preferredMatches := 0
		for _, skill := range preferred {
			if profile.skillSet[skill.lower] {
				preferredMatches++
			}
		}
		preferredBonus := 0.0
		if len(preferred) > 0 {
			preferredBonus = float64(preferredMatches) / float64(len(preferred)) * preferredWeight
		}

		relevance := 0.0
		for resumeSkill := range profile.skillSet {
			for _, jobSkill := range required {
				if strings.Contains(resumeSkill, jobSkill.lower) || strings.Contains(jobSkill.lower, resumeSkill) {
					relevance += partialMatchBonus
				}
				if vocabulary.AreRelated(resumeSkill, jobSkill.lower) {
					relevance += relatedSkillBonus
				}
			}
		}
		if relevance > relevanceCap {
			relevance = relevanceCap
		}

		exactBonus := float64(len(matching)) * exactBonusPerSkill
		if exactBonus > exactBonusCap {
			exactBonus = exactBonusCap
		}

		score = skillMatchRatio*skillRatioWeight + preferredBonus + relevance + exactBonus
	}

	score += contextScore(profile.words, job.Description)
	score += titleScore(profile.words, job.Title)

	locMatch := location.Match(profile.location, job.Location)
	locBonus := location.Bonus(locMatch)
	score += float64(locBonus)

	atsScore := ats.Score(profile.text, job.Description)
	switch {
	case atsScore > atsHighThreshold:
		score += atsHighBonus
	case atsScore > atsMidThreshold:
		score += atsMidBonus
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return types.MatchResult{
		Job:            job,
		MatchScore:     int(math.Round(score)),
		MatchingSkills: matching,
		MissingSkills:  missing,
		ATSScore:       atsScore,
		LocationMatch: types.LocationMatchSummary{
			Similarity: int(math.Round(locMatch.Similarity * 100)),
			Distance:   locMatch.Distance,
			Bonus:      locBonus,
		},
	}
}

// contextScore counts job-description words (over three characters, split on
// whitespace) present in the resume's word set, capped at 25 points.
func contextScore(resumeWords map[string]bool, description string) float64 {
	jobWords := strings.Fields(strings.ToLower(description))
	if len(jobWords) == 0 {
		return 0
	}
	matches := 0
	for _, word := range jobWords {
		if len(word) > 3 && resumeWords[word] {
			matches++
		}
	}
	score := float64(matches) / float64(len(jobWords)) * 100
	if score > contextCap {
		score = contextCap
	}
	return score
}

// titleScore is the share of title words (over three characters) present in
// the resume's word set, weighted to 10 points.
func titleScore(resumeWords map[string]bool, title string) float64 {
	titleWords := strings.Fields(strings.ToLower(title))
	if len(titleWords) == 0 {
		return 0
	}
	matches := 0
	for _, word := range titleWords {
		if len(word) > 3 && resumeWords[word] {
			matches++
		}
	}
	return float64(matches) / float64(len(titleWords)) * titleWeight
}

// sortResults orders by descending match score; any two results within five
// points of each other are instead ordered by descending ATS score.
func sortResults(results []types.MatchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if abs(a.MatchScore-b.MatchScore) < 5 {
			return a.ATSScore > b.ATSScore
		}
		return a.MatchScore > b.MatchScore
	})
}

type loweredSkill struct {
	display string
	lower   string
}

// dedupeLower lowercases skills for comparison while keeping the stored
// display form, dropping case-insensitive duplicates and blanks.
func dedupeLower(skills []string) []loweredSkill {
	seen := make(map[string]bool, len(skills))
	out := make([]loweredSkill, 0, len(skills))
	for _, s := range skills {
		lower := strings.ToLower(strings.TrimSpace(s))
		if lower == "" || seen[lower] {
			continue
		}
		seen[lower] = true
		out = append(out, loweredSkill{display: strings.TrimSpace(s), lower: lower})
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
