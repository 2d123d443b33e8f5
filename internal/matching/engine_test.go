package matching

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/types"
)

func testJob(title string, required, preferred []string) types.Job {
	return types.Job{
		Title:           title,
		Company:         "Acme",
		Location:        "Remote",
		Description:     "We build software.",
		RequiredSkills:  required,
		PreferredSkills: preferred,
		Status:          types.JobStatusActive,
	}
}

func TestMatch_PythonDjangoScenario(t *testing.T) {
	engine := NewEngine()
	resume := "3 years of Python and Django experience"
	job := testJob("Backend Engineer", []string{"Python", "Django", "PostgreSQL"}, []string{"Docker"})

	results, err := engine.Match(context.Background(), resume, []types.Job{job})
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.ElementsMatch(t, []string{"Python", "Django"}, r.MatchingSkills)
	assert.ElementsMatch(t, []string{"PostgreSQL"}, r.MissingSkills)

	// 2/3 coverage passes the gate, so the skill component alone puts the
	// score well above the gated floor.
	assert.Greater(t, r.MatchScore, 40)
	assert.LessOrEqual(t, r.MatchScore, 100)
}

func TestMatch_GateForcesSkillComponentToZero(t *testing.T) {
	engine := NewEngine()
	resume := "gardening enthusiast, basket weaving, floral arrangements"
	job := types.Job{
		Title:          "Engineer",
		Location:       "zzzzqqqq",
		Description:    "zzz yyy xxx",
		RequiredSkills: []string{"Java"},
		Status:         types.JobStatusActive,
	}

	results, err := engine.Match(context.Background(), resume, []types.Job{job})
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.Empty(t, r.MatchingSkills)
	assert.ElementsMatch(t, []string{"Java"}, r.MissingSkills)
	assert.Equal(t, 0, r.MatchScore)
}

func TestMatch_PartitionInvariant(t *testing.T) {
	engine := NewEngine()
	resume := "Python developer with Docker and AWS. Skilled in PostgreSQL."
	job := testJob("Platform Engineer", []string{"Python", "python", "Kubernetes", "AWS", ""}, nil)

	results, err := engine.Match(context.Background(), resume, []types.Job{job})
	require.NoError(t, err)
	r := results[0]

	// matchingSkills and missingSkills partition the deduplicated required
	// skills with no overlap.
	union := append(append([]string{}, r.MatchingSkills...), r.MissingSkills...)
	assert.ElementsMatch(t, []string{"Python", "Kubernetes", "AWS"}, union)
	for _, m := range r.MatchingSkills {
		assert.NotContains(t, r.MissingSkills, m)
	}
}

func TestMatch_EmptyResume(t *testing.T) {
	engine := NewEngine()
	job := testJob("Engineer", []string{"Go"}, nil)

	results, err := engine.Match(context.Background(), "", []types.Job{job})
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.Empty(t, r.MatchingSkills)
	assert.GreaterOrEqual(t, r.MatchScore, 0)
	assert.LessOrEqual(t, r.MatchScore, 100)
	assert.GreaterOrEqual(t, r.ATSScore, 45)
}

func TestMatch_NoRequiredSkills(t *testing.T) {
	engine := NewEngine()
	job := testJob("Engineer", nil, nil)

	results, err := engine.Match(context.Background(), "Python developer", []types.Job{job})
	require.NoError(t, err)
	r := results[0]

	assert.Empty(t, r.MatchingSkills)
	assert.Empty(t, r.MissingSkills)
	assert.GreaterOrEqual(t, r.MatchScore, 0)
	assert.LessOrEqual(t, r.MatchScore, 100)
}

func TestMatch_SkillListsEncodeAsArrays(t *testing.T) {
	engine := NewEngine()
	job := testJob("Engineer", nil, nil)

	results, err := engine.Match(context.Background(), "Python developer", []types.Job{job})
	require.NoError(t, err)
	r := results[0]

	// Empty skill lists must still be slices so JSON encodes [] rather
	// than null.
	require.NotNil(t, r.MatchingSkills)
	require.NotNil(t, r.MissingSkills)

	encoded, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"matching_skills":[]`)
	assert.Contains(t, string(encoded), `"missing_skills":[]`)
}

func TestEngine_ZeroValueUsesDefaultWorkers(t *testing.T) {
	var engine Engine

	assert.Equal(t, defaultWorkers(), engine.workers())
	assert.Greater(t, engine.workers(), 0)
	assert.Equal(t, defaultWorkers(), NewEngine().Workers)
}

func TestMatch_ScoresManyJobsDeterministically(t *testing.T) {
	engine := NewEngine()
	resume := "Senior Python engineer. Python, Django, PostgreSQL, Docker, AWS."

	jobs := []types.Job{
		testJob("Python Engineer", []string{"Python", "Django"}, nil),
		testJob("Data Engineer", []string{"Python", "Spark"}, nil),
		testJob("Frontend Engineer", []string{"React", "CSS"}, nil),
		testJob("DevOps Engineer", []string{"Docker", "AWS", "Terraform"}, nil),
	}

	first, err := engine.Match(context.Background(), resume, jobs)
	require.NoError(t, err)
	second, err := engine.Match(context.Background(), resume, jobs)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	// Sorted descending (allowing the <5-point ATS tie-break to reorder
	// near-equal scores).
	for i := 1; i < len(first); i++ {
		assert.GreaterOrEqual(t, first[i-1].MatchScore+4, first[i].MatchScore)
	}
}

func TestMatch_CancelledContext(t *testing.T) {
	engine := NewEngine()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Match(ctx, "Python", []types.Job{testJob("Engineer", []string{"Python"}, nil)})
	assert.Error(t, err)
}

func TestSortResults_TieBreakByATS(t *testing.T) {
	results := []types.MatchResult{
		{MatchScore: 80, ATSScore: 50},
		{MatchScore: 78, ATSScore: 90},
		{MatchScore: 40, ATSScore: 99},
	}
	sortResults(results)

	// 80 and 78 are within 5 points: the higher ATS score wins.
	assert.Equal(t, 90, results[0].ATSScore)
	assert.Equal(t, 50, results[1].ATSScore)
	assert.Equal(t, 40, results[2].MatchScore)
}

func TestSortResults_FarApartScoresIgnoreATS(t *testing.T) {
	results := []types.MatchResult{
		{MatchScore: 30, ATSScore: 99},
		{MatchScore: 90, ATSScore: 45},
	}
	sortResults(results)

	assert.Equal(t, 90, results[0].MatchScore)
	assert.Equal(t, 30, results[1].MatchScore)
}
