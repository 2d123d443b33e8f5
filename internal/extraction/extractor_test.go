package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkills_WordBoundaryMatch(t *testing.T) {
	skills := Skills("Built services in Python and deployed with Docker on AWS.")

	assert.Contains(t, skills, "python")
	assert.Contains(t, skills, "docker")
	assert.Contains(t, skills, "aws")
}

func TestSkills_NoPartialWordMatches(t *testing.T) {
	// "javascripting" must not match "javascript"; boundaries are required.
	skills := Skills("I enjoy javascripting all day")
	assert.NotContains(t, skills, "javascript")
}

func TestSkills_SynonymVariants(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"js shorthand", "5 years writing js for the web", "JavaScript"},
		{"nodejs", "backend built on nodejs and redis", "Node.js"},
		{"reactjs", "frontend in reactjs", "React"},
		{"vuejs", "migrated the app to vuejs", "Vue"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Skills(tt.text)
			found := false
			for _, s := range got {
				if strings.EqualFold(s, tt.want) {
					found = true
				}
			}
			assert.True(t, found, "expected %q in %v", tt.want, got)
		})
	}
}

func TestSkills_ExperienceContext(t *testing.T) {
	skills := Skills("3 years of Python and Django experience")

	assert.Contains(t, skills, "python")
	assert.Contains(t, skills, "django")
}

func TestSkills_NoDuplicates(t *testing.T) {
	skills := Skills("Python python PYTHON, python everywhere. Experienced in python.")

	seen := make(map[string]bool)
	for _, s := range skills {
		lower := strings.ToLower(s)
		assert.False(t, seen[lower], "duplicate skill %q", s)
		seen[lower] = true
	}
}

func TestSkills_EmptyText(t *testing.T) {
	assert.Empty(t, Skills(""))
	assert.Empty(t, Skills("   \n\t "))
}

func TestSkills_Idempotent(t *testing.T) {
	text := "Senior engineer: React, TypeScript, PostgreSQL, Kubernetes. Skilled in Go."
	first := Skills(text)
	second := Skills(text)
	assert.Equal(t, first, second)
}

func TestSkills_FiltersGenericWords(t *testing.T) {
	// Context patterns can capture generic phrases; none may surface.
	skills := Skills("10 years of experience working with teams")
	for _, s := range skills {
		assert.NotContains(t, []string{"experience", "work", "years"}, strings.ToLower(s))
	}
}

func TestKeywords_DropsStopWordsAndShortTokens(t *testing.T) {
	keywords := Keywords("We are looking for an engineer with strong database skills", 0)

	assert.NotContains(t, keywords, "we")
	assert.NotContains(t, keywords, "an")
	assert.Contains(t, keywords, "engineer")
	assert.Contains(t, keywords, "database")
}

func TestKeywords_DropsPureNumbers(t *testing.T) {
	keywords := Keywords("shipped 2019 2020 releases", 0)
	assert.NotContains(t, keywords, "2019")
	assert.Contains(t, keywords, "shipped")
}

func TestKeywords_Limit(t *testing.T) {
	text := "alpha bravo charlie delta echo foxtrot golf hotel india juliett"
	keywords := Keywords(text, 5)
	assert.Len(t, keywords, 5)
	assert.Equal(t, []string{"alpha", "bravo", "charlie", "delta", "echo"}, keywords)
}

func TestTokenSet(t *testing.T) {
	set := TokenSet("Go, go, GO! and Python.")
	assert.True(t, set["go"])
	assert.True(t, set["python"])
	assert.False(t, set["ruby"])
}
