// Package vocabulary provides the static catalogue of known technical and
// soft skills plus skill-group relations used as a matching heuristic.
package vocabulary

import "strings"

// technicalSkills is the canonical list of technical skill terms.
var technicalSkills = []string{
	// Programming languages
	"javascript", "js", "python", "java", "c++", "c#", "php", "ruby", "swift", "kotlin",
	"go", "rust", "scala", "r", "matlab", "perl", "typescript", "dart",

	// Web technologies
	"react", "reactjs", "angular", "vue", "vue.js", "svelte", "node.js", "nodejs",
	"express", "fastapi", "django", "flask", "spring", "laravel", "html", "css",
	"sass", "scss", "bootstrap", "tailwind", "jquery", "webpack", "vite",

	// Databases
	"sql", "mysql", "postgresql", "mongodb", "redis", "sqlite", "oracle",
	"cassandra", "elasticsearch", "dynamodb", "firebase",

	// Cloud and devops
	"aws", "azure", "gcp", "google cloud", "docker", "kubernetes", "jenkins",
	"terraform", "ansible", "chef", "puppet", "gitlab", "github", "git",
	"ci/cd", "devops", "linux", "unix", "bash", "shell scripting",

	// Mobile
	"flutter", "react native", "ios", "android", "xamarin", "ionic",

	// Data science and AI
	"machine learning", "ml", "ai", "artificial intelligence", "data science",
	"deep learning", "tensorflow", "pytorch", "scikit-learn", "pandas", "numpy",
	"jupyter", "tableau", "power bi", "spark", "hadoop", "nlp", "computer vision",

	// Other
	"blockchain", "cryptocurrency", "api", "rest", "graphql", "microservices",
	"agile", "scrum", "testing", "unit testing", "automation", "cybersecurity",
}

// softSkills is the canonical list of soft skill terms.
var softSkills = []string{
	"leadership", "communication", "teamwork", "problem solving", "time management",
	"project management", "critical thinking", "creativity", "collaboration",
	"adaptability", "organization", "analytical", "presentation", "negotiation",
	"mentoring", "coaching", "strategic planning", "decision making", "innovation",
	"customer service", "sales", "marketing", "research", "writing", "documentation",
}

// skillGroups is an ad hoc clustering of related technologies, used purely as
// a bonus heuristic during matching. It is not a taxonomy: false negatives
// are acceptable, false positives are bounded by the group definitions.
var skillGroups = map[string][]string{
	"frontend": {"react", "vue", "angular", "javascript", "typescript", "html", "css", "sass", "scss", "tailwind"},
	"backend":  {"node.js", "express", "django", "flask", "spring", "laravel", "rails", "asp.net"},
	"database": {"mysql", "postgresql", "mongodb", "redis", "sqlite", "oracle", "sql server"},
	"cloud":    {"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "jenkins"},
	"mobile":   {"react native", "flutter", "swift", "kotlin", "ionic", "xamarin"},
	"languages": {"javascript", "python", "java", "c#", "c++", "go", "rust", "php", "ruby"},
	"devops":   {"docker", "kubernetes", "jenkins", "gitlab", "github actions", "terraform", "ansible"},
	"testing":  {"jest", "mocha", "cypress", "selenium", "junit", "pytest", "testing"},
}

// all caches the combined technical + soft list; byLower maps the lowercase
// form of each skill to its canonical entry.
var (
	all     []string
	byLower map[string]string
)

func init() {
	all = make([]string, 0, len(technicalSkills)+len(softSkills))
	all = append(all, technicalSkills...)
	all = append(all, softSkills...)

	byLower = make(map[string]string, len(all))
	for _, skill := range all {
		byLower[strings.ToLower(skill)] = skill
	}
}

// All returns every known skill in catalogue order. The returned slice is
// shared; callers must not modify it.
func All() []string {
	return all
}

// Canonical returns the canonical form of a skill given any-cased input,
// and whether the skill is known.
func Canonical(skill string) (string, bool) {
	canonical, ok := byLower[strings.ToLower(skill)]
	return canonical, ok
}

// IsKnown reports whether the given term is a catalogued skill.
func IsKnown(skill string) bool {
	_, ok := byLower[strings.ToLower(skill)]
	return ok
}

// AreRelated reports whether two skills are related: either one contains the
// other, or both fall in the same skill group. Group membership tolerates
// substring containment in both directions, matching how the groups are
// written (e.g. "react" covers "react native").
func AreRelated(a, b string) bool {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	if a == "" || b == "" {
		return false
	}

	if strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}

	for _, group := range skillGroups {
		if inGroup(group, a) && inGroup(group, b) {
			return true
		}
	}
	return false
}

func inGroup(group []string, skill string) bool {
	for _, member := range group {
		if strings.Contains(skill, member) || strings.Contains(member, skill) {
			return true
		}
	}
	return false
}
