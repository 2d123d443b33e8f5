// Package extraction pulls normalized skill sets and keyword lists out of
// free-form resume or job text.
package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/vocabulary"
)

// skillPatterns holds one word-boundary regex per vocabulary skill,
// precompiled at init in catalogue order.
var skillPatterns []skillPattern

type skillPattern struct {
	canonical string
	re        *regexp.Regexp
}

// experiencePatterns capture a trailing technology phrase from common
// experience statements ("3 years of Python", "proficient in Go", ...).
var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\s*(?:years?|yrs?)\s*(?:of\s*)?(?:experience\s*(?:in|with)\s*)?([a-zA-Z\s.#+-]+)`),
	regexp.MustCompile(`(?i)(?:experienced|proficient|skilled)\s*(?:in|with)\s*([a-zA-Z\s.#+-]+)`),
	regexp.MustCompile(`(?i)(?:using|worked\s*with|knowledge\s*of)\s*([a-zA-Z\s.#+-]+)`),
}

// excludeWords are generic terms that must never surface as skills even if a
// context pattern captures them.
var excludeWords = map[string]bool{
	"experience": true, "years": true, "work": true, "worked": true, "using": true,
	"with": true, "and": true, "the": true, "for": true, "in": true, "on": true,
	"at": true, "to": true, "from": true, "as": true, "by": true, "is": true,
	"was": true, "are": true, "were": true, "have": true, "has": true, "had": true,
	"will": true, "would": true, "could": true, "should": true, "may": true,
	"might": true, "can": true, "must": true,
}

var pureNumber = regexp.MustCompile(`^\d+$`)

func init() {
	for _, skill := range vocabulary.All() {
		pattern := `(?i)\b` + regexp.QuoteMeta(strings.ToLower(skill)) + `\b`
		skillPatterns = append(skillPatterns, skillPattern{
			canonical: skill,
			re:        regexp.MustCompile(pattern),
		})
	}
}

// Skills extracts the set of known skills mentioned in text. The result has
// no duplicates (case-insensitive identity) and preserves discovery order:
// vocabulary hits in catalogue order, then synonym variants, then
// experience-context hits. Empty text yields an empty slice.
func Skills(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	textLower := strings.ToLower(text)
	set := newSkillSet()

	for _, sp := range skillPatterns {
		if sp.re.MatchString(textLower) {
			set.add(sp.canonical)
		}
	}

	addVariants(textLower, set)
	addContextSkills(text, set)

	return set.filtered()
}

// addVariants applies hand-coded synonym rules for common shorthand that the
// word-boundary pass misses or that should surface under a display name.
func addVariants(textLower string, set *skillSet) {
	if strings.Contains(textLower, "js ") || strings.Contains(textLower, " js") || strings.Contains(textLower, "js,") {
		set.add("JavaScript")
	}
	if strings.Contains(textLower, "nodejs") || strings.Contains(textLower, "node js") {
		set.add("Node.js")
	}
	if strings.Contains(textLower, "reactjs") || strings.Contains(textLower, "react.js") {
		set.add("React")
	}
	if strings.Contains(textLower, "vuejs") || strings.Contains(textLower, "vue.js") {
		set.add("Vue")
	}
}

// addContextSkills scans experience statements and records the first known
// skill the captured phrase equals or contains.
func addContextSkills(text string, set *skillSet) {
	for _, pattern := range experiencePatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			phrase := strings.ToLower(strings.TrimSpace(match[len(match)-1]))
			if phrase == "" {
				continue
			}
			for _, skill := range vocabulary.All() {
				lower := strings.ToLower(skill)
				if phrase == lower || strings.Contains(phrase, lower) {
					set.add(skill)
					break
				}
			}
		}
	}
}

// skillSet is an insertion-ordered, case-insensitive string set.
type skillSet struct {
	seen  map[string]bool
	order []string
}

func newSkillSet() *skillSet {
	return &skillSet{seen: make(map[string]bool)}
}

func (s *skillSet) add(skill string) {
	lower := strings.ToLower(skill)
	if s.seen[lower] {
		return
	}
	s.seen[lower] = true
	s.order = append(s.order, skill)
}

// filtered drops single-character entries, excluded generic words and pure
// numbers, returning the surviving skills in insertion order.
func (s *skillSet) filtered() []string {
	var out []string
	for _, skill := range s.order {
		if len(skill) <= 1 {
			continue
		}
		if excludeWords[strings.ToLower(skill)] {
			continue
		}
		if pureNumber.MatchString(skill) {
			continue
		}
		out = append(out, skill)
	}
	return out
}
