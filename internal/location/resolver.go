package location

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Confidence constants for exact gazetteer hits and the weights applied to
// fuzzy hits. These literals are contractual; scoring depends on them.
const (
	cityConfidence    = 0.8
	stateConfidence   = 0.7
	countryConfidence = 0.6

	cityFuzzyWeight    = 0.6
	stateFuzzyWeight   = 0.5
	countryFuzzyWeight = 0.4

	cityFuzzyThreshold    = 0.7
	stateFuzzyThreshold   = 0.8
	countryFuzzyThreshold = 0.7
)

var (
	cityIndex    = newFuzzyIndex(cities)
	stateIndex   = newFuzzyIndex(states)
	countryIndex = newFuzzyIndex(countries)

	cityPatterns    = compileGazetteer(cities)
	statePatterns   = compileGazetteer(states)
	countryPatterns = compileGazetteer(countries)
)

type gazetteerPattern struct {
	name string
	re   *regexp.Regexp
}

func compileGazetteer(entries []string) []gazetteerPattern {
	patterns := make([]gazetteerPattern, 0, len(entries))
	for _, entry := range entries {
		patterns = append(patterns, gazetteerPattern{
			name: entry,
			re:   regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(entry) + `\b`),
		})
	}
	return patterns
}

// Extract derives a best-guess location from resume text. Exact whole-word
// gazetteer hits win at fixed confidences (city 0.8, state 0.7, country 0.6);
// a fuzzy word-by-word pass runs after at reduced weight. A lower-confidence
// state or country still attaches when a city is already set but that field
// is not ("gap filling") - this irregular override is intentional and the
// resolved location depends on it.
func Extract(text string) types.LocationInfo {
	textLower := strings.ToLower(text)
	var best types.LocationInfo

	for _, p := range cityPatterns {
		if p.re.MatchString(textLower) && cityConfidence > best.Confidence {
			best = types.LocationInfo{
				City:         p.name,
				FullLocation: p.name,
				Confidence:   cityConfidence,
			}
		}
	}

	for _, p := range statePatterns {
		if p.re.MatchString(textLower) && (stateConfidence > best.Confidence || (best.City != "" && best.State == "")) {
			attachState(&best, p.name, stateConfidence)
		}
	}

	for _, p := range countryPatterns {
		if p.re.MatchString(textLower) && (countryConfidence > best.Confidence || (best.City != "" && best.Country == "")) {
			attachCountry(&best, p.name, countryConfidence)
		}
	}

	for _, word := range strings.Fields(textLower) {
		if len(word) <= 3 {
			continue
		}

		if matches := cityIndex.search(word, cityFuzzyThreshold); len(matches) > 0 {
			confidence := matches[0].score * cityFuzzyWeight
			if confidence > best.Confidence {
				best = types.LocationInfo{
					City:         matches[0].value,
					FullLocation: matches[0].value,
					Confidence:   confidence,
				}
			}
		}

		if matches := stateIndex.search(word, stateFuzzyThreshold); len(matches) > 0 {
			confidence := matches[0].score * stateFuzzyWeight
			if confidence > best.Confidence || (best.City != "" && best.State == "") {
				attachState(&best, matches[0].value, confidence)
			}
		}

		if matches := countryIndex.search(word, countryFuzzyThreshold); len(matches) > 0 {
			confidence := matches[0].score * countryFuzzyWeight
			if confidence > best.Confidence || (best.City != "" && best.Country == "") {
				attachCountry(&best, matches[0].value, confidence)
			}
		}
	}

	return best
}

func attachState(best *types.LocationInfo, state string, confidence float64) {
	best.State = state
	if best.City != "" {
		best.FullLocation = best.City + ", " + state
	} else {
		best.FullLocation = state
	}
	if confidence > best.Confidence {
		best.Confidence = confidence
	}
}

func attachCountry(best *types.LocationInfo, country string, confidence float64) {
	best.Country = country
	if best.FullLocation != "" {
		best.FullLocation = best.FullLocation + ", " + country
	} else {
		best.FullLocation = country
	}
	if confidence > best.Confidence {
		best.Confidence = confidence
	}
}

// Match classifies proximity between a resolved resume location and a job's
// free-text location. The first applicable rule wins.
func Match(resume types.LocationInfo, jobLocation string) types.LocationMatch {
	if resume.FullLocation == "" || resume.Confidence < 0.3 {
		return types.LocationMatch{Similarity: 0.1, Distance: types.DistanceInternational}
	}

	resumeLoc := strings.ToLower(resume.FullLocation)
	jobLoc := strings.ToLower(jobLocation)

	if resumeLoc == jobLoc {
		return types.LocationMatch{Similarity: 1.0, Distance: types.DistanceLocal}
	}

	if strings.Contains(jobLoc, "remote") || strings.Contains(jobLoc, "work from home") || strings.Contains(jobLoc, "anywhere") {
		return types.LocationMatch{Similarity: 0.9, Distance: types.DistanceRemote}
	}

	if resume.City != "" && strings.Contains(jobLoc, strings.ToLower(resume.City)) {
		return types.LocationMatch{Similarity: 0.9, Distance: types.DistanceLocal}
	}

	if resume.State != "" && strings.Contains(jobLoc, strings.ToLower(resume.State)) {
		return types.LocationMatch{Similarity: 0.7, Distance: types.DistanceRegional}
	}

	if resume.Country != "" && strings.Contains(jobLoc, strings.ToLower(resume.Country)) {
		return types.LocationMatch{Similarity: 0.5, Distance: types.DistanceNational}
	}

	if matches := cityIndex.search(jobLoc, 0.6); len(matches) > 0 {
		similarity := matches[0].score * 0.8
		distance := types.DistanceNational
		if similarity > 0.7 {
			distance = types.DistanceRegional
		}
		return types.LocationMatch{Similarity: similarity, Distance: distance}
	}

	for hub, satellites := range techHubs {
		if (strings.Contains(resumeLoc, hub) && containsAny(jobLoc, satellites)) ||
			(strings.Contains(jobLoc, hub) && containsAny(resumeLoc, satellites)) {
			return types.LocationMatch{Similarity: 0.8, Distance: types.DistanceRegional}
		}
	}

	return types.LocationMatch{Similarity: 0.2, Distance: types.DistanceInternational}
}

// Bonus converts a proximity classification into match-score points.
func Bonus(m types.LocationMatch) int {
	switch m.Distance {
	case types.DistanceLocal:
		return 15
	case types.DistanceRemote:
		return 12
	case types.DistanceRegional:
		return 8
	case types.DistanceNational:
		return 4
	default:
		return 0
	}
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
