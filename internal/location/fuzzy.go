package location

import (
	"sort"
	"strings"
)

// fuzzyMatch is one scored hit from a fuzzy index search.
type fuzzyMatch struct {
	value string
	score float64
}

// fuzzyIndex scores a query against a fixed list of entries. An exact match
// short-circuits to 1.0, substring containment (either direction) to 0.8,
// otherwise normalized edit-distance similarity. Search is a linear scan,
// which is fine at gazetteer sizes (hundreds of entries).
type fuzzyIndex struct {
	entries []string
}

func newFuzzyIndex(entries []string) *fuzzyIndex {
	return &fuzzyIndex{entries: entries}
}

// search returns all entries scoring at or above threshold, best first.
func (ix *fuzzyIndex) search(query string, threshold float64) []fuzzyMatch {
	queryLower := strings.ToLower(query)

	var results []fuzzyMatch
	for _, entry := range ix.entries {
		entryLower := strings.ToLower(entry)

		var score float64
		switch {
		case entryLower == queryLower:
			score = 1.0
		case strings.Contains(entryLower, queryLower) || strings.Contains(queryLower, entryLower):
			score = 0.8
		default:
			// Character-based, not byte-based: accented gazetteer entries
			// ("São Paulo", "Córdoba") must not score lower for their UTF-8
			// encoding length.
			queryRunes := []rune(queryLower)
			entryRunes := []rune(entryLower)
			distance := levenshtein(queryRunes, entryRunes)
			maxLen := len(queryRunes)
			if len(entryRunes) > maxLen {
				maxLen = len(entryRunes)
			}
			score = 1 - float64(distance)/float64(maxLen)
		}

		if score >= threshold {
			results = append(results, fuzzyMatch{value: entry, score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})
	return results
}

// levenshtein computes the edit distance between two rune sequences with the
// standard two-row dynamic programming formulation.
func levenshtein(a, b []rune) int {
	if string(a) == string(b) {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for j := 0; j <= len(a); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(b); i++ {
		curr[0] = i
		for j := 1; j <= len(a); j++ {
			cost := 1
			if b[i-1] == a[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j-1]+cost, curr[j-1]+1, prev[j]+1)
		}
		prev, curr = curr, prev
	}
	return prev[len(a)]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
