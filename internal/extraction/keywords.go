package extraction

import (
	"strings"
	"unicode"
)

// keywordStopWords filters common English words that add noise to keyword
// extraction.
var keywordStopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "is": true, "are": true, "was": true, "were": true,
	"be": true, "been": true, "being": true, "have": true, "has": true, "had": true,
	"do": true, "does": true, "did": true, "will": true, "would": true,
	"could": true, "should": true, "may": true, "might": true, "can": true,
	"this": true, "that": true, "these": true, "those": true, "i": true,
	"you": true, "he": true, "she": true, "it": true, "we": true, "they": true,
	"me": true, "him": true, "her": true, "us": true, "them": true,
}

// Tokenize splits text into lowercase word tokens. Letters and digits are
// word characters; everything else separates tokens.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// TokenSet returns the set of lowercase word tokens in text.
func TokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, token := range Tokenize(text) {
		set[token] = true
	}
	return set
}

// Keywords extracts the most salient free-text keywords: lowercase tokens
// longer than two characters that are neither stop words nor pure numbers,
// deduplicated in discovery order and capped at limit (0 means no cap).
func Keywords(text string, limit int) []string {
	seen := make(map[string]bool)
	var out []string
	for _, token := range Tokenize(text) {
		if len(token) <= 2 || keywordStopWords[token] {
			continue
		}
		if isDigits(token) {
			continue
		}
		if seen[token] {
			continue
		}
		seen[token] = true
		out = append(out, token)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
