// Package suggestions generates learning suggestions for the skills a resume
// is missing against a job posting. With an API key it asks the LLM for
// tailored advice; without one it falls back to deterministic templates, so
// skills-gap analysis always returns something useful.
package suggestions

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/schemas"
)

// Suggestion is one piece of learning advice for a missing skill.
type Suggestion struct {
	Skill     string   `json:"skill"`
	Advice    string   `json:"advice"`
	Resources []string `json:"resources,omitempty"`
}

// maxSkillsPerPrompt caps how many missing skills are sent to the LLM at once.
const maxSkillsPerPrompt = 10

// responseSchema validates the LLM's JSON before it is trusted.
const responseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["suggestions"],
  "properties": {
    "suggestions": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["skill", "advice"],
        "properties": {
          "skill": {"type": "string", "minLength": 1},
          "advice": {"type": "string", "minLength": 1},
          "resources": {
            "type": "array",
            "items": {"type": "string"}
          }
        }
      }
    }
  }
}`

// Suggester produces learning suggestions for missing skills.
// A nil client is valid and selects the deterministic fallback.
type Suggester struct {
	client llm.Client
}

// NewSuggester creates a Suggester backed by the given LLM client.
// Pass nil to run without an LLM (deterministic suggestions only).
func NewSuggester(client llm.Client) *Suggester {
	return &Suggester{client: client}
}

// ForMissingSkills returns one suggestion per missing skill. LLM failures and
// invalid responses degrade to the deterministic fallback rather than erroring;
// the analysis endpoint treats suggestions as best-effort.
func (s *Suggester) ForMissingSkills(ctx context.Context, jobTitle string, missingSkills []string) []Suggestion {
	if len(missingSkills) == 0 {
		return nil
	}

	if s.client != nil {
		if suggestions, err := s.generate(ctx, jobTitle, missingSkills); err == nil {
			return suggestions
		}
	}

	return Fallback(missingSkills)
}

// generate asks the LLM for suggestions and validates the response shape.
func (s *Suggester) generate(ctx context.Context, jobTitle string, missingSkills []string) ([]Suggestion, error) {
	skills := missingSkills
	if len(skills) > maxSkillsPerPrompt {
		skills = skills[:maxSkillsPerPrompt]
	}

	prompt := buildPrompt(jobTitle, skills)

	raw, err := s.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, fmt.Errorf("failed to generate suggestions: %w", err)
	}

	raw = llm.CleanJSONBlock(raw)
	if err := schemas.ValidateJSONString(responseSchema, raw); err != nil {
		return nil, fmt.Errorf("suggestion response failed validation: %w", err)
	}

	var parsed struct {
		Suggestions []Suggestion `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse suggestion response: %w", err)
	}
	if len(parsed.Suggestions) == 0 {
		return nil, fmt.Errorf("suggestion response was empty")
	}

	return parsed.Suggestions, nil
}

// Fallback returns deterministic template suggestions, one per skill.
func Fallback(missingSkills []string) []Suggestion {
	suggestions := make([]Suggestion, 0, len(missingSkills))
	for _, skill := range missingSkills {
		suggestions = append(suggestions, Suggestion{
			Skill:  skill,
			Advice: fmt.Sprintf("Consider building a small project with %s and adding it to your resume.", skill),
		})
	}
	return suggestions
}

func buildPrompt(jobTitle string, skills []string) string {
	var sb strings.Builder
	sb.WriteString("You are a career coach. A candidate is missing the following skills")
	if jobTitle != "" {
		sb.WriteString(" for the role of ")
		sb.WriteString(jobTitle)
	}
	sb.WriteString(":\n")
	for _, skill := range skills {
		sb.WriteString("- " + skill + "\n")
	}
	sb.WriteString("\nFor each skill, give one short, concrete piece of advice on how to learn it, ")
	sb.WriteString("optionally with up to two well-known learning resources.\n")
	sb.WriteString(`Respond with JSON only, in this shape: {"suggestions": [{"skill": "...", "advice": "...", "resources": ["..."]}]}`)
	return sb.String()
}
