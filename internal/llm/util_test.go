package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock_StripsCodeFences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json fence",
			input:    "```json\n{\"skill\": \"docker\"}\n```",
			expected: `{"skill": "docker"}`,
		},
		{
			name:     "bare fence",
			input:    "```\n{\"skill\": \"docker\"}\n```",
			expected: `{"skill": "docker"}`,
		},
		{
			name:     "fence with language tag",
			input:    "```javascript\n{\"skill\": \"docker\"}\n```",
			expected: `{"skill": "docker"}`,
		},
		{
			name:     "unfenced JSON passes through",
			input:    `{"skill": "docker"}`,
			expected: `{"skill": "docker"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}

func TestCleanJSONBlock_StripsConversationalText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "preamble before object",
			input:    "As requested, here is the JSON:\n{\"skill\": \"kubernetes\"}",
			expected: `{"skill": "kubernetes"}`,
		},
		{
			name:     "multi-sentence preamble",
			input:    "Based on the job posting provided, I've identified the missing skills. Here's the structured output:\n\n{\"skill\": \"kubernetes\", \"advice\": \"deploy a small cluster\"}",
			expected: `{"skill": "kubernetes", "advice": "deploy a small cluster"}`,
		},
		{
			name:     "preamble before array",
			input:    "Here are the suggestions:\n[\"terraform\", \"ansible\"]",
			expected: `["terraform", "ansible"]`,
		},
		{
			name:     "trailing chatter",
			input:    "{\"skill\": \"go\"}\n\nLet me know if you need anything else!",
			expected: `{"skill": "go"}`,
		},
		{
			name:     "nested objects survive",
			input:    "Output:\n{\"gap\": {\"skill\": \"rust\"}}",
			expected: `{"gap": {"skill": "rust"}}`,
		},
		{
			name:     "escaped quotes inside strings",
			input:    "Result: {\"advice\": \"read \\\"The Go Programming Language\\\"\"}",
			expected: `{"advice": "read \"The Go Programming Language\""}`,
		},
		{
			name:     "deep nesting",
			input:    "Here: {\"a\": {\"b\": {\"c\": {\"d\": \"deep\"}}}}",
			expected: `{"a": {"b": {"c": {"d": "deep"}}}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple object", `{"skill": "go"}`, `{"skill": "go"}`},
		{"nested object", `{"outer": {"inner": "value"}}`, `{"outer": {"inner": "value"}}`},
		{"object holding array", `{"resources": [1, 2, 3]}`, `{"resources": [1, 2, 3]}`},
		{"trailing text dropped", `{"skill": "go"} and some more text`, `{"skill": "go"}`},
		{"braces inside strings ignored", `{"template": "learn {skill} basics"}`, `{"template": "learn {skill} basics"}`},
		{"empty input", "", ""},
		{"no leading brace", "not json", ""},
		{"unbalanced object", `{"skill": "go"`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractJSONObject(tt.input))
		})
	}
}

func TestExtractJSONArray(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple array", `["go", "docker"]`, `["go", "docker"]`},
		{"nested arrays", `[[1, 2], [3, 4]]`, `[[1, 2], [3, 4]]`},
		{"array of objects", `[{"skill": "go"}, {"skill": "rust"}]`, `[{"skill": "go"}, {"skill": "rust"}]`},
		{"trailing text dropped", `[1, 2, 3] extra stuff`, `[1, 2, 3]`},
		{"empty input", "", ""},
		{"no leading bracket", "not array", ""},
		{"unbalanced array", `["go", "docker"`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractJSONArray(tt.input))
		})
	}
}
