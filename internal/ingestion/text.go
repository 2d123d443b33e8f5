package ingestion

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var (
	runsOfSpace = regexp.MustCompile(`\s+`)
	blankRuns   = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes resume or job text before extraction. Markdown
// structure survives cleaning: headings and bullets mark sections the
// skill extractor weights differently from body prose.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}

	// At most two consecutive newlines, so paragraph breaks survive but
	// pasted-in vertical padding does not.
	result := blankRuns.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine normalizes whitespace within one line. Headings lose their
// indentation, bullets and indented prose keep theirs.
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t")
	if strings.HasPrefix(trimmed, "#") {
		return trimmed
	}

	indent := len(line) - len(trimmed)
	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
		if indent > 0 {
			return strings.Repeat(" ", indent) + trimmed
		}
		return trimmed
	}

	body := runsOfSpace.ReplaceAllString(strings.TrimSpace(line), " ")
	if indent > 0 {
		return strings.Repeat(" ", indent) + body
	}
	return body
}

// IngestFromFile reads a resume file from disk and cleans it.
func IngestFromFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found: %w", err)
		}
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return CleanText(string(content)), nil
}
