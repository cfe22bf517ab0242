// Package ingestion turns uploaded documents into clean plain text for the
// extraction and scoring engine. Nothing read here is ever persisted.
package ingestion

import (
	"regexp"
	"strings"
)

var blankRunRe = regexp.MustCompile(`\n{3,}`)

// CleanText normalizes line endings, trims trailing whitespace per line and
// squeezes runs of blank lines, leaving the line structure that segmentation
// relies on intact.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	content = strings.Join(lines, "\n")

	content = blankRunRe.ReplaceAllString(content, "\n\n")
	return strings.TrimSpace(content)
}
