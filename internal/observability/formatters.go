// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/prkumar-ishir/candidate-profiling/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 64
	// maxKeywordsToShow caps the keyword table in verbose output
	maxKeywordsToShow = 15
	// maxListItems caps matched/missing/suggestion lists
	maxListItems = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintKeywords outputs a ranked table of extracted JD keywords.
func (p *Printer) PrintKeywords(insights []types.KeywordInsight) {
	if len(insights) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(insights), maxKeywordsToShow)
	for i := 0; i < count; i++ {
		insight := insights[i]
		sb.WriteString(fmt.Sprintf("%2d. %-24s %3.0f%%  %s", i+1, insight.Label, insight.Importance*100, insight.Tier))
		if insight.Source == types.SourcePhrase {
			sb.WriteString(" (phrase)")
		}
		sb.WriteString("\n")
	}
	if len(insights) > count {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(insights)-count))
	}

	p.printBox(fmt.Sprintf("JD KEYWORDS (%d)", len(insights)), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAnalysis outputs a human-readable summary of one resume analysis.
func (p *Printer) PrintAnalysis(name string, analysis types.ResumeAnalysis) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Score:    %d/100\n", analysis.Score))
	sb.WriteString(analysis.Summary)
	sb.WriteString("\n")

	if len(analysis.Matched) > 0 {
		sb.WriteString("\nMatched:\n")
		count := min(len(analysis.Matched), maxListItems)
		for i := 0; i < count; i++ {
			m := analysis.Matched[i]
			sb.WriteString(fmt.Sprintf("  • %s (%dx)\n", m.Label, m.ResumeHits))
		}
		if len(analysis.Matched) > count {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.Matched)-count))
		}
	}

	if len(analysis.Missing) > 0 {
		sb.WriteString("\nMissing:\n")
		count := min(len(analysis.Missing), maxListItems)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s (%s)\n", analysis.Missing[i].Label, analysis.Missing[i].Tier))
		}
		if len(analysis.Missing) > count {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.Missing)-count))
		}
	}

	if len(analysis.Suggestions) > 0 {
		sb.WriteString("\nSuggestions:\n")
		count := min(len(analysis.Suggestions), maxListItems)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  → %s\n", analysis.Suggestions[i].Action))
		}
	}

	p.printBox(fmt.Sprintf("RESUME ANALYSIS: %s", name), strings.TrimSuffix(sb.String(), "\n"))
}
