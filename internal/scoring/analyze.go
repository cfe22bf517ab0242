// Package scoring matches a resume against a frozen JD keyword list and
// aggregates the result into a single 0-100 fit score with a
// matched/missing breakdown and improvement suggestions.
package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/prkumar-ishir/candidate-profiling/internal/keywords"
	"github.com/prkumar-ishir/candidate-profiling/internal/types"
)

// Score component weights. Coverage dominates: matching the important
// keywords matters more than repeating them.
const (
	coverageWeight = 0.6
	densityWeight  = 0.3
	breadthWeight  = 0.1
)

// maxPhraseLen is the longest canonical key, in tokens, that can be matched.
// Longer keys are not expected and count as zero hits.
const maxPhraseLen = 3

// Analyze scores resumeText against the given keyword list. It never
// mutates its inputs, so many resumes may be analyzed concurrently against
// the same list. An empty keyword list yields a zero analysis rather than a
// division by zero.
func Analyze(resumeText string, insights []types.KeywordInsight) types.ResumeAnalysis {
	if len(insights) == 0 {
		return types.ResumeAnalysis{
			Matched: []types.KeywordMatch{},
			Missing: []types.KeywordMatch{},
			Summary: summaryText(0, 0, 0),
		}
	}

	counts := countNGrams(resumeText)

	matched := make([]types.KeywordMatch, 0, len(insights))
	missing := make([]types.KeywordMatch, 0)
	for _, insight := range insights {
		hits := counts.lookup(insight.Key)
		match := types.KeywordMatch{KeywordInsight: insight, ResumeHits: hits}
		if hits > 0 {
			matched = append(matched, match)
		} else {
			missing = append(missing, match)
		}
	}

	coverage, density, breadth := components(matched, insights)
	score := int(math.Round((coverage*coverageWeight + density*densityWeight + breadth*breadthWeight) * 100))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return types.ResumeAnalysis{
		Score:       score,
		Matched:     matched,
		Missing:     missing,
		Summary:     summaryText(coverage, density, breadth),
		Suggestions: Suggest(matched, missing),
	}
}

// components computes the three score inputs, each in [0,1].
func components(matched []types.KeywordMatch, insights []types.KeywordInsight) (coverage, density, breadth float64) {
	totalImportance := 0.0
	for _, insight := range insights {
		totalImportance += insight.Importance
	}
	if totalImportance == 0 {
		totalImportance = 1
	}

	matchedImportance := 0.0
	depth := 0.0
	for _, match := range matched {
		matchedImportance += match.Importance
		wanted := match.Occurrences
		if wanted < 1 {
			wanted = 1
		}
		depth += math.Min(float64(match.ResumeHits)/float64(wanted), 1)
	}

	total := float64(len(insights))
	coverage = matchedImportance / totalImportance
	density = depth / total
	breadth = float64(len(matched)) / total
	return coverage, density, breadth
}

func summaryText(coverage, density, breadth float64) string {
	return fmt.Sprintf("Coverage %d%%, depth %d%%, breadth %d%% vs JD priorities.",
		pct(coverage), pct(density), pct(breadth))
}

func pct(v float64) int {
	return int(math.Round(v * 100))
}

// ngramCounts holds canonicalized occurrence counts per phrase length.
type ngramCounts struct {
	tables [maxPhraseLen]map[string]int // index 0 = unigrams
}

// lookup returns the hit count for a canonical key, choosing the table that
// matches its token length. Keys longer than maxPhraseLen count as zero.
func (c *ngramCounts) lookup(key string) int {
	n := len(strings.Fields(key))
	if n < 1 || n > maxPhraseLen {
		return 0
	}
	return c.tables[n-1][key]
}

// countNGrams tokenizes the resume once and builds canonicalized occurrence
// tables for unigrams, bigrams and trigrams. Phrase windows are subject to
// the same validity rules used during JD extraction, so both sides of a
// match are shaped identically.
func countNGrams(text string) *ngramCounts {
	counts := &ngramCounts{}
	for i := range counts.tables {
		counts.tables[i] = make(map[string]int)
	}

	tokens := keywords.Tokenize(text)
	for _, token := range tokens {
		counts.add(token.Lower)
	}
	for n := 2; n <= maxPhraseLen; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			window := tokens[i : i+n]
			if !keywords.ValidPhrase(window) {
				continue
			}
			parts := make([]string, n)
			for j, t := range window {
				parts[j] = t.Lower
			}
			counts.add(strings.Join(parts, " "))
		}
	}
	return counts
}

// add normalizes, canonicalizes and counts one n-gram. The canonical form
// decides which table the occurrence lands in, so "react native" in a
// resume counts toward the unigram key "react".
func (c *ngramCounts) add(raw string) {
	normalized := keywords.NormalizeTerm(raw)
	if normalized == "" {
		return
	}
	canonical := keywords.Canonical(normalized)
	n := len(strings.Fields(canonical))
	if n < 1 || n > maxPhraseLen {
		return
	}
	c.tables[n-1][canonical]++
}
