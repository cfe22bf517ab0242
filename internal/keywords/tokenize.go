// Package keywords implements prioritized keyword extraction from job
// description text: tokenization, phrase collection, synonym
// canonicalization and tier-weighted statistical scoring.
package keywords

import (
	"regexp"
	"strings"
)

// minTermLength is the shortest a normalized term may be.
const minTermLength = 3

// tokenRe matches runs of alphanumerics case-insensitively, allowing
// internal hyphens and slashes and leading +/# so terms like "c++", "c#"
// and "ci/cd" survive tokenization. Matching runs against the original
// text, never a lowered copy: lowercasing can change byte lengths for some
// runes, so offsets into a lowered string must not be used to slice the
// original.
var tokenRe = regexp.MustCompile(`(?i)[a-z0-9+#][a-z0-9+#\-/]*`)

// Token is one lexical unit of input text. Lower is used for all matching;
// Surface preserves the original casing for display-label selection.
type Token struct {
	Surface string
	Lower   string
}

// Tokenize splits text into alphanumeric tokens, keeping the original
// surface form alongside the lowercase form of each one.
func Tokenize(text string) []Token {
	matches := tokenRe.FindAllString(text, -1)
	if matches == nil {
		return nil
	}
	tokens := make([]Token, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, Token{
			Surface: m,
			Lower:   strings.ToLower(m),
		})
	}
	return tokens
}

// normalizeRe collapses anything outside the token alphabet to spaces.
var normalizeRe = regexp.MustCompile(`[^a-z0-9+#/\- ]+`)

// spaceRe squeezes runs of whitespace.
var spaceRe = regexp.MustCompile(`\s+`)

// NormalizeTerm lowercases a candidate term or phrase and collapses any
// character outside the token alphabet to single spaces.
func NormalizeTerm(term string) string {
	normalized := normalizeRe.ReplaceAllString(strings.ToLower(term), " ")
	normalized = spaceRe.ReplaceAllString(normalized, " ")
	return strings.TrimSpace(normalized)
}
