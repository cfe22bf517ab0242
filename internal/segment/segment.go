// Package segment splits job description text into tier-tagged fragments.
//
// A fragment is one logical line of the JD. Section headings ("Requirements",
// "Nice to have", ...) are consumed to update the active requirement tier and
// are not emitted as fragments. Inline priority markers ("must", "preferred")
// override the tier for a single fragment without touching the active tier.
package segment

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/prkumar-ishir/candidate-profiling/internal/types"
)

// maxHeadingLength is the longest a line can be and still count as a heading.
const maxHeadingLength = 80

// Fragment is one logical line of JD text tagged with the requirement tier
// active at that point. IDs are ordinals used only for coverage counting.
type Fragment struct {
	ID   int
	Text string
	Tier types.RequirementTier
}

// headingRule pairs a heading pattern with the tier it activates.
type headingRule struct {
	re   *regexp.Regexp
	tier types.RequirementTier
}

// Heading rules are checked in order; the first match wins. bareRe matches a
// line that is nothing but a heading, prefixRe matches a "Heading: content"
// lead-in on a content line.
var headingRules = []struct {
	bareRe   *regexp.Regexp
	prefixRe *regexp.Regexp
	tier     types.RequirementTier
}{
	{
		bareRe:   regexp.MustCompile(`(?i)^\W*(must[-\s]haves?|(minimum|basic|key)\s+)?(requirements?|qualifications?|skills)\b[\s:]*$`),
		prefixRe: regexp.MustCompile(`(?i)^\W*(must[-\s]haves?|requirements?|qualifications?|skills)\s*[:\-]\s*`),
		tier:     types.TierCore,
	},
	{
		bareRe:   regexp.MustCompile(`(?i)^\W*(responsibilit\w*|what you('|’)?ll do|what you will do|day[-\s]to[-\s]day)\b[\s:]*$`),
		prefixRe: regexp.MustCompile(`(?i)^\W*(responsibilit\w*|what you('|’)?ll do|what you will do|day[-\s]to[-\s]day)\s*[:\-]\s*`),
		tier:     types.TierResponsibility,
	},
	{
		bareRe:   regexp.MustCompile(`(?i)^\W*(preferred(\s+qualifications?)?|nice[-\s]to[-\s]have|bonus(\s+points?)?|good[-\s]to[-\s]have)\b[\s:]*$`),
		prefixRe: regexp.MustCompile(`(?i)^\W*(preferred|nice[-\s]to[-\s]have|bonus|good[-\s]to[-\s]have)\s*[:\-]\s*`),
		tier:     types.TierPreferred,
	},
}

// Inline markers tag a single fragment without changing the active tier.
var (
	inlineCoreRe      = regexp.MustCompile(`(?i)\b(must|required)\b`)
	inlinePreferredRe = regexp.MustCompile(`(?i)\b(preferred|nice to have|bonus)\b`)
)

// sentenceRe splits a physical line into sentence-level fragments so that
// JDs written as running prose still get per-requirement tier tagging.
var sentenceRe = regexp.MustCompile(`[.!?]\s+`)

// Split segments JD text into ordered, tier-tagged fragments. The active
// tier starts at general and is advanced by headings as they are consumed.
func Split(text string) []Fragment {
	active := types.TierGeneral
	fragments := make([]Fragment, 0)
	next := 0

	for _, line := range strings.Split(text, "\n") {
		for _, piece := range splitSentences(line) {
			piece = strings.TrimSpace(piece)
			if piece == "" {
				continue
			}

			// A short line that is nothing but a heading switches the
			// active tier and produces no fragment.
			if rule, ok := matchBareHeading(piece); ok {
				active = rule.tier
				continue
			}

			// A "Heading: content" lead-in also switches the active tier,
			// and the remainder is processed as a normal fragment.
			if rule, rest, ok := stripHeadingPrefix(piece); ok {
				active = rule.tier
				piece = strings.TrimSpace(rest)
				if piece == "" {
					continue
				}
			}

			tier := active
			if t, ok := inlineTier(piece); ok {
				tier = t // one-shot override, active tier unchanged
			}

			fragments = append(fragments, Fragment{ID: next, Text: piece, Tier: tier})
			next++
		}
	}

	return fragments
}

// splitSentences breaks a line at sentence terminators followed by
// whitespace, so dotted terms like "node.js" stay intact.
func splitSentences(line string) []string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil
	}
	return sentenceRe.Split(trimmed, -1)
}

func matchBareHeading(line string) (headingRule, bool) {
	if utf8.RuneCountInString(line) > maxHeadingLength {
		return headingRule{}, false
	}
	for _, rule := range headingRules {
		if rule.bareRe.MatchString(line) {
			return headingRule{re: rule.bareRe, tier: rule.tier}, true
		}
	}
	return headingRule{}, false
}

func stripHeadingPrefix(line string) (headingRule, string, bool) {
	if utf8.RuneCountInString(line) > maxHeadingLength {
		return headingRule{}, "", false
	}
	for _, rule := range headingRules {
		if loc := rule.prefixRe.FindStringIndex(line); loc != nil && loc[0] == 0 {
			return headingRule{re: rule.prefixRe, tier: rule.tier}, line[loc[1]:], true
		}
	}
	return headingRule{}, "", false
}

// inlineTier reports the one-shot tier for a fragment containing an inline
// priority marker. Core markers win over preferred markers.
func inlineTier(text string) (types.RequirementTier, bool) {
	if inlineCoreRe.MatchString(text) {
		return types.TierCore, true
	}
	if inlinePreferredRe.MatchString(text) {
		return types.TierPreferred, true
	}
	return "", false
}
