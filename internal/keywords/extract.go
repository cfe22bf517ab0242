package keywords

import (
	"math"
	"sort"
	"strings"

	"github.com/prkumar-ishir/candidate-profiling/internal/segment"
	"github.com/prkumar-ishir/candidate-profiling/internal/types"
)

// DefaultLimit is the number of keywords returned when the caller does not
// ask for a specific amount.
const DefaultLimit = 28

// Phrase boosts reward multi-token terms, which tend to be more specific
// than single tokens.
const (
	bigramBoost  = 1.1
	trigramBoost = 1.15
	phraseBonus  = 1.05
)

// Refinement thresholds. These are empirically chosen and tunable; they are
// not load-bearing invariants.
const (
	coverageFilterMinKeywords   = 10   // coverage filter engages above this many keywords
	percentileFilterMinKeywords = 12   // percentile filter engages above this many
	minSurvivingKeywords        = 5    // a filter is skipped if fewer would survive
	broadCoverageThreshold      = 0.45 // terms spread wider than this look generic
	broadCoverageImportanceMin  = 0.4  // unless they are at least this important
	importancePercentile        = 0.25
	importanceFloor             = 0.25
)

// stats accumulates per-canonical-term statistics during one extraction
// pass. Instances live only for the duration of a single Extract call.
type stats struct {
	canonical    string
	count        int
	weighted     float64
	tierWeights  map[types.RequirementTier]float64
	phrase       bool
	variants     map[string]struct{}
	surfaces     map[string]int
	surfaceOrder []string
	fragments    map[int]struct{}
}

// Extract produces a ranked keyword list from JD text. Empty or
// whitespace-only input yields an empty list; callers treat that as "no
// meaningful keywords found". The call is a pure function of its input.
func Extract(text string, limit int) []types.KeywordInsight {
	if limit <= 0 {
		limit = DefaultLimit
	}

	fragments := segment.Split(text)
	if len(fragments) == 0 {
		return nil
	}

	acc := make(map[string]*stats)
	order := make([]string, 0) // canonical keys in first-seen order

	for _, fragment := range fragments {
		tokens := Tokenize(fragment.Text)
		collectTerms(acc, &order, tokens, fragment)
		collectPhrases(acc, &order, tokens, fragment, 2)
		collectPhrases(acc, &order, tokens, fragment, 3)
	}

	insights := finalize(acc, order, len(fragments))
	insights = refine(insights)

	if len(insights) > limit {
		insights = insights[:limit]
	}
	return insights
}

// collectTerms records unigram occurrences for tokens that pass the length
// and filler filters.
func collectTerms(acc map[string]*stats, order *[]string, tokens []Token, fragment segment.Fragment) {
	for _, token := range tokens {
		if len(token.Lower) < minTermLength && !IsKnownTerm(token.Lower) {
			continue
		}
		if isFillerWord(token.Lower) && !IsKnownTerm(token.Lower) {
			continue
		}
		record(acc, order, token.Lower, token.Surface, fragment, 1)
	}
}

// collectPhrases records n-gram occurrences for every valid 2- or 3-token
// window.
func collectPhrases(acc map[string]*stats, order *[]string, tokens []Token, fragment segment.Fragment, n int) {
	for i := 0; i+n <= len(tokens); i++ {
		window := tokens[i : i+n]
		if !ValidPhrase(window) {
			continue
		}
		lowers := make([]string, n)
		surfaces := make([]string, n)
		for j, t := range window {
			lowers[j] = t.Lower
			surfaces[j] = t.Surface
		}
		record(acc, order, strings.Join(lowers, " "), strings.Join(surfaces, " "), fragment, n)
	}
}

// ValidPhrase applies the candidate phrase rules: no filler word at either
// edge (unless the word belongs to a synonym group), enough meaningful
// tokens for the phrase length, and not built purely from stop words.
func ValidPhrase(window []Token) bool {
	first := window[0].Lower
	last := window[len(window)-1].Lower
	if isFillerWord(first) && !IsKnownTerm(first) {
		return false
	}
	if isFillerWord(last) && !IsKnownTerm(last) {
		return false
	}

	meaningful := 0
	allWeak := true
	for _, t := range window {
		if !isFillerWord(t.Lower) {
			meaningful++
		}
		if !isStopWord(t.Lower) || isConnectorWord(t.Lower) {
			allWeak = false
		}
	}
	if allWeak {
		return false
	}

	minMeaningful := 1
	if len(window) == 3 {
		minMeaningful = 2
	}
	return meaningful >= minMeaningful
}

// record normalizes and canonicalizes one occurrence and folds it into the
// right accumulator bucket.
func record(acc map[string]*stats, order *[]string, lower, surface string, fragment segment.Fragment, n int) {
	normalized := NormalizeTerm(lower)
	if normalized == "" {
		return
	}
	if (len(normalized) < minTermLength || isGenericTerm(normalized)) && !IsKnownTerm(normalized) {
		return
	}

	canonical := Canonical(normalized)
	entry, ok := acc[canonical]
	if !ok {
		entry = &stats{
			canonical:   canonical,
			tierWeights: make(map[types.RequirementTier]float64),
			variants:    make(map[string]struct{}),
			surfaces:    make(map[string]int),
			fragments:   make(map[int]struct{}),
		}
		acc[canonical] = entry
		*order = append(*order, canonical)
	}

	boost := 1.0
	switch n {
	case 2:
		boost = bigramBoost
	case 3:
		boost = trigramBoost
	}
	increment := fragment.Tier.Weight() * boost

	entry.count++
	entry.weighted += increment
	entry.tierWeights[fragment.Tier] += increment
	if n > 1 {
		entry.phrase = true
	}
	entry.variants[normalized] = struct{}{}
	if _, seen := entry.surfaces[surface]; !seen {
		entry.surfaceOrder = append(entry.surfaceOrder, surface)
	}
	entry.surfaces[surface]++
	entry.fragments[fragment.ID] = struct{}{}
}

// finalize turns accumulators into immutable insights, normalizing
// importance against the highest weighted term in this extraction.
func finalize(acc map[string]*stats, order []string, totalFragments int) []types.KeywordInsight {
	maxWeighted := 0.0
	for _, entry := range acc {
		if entry.weighted > maxWeighted {
			maxWeighted = entry.weighted
		}
	}
	if maxWeighted == 0 {
		return nil
	}
	if totalFragments < 1 {
		totalFragments = 1
	}

	insights := make([]types.KeywordInsight, 0, len(order))
	for _, canonical := range order {
		entry := acc[canonical]
		tier := dominantTier(entry.tierWeights)

		bonus := 1.0
		source := types.SourceTerm
		if entry.phrase {
			bonus = phraseBonus
			source = types.SourcePhrase
		}
		importance := math.Min(1, entry.weighted/maxWeighted*tier.Weight()*bonus)
		importance = math.Round(importance*1000) / 1000

		insights = append(insights, types.KeywordInsight{
			Key:         canonical,
			Label:       displayLabel(entry),
			Occurrences: entry.count,
			Importance:  importance,
			Tier:        tier,
			Source:      source,
			Variants:    sortedVariants(entry.variants),
			Coverage:    float64(len(entry.fragments)) / float64(totalFragments),
		})
	}

	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].Importance > insights[j].Importance
	})
	return insights
}

// dominantTier picks the tier with the largest weight bucket, breaking ties
// by tier importance (core first).
func dominantTier(weights map[types.RequirementTier]float64) types.RequirementTier {
	best := types.TierGeneral
	bestWeight := -1.0
	for _, tier := range types.TierOrder {
		if w, ok := weights[tier]; ok && w > bestWeight {
			best = tier
			bestWeight = w
		}
	}
	return best
}

// displayLabel picks the most frequent literal surface form, breaking ties
// by first-seen order.
func displayLabel(entry *stats) string {
	label := entry.canonical
	bestCount := 0
	for _, surface := range entry.surfaceOrder {
		if entry.surfaces[surface] > bestCount {
			label = surface
			bestCount = entry.surfaces[surface]
		}
	}
	return label
}

func sortedVariants(variants map[string]struct{}) []string {
	out := make([]string, 0, len(variants))
	for v := range variants {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// refine applies the two guarded filters: drop JD-wide generic terms, then
// trim the low-importance tail. Either filter is skipped when it would leave
// fewer than minSurvivingKeywords.
func refine(insights []types.KeywordInsight) []types.KeywordInsight {
	if len(insights) > coverageFilterMinKeywords {
		kept := make([]types.KeywordInsight, 0, len(insights))
		for _, insight := range insights {
			if insight.Coverage <= broadCoverageThreshold || insight.Importance >= broadCoverageImportanceMin {
				kept = append(kept, insight)
			}
		}
		if len(kept) >= minSurvivingKeywords {
			insights = kept
		}
	}

	if len(insights) > percentileFilterMinKeywords {
		threshold := math.Max(importanceFloor, importanceQuantile(insights, importancePercentile))
		kept := make([]types.KeywordInsight, 0, len(insights))
		for _, insight := range insights {
			if insight.Importance >= threshold {
				kept = append(kept, insight)
			}
		}
		if len(kept) >= minSurvivingKeywords {
			insights = kept
		}
	}

	return insights
}

// importanceQuantile computes a quantile of the importance values with
// linear interpolation.
func importanceQuantile(insights []types.KeywordInsight, q float64) float64 {
	values := make([]float64, len(insights))
	for i, insight := range insights {
		values[i] = insight.Importance
	}
	sort.Float64s(values)

	if len(values) == 1 {
		return values[0]
	}
	rank := q * float64(len(values)-1)
	lo := int(math.Floor(rank))
	hi := lo + 1
	if hi >= len(values) {
		return values[lo]
	}
	frac := rank - float64(lo)
	return values[lo] + frac*(values[hi]-values[lo])
}
