package scoring

import (
	"fmt"
	"math"
	"sort"

	"github.com/prkumar-ishir/candidate-profiling/internal/types"
)

// Suggestion limits. Missing must-mention keywords come first; a couple of
// under-represented matches round out the list.
const (
	maxAddSuggestions    = 5
	maxExpandSuggestions = 2
)

// Suggest builds ranked improvement suggestions from the matched/missing
// partition of one analysis. Fully saturated matches produce nothing.
func Suggest(matched, missing []types.KeywordMatch) []types.Suggestion {
	suggestions := make([]types.Suggestion, 0, maxAddSuggestions+maxExpandSuggestions)

	ranked := make([]types.KeywordMatch, len(missing))
	copy(ranked, missing)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Importance > ranked[j].Importance
	})
	for i, match := range ranked {
		if i >= maxAddSuggestions {
			break
		}
		suggestions = append(suggestions, types.Suggestion{
			Key:    match.Key,
			Label:  match.Label,
			Tier:   match.Tier,
			Weight: weightPct(match.Importance),
			Kind:   types.SuggestionAdd,
			Action: fmt.Sprintf("Add %q to your resume", match.Label),
			Detail: fmt.Sprintf("The JD treats %q as a %s priority (weight %d%%), but it does not appear in your resume. Mention concrete work with it.",
				match.Label, match.Tier, weightPct(match.Importance)),
		})
	}

	// Under-represented matches, in original matched order.
	expanded := 0
	for _, match := range matched {
		if expanded >= maxExpandSuggestions {
			break
		}
		if match.ResumeHits <= 0 || match.ResumeHits >= match.Occurrences {
			continue
		}
		suggestions = append(suggestions, types.Suggestion{
			Key:    match.Key,
			Label:  match.Label,
			Tier:   match.Tier,
			Weight: weightPct(match.Importance),
			Kind:   types.SuggestionExpand,
			Action: fmt.Sprintf("Expand on %q", match.Label),
			Detail: fmt.Sprintf("%q appears %d time(s) in your resume but %d time(s) in the JD. Back it up with an additional project or outcome.",
				match.Label, match.ResumeHits, match.Occurrences),
		})
		expanded++
	}

	return suggestions
}

func weightPct(importance float64) int {
	return int(math.Round(importance * 100))
}
