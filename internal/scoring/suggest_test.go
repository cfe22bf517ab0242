package scoring

import (
	"testing"

	"github.com/prkumar-ishir/candidate-profiling/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func missingMatch(key string, importance float64, tier types.RequirementTier) types.KeywordMatch {
	return types.KeywordMatch{KeywordInsight: insight(key, importance, tier, 1)}
}

func partialMatch(key string, importance float64, jdOccurrences, hits int) types.KeywordMatch {
	return types.KeywordMatch{
		KeywordInsight: insight(key, importance, types.TierCore, jdOccurrences),
		ResumeHits:     hits,
	}
}

func TestSuggest_TopMissingByImportance(t *testing.T) {
	missing := []types.KeywordMatch{
		missingMatch("low", 0.2, types.TierGeneral),
		missingMatch("high", 0.9, types.TierCore),
		missingMatch("mid", 0.5, types.TierPreferred),
	}
	suggestions := Suggest(nil, missing)

	require.Len(t, suggestions, 3)
	assert.Equal(t, "high", suggestions[0].Key)
	assert.Equal(t, types.SuggestionAdd, suggestions[0].Kind)
	assert.Equal(t, 90, suggestions[0].Weight)
	assert.Equal(t, "mid", suggestions[1].Key)
	assert.Equal(t, "low", suggestions[2].Key)
}

func TestSuggest_AtMostFiveAdds(t *testing.T) {
	missing := make([]types.KeywordMatch, 0, 8)
	for _, key := range []string{"a1", "b2", "c3", "d4", "e5", "f6", "g7", "h8"} {
		missing = append(missing, missingMatch(key, 0.5, types.TierCore))
	}
	suggestions := Suggest(nil, missing)
	assert.Len(t, suggestions, 5)
}

func TestSuggest_ExpandForUnderRepresentedMatches(t *testing.T) {
	matched := []types.KeywordMatch{
		partialMatch("go", 1.0, 4, 1),
		partialMatch("kubernetes", 0.8, 3, 3), // saturated, no suggestion
		partialMatch("terraform", 0.6, 2, 1),
		partialMatch("aws", 0.5, 5, 2), // third under-represented, over the cap
	}
	suggestions := Suggest(matched, nil)

	require.Len(t, suggestions, 2)
	assert.Equal(t, "go", suggestions[0].Key)
	assert.Equal(t, types.SuggestionExpand, suggestions[0].Kind)
	assert.Equal(t, "terraform", suggestions[1].Key)
}

func TestSuggest_SaturatedAndAbsentProduceNothing(t *testing.T) {
	matched := []types.KeywordMatch{partialMatch("go", 1.0, 1, 3)}
	assert.Empty(t, Suggest(matched, nil))
	assert.Empty(t, Suggest(nil, nil))
}

func TestSuggest_MissingOrderIsStableForTies(t *testing.T) {
	missing := []types.KeywordMatch{
		missingMatch("first", 0.5, types.TierCore),
		missingMatch("second", 0.5, types.TierCore),
	}
	suggestions := Suggest(nil, missing)
	require.Len(t, suggestions, 2)
	assert.Equal(t, "first", suggestions[0].Key)
	assert.Equal(t, "second", suggestions[1].Key)
}
