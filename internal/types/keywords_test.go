package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierWeights(t *testing.T) {
	assert.Equal(t, 1.2, TierCore.Weight())
	assert.Equal(t, 1.0, TierResponsibility.Weight())
	assert.Equal(t, 0.8, TierPreferred.Weight())
	assert.Equal(t, 0.7, TierGeneral.Weight())
}

func TestTierWeights_UnknownTierFallsBackToGeneral(t *testing.T) {
	assert.Equal(t, TierGeneral.Weight(), RequirementTier("mystery").Weight())
}

func TestTierOrder_DescendingWeight(t *testing.T) {
	prev := 2.0
	for _, tier := range TierOrder {
		assert.Less(t, tier.Weight(), prev, "TierOrder should be sorted by descending weight")
		prev = tier.Weight()
	}
}

func TestTierFromPriority_KnownLabels(t *testing.T) {
	assert.Equal(t, TierCore, TierFromPriority("must-have"))
	assert.Equal(t, TierCore, TierFromPriority("Must Have"))
	assert.Equal(t, TierResponsibility, TierFromPriority("responsibility"))
	assert.Equal(t, TierPreferred, TierFromPriority("preferred"))
	assert.Equal(t, TierPreferred, TierFromPriority("nice-to-have"))
	assert.Equal(t, TierGeneral, TierFromPriority("baseline"))
}

func TestTierFromPriority_UnknownLabelFallsBack(t *testing.T) {
	assert.Equal(t, TierGeneral, TierFromPriority("super-important"))
	assert.Equal(t, TierGeneral, TierFromPriority(""))
	assert.Equal(t, TierGeneral, TierFromPriority("  "))
}
