// Package types provides type definitions for structured data used throughout the candidate-profiling system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// RequirementTier is the priority bucket a keyword belongs to, derived from
// the JD section it appeared in.
type RequirementTier string

// Requirement tiers, ordered by descending importance weight.
const (
	TierCore           RequirementTier = "core"
	TierResponsibility RequirementTier = "responsibility"
	TierPreferred      RequirementTier = "preferred"
	TierGeneral        RequirementTier = "general"
)

// tierWeights holds the fixed importance weight per tier. These are never
// reconfigured at runtime.
var tierWeights = map[RequirementTier]float64{
	TierCore:           1.2,
	TierResponsibility: 1.0,
	TierPreferred:      0.8,
	TierGeneral:        0.7,
}

// TierOrder lists all tiers from most to least important. Used for stable
// tie-breaking when picking a dominant tier.
var TierOrder = []RequirementTier{TierCore, TierResponsibility, TierPreferred, TierGeneral}

// Weight returns the importance weight for the tier. Unknown tiers weigh the
// same as TierGeneral.
func (t RequirementTier) Weight() float64 {
	if w, ok := tierWeights[t]; ok {
		return w
	}
	return tierWeights[TierGeneral]
}

// TierFromPriority maps a free-form priority label from an external source to
// a tier. Unknown labels fall back to TierGeneral rather than failing.
func TierFromPriority(label string) RequirementTier {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "must-have", "must have", "core", "required":
		return TierCore
	case "responsibility", "responsibilities":
		return TierResponsibility
	case "preferred", "nice-to-have", "nice to have", "bonus":
		return TierPreferred
	case "baseline", "general":
		return TierGeneral
	default:
		return TierGeneral
	}
}

// KeywordSource classifies how a keyword was collected from the JD.
type KeywordSource string

// Keyword sources. A canonical entry is SourcePhrase if any contributing
// occurrence was multi-token.
const (
	SourceTerm   KeywordSource = "term"
	SourcePhrase KeywordSource = "phrase"
)

// KeywordInsight is one prioritized keyword extracted from a job description.
// Instances are immutable once returned; the same list is reused unmodified
// for every resume scored against the JD.
type KeywordInsight struct {
	Key         string          `json:"key"`         // canonical, synonym-resolved identity
	Label       string          `json:"label"`       // most frequent literal surface form
	Occurrences int             `json:"occurrences"` // raw count across the JD
	Importance  float64         `json:"importance"`  // normalized weight in [0,1]
	Tier        RequirementTier `json:"tier"`
	Source      KeywordSource   `json:"source"`
	Variants    []string        `json:"variants,omitempty"` // sorted normalized surface variants
	Coverage    float64         `json:"coverage"`           // fraction of JD lines containing the term
}
