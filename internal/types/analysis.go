package types

// KeywordMatch pairs a JD keyword with the number of times it was found in a
// resume. Produced per scoring call; never persisted.
type KeywordMatch struct {
	KeywordInsight
	ResumeHits int `json:"resume_hits"`
}

// SuggestionKind distinguishes the two kinds of improvement advice.
type SuggestionKind string

// Suggestion kinds.
const (
	SuggestionAdd    SuggestionKind = "add"    // keyword is absent from the resume
	SuggestionExpand SuggestionKind = "expand" // keyword is present but under-represented
)

// Suggestion is a single ranked improvement recommendation for a resume.
// Keyword-driven suggestions carry the full keyword fields; advice sourced
// from a semantic assessment has only a kind and an action, so the keyword
// fields are omitted when empty.
type Suggestion struct {
	Key    string          `json:"key,omitempty"`
	Label  string          `json:"label,omitempty"`
	Tier   RequirementTier `json:"tier,omitempty"`
	Weight int             `json:"weight,omitempty"` // importance as a 0-100 percentage
	Kind   SuggestionKind  `json:"kind"`
	Action string          `json:"action"`
	Detail string          `json:"detail,omitempty"`
}

// ResumeAnalysis is the outcome of scoring one resume against a frozen
// keyword list. Immutable after construction.
type ResumeAnalysis struct {
	Score       int            `json:"score"` // overall fit in [0,100]
	Matched     []KeywordMatch `json:"matched"`
	Missing     []KeywordMatch `json:"missing"`
	Summary     string         `json:"summary"`
	Suggestions []Suggestion   `json:"suggestions"`
}
