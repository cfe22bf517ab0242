package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/prkumar-ishir/candidate-profiling/internal/schemas"
	"github.com/prkumar-ishir/candidate-profiling/internal/types"
)

// Assessment is the semantic collaborator's opinion of a resume/JD pairing.
type Assessment struct {
	Score               int            `json:"score"` // 0-100
	Summary             string         `json:"summary"`
	AlignedThemes       []string       `json:"aligned_themes,omitempty"`
	MissingThemes       []string       `json:"missing_themes,omitempty"`
	Suggestions         []string       `json:"suggestions,omitempty"`
	CapabilityBreakdown map[string]int `json:"capability_breakdown,omitempty"`
}

// assessmentSchema guards the decode of the model's answer.
const assessmentSchema = `{
	"type": "object",
	"required": ["score", "summary"],
	"properties": {
		"score": {"type": "integer", "minimum": 0, "maximum": 100},
		"summary": {"type": "string"},
		"aligned_themes": {"type": "array", "items": {"type": "string"}},
		"missing_themes": {"type": "array", "items": {"type": "string"}},
		"suggestions": {"type": "array", "items": {"type": "string"}},
		"capability_breakdown": {"type": "object", "additionalProperties": {"type": "integer"}}
	}
}`

// AssessFit asks the model to judge how well a resume fits a JD, informed
// by the heuristic keyword list. A nil client yields (nil, nil): absence of
// the collaborator is not an error, the caller just keeps the heuristic
// result.
func AssessFit(ctx context.Context, client Client, jdText, resumeText string, insights []types.KeywordInsight) (*Assessment, error) {
	if client == nil {
		return nil, nil
	}

	raw, err := client.GenerateJSON(ctx, buildAssessPrompt(jdText, resumeText, insights))
	if err != nil {
		return nil, fmt.Errorf("semantic assessment failed: %w", err)
	}
	if err := schemas.Validate(assessmentSchema, raw); err != nil {
		return nil, fmt.Errorf("semantic assessment returned invalid payload: %w", err)
	}

	var assessment Assessment
	if err := json.Unmarshal([]byte(raw), &assessment); err != nil {
		return nil, fmt.Errorf("failed to decode assessment: %w", err)
	}
	return &assessment, nil
}

func buildAssessPrompt(jdText, resumeText string, insights []types.KeywordInsight) string {
	var sb strings.Builder
	sb.WriteString("You are an expert technical recruiter. Judge how well the resume below fits the job description.\n\n")
	sb.WriteString("Return ONLY valid JSON with this structure:\n")
	sb.WriteString(`{"score": 0-100, "summary": string, "aligned_themes": [string], "missing_themes": [string], "suggestions": [string], "capability_breakdown": {"capability": 0-100}}`)
	sb.WriteString("\n\nPriority keywords already identified in the JD (weight in parentheses):\n")
	for _, insight := range insights {
		sb.WriteString(fmt.Sprintf("- %s (%s, %.0f%%)\n", insight.Label, insight.Tier, insight.Importance*100))
	}
	sb.WriteString("\nJob description:\n\"\"\"\n")
	sb.WriteString(jdText)
	sb.WriteString("\n\"\"\"\n\nResume:\n\"\"\"\n")
	sb.WriteString(resumeText)
	sb.WriteString("\n\"\"\"\n")
	return sb.String()
}
