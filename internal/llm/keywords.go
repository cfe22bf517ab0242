package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/prkumar-ishir/candidate-profiling/internal/keywords"
	"github.com/prkumar-ishir/candidate-profiling/internal/schemas"
	"github.com/prkumar-ishir/candidate-profiling/internal/types"
)

// minSemanticImportance floors the importance of model-sourced keywords, so
// a low weight_percent cannot bury a keyword the model chose to report.
const minSemanticImportance = 0.4

// extractedKeyword is one entry in the model's keyword answer.
type extractedKeyword struct {
	Label         string   `json:"label"`
	Priority      string   `json:"priority"`
	Rationale     string   `json:"rationale,omitempty"`
	WeightPercent float64  `json:"weight_percent"`
	Synonyms      []string `json:"synonyms,omitempty"`
}

const keywordsSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["label", "priority", "weight_percent"],
		"properties": {
			"label": {"type": "string", "minLength": 1},
			"priority": {"type": "string"},
			"rationale": {"type": "string"},
			"weight_percent": {"type": "number", "minimum": 0, "maximum": 100},
			"synonyms": {"type": "array", "items": {"type": "string"}}
		}
	}
}`

// ExtractKeywords asks the model for prioritized JD keywords and converts
// the answer into the same KeywordInsight records the heuristic extractor
// produces, bypassing the statistical scorer entirely. A nil client yields
// (nil, nil) so the caller falls back to the heuristic path.
func ExtractKeywords(ctx context.Context, client Client, jdText string) ([]types.KeywordInsight, error) {
	if client == nil {
		return nil, nil
	}

	raw, err := client.GenerateJSON(ctx, buildKeywordsPrompt(jdText))
	if err != nil {
		return nil, fmt.Errorf("semantic keyword extraction failed: %w", err)
	}
	if err := schemas.Validate(keywordsSchema, raw); err != nil {
		return nil, fmt.Errorf("semantic keyword extraction returned invalid payload: %w", err)
	}

	var extracted []extractedKeyword
	if err := json.Unmarshal([]byte(raw), &extracted); err != nil {
		return nil, fmt.Errorf("failed to decode keywords: %w", err)
	}

	insights := make([]types.KeywordInsight, 0, len(extracted))
	seen := make(map[string]struct{}, len(extracted))
	for _, kw := range extracted {
		insight, ok := toInsight(kw)
		if !ok {
			continue
		}
		if _, dup := seen[insight.Key]; dup {
			continue
		}
		seen[insight.Key] = struct{}{}
		insights = append(insights, insight)
	}

	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].Importance > insights[j].Importance
	})
	return insights, nil
}

// toInsight maps one model keyword onto the heuristic output type. The
// priority label goes through the closed tier enum, unknown labels landing
// on general.
func toInsight(kw extractedKeyword) (types.KeywordInsight, bool) {
	normalized := keywords.NormalizeTerm(kw.Label)
	if normalized == "" {
		return types.KeywordInsight{}, false
	}
	key := keywords.Canonical(normalized)

	importance := math.Max(kw.WeightPercent/100, minSemanticImportance)
	importance = math.Min(importance, 1)

	variantSet := map[string]struct{}{normalized: {}}
	for _, syn := range kw.Synonyms {
		if s := keywords.NormalizeTerm(syn); s != "" {
			variantSet[s] = struct{}{}
		}
	}
	variants := make([]string, 0, len(variantSet))
	for v := range variantSet {
		variants = append(variants, v)
	}
	sort.Strings(variants)

	source := types.SourceTerm
	if len(strings.Fields(key)) > 1 {
		source = types.SourcePhrase
	}

	return types.KeywordInsight{
		Key:         key,
		Label:       strings.TrimSpace(kw.Label),
		Occurrences: 1,
		Importance:  math.Round(importance*1000) / 1000,
		Tier:        types.TierFromPriority(kw.Priority),
		Source:      source,
		Variants:    variants,
	}, true
}

func buildKeywordsPrompt(jdText string) string {
	var sb strings.Builder
	sb.WriteString("You are an expert job posting analyst. Extract the prioritized skills and technologies from the job description below.\n\n")
	sb.WriteString("Return ONLY a valid JSON array with entries of this structure:\n")
	sb.WriteString(`{"label": string, "priority": "must-have"|"responsibility"|"preferred"|"baseline", "rationale": string, "weight_percent": 0-100, "synonyms": [string]}`)
	sb.WriteString("\n\nExtract terms directly from the text, do not invent skills that are not mentioned.\n")
	sb.WriteString("\nJob description:\n\"\"\"\n")
	sb.WriteString(jdText)
	sb.WriteString("\n\"\"\"\n")
	return sb.String()
}
