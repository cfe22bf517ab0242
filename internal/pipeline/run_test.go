package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prkumar-ishir/candidate-profiling/internal/types"
)

// fakeClient dispatches on the prompt so one fake can answer both the
// keyword-extraction and the assessment calls.
type fakeClient struct {
	generate func(prompt string) (string, error)
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string) (string, error) {
	return f.generate(prompt)
}

func (f *fakeClient) Close() error { return nil }

const jdText = `Requirements: Must have React and TypeScript experience.
Responsibilities: Build REST APIs in Go.
Preferred: AWS certification.`

func TestExtractKeywords_LexicalOnly(t *testing.T) {
	runner := NewRunner(Options{})

	insights, err := runner.ExtractKeywords(context.Background(), jdText, 0)
	require.NoError(t, err)
	require.NotEmpty(t, insights)

	keys := make(map[string]bool)
	for _, kw := range insights {
		keys[kw.Key] = true
	}
	assert.True(t, keys["react"])
	assert.True(t, keys["typescript"])
}

func TestExtractKeywords_EmptyJD(t *testing.T) {
	runner := NewRunner(Options{})

	_, err := runner.ExtractKeywords(context.Background(), "", 0)
	assert.ErrorIs(t, err, ErrNoKeywords)
}

func TestExtractKeywords_SemanticReplacesLexical(t *testing.T) {
	client := &fakeClient{generate: func(prompt string) (string, error) {
		require.Contains(t, prompt, jdText)
		return `[
			{"label": "React", "priority": "must-have", "weight_percent": 90},
			{"label": "GraphQL", "priority": "preferred", "weight_percent": 55}
		]`, nil
	}}
	runner := NewRunner(Options{Client: client})

	insights, err := runner.ExtractKeywords(context.Background(), jdText, 0)
	require.NoError(t, err)
	require.Len(t, insights, 2, "semantic answer replaces the lexical path")

	assert.Equal(t, "react", insights[0].Key)
	assert.Equal(t, types.TierCore, insights[0].Tier)
	assert.Equal(t, "graphql", insights[1].Key)
	assert.Equal(t, 0.55, insights[1].Importance)
	assert.Equal(t, types.TierPreferred, insights[1].Tier)
}

func TestExtractKeywords_SemanticFailureFallsBack(t *testing.T) {
	client := &fakeClient{generate: func(string) (string, error) {
		return "", errors.New("quota exceeded")
	}}
	runner := NewRunner(Options{Client: client})

	insights, err := runner.ExtractKeywords(context.Background(), jdText, 0)
	require.NoError(t, err)
	assert.NotEmpty(t, insights, "lexical results survive a semantic failure")
}

func TestExtractKeywords_SemanticEmptyFallsBack(t *testing.T) {
	client := &fakeClient{generate: func(string) (string, error) {
		return `[]`, nil
	}}
	runner := NewRunner(Options{Client: client})

	insights, err := runner.ExtractKeywords(context.Background(), jdText, 0)
	require.NoError(t, err)
	assert.NotEmpty(t, insights, "empty semantic answer falls back to lexical")
}

func TestExtractKeywords_SemanticRespectsLimit(t *testing.T) {
	client := &fakeClient{generate: func(string) (string, error) {
		return `[
			{"label": "React", "priority": "must-have", "weight_percent": 90},
			{"label": "GraphQL", "priority": "preferred", "weight_percent": 55},
			{"label": "Terraform", "priority": "preferred", "weight_percent": 50}
		]`, nil
	}}
	runner := NewRunner(Options{Client: client})

	insights, err := runner.ExtractKeywords(context.Background(), jdText, 2)
	require.NoError(t, err)
	require.Len(t, insights, 2)
	assert.Equal(t, "react", insights[0].Key)
}

func TestAnalyzeResumes_PreservesOrder(t *testing.T) {
	runner := NewRunner(Options{})
	insights := []types.KeywordInsight{
		{Key: "react", Label: "React", Occurrences: 2, Importance: 1.0, Tier: types.TierCore, Source: types.SourceTerm},
	}
	resumes := []ResumeInput{
		{Name: "alice.pdf", Text: "React developer with five years of React work."},
		{Name: "bob.pdf", Text: "Backend engineer, mostly Java."},
		{Name: "carol.pdf", Text: "React and more React."},
	}

	results, err := runner.AnalyzeResumes(context.Background(), jdText, insights, resumes)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "alice.pdf", results[0].Name)
	assert.Equal(t, "bob.pdf", results[1].Name)
	assert.Equal(t, "carol.pdf", results[2].Name)
	assert.Greater(t, results[0].Analysis.Score, results[1].Analysis.Score)
}

func TestAnalyzeResumes_NoKeywords(t *testing.T) {
	runner := NewRunner(Options{})

	_, err := runner.AnalyzeResumes(context.Background(), jdText, nil, []ResumeInput{{Name: "a", Text: "x"}})
	assert.ErrorIs(t, err, ErrNoKeywords)
}

func TestAnalyzeResumes_BlendsAssessment(t *testing.T) {
	client := &fakeClient{generate: func(prompt string) (string, error) {
		return `{"score": 50, "summary": "Solid React depth, thin on cloud.", "missing_themes": ["cloud operations"], "suggestions": ["Describe a production AWS deployment"]}`, nil
	}}
	runner := NewRunner(Options{Client: client})
	insights := []types.KeywordInsight{
		{Key: "react", Label: "React", Occurrences: 2, Importance: 1.0, Tier: types.TierCore, Source: types.SourceTerm},
	}
	resumes := []ResumeInput{
		{Name: "alice.pdf", Text: "React and React and React projects."},
	}

	results, err := runner.AnalyzeResumes(context.Background(), jdText, insights, resumes)
	require.NoError(t, err)
	require.Len(t, results, 1)

	analysis := results[0].Analysis
	// Heuristic full match scores 100; evenly blended with the model's 50.
	assert.Equal(t, 75, analysis.Score)
	assert.Contains(t, analysis.Summary, "Solid React depth")
	assert.Contains(t, analysis.Summary, "Themes to address: cloud operations.")

	var expand bool
	for _, s := range analysis.Suggestions {
		if s.Kind == types.SuggestionExpand && strings.Contains(s.Action, "AWS deployment") {
			expand = true
		}
	}
	assert.True(t, expand)
}

func TestAnalyzeResumes_SemanticSuggestionsOmitKeywordFields(t *testing.T) {
	client := &fakeClient{generate: func(string) (string, error) {
		return `{"score": 60, "summary": "Good baseline.", "suggestions": ["Quantify the React work"]}`, nil
	}}
	runner := NewRunner(Options{Client: client})
	insights := []types.KeywordInsight{
		{Key: "react", Label: "React", Occurrences: 1, Importance: 1.0, Tier: types.TierCore, Source: types.SourceTerm},
		{Key: "terraform", Label: "Terraform", Occurrences: 1, Importance: 0.8, Tier: types.TierPreferred, Source: types.SourceTerm},
	}

	results, err := runner.AnalyzeResumes(context.Background(), jdText, insights, []ResumeInput{
		{Name: "alice.pdf", Text: "React work only."},
	})
	require.NoError(t, err)

	encoded, err := json.Marshal(results[0].Analysis.Suggestions)
	require.NoError(t, err)

	// The keyword-driven suggestion keeps its keyword fields; the
	// model-sourced one serializes as just kind and action.
	assert.Contains(t, string(encoded), `"key":"terraform"`)
	assert.Contains(t, string(encoded), `"Quantify the React work"`)
	assert.NotContains(t, string(encoded), `"key":""`)
	assert.NotContains(t, string(encoded), `"tier":""`)
	assert.NotContains(t, string(encoded), `"weight":0`)
}

func TestAnalyzeResumes_AssessmentFailureKeepsLexical(t *testing.T) {
	client := &fakeClient{generate: func(string) (string, error) {
		return "", errors.New("model unavailable")
	}}
	runner := NewRunner(Options{Client: client})
	insights := []types.KeywordInsight{
		{Key: "react", Label: "React", Occurrences: 1, Importance: 1.0, Tier: types.TierCore, Source: types.SourceTerm},
	}

	results, err := runner.AnalyzeResumes(context.Background(), jdText, insights, []ResumeInput{
		{Name: "alice.pdf", Text: "React work."},
	})
	require.NoError(t, err)
	assert.Equal(t, 100, results[0].Analysis.Score)
}

