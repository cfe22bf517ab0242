// Package pipeline provides the high-level orchestration for keyword
// extraction and resume analysis.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/prkumar-ishir/candidate-profiling/internal/keywords"
	"github.com/prkumar-ishir/candidate-profiling/internal/llm"
	"github.com/prkumar-ishir/candidate-profiling/internal/observability"
	"github.com/prkumar-ishir/candidate-profiling/internal/scoring"
	"github.com/prkumar-ishir/candidate-profiling/internal/types"
)

// ErrNoKeywords is returned when a JD yields no usable keywords.
var ErrNoKeywords = errors.New("no meaningful keywords found")

// semanticBlendWeight controls how much the semantic assessment moves the
// final score when both signals are available.
const semanticBlendWeight = 0.5

// Runner orchestrates extraction and analysis. The LLM client is optional:
// when nil, only the lexical path runs.
type Runner struct {
	client  llm.Client
	printer *observability.Printer
}

// Options configures a Runner.
type Options struct {
	Client  llm.Client
	Verbose bool
}

// NewRunner creates a Runner. A nil Options.Client disables the semantic
// collaborator entirely.
func NewRunner(opts Options) *Runner {
	r := &Runner{client: opts.Client}
	if opts.Verbose {
		r.printer = observability.NewPrinter(os.Stdout)
	}
	return r
}

// ExtractKeywords extracts ranked keywords from a JD. When a semantic
// client is configured and answers, its keywords replace the lexical path
// entirely; failures and empty answers degrade to the lexical extractor.
func (r *Runner) ExtractKeywords(ctx context.Context, jdText string, limit int) ([]types.KeywordInsight, error) {
	if limit <= 0 {
		limit = keywords.DefaultLimit
	}

	var insights []types.KeywordInsight
	if r.client != nil {
		semantic, err := llm.ExtractKeywords(ctx, r.client, jdText)
		if err != nil {
			log.Printf("Semantic keyword extraction failed, falling back to lexical: %v", err)
		} else if len(semantic) > limit {
			insights = semantic[:limit]
		} else {
			insights = semantic
		}
	}
	if len(insights) == 0 {
		insights = keywords.Extract(jdText, limit)
	}

	if len(insights) == 0 {
		return nil, ErrNoKeywords
	}

	if r.printer != nil {
		r.printer.PrintKeywords(insights)
	}
	return insights, nil
}

// ResumeInput names one resume to analyze.
type ResumeInput struct {
	Name string
	Text string
}

// ResumeResult pairs a resume name with its analysis.
type ResumeResult struct {
	Name     string
	Analysis types.ResumeAnalysis
}

// AnalyzeResumes scores each resume against the JD keywords concurrently.
// Results preserve the input order. When a semantic client is configured,
// each analysis is blended with the model's assessment of fit.
func (r *Runner) AnalyzeResumes(ctx context.Context, jdText string, insights []types.KeywordInsight, resumes []ResumeInput) ([]ResumeResult, error) {
	if len(insights) == 0 {
		return nil, ErrNoKeywords
	}

	results := make([]ResumeResult, len(resumes))
	g, ctx := errgroup.WithContext(ctx)

	for i, resume := range resumes {
		g.Go(func() error {
			analysis := scoring.Analyze(resume.Text, insights)

			if r.client != nil {
				assessment, err := llm.AssessFit(ctx, r.client, jdText, resume.Text, insights)
				if err != nil {
					log.Printf("Semantic assessment failed for %s, keeping lexical score: %v", resume.Name, err)
				} else if assessment != nil {
					blendAssessment(&analysis, assessment)
				}
			}

			results[i] = ResumeResult{Name: resume.Name, Analysis: analysis}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("resume analysis failed: %w", err)
	}

	if r.printer != nil {
		for _, res := range results {
			r.printer.PrintAnalysis(res.Name, res.Analysis)
		}
	}
	return results, nil
}

// blendAssessment mixes the semantic assessment into a lexical analysis
// in place. The score becomes an even blend and the assessment's summary
// and suggestions are appended.
func blendAssessment(analysis *types.ResumeAnalysis, assessment *llm.Assessment) {
	blended := (1-semanticBlendWeight)*float64(analysis.Score) + semanticBlendWeight*float64(assessment.Score)
	analysis.Score = int(math.Round(blended))

	if assessment.Summary != "" {
		analysis.Summary = analysis.Summary + " " + assessment.Summary
	}
	if len(assessment.MissingThemes) > 0 {
		analysis.Summary = analysis.Summary + " Themes to address: " + strings.Join(assessment.MissingThemes, ", ") + "."
	}

	for _, s := range assessment.Suggestions {
		analysis.Suggestions = append(analysis.Suggestions, types.Suggestion{
			Kind:   types.SuggestionExpand,
			Action: s,
		})
	}
}
