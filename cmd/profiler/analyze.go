package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/prkumar-ishir/candidate-profiling/internal/config"
	"github.com/prkumar-ishir/candidate-profiling/internal/ingestion"
	"github.com/prkumar-ishir/candidate-profiling/internal/pipeline"
)

var analyzeCommand = &cobra.Command{
	Use:   "analyze [resume files...]",
	Short: "Score one or more resumes against a job description",
	Long: `Scores each resume against the keywords extracted from a job description
and suggests edits for missing or under-represented skills. Resumes can be
txt, md, pdf, or docx files. With --semantic and an API key, the lexical
score is blended with an LLM assessment of fit.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyzeCmd,
}

var (
	anConfigPath string
	anJD         string
	anJDURL      string
	anLimit      int
	anAPIKey     string
	anSemantic   bool
	anVerbose    bool
	anJSON       bool
)

func init() {
	analyzeCommand.Flags().StringVar(&anConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	analyzeCommand.Flags().StringVarP(&anJD, "jd", "j", "", "Path to JD file (mutually exclusive with --jd-url)")
	analyzeCommand.Flags().StringVar(&anJDURL, "jd-url", "", "URL to fetch the JD from (mutually exclusive with --jd)")
	analyzeCommand.Flags().IntVarP(&anLimit, "limit", "l", 0, "Maximum number of keywords to extract")
	analyzeCommand.Flags().StringVar(&anAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	analyzeCommand.Flags().BoolVar(&anSemantic, "semantic", false, "Blend an LLM assessment into the score")
	analyzeCommand.Flags().BoolVarP(&anVerbose, "verbose", "v", false, "Print detailed progress")
	analyzeCommand.Flags().BoolVar(&anJSON, "json", false, "Print the analyses as JSON")

	rootCmd.AddCommand(analyzeCommand)
}

func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(cmd, anConfigPath, config.Config{
		JD:       anJD,
		JDURL:    anJDURL,
		Limit:    anLimit,
		APIKey:   anAPIKey,
		Semantic: anSemantic,
		Verbose:  anVerbose,
	})
	if err != nil {
		return err
	}

	jdText, err := resolveJDText(ctx, cfg)
	if err != nil {
		return err
	}

	resumes := make([]pipeline.ResumeInput, 0, len(args))
	for _, path := range args {
		text, err := ingestion.ExtractFile(path)
		if err != nil {
			return fmt.Errorf("failed to read resume %s: %w", path, err)
		}
		resumes = append(resumes, pipeline.ResumeInput{
			Name: filepath.Base(path),
			Text: ingestion.CleanText(text),
		})
	}

	client, err := buildClient(ctx, cfg)
	if err != nil {
		return err
	}
	if client != nil {
		defer client.Close() //nolint:errcheck
	}

	runner := pipeline.NewRunner(pipeline.Options{Client: client, Verbose: cfg.Verbose})
	insights, err := runner.ExtractKeywords(ctx, jdText, cfg.Limit)
	if err != nil {
		return err
	}

	results, err := runner.AnalyzeResumes(ctx, jdText, insights, resumes)
	if err != nil {
		return err
	}

	if anJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if !cfg.Verbose {
		for _, res := range results {
			fmt.Printf("%s: %d/100\n", res.Name, res.Analysis.Score)
			fmt.Printf("  %s\n", res.Analysis.Summary)
			for _, s := range res.Analysis.Suggestions {
				fmt.Printf("  - %s\n", s.Action)
			}
		}
	}
	return nil
}
