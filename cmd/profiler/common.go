package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/prkumar-ishir/candidate-profiling/internal/config"
	"github.com/prkumar-ishir/candidate-profiling/internal/fetch"
	"github.com/prkumar-ishir/candidate-profiling/internal/ingestion"
	"github.com/prkumar-ishir/candidate-profiling/internal/llm"
)

// loadMergedConfig loads the optional config file and applies flag
// overrides. Flags that were explicitly set always win.
func loadMergedConfig(cmd *cobra.Command, configPath string, flags config.Config) (config.Config, error) {
	var cfg config.Config
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	if cmd.Flags().Changed("jd") {
		cfg.JD = flags.JD
	}
	if cmd.Flags().Changed("jd-url") {
		cfg.JDURL = flags.JDURL
	}
	if cmd.Flags().Changed("limit") {
		cfg.Limit = flags.Limit
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = flags.APIKey
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = flags.Port
	}
	cfg.Semantic = cfg.Semantic || flags.Semantic
	cfg.Verbose = cfg.Verbose || flags.Verbose

	merged := cfg.MergeWithDefaults(config.Config{APIKey: os.Getenv("GEMINI_API_KEY")})
	if err := merged.Validate(); err != nil {
		return merged, err
	}
	return merged, nil
}

// resolveJDText loads the JD from a file or URL per the merged config.
// File inputs go through document extraction, so PDF and DOCX JDs work.
func resolveJDText(ctx context.Context, cfg config.Config) (string, error) {
	switch {
	case cfg.JD != "":
		text, err := ingestion.ExtractFile(cfg.JD)
		if err != nil {
			return "", fmt.Errorf("failed to read JD file: %w", err)
		}
		return ingestion.CleanText(text), nil
	case cfg.JDURL != "":
		text, err := fetch.JD(ctx, cfg.JDURL)
		if err != nil {
			return "", fmt.Errorf("failed to fetch JD: %w", err)
		}
		return ingestion.CleanText(text), nil
	default:
		return "", fmt.Errorf("either --jd or --jd-url is required")
	}
}

// buildClient creates the Gemini client when semantic mode is requested.
func buildClient(ctx context.Context, cfg config.Config) (llm.Client, error) {
	if !cfg.Semantic {
		return nil, nil
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("semantic mode requires an API key (--api-key or GEMINI_API_KEY)")
	}
	client, err := llm.NewGeminiClient(ctx, cfg.APIKey, llm.DefaultModel)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return client, nil
}
