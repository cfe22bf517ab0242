package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/prkumar-ishir/candidate-profiling/internal/config"
	"github.com/prkumar-ishir/candidate-profiling/internal/pipeline"
)

var keywordsCommand = &cobra.Command{
	Use:   "keywords",
	Short: "Extract ranked keywords from a job description",
	Long: `Extracts the prioritized skills and technologies from a job description,
ranked by importance. The JD can come from a local file (txt, md, pdf, docx)
or be fetched from a URL.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runKeywordsCmd,
}

var (
	kwConfigPath string
	kwJD         string
	kwJDURL      string
	kwLimit      int
	kwAPIKey     string
	kwSemantic   bool
	kwVerbose    bool
	kwJSON       bool
)

func init() {
	keywordsCommand.Flags().StringVar(&kwConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	keywordsCommand.Flags().StringVarP(&kwJD, "jd", "j", "", "Path to JD file (mutually exclusive with --jd-url)")
	keywordsCommand.Flags().StringVar(&kwJDURL, "jd-url", "", "URL to fetch the JD from (mutually exclusive with --jd)")
	keywordsCommand.Flags().IntVarP(&kwLimit, "limit", "l", 0, "Maximum number of keywords to extract")
	keywordsCommand.Flags().StringVar(&kwAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	keywordsCommand.Flags().BoolVar(&kwSemantic, "semantic", false, "Use LLM keyword extraction, falling back to lexical")
	keywordsCommand.Flags().BoolVarP(&kwVerbose, "verbose", "v", false, "Print detailed progress")
	keywordsCommand.Flags().BoolVar(&kwJSON, "json", false, "Print the keyword list as JSON")

	rootCmd.AddCommand(keywordsCommand)
}

func runKeywordsCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(cmd, kwConfigPath, config.Config{
		JD:       kwJD,
		JDURL:    kwJDURL,
		Limit:    kwLimit,
		APIKey:   kwAPIKey,
		Semantic: kwSemantic,
		Verbose:  kwVerbose,
	})
	if err != nil {
		return err
	}

	jdText, err := resolveJDText(ctx, cfg)
	if err != nil {
		return err
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

	if kwJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(insights)
	}

	if !cfg.Verbose {
		for i, kw := range insights {
			marker := ""
			if len(kw.Variants) > 1 {
				marker = fmt.Sprintf(" (also: %v)", kw.Variants[1:])
			}
			fmt.Printf("%2d. %-28s %3.0f%%  %s%s\n", i+1, kw.Label, kw.Importance*100, kw.Tier, marker)
		}
	}
	return nil
}
