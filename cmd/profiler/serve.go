package main

import (
	"github.com/spf13/cobra"

	"github.com/prkumar-ishir/candidate-profiling/internal/config"
	"github.com/prkumar-ishir/candidate-profiling/internal/server"
)

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Starts the REST API for keyword extraction and resume analysis.

Endpoints:
  POST /api/v1/keywords          Extract ranked keywords from a JD
  POST /api/v1/analyses          Score a resume against a JD
  POST /api/v1/analyses/upload   Score an uploaded resume file (pdf, docx, txt)
  GET  /health                   Health check`,
	RunE: runServeCmd,
}

var (
	servConfigPath string
	servPort       int
	servAPIKey     string
	servVerbose    bool
)

func init() {
	serveCommand.Flags().StringVar(&servConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCommand.Flags().IntVarP(&servPort, "port", "p", 0, "Port to listen on")
	serveCommand.Flags().StringVar(&servAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	serveCommand.Flags().BoolVarP(&servVerbose, "verbose", "v", false, "Print detailed progress")

	rootCmd.AddCommand(serveCommand)
}

func runServeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadMergedConfig(cmd, servConfigPath, config.Config{
		Port:    servPort,
		APIKey:  servAPIKey,
		Verbose: servVerbose,
	})
	if err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Port:    cfg.Port,
		APIKey:  cfg.APIKey,
		Verbose: cfg.Verbose,
	})
	if err != nil {
		return err
	}

	return srv.Start()
}
