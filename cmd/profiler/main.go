// Package main provides the entry point for the candidate profiling CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "profiler",
	Short: "Extract JD keywords and score resumes against them",
	Long:  "Profiler extracts ranked keywords from job descriptions and scores candidate resumes against them, with an optional LLM-backed semantic assessment blended into the result.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
