// Package main provides the entry point for the talent match CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "match_agent",
	Short: "Candidate-job matching engine",
	Long:  "match_agent scores candidates against job requirements using a skill knowledge graph and a deterministic multi-factor scoring engine, with optional AI augmentation via CLI or REST API.",
}

var (
	flagConfig      string
	flagJobs        string
	flagCandidates  string
	flagCatalog     string
	flagDatabaseURL string
	flagNoAI        bool
	flagVerbose     bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&flagJobs, "jobs", "", "Path to jobs JSON file (default: built-in samples)")
	rootCmd.PersistentFlags().StringVar(&flagCandidates, "candidates", "", "Path to candidates JSON file (default: built-in samples)")
	rootCmd.PersistentFlags().StringVar(&flagCatalog, "catalog", "", "Path to skill catalog JSON file (default: built-in catalog)")
	rootCmd.PersistentFlags().StringVar(&flagDatabaseURL, "database-url", "", "PostgreSQL connection URL (overrides file-based storage)")
	rootCmd.PersistentFlags().BoolVar(&flagNoAI, "no-ai", false, "Disable AI augmentation entirely")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print detailed breakdowns")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
