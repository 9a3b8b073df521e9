package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-match/internal/fetch"
)

var ingestJobCmd = &cobra.Command{
	Use:   "ingest-job",
	Short: "Fetch a job posting URL and draft a job record",
	Long:  "Downloads a job posting page, extracts its text, resolves skill mentions against the catalog, and writes a draft job JSON for manual review.",
	RunE:  runIngestJob,
}

var (
	ingestJobURL    string
	ingestJobOutput string
)

func init() {
	ingestJobCmd.Flags().StringVarP(&ingestJobURL, "url", "u", "", "Job posting URL (required)")
	ingestJobCmd.Flags().StringVarP(&ingestJobOutput, "out", "o", "", "Path to output job JSON file (default: stdout)")

	if err := ingestJobCmd.MarkFlagRequired("url"); err != nil {
		panic(fmt.Sprintf("failed to mark url flag as required: %v", err))
	}

	rootCmd.AddCommand(ingestJobCmd)
}

func runIngestJob(cmd *cobra.Command, _ []string) error {
	env, err := buildEnvironment(cmd.Context())
	if err != nil {
		return err
	}
	defer env.cleanup()

	ingestor := fetch.NewIngestor(env.resolver, nil)
	job, extraction, err := ingestor.IngestJobPosting(cmd.Context(), ingestJobURL)
	if err != nil {
		return fmt.Errorf("failed to ingest job posting: %w", err)
	}

	if env.cfg.Verbose {
		env.printer.PrintExtraction(extraction)
	}
	if len(extraction.UnmatchedTerms) > 0 {
		fmt.Fprintf(os.Stderr, "Warning: %d terms did not resolve to known skills\n", len(extraction.UnmatchedTerms))
	}

	jsonOutput, err := json.MarshalIndent(job, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal job to JSON: %w", err)
	}

	if ingestJobOutput == "" {
		fmt.Fprintln(os.Stdout, string(jsonOutput))
		return nil
	}

	outputDir := filepath.Dir(ingestJobOutput)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(ingestJobOutput, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write job to output file %s: %w", ingestJobOutput, err)
	}

	fmt.Fprintf(os.Stdout, "Drafted job %s with %d requirements to %s\n", job.ID, len(job.Requirements), ingestJobOutput)
	return nil
}
