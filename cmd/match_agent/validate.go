package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-match/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate data files against their schemas",
	Long:  "Validates jobs, candidates, and skill catalog JSON files against the embedded JSON Schemas and reports every violation.",
	RunE:  runValidate,
}

var (
	validateJobs       string
	validateCandidates string
	validateCatalog    string
)

func init() {
	validateCmd.Flags().StringVar(&validateJobs, "jobs-file", "", "Path to jobs JSON file")
	validateCmd.Flags().StringVar(&validateCandidates, "candidates-file", "", "Path to candidates JSON file")
	validateCmd.Flags().StringVar(&validateCatalog, "catalog-file", "", "Path to skill catalog JSON file")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	checks := []struct {
		label    string
		path     string
		validate func(string) error
	}{
		{"jobs", validateJobs, schemas.ValidateJobsFile},
		{"candidates", validateCandidates, schemas.ValidateCandidatesFile},
		{"catalog", validateCatalog, schemas.ValidateCatalogFile},
	}

	ran := 0
	failed := 0
	for _, check := range checks {
		if check.path == "" {
			continue
		}
		ran++
		if err := check.validate(check.path); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "%s: %v\n", check.label, err)
			continue
		}
		fmt.Fprintf(os.Stdout, "%s: OK (%s)\n", check.label, check.path)
	}

	if ran == 0 {
		return fmt.Errorf("nothing to validate: pass --jobs-file, --candidates-file, or --catalog-file")
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed validation", failed, ran)
	}
	return nil
}
