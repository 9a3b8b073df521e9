package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score one candidate against one job",
	Long:  "Runs the full match pipeline for a single candidate/job pair and prints the result as JSON, or as formatted boxes in verbose mode.",
	RunE:  runMatch,
}

var (
	matchJobID       string
	matchCandidateID string
)

func init() {
	matchCmd.Flags().StringVarP(&matchJobID, "job", "j", "", "Job ID (required)")
	matchCmd.Flags().StringVarP(&matchCandidateID, "candidate", "c", "", "Candidate ID (required)")

	if err := matchCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}
	if err := matchCmd.MarkFlagRequired("candidate"); err != nil {
		panic(fmt.Sprintf("failed to mark candidate flag as required: %v", err))
	}

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	env, err := buildEnvironment(cmd.Context())
	if err != nil {
		return err
	}
	defer env.cleanup()

	result, err := env.orchestrator.Match(cmd.Context(), matchJobID, matchCandidateID)
	if err != nil {
		return err
	}

	if env.cfg.Verbose {
		env.printer.PrintMatchingResult(result)
		fmt.Fprintf(os.Stdout, "\n%s\n", result.Explanation)
		for _, rec := range result.Recommendations {
			fmt.Fprintf(os.Stdout, "  • %s\n", rec)
		}
		return nil
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
