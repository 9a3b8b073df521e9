package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-match/internal/types"
)

var rankJobsCmd = &cobra.Command{
	Use:   "rank-jobs",
	Short: "Rank all jobs for a candidate",
	Long:  "Runs the match pipeline for one candidate against every stored job and prints the results sorted by overall score.",
	RunE:  runRankJobs,
}

var (
	rankJobsCandidateID string
	rankJobsLimit       int
)

func init() {
	rankJobsCmd.Flags().StringVarP(&rankJobsCandidateID, "candidate", "c", "", "Candidate ID (required)")
	rankJobsCmd.Flags().IntVarP(&rankJobsLimit, "limit", "n", 0, "Maximum results to return (0 = all)")

	if err := rankJobsCmd.MarkFlagRequired("candidate"); err != nil {
		panic(fmt.Sprintf("failed to mark candidate flag as required: %v", err))
	}

	rootCmd.AddCommand(rankJobsCmd)
}

func runRankJobs(cmd *cobra.Command, _ []string) error {
	env, err := buildEnvironment(cmd.Context())
	if err != nil {
		return err
	}
	defer env.cleanup()

	limit := rankJobsLimit
	if limit == 0 {
		limit = env.cfg.RankLimit
	}

	results, err := env.orchestrator.RankJobs(cmd.Context(), rankJobsCandidateID, limit)
	if err != nil {
		return err
	}

	if env.cfg.Verbose {
		env.printer.PrintRanking("TOP JOBS", results, func(r types.MatchingResult) string {
			if r.Job == nil {
				return "(unknown)"
			}
			return fmt.Sprintf("%s at %s (%s)", r.Job.Title, r.Job.Company, r.Job.ID)
		})
		return nil
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}
