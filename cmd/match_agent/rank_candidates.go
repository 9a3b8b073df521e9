package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-match/internal/types"
)

var rankCandidatesCmd = &cobra.Command{
	Use:   "rank-candidates",
	Short: "Rank all candidates for a job",
	Long:  "Runs the match pipeline for every stored candidate against one job and prints the results sorted by overall score.",
	RunE:  runRankCandidates,
}

var (
	rankCandidatesJobID string
	rankCandidatesLimit int
)

func init() {
	rankCandidatesCmd.Flags().StringVarP(&rankCandidatesJobID, "job", "j", "", "Job ID (required)")
	rankCandidatesCmd.Flags().IntVarP(&rankCandidatesLimit, "limit", "n", 0, "Maximum results to return (0 = all)")

	if err := rankCandidatesCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(rankCandidatesCmd)
}

func runRankCandidates(cmd *cobra.Command, _ []string) error {
	env, err := buildEnvironment(cmd.Context())
	if err != nil {
		return err
	}
	defer env.cleanup()

	limit := rankCandidatesLimit
	if limit == 0 {
		limit = env.cfg.RankLimit
	}

	results, err := env.orchestrator.RankCandidates(cmd.Context(), rankCandidatesJobID, limit)
	if err != nil {
		return err
	}

	if env.cfg.Verbose {
		env.printer.PrintRanking("TOP CANDIDATES", results, func(r types.MatchingResult) string {
			if r.Candidate == nil {
				return "(unknown)"
			}
			return fmt.Sprintf("%s (%s)", r.Candidate.Name, r.Candidate.ID)
		})
		return nil
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}
