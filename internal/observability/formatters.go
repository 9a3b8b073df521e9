// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/talent-match/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatchingResult outputs a human-readable summary of one match.
func (p *Printer) PrintMatchingResult(result *types.MatchingResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	if result.Candidate != nil {
		sb.WriteString(fmt.Sprintf("Candidate:  %s (%s)\n", result.Candidate.Name, result.Candidate.ID))
	}
	if result.Job != nil {
		sb.WriteString(fmt.Sprintf("Job:        %s at %s (%s)\n", result.Job.Title, result.Job.Company, result.Job.ID))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Overall:      %.2f\n", result.Score.OverallScore))
	sb.WriteString(fmt.Sprintf("Skills:       %.2f\n", result.Score.SkillMatchScore))
	sb.WriteString(fmt.Sprintf("Experience:   %.2f\n", result.Score.ExperienceScore))
	sb.WriteString(fmt.Sprintf("Transferable: %.2f\n", result.Score.TransferableSkillsScore))
	sb.WriteString(fmt.Sprintf("Potential:    %.2f\n", result.Score.PotentialScore))
	sb.WriteString(fmt.Sprintf("Confidence:   %.2f", result.Confidence))

	p.printBox("MATCH RESULT", sb.String())
	p.PrintBreakdown(&result.Score.Breakdown)
}

// PrintBreakdown outputs the per-skill breakdown behind a score.
func (p *Printer) PrintBreakdown(breakdown *types.ScoreBreakdown) {
	if breakdown == nil {
		return
	}

	var sb strings.Builder

	writeSkillLine := func(label string, ids []string) {
		if len(ids) == 0 {
			return
		}
		skills := strings.Join(ids, ", ")
		if len(skills) > 40 {
			skills = skills[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", label, skills))
	}

	writeSkillLine("Matched: ", breakdown.MatchedSkills)
	writeSkillLine("Related: ", breakdown.RelatedSkills)
	writeSkillLine("Missing: ", breakdown.MissingSkills)

	if len(breakdown.ExperienceGaps) > 0 {
		sb.WriteString("\nExperience gaps:\n")
		count := min(len(breakdown.ExperienceGaps), maxItemsToShow)
		for i := 0; i < count; i++ {
			gap := breakdown.ExperienceGaps[i]
			sb.WriteString(fmt.Sprintf("  • %s: %d months short (learnability %.2f)\n",
				gap.SkillID, gap.Gap, gap.Learnability))
		}
		if len(breakdown.ExperienceGaps) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(breakdown.ExperienceGaps)-maxItemsToShow))
		}
	}

	if len(breakdown.PotentialIndicators) > 0 {
		sb.WriteString("\nPositive signals:\n")
		for _, indicator := range breakdown.PotentialIndicators {
			sb.WriteString(fmt.Sprintf("  • %s\n", indicator))
		}
	}
	if len(breakdown.RiskFactors) > 0 {
		sb.WriteString("\nRisk factors:\n")
		for _, risk := range breakdown.RiskFactors {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", risk))
		}
	}

	if sb.Len() == 0 {
		return
	}
	p.printBox("SCORE BREAKDOWN", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRanking outputs the top N ranked results with scores.
func (p *Printer) PrintRanking(title string, results []types.MatchingResult, label func(types.MatchingResult) string) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total ranked: %d\n\n", len(results)))

	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		result := results[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, label(result)))
		sb.WriteString(fmt.Sprintf("    Score: %.2f  Confidence: %.2f\n",
			result.Score.OverallScore, result.Confidence))
		if len(result.Score.Breakdown.MatchedSkills) > 0 {
			skills := strings.Join(result.Score.Breakdown.MatchedSkills, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", skills))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more results", len(results)-maxItemsToShow))
	}

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintExtraction outputs the result of free-text skill extraction.
func (p *Printer) PrintExtraction(extraction *types.SkillExtraction) {
	if extraction == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skills found: %d (confidence %.2f)\n", len(extraction.Skills), extraction.Confidence))
	for i, id := range extraction.Skills {
		term := ""
		if i < len(extraction.MatchedTerms) {
			term = extraction.MatchedTerms[i]
		}
		sb.WriteString(fmt.Sprintf("  • %s", id))
		if term != "" && term != id {
			sb.WriteString(fmt.Sprintf(" (from %q)", term))
		}
		sb.WriteString("\n")
	}
	if len(extraction.UnmatchedTerms) > 0 {
		unmatched := strings.Join(extraction.UnmatchedTerms, ", ")
		if len(unmatched) > 45 {
			unmatched = unmatched[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("\nUnmatched: %s", unmatched))
	}

	p.printBox("EXTRACTED SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}
