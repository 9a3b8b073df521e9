package resolver

import (
	"sort"
	"strings"

	"github.com/jonathan/talent-match/internal/types"
)

// minTokenLength is the shortest token the second extraction pass will
// attempt to fuzzy-match.
const minTokenLength = 3

// ExtractSkillsFromText finds skill mentions in free text. Pass one scans the
// whole text for canonical-name and alias substrings; pass two tokenizes the
// remaining text and fuzzy-matches each surviving token. Skills are deduped
// by id with first-occurrence order preserved.
func (r *Resolver) ExtractSkillsFromText(text string) types.SkillExtraction {
	result := types.SkillExtraction{
		Skills:         []string{},
		MatchedTerms:   []string{},
		UnmatchedTerms: []string{},
	}
	if strings.TrimSpace(text) == "" {
		return result
	}

	lower := strings.ToLower(text)
	seen := make(map[string]bool)

	// Pass 1: whole-text substring scan over canonical names and aliases.
	type hit struct {
		skillID  string
		term     string
		position int
	}
	hits := make([]hit, 0)
	for _, s := range r.registry.Skills() {
		terms := append([]string{s.CanonicalName}, s.Aliases...)
		best := -1
		bestTerm := ""
		for _, term := range terms {
			lowerTerm := strings.ToLower(term)
			if len(lowerTerm) < 2 {
				continue
			}
			if idx := strings.Index(lower, lowerTerm); idx >= 0 && (best == -1 || idx < best) {
				best = idx
				bestTerm = term
			}
		}
		if best >= 0 {
			hits = append(hits, hit{skillID: s.ID, term: bestTerm, position: best})
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].position < hits[j].position })

	remaining := lower
	for _, h := range hits {
		if seen[h.skillID] {
			continue
		}
		seen[h.skillID] = true
		if s, ok := r.registry.Skill(h.skillID); ok {
			result.Skills = append(result.Skills, s.CanonicalName)
		}
		result.MatchedTerms = append(result.MatchedTerms, h.term)
		remaining = strings.ReplaceAll(remaining, strings.ToLower(h.term), " ")
	}

	// Pass 2: fuzzy-match the leftover tokens.
	seenTokens := make(map[string]bool)
	for _, token := range strings.Fields(remaining) {
		token = strings.Trim(token, ".,;:!?()[]{}\"'")
		if len(token) < minTokenLength || seenTokens[token] {
			continue
		}
		seenTokens[token] = true

		id, ok := r.fuzzyMatch(token)
		if !ok {
			result.UnmatchedTerms = append(result.UnmatchedTerms, token)
			continue
		}
		result.MatchedTerms = append(result.MatchedTerms, token)
		if seen[id] {
			continue
		}
		seen[id] = true
		if s, found := r.registry.Skill(id); found {
			result.Skills = append(result.Skills, s.CanonicalName)
		}
	}

	matched := len(result.MatchedTerms)
	unmatched := len(result.UnmatchedTerms)
	if matched+unmatched > 0 {
		result.Confidence = float64(matched) / float64(matched+unmatched)
	}
	return result
}
