package scoring

import (
	"sort"
	"strings"
	"time"

	"github.com/jonathan/talent-match/internal/types"
)

// Potential factor weights: education, learning indicators, growth trajectory.
const (
	educationFactorWeight = 0.3
	learningFactorWeight  = 0.4
	growthFactorWeight    = 0.3

	// defaultEducationFactor applies when no education is listed.
	defaultEducationFactor = 0.3
	// defaultGrowthFactor applies when fewer than two experience records exist.
	defaultGrowthFactor = 0.5

	// recentDegreeYears is the window within which a degree counts as a
	// learning indicator.
	recentDegreeYears = 5

	// diverseSkillCount is the skill-list size above which breadth counts as a
	// learning indicator.
	diverseSkillCount = 5
)

// potentialScore is a composite proxy for growth capacity: education level,
// learning indicators, and the complexity trend across experience records.
func (e *Engine) potentialScore(candidate *types.Candidate, learningFactor float64) float64 {
	education := educationFactor(candidate.Education)
	growth := growthTrajectoryFactor(candidate.Experience)

	return clamp01(educationFactorWeight*education +
		learningFactorWeight*learningFactor +
		growthFactorWeight*growth)
}

// learningIndicatorFactor is the fraction of three boolean signals that hold:
// broad skill list, a recent degree, and any leadership experience. Shared
// with gap learnability in the breakdown.
func (e *Engine) learningIndicatorFactor(candidate *types.Candidate) float64 {
	indicators := 0
	if len(candidate.Skills) > diverseSkillCount {
		indicators++
	}
	if hasRecentDegree(candidate.Education) {
		indicators++
	}
	if hasLeadership(candidate.Experience) {
		indicators++
	}
	return float64(indicators) / 3.0
}

// educationFactor maps the highest degree held to [0,1].
func educationFactor(education []types.Education) float64 {
	if len(education) == 0 {
		return defaultEducationFactor
	}

	highest := 0.0
	for _, edu := range education {
		if level := degreeLevel(edu.Degree); level > highest {
			highest = level
		}
	}
	return highest / 3.0
}

// degreeLevel maps a free-form degree string to a numeric level.
// Unrecognized degrees count at the diploma level rather than zero.
func degreeLevel(degree string) float64 {
	d := strings.ToLower(degree)
	switch {
	case strings.Contains(d, "phd") || strings.Contains(d, "doctor"):
		return 3.0
	case strings.Contains(d, "master") || strings.Contains(d, "msc") || strings.Contains(d, "mba"):
		return 2.0
	case strings.Contains(d, "bachelor") || strings.Contains(d, "bsc") || strings.Contains(d, "b.s"):
		return 1.0
	case strings.Contains(d, "diploma") || strings.Contains(d, "associate"):
		return 0.5
	case strings.Contains(d, "certificate") || strings.Contains(d, "certification"):
		return 0.25
	default:
		return 0.5
	}
}

// hasRecentDegree reports whether any degree was earned within the recency
// window.
func hasRecentDegree(education []types.Education) bool {
	currentYear := time.Now().Year()
	for _, edu := range education {
		if edu.GraduationYear > 0 && currentYear-edu.GraduationYear <= recentDegreeYears {
			return true
		}
	}
	return false
}

// hasLeadership reports whether any experience record carries a leadership
// role.
func hasLeadership(experience []types.Experience) bool {
	for _, exp := range experience {
		if exp.HasLeadershipRole {
			return true
		}
	}
	return false
}

// growthTrajectoryFactor is the fraction of consecutive experience pairs,
// sorted by ascending duration, where complexity strictly increases.
func growthTrajectoryFactor(experience []types.Experience) float64 {
	if len(experience) < 2 {
		return defaultGrowthFactor
	}

	sorted := make([]types.Experience, len(experience))
	copy(sorted, experience)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DurationMonths < sorted[j].DurationMonths
	})

	increases := 0
	for i := 1; i < len(sorted); i++ {
		if sorted[i].ComplexityLevel > sorted[i-1].ComplexityLevel {
			increases++
		}
	}
	return float64(increases) / float64(len(sorted)-1)
}
