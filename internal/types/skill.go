// Package types provides type definitions for structured data used throughout the talent-match system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Skill represents one entry in the skill knowledge graph catalog.
// Skills are immutable after registry load.
type Skill struct {
	ID                      string   `json:"id"`
	CanonicalName           string   `json:"canonical_name"`
	Aliases                 []string `json:"aliases,omitempty"`
	Category                string   `json:"category,omitempty"`
	RelatedSkills           []string `json:"related_skills,omitempty"`
	DifficultyLevel         int      `json:"difficulty_level"`           // 1 (easy) .. 5 (hard)
	TimeToProficiencyMonths int      `json:"time_to_proficiency_months"` // typical months to working proficiency
}

// Relationship type constants for SkillRelationship.Type.
const (
	RelationshipPrerequisite = "prerequisite"
	RelationshipRelated      = "related"
	RelationshipAlternative  = "alternative"
)

// SkillRelationship is a directed edge between two skills in the graph.
// Related and alternative edges are stored one-directionally but queried
// symmetrically.
type SkillRelationship struct {
	SourceSkill string  `json:"source_skill"`
	TargetSkill string  `json:"target_skill"`
	Type        string  `json:"type"`
	Strength    float64 `json:"strength"` // 0..1
}

// SkillExtraction is the result of extracting skill mentions from free text.
type SkillExtraction struct {
	Skills         []string `json:"skills"` // canonical names, first-occurrence order
	Confidence     float64  `json:"confidence"`
	MatchedTerms   []string `json:"matched_terms"`
	UnmatchedTerms []string `json:"unmatched_terms"`
}
