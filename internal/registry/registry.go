// Package registry provides the static skill knowledge-graph catalog: skills,
// aliases, and skill-to-skill relationships. The registry is immutable after
// construction and safe for concurrent readers.
package registry

import (
	"fmt"
	"sort"

	"github.com/jonathan/talent-match/internal/types"
)

// Registry is the read-only skill catalog plus its relationship edges.
type Registry struct {
	byID          map[string]types.Skill
	ordered       []types.Skill // sorted by id so linear scans are deterministic
	relationships []types.SkillRelationship
	relatedIndex  map[string][]string // skill id -> related ids (field + outgoing edges, deduped)
}

// New builds a Registry from a skill list and relationship edges.
// Skill ids must be unique. Dangling related-skill references are kept as-is;
// lookups resolve them to not-found rather than failing.
func New(skills []types.Skill, relationships []types.SkillRelationship) (*Registry, error) {
	byID := make(map[string]types.Skill, len(skills))
	for _, s := range skills {
		if s.ID == "" {
			return nil, fmt.Errorf("skill with empty id (canonical name %q)", s.CanonicalName)
		}
		if _, exists := byID[s.ID]; exists {
			return nil, fmt.Errorf("duplicate skill id %q", s.ID)
		}
		byID[s.ID] = s
	}

	ordered := make([]types.Skill, 0, len(byID))
	for _, s := range byID {
		ordered = append(ordered, s)
	}
	// Sorting by id makes substring tie-breaks reproducible across runs.
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].ID < ordered[j].ID
	})

	r := &Registry{
		byID:          byID,
		ordered:       ordered,
		relationships: relationships,
	}
	r.relatedIndex = buildRelatedIndex(ordered, relationships)
	return r, nil
}

// buildRelatedIndex merges each skill's RelatedSkills field with outgoing
// related/alternative relationship edges.
func buildRelatedIndex(skills []types.Skill, relationships []types.SkillRelationship) map[string][]string {
	index := make(map[string][]string, len(skills))
	seen := make(map[string]map[string]bool, len(skills))

	add := func(from, to string) {
		if from == to {
			return
		}
		if seen[from] == nil {
			seen[from] = make(map[string]bool)
		}
		if seen[from][to] {
			return
		}
		seen[from][to] = true
		index[from] = append(index[from], to)
	}

	for _, s := range skills {
		for _, rel := range s.RelatedSkills {
			add(s.ID, rel)
		}
	}
	for _, edge := range relationships {
		if edge.Type == types.RelationshipRelated || edge.Type == types.RelationshipAlternative {
			add(edge.SourceSkill, edge.TargetSkill)
		}
	}
	return index
}

// Skill returns the skill for an id, reporting whether it exists.
func (r *Registry) Skill(id string) (types.Skill, bool) {
	s, ok := r.byID[id]
	return s, ok
}

// Skills returns all skills sorted by id. Callers must not mutate the slice.
func (r *Registry) Skills() []types.Skill {
	return r.ordered
}

// Relationships returns the relationship edge set. Callers must not mutate it.
func (r *Registry) Relationships() []types.SkillRelationship {
	return r.relationships
}

// RelatedIDs returns the related skill ids for a skill (one directed hop:
// the RelatedSkills field merged with outgoing related/alternative edges).
// Unknown ids yield nil.
func (r *Registry) RelatedIDs(id string) []string {
	return r.relatedIndex[id]
}

// RelationshipStrength returns the strength of the strongest edge between two
// skills in either direction, or 0 when no edge exists.
func (r *Registry) RelationshipStrength(a, b string) float64 {
	strength := 0.0
	for _, edge := range r.relationships {
		if (edge.SourceSkill == a && edge.TargetSkill == b) || (edge.SourceSkill == b && edge.TargetSkill == a) {
			if edge.Strength > strength {
				strength = edge.Strength
			}
		}
	}
	return strength
}

// Len returns the number of skills in the catalog.
func (r *Registry) Len() int {
	return len(r.ordered)
}
