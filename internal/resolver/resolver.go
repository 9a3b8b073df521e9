// Package resolver normalizes free-form skill names to canonical registry
// entries and answers relatedness queries over the skill graph. Resolution is
// best-effort by design: every query returns a result or an explicit
// not-found value, never an error, so one exotic skill name cannot abort an
// otherwise valid match.
package resolver

import (
	"strings"

	"github.com/jonathan/talent-match/internal/registry"
	"github.com/jonathan/talent-match/internal/types"
)

// abbreviations is the fixed shorthand/variant table consulted before the
// substring scan. Values are registry skill ids.
var abbreviations = map[string]string{
	"js":       "javascript",
	"ts":       "typescript",
	"k8s":      "kubernetes",
	"py":       "python",
	"golang":   "go",
	"postgres": "postgresql",
	"psql":     "postgresql",
	"mongo":    "mongodb",
	"ml":       "machine-learning",
	"node":     "nodejs",
	"reactjs":  "react",
	"vuejs":    "vue",
	"gql":      "graphql",
	"tf":       "terraform",
}

// Resolver maps skill strings to canonical skills using read-only indexes
// built once from the registry. Safe for concurrent use.
type Resolver struct {
	registry   *registry.Registry
	nameIndex  map[string]string // lowercased id/canonical name -> skill id
	aliasIndex map[string]string // lowercased alias -> skill id
}

// New builds a Resolver and its lookup indexes from a registry.
func New(reg *registry.Registry) *Resolver {
	r := &Resolver{
		registry:   reg,
		nameIndex:  make(map[string]string),
		aliasIndex: make(map[string]string),
	}
	for _, s := range reg.Skills() {
		r.nameIndex[strings.ToLower(s.ID)] = s.ID
		r.nameIndex[strings.ToLower(s.CanonicalName)] = s.ID
		for _, alias := range s.Aliases {
			r.aliasIndex[strings.ToLower(alias)] = s.ID
		}
	}
	return r
}

// Normalize maps an arbitrary skill string to its canonical name. Unresolved
// input is returned unchanged so callers can still display it verbatim.
func (r *Resolver) Normalize(name string) string {
	if id, ok := r.ResolveID(name); ok {
		if s, found := r.registry.Skill(id); found {
			return s.CanonicalName
		}
	}
	return name
}

// ResolveID maps an arbitrary skill string to a canonical skill id,
// reporting whether a match was found. Resolution order: exact id/canonical
// name, alias, abbreviation table, substring containment.
func (r *Resolver) ResolveID(name string) (string, bool) {
	query := strings.ToLower(strings.TrimSpace(name))
	if query == "" {
		return "", false
	}

	if id, ok := r.nameIndex[query]; ok {
		return id, true
	}
	if id, ok := r.aliasIndex[query]; ok {
		return id, true
	}
	return r.fuzzyMatch(query)
}

// fuzzyMatch applies the abbreviation table, then a linear substring scan
// over the id-sorted registry. First match wins; sorting the registry by id
// keeps tie-breaks reproducible when several skills are substring-compatible.
func (r *Resolver) fuzzyMatch(query string) (string, bool) {
	if id, ok := abbreviations[query]; ok {
		if _, found := r.registry.Skill(id); found {
			return id, true
		}
	}

	for _, s := range r.registry.Skills() {
		canonical := strings.ToLower(s.CanonicalName)
		if strings.Contains(canonical, query) || strings.Contains(query, canonical) {
			return s.ID, true
		}
		for _, alias := range s.Aliases {
			lowerAlias := strings.ToLower(alias)
			if strings.Contains(lowerAlias, query) || strings.Contains(query, lowerAlias) {
				return s.ID, true
			}
		}
	}
	return "", false
}

// Skill returns the registry entry resolved from an arbitrary skill string.
func (r *Resolver) Skill(name string) (types.Skill, bool) {
	id, ok := r.ResolveID(name)
	if !ok {
		return types.Skill{}, false
	}
	return r.registry.Skill(id)
}

// AreRelated reports whether two skills are one hop apart in the graph. The
// relation is queried symmetrically (either direction counts) but is not
// transitive. Unresolvable inputs are never related.
func (r *Resolver) AreRelated(a, b string) bool {
	idA, okA := r.ResolveID(a)
	idB, okB := r.ResolveID(b)
	if !okA || !okB || idA == idB {
		return false
	}
	return containsID(r.registry.RelatedIDs(idA), idB) || containsID(r.registry.RelatedIDs(idB), idA)
}

// RelatedSkills returns the registry entries related to a skill, silently
// dropping related ids that do not resolve.
func (r *Resolver) RelatedSkills(name string) []types.Skill {
	id, ok := r.ResolveID(name)
	if !ok {
		return nil
	}

	related := make([]types.Skill, 0)
	for _, relID := range r.registry.RelatedIDs(id) {
		if s, found := r.registry.Skill(relID); found {
			related = append(related, s)
		}
	}
	return related
}

func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
