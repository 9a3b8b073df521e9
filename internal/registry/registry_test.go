package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-match/internal/types"
)

func testSkills() []types.Skill {
	return []types.Skill{
		{ID: "alpha", CanonicalName: "Alpha", RelatedSkills: []string{"beta"}, DifficultyLevel: 2},
		{ID: "beta", CanonicalName: "Beta", DifficultyLevel: 3},
		{ID: "gamma", CanonicalName: "Gamma", DifficultyLevel: 4},
	}
}

func TestNew_DuplicateID(t *testing.T) {
	skills := []types.Skill{
		{ID: "alpha", CanonicalName: "Alpha"},
		{ID: "alpha", CanonicalName: "Alpha Again"},
	}

	_, err := New(skills, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate skill id")
}

func TestNew_EmptyID(t *testing.T) {
	skills := []types.Skill{{ID: "", CanonicalName: "Nameless"}}

	_, err := New(skills, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty id")
}

func TestSkills_SortedByID(t *testing.T) {
	skills := []types.Skill{
		{ID: "zeta", CanonicalName: "Zeta"},
		{ID: "alpha", CanonicalName: "Alpha"},
		{ID: "mu", CanonicalName: "Mu"},
	}
	reg, err := New(skills, nil)
	require.NoError(t, err)

	ordered := reg.Skills()
	require.Len(t, ordered, 3)
	assert.Equal(t, "alpha", ordered[0].ID)
	assert.Equal(t, "mu", ordered[1].ID)
	assert.Equal(t, "zeta", ordered[2].ID)
}

func TestRelatedIDs_MergesFieldAndEdges(t *testing.T) {
	relationships := []types.SkillRelationship{
		{SourceSkill: "alpha", TargetSkill: "gamma", Type: types.RelationshipRelated, Strength: 0.8},
		{SourceSkill: "alpha", TargetSkill: "beta", Type: types.RelationshipRelated, Strength: 0.6},
	}
	reg, err := New(testSkills(), relationships)
	require.NoError(t, err)

	related := reg.RelatedIDs("alpha")

	// "beta" comes from both the field and an edge but appears once.
	assert.ElementsMatch(t, []string{"beta", "gamma"}, related)
}

func TestRelatedIDs_PrerequisiteEdgesExcluded(t *testing.T) {
	relationships := []types.SkillRelationship{
		{SourceSkill: "beta", TargetSkill: "gamma", Type: types.RelationshipPrerequisite, Strength: 0.9},
	}
	reg, err := New(testSkills(), relationships)
	require.NoError(t, err)

	assert.Empty(t, reg.RelatedIDs("beta"))
}

func TestRelatedIDs_UnknownSkill(t *testing.T) {
	reg, err := New(testSkills(), nil)
	require.NoError(t, err)

	assert.Nil(t, reg.RelatedIDs("does-not-exist"))
}

func TestRelationshipStrength_EitherDirection(t *testing.T) {
	relationships := []types.SkillRelationship{
		{SourceSkill: "alpha", TargetSkill: "beta", Type: types.RelationshipRelated, Strength: 0.4},
		{SourceSkill: "beta", TargetSkill: "alpha", Type: types.RelationshipRelated, Strength: 0.7},
	}
	reg, err := New(testSkills(), relationships)
	require.NoError(t, err)

	assert.InDelta(t, 0.7, reg.RelationshipStrength("alpha", "beta"), 1e-9)
	assert.InDelta(t, 0.7, reg.RelationshipStrength("beta", "alpha"), 1e-9)
	assert.Zero(t, reg.RelationshipStrength("alpha", "gamma"))
}

func TestDefault_SeedCatalogLoads(t *testing.T) {
	reg := Default()

	assert.Greater(t, reg.Len(), 20)

	js, ok := reg.Skill("javascript")
	require.True(t, ok)
	assert.Equal(t, "JavaScript", js.CanonicalName)
	assert.Contains(t, reg.RelatedIDs("javascript"), "typescript")
}
