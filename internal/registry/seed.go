package registry

import "github.com/jonathan/talent-match/internal/types"

// Default returns the built-in skill catalog. The seed set covers the common
// web, backend, data, and infrastructure skills that sample jobs and
// candidates reference; deployments with a richer taxonomy load their own
// catalog via Load.
func Default() *Registry {
	r, err := New(seedSkills(), seedRelationships())
	if err != nil {
		// The seed catalog is static content; a bad seed is a programming error.
		panic("registry: invalid seed catalog: " + err.Error())
	}
	return r
}

func seedSkills() []types.Skill {
	return []types.Skill{
		{
			ID:                      "javascript",
			CanonicalName:           "JavaScript",
			Aliases:                 []string{"js", "ecmascript", "es6"},
			Category:                "programming-language",
			RelatedSkills:           []string{"typescript", "nodejs", "react"},
			DifficultyLevel:         2,
			TimeToProficiencyMonths: 6,
		},
		{
			ID:                      "typescript",
			CanonicalName:           "TypeScript",
			Aliases:                 []string{"ts"},
			Category:                "programming-language",
			RelatedSkills:           []string{"javascript", "nodejs", "angular"},
			DifficultyLevel:         2,
			TimeToProficiencyMonths: 4,
		},
		{
			ID:                      "react",
			CanonicalName:           "React",
			Aliases:                 []string{"reactjs", "react.js"},
			Category:                "frontend-framework",
			RelatedSkills:           []string{"javascript", "typescript", "nextjs"},
			DifficultyLevel:         3,
			TimeToProficiencyMonths: 6,
		},
		{
			ID:                      "nextjs",
			CanonicalName:           "Next.js",
			Aliases:                 []string{"next"},
			Category:                "frontend-framework",
			RelatedSkills:           []string{"react", "nodejs"},
			DifficultyLevel:         3,
			TimeToProficiencyMonths: 4,
		},
		{
			ID:                      "angular",
			CanonicalName:           "Angular",
			Aliases:                 []string{"angularjs"},
			Category:                "frontend-framework",
			RelatedSkills:           []string{"typescript", "javascript"},
			DifficultyLevel:         3,
			TimeToProficiencyMonths: 8,
		},
		{
			ID:                      "vue",
			CanonicalName:           "Vue.js",
			Aliases:                 []string{"vuejs", "vue.js"},
			Category:                "frontend-framework",
			RelatedSkills:           []string{"javascript", "react"},
			DifficultyLevel:         2,
			TimeToProficiencyMonths: 5,
		},
		{
			ID:                      "nodejs",
			CanonicalName:           "Node.js",
			Aliases:                 []string{"node", "node.js"},
			Category:                "backend-runtime",
			RelatedSkills:           []string{"javascript", "typescript", "express"},
			DifficultyLevel:         3,
			TimeToProficiencyMonths: 6,
		},
		{
			ID:                      "express",
			CanonicalName:           "Express",
			Aliases:                 []string{"expressjs", "express.js"},
			Category:                "backend-framework",
			RelatedSkills:           []string{"nodejs", "javascript"},
			DifficultyLevel:         2,
			TimeToProficiencyMonths: 3,
		},
		{
			ID:                      "python",
			CanonicalName:           "Python",
			Aliases:                 []string{"py"},
			Category:                "programming-language",
			RelatedSkills:           []string{"django", "machine-learning"},
			DifficultyLevel:         2,
			TimeToProficiencyMonths: 6,
		},
		{
			ID:                      "django",
			CanonicalName:           "Django",
			Aliases:                 nil,
			Category:                "backend-framework",
			RelatedSkills:           []string{"python", "postgresql"},
			DifficultyLevel:         3,
			TimeToProficiencyMonths: 5,
		},
		{
			ID:                      "go",
			CanonicalName:           "Go",
			Aliases:                 []string{"golang"},
			Category:                "programming-language",
			RelatedSkills:           []string{"kubernetes", "docker", "grpc"},
			DifficultyLevel:         3,
			TimeToProficiencyMonths: 6,
		},
		{
			ID:                      "java",
			CanonicalName:           "Java",
			Aliases:                 nil,
			Category:                "programming-language",
			RelatedSkills:           []string{"spring", "kotlin"},
			DifficultyLevel:         3,
			TimeToProficiencyMonths: 9,
		},
		{
			ID:                      "spring",
			CanonicalName:           "Spring Boot",
			Aliases:                 []string{"spring boot", "springboot"},
			Category:                "backend-framework",
			RelatedSkills:           []string{"java"},
			DifficultyLevel:         4,
			TimeToProficiencyMonths: 8,
		},
		{
			ID:                      "kotlin",
			CanonicalName:           "Kotlin",
			Aliases:                 nil,
			Category:                "programming-language",
			RelatedSkills:           []string{"java"},
			DifficultyLevel:         3,
			TimeToProficiencyMonths: 5,
		},
		{
			ID:                      "grpc",
			CanonicalName:           "gRPC",
			Aliases:                 nil,
			Category:                "api-technology",
			RelatedSkills:           []string{"go", "rest-api"},
			DifficultyLevel:         3,
			TimeToProficiencyMonths: 3,
		},
		{
			ID:                      "rest-api",
			CanonicalName:           "REST API",
			Aliases:                 []string{"rest", "restful api"},
			Category:                "api-technology",
			RelatedSkills:           []string{"graphql", "grpc"},
			DifficultyLevel:         2,
			TimeToProficiencyMonths: 3,
		},
		{
			ID:                      "graphql",
			CanonicalName:           "GraphQL",
			Aliases:                 nil,
			Category:                "api-technology",
			RelatedSkills:           []string{"rest-api", "nodejs"},
			DifficultyLevel:         3,
			TimeToProficiencyMonths: 4,
		},
		{
			ID:                      "docker",
			CanonicalName:           "Docker",
			Aliases:                 nil,
			Category:                "devops",
			RelatedSkills:           []string{"kubernetes", "ci-cd"},
			DifficultyLevel:         2,
			TimeToProficiencyMonths: 3,
		},
		{
			ID:                      "kubernetes",
			CanonicalName:           "Kubernetes",
			Aliases:                 []string{"k8s"},
			Category:                "devops",
			RelatedSkills:           []string{"docker", "terraform", "aws"},
			DifficultyLevel:         4,
			TimeToProficiencyMonths: 9,
		},
		{
			ID:                      "terraform",
			CanonicalName:           "Terraform",
			Aliases:                 nil,
			Category:                "devops",
			RelatedSkills:           []string{"aws", "kubernetes"},
			DifficultyLevel:         3,
			TimeToProficiencyMonths: 4,
		},
		{
			ID:                      "ci-cd",
			CanonicalName:           "CI/CD",
			Aliases:                 []string{"continuous integration", "continuous delivery"},
			Category:                "devops",
			RelatedSkills:           []string{"docker", "git"},
			DifficultyLevel:         2,
			TimeToProficiencyMonths: 3,
		},
		{
			ID:                      "aws",
			CanonicalName:           "AWS",
			Aliases:                 []string{"amazon web services"},
			Category:                "cloud",
			RelatedSkills:           []string{"terraform", "docker", "gcp"},
			DifficultyLevel:         4,
			TimeToProficiencyMonths: 12,
		},
		{
			ID:                      "gcp",
			CanonicalName:           "Google Cloud Platform",
			Aliases:                 []string{"google cloud"},
			Category:                "cloud",
			RelatedSkills:           []string{"aws", "kubernetes"},
			DifficultyLevel:         4,
			TimeToProficiencyMonths: 12,
		},
		{
			ID:                      "postgresql",
			CanonicalName:           "PostgreSQL",
			Aliases:                 []string{"postgres", "psql"},
			Category:                "database",
			RelatedSkills:           []string{"mysql", "sql"},
			DifficultyLevel:         3,
			TimeToProficiencyMonths: 6,
		},
		{
			ID:                      "mysql",
			CanonicalName:           "MySQL",
			Aliases:                 nil,
			Category:                "database",
			RelatedSkills:           []string{"postgresql", "sql"},
			DifficultyLevel:         2,
			TimeToProficiencyMonths: 5,
		},
		{
			ID:                      "sql",
			CanonicalName:           "SQL",
			Aliases:                 nil,
			Category:                "database",
			RelatedSkills:           []string{"postgresql", "mysql"},
			DifficultyLevel:         2,
			TimeToProficiencyMonths: 4,
		},
		{
			ID:                      "mongodb",
			CanonicalName:           "MongoDB",
			Aliases:                 []string{"mongo"},
			Category:                "database",
			RelatedSkills:           []string{"nodejs", "redis"},
			DifficultyLevel:         2,
			TimeToProficiencyMonths: 4,
		},
		{
			ID:                      "redis",
			CanonicalName:           "Redis",
			Aliases:                 nil,
			Category:                "database",
			RelatedSkills:           []string{"mongodb"},
			DifficultyLevel:         2,
			TimeToProficiencyMonths: 2,
		},
		{
			ID:                      "machine-learning",
			CanonicalName:           "Machine Learning",
			Aliases:                 []string{"ml"},
			Category:                "data-science",
			RelatedSkills:           []string{"python", "data-analysis"},
			DifficultyLevel:         5,
			TimeToProficiencyMonths: 18,
		},
		{
			ID:                      "data-analysis",
			CanonicalName:           "Data Analysis",
			Aliases:                 nil,
			Category:                "data-science",
			RelatedSkills:           []string{"python", "sql", "machine-learning"},
			DifficultyLevel:         3,
			TimeToProficiencyMonths: 6,
		},
		{
			ID:                      "git",
			CanonicalName:           "Git",
			Aliases:                 nil,
			Category:                "tooling",
			RelatedSkills:           []string{"ci-cd"},
			DifficultyLevel:         1,
			TimeToProficiencyMonths: 1,
		},
	}
}

func seedRelationships() []types.SkillRelationship {
	return []types.SkillRelationship{
		{SourceSkill: "javascript", TargetSkill: "typescript", Type: types.RelationshipRelated, Strength: 0.9},
		{SourceSkill: "javascript", TargetSkill: "react", Type: types.RelationshipPrerequisite, Strength: 0.8},
		{SourceSkill: "javascript", TargetSkill: "nodejs", Type: types.RelationshipPrerequisite, Strength: 0.8},
		{SourceSkill: "typescript", TargetSkill: "angular", Type: types.RelationshipPrerequisite, Strength: 0.7},
		{SourceSkill: "react", TargetSkill: "vue", Type: types.RelationshipAlternative, Strength: 0.7},
		{SourceSkill: "react", TargetSkill: "angular", Type: types.RelationshipAlternative, Strength: 0.6},
		{SourceSkill: "postgresql", TargetSkill: "mysql", Type: types.RelationshipAlternative, Strength: 0.8},
		{SourceSkill: "aws", TargetSkill: "gcp", Type: types.RelationshipAlternative, Strength: 0.8},
		{SourceSkill: "docker", TargetSkill: "kubernetes", Type: types.RelationshipPrerequisite, Strength: 0.9},
		{SourceSkill: "python", TargetSkill: "machine-learning", Type: types.RelationshipPrerequisite, Strength: 0.7},
		{SourceSkill: "go", TargetSkill: "java", Type: types.RelationshipRelated, Strength: 0.5},
		{SourceSkill: "java", TargetSkill: "kotlin", Type: types.RelationshipRelated, Strength: 0.8},
	}
}
