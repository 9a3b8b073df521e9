package types

// Experience represents one skill-anchored work experience record owned by a
// candidate. Lookups assume at most one record per skill id; the first match
// wins if duplicates exist.
type Experience struct {
	ID                 string   `json:"id"`
	SkillID            string   `json:"skill_id"`
	DurationMonths     int      `json:"duration_months"`
	ComplexityLevel    int      `json:"complexity_level"` // 1..5
	HasLeadershipRole  bool     `json:"has_leadership_role"`
	ProjectDescription string   `json:"project_description,omitempty"`
	Technologies       []string `json:"technologies,omitempty"`
}

// Education represents a single degree held by a candidate.
type Education struct {
	Degree         string `json:"degree"`
	Institution    string `json:"institution"`
	Field          string `json:"field"`
	GraduationYear int    `json:"graduation_year"`
}

// Candidate is an input entity; the matching core never mutates it.
type Candidate struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Email      string       `json:"email"`
	Skills     []string     `json:"skills"` // unique canonical skill ids
	Experience []Experience `json:"experience,omitempty"`
	Education  []Education  `json:"education,omitempty"`
	Summary    string       `json:"summary,omitempty"`
}

// ExperienceForSkill returns the candidate's experience record for a skill id,
// or nil when none is logged. First match wins on duplicates.
func (c *Candidate) ExperienceForSkill(skillID string) *Experience {
	for i := range c.Experience {
		if c.Experience[i].SkillID == skillID {
			return &c.Experience[i]
		}
	}
	return nil
}

// HasSkill reports whether the candidate lists the exact skill id.
func (c *Candidate) HasSkill(skillID string) bool {
	for _, s := range c.Skills {
		if s == skillID {
			return true
		}
	}
	return false
}
