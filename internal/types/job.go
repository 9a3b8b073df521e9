package types

// JobRequirement is one weighted skill requirement on a job posting.
type JobRequirement struct {
	SkillID           string `json:"skill_id"`
	MinDurationMonths int    `json:"min_duration_months"`
	RequiredLevel     int    `json:"required_level"` // 1..5
	IsRequired        bool   `json:"is_required"`
	Description       string `json:"description,omitempty"`
}

// Weight returns the contribution weight of the requirement: required skills
// count double so they dominate every scoring factor identically.
func (r JobRequirement) Weight() float64 {
	if r.IsRequired {
		return 2.0
	}
	return 1.0
}

// Job is an input entity; the matching core never mutates it.
type Job struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	Company          string           `json:"company"`
	Requirements     []JobRequirement `json:"requirements"`
	Responsibilities []string         `json:"responsibilities,omitempty"`
	Location         string           `json:"location,omitempty"`
	Salary           string           `json:"salary,omitempty"`
}
