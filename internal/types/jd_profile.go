// Package types provides type definitions for structured data used throughout the resume-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// JDProfile represents the structured requirements summarized from a job description.
type JDProfile struct {
	MustHaveSkills     []string `json:"must_have_skills"`
	NiceToHaveSkills   []string `json:"nice_to_have_skills"`
	DomainKeywords     []string `json:"domain_keywords"`
	RoleTitles         []string `json:"role_titles"`
	MinYearsExperience *float64 `json:"min_years_experience,omitempty"`
}

// RequiredSkillPool returns must-have plus nice-to-have skills in order.
func (p *JDProfile) RequiredSkillPool() []string {
	pool := make([]string, 0, len(p.MustHaveSkills)+len(p.NiceToHaveSkills))
	pool = append(pool, p.MustHaveSkills...)
	pool = append(pool, p.NiceToHaveSkills...)
	return pool
}

// CoveragePool returns the skill set coverage is measured against: the
// must-have skills when any exist, otherwise the full required pool.
func (p *JDProfile) CoveragePool() []string {
	if len(p.MustHaveSkills) > 0 {
		return p.MustHaveSkills
	}
	return p.RequiredSkillPool()
}
