package types

// ScoreBreakdown is the weighted, penalty/bonus-adjusted scoring result for
// one resume. Component scores are 0-100; ratios are 0-1, rounded to 2dp.
type ScoreBreakdown struct {
	Overall             float64  `json:"overall"`
	SkillComponent      float64  `json:"core_skill"`
	DomainComponent     float64  `json:"domain_alignment"`
	RoleComponent       float64  `json:"role_alignment"`
	ExperienceComponent float64  `json:"experience_alignment"`
	BonusComponent      float64  `json:"bonus_or_penalty"`
	MustHaveRatio       float64  `json:"must_have_ratio"`
	NiceToHaveRatio     float64  `json:"nice_to_have_ratio"`
	DomainRatio         float64  `json:"domain_ratio"`
	RoleRatio           float64  `json:"role_ratio"`
	ExperienceRatio     float64  `json:"experience_ratio"`
	Penalties           []string `json:"penalties"`
}
