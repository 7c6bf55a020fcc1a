package types

// ExperienceSegment is a single recognized employment date range with its
// inferred employer. Start and End are month-granularity "YYYY-MM" strings;
// End is the literal "Present" for open-ended segments.
type ExperienceSegment struct {
	Label          string  `json:"label"`
	Start          string  `json:"start"`
	End            string  `json:"end"`
	DurationMonths int     `json:"duration_months"`
	DurationYears  float64 `json:"duration_years"`
	Source         string  `json:"source"`
	Company        string  `json:"company"`
}

// EmploymentGap is a reported idle period of at least two months between two
// merged runs of experience.
type EmploymentGap struct {
	Months int    `json:"months"`
	Start  string `json:"start"`
	End    string `json:"end"`
}

// ResumeSignals holds all signals extracted from one resume against a JD profile.
type ResumeSignals struct {
	MatchedMustHave   []string            `json:"matched_must_have"`
	MatchedNiceToHave []string            `json:"matched_nice_to_have"`
	MatchedExtra      []string            `json:"matched_extra_skills"`
	DomainHits        []string            `json:"domain_hits"`
	RoleHits          []string            `json:"role_hits"`
	ExperienceYears   float64             `json:"experience_years"`
	RecentYears       float64             `json:"recent_years"`
	Segments          []ExperienceSegment `json:"segments"`
	Gaps              []EmploymentGap     `json:"gaps"`
	UsedFallback      bool                `json:"used_fallback"`
}
