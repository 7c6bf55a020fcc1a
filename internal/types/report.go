package types

import "github.com/google/uuid"

// SectionRelevance holds the JD-skill relevance of one resume section.
type SectionRelevance struct {
	Score         float64  `json:"score"`
	MatchedSkills []string `json:"matched_skills"`
}

// DeepInsights holds the extra analysis emitted only in deep mode.
type DeepInsights struct {
	NotableSentences      []string                    `json:"notable_sentences"`
	RecommendedQuestions  []string                    `json:"recommended_questions"`
	ExperienceTimeline    []ExperienceSegment         `json:"experience_timeline"`
	EmploymentGaps        []EmploymentGap             `json:"employment_gaps"`
	SectionSkillBreakdown map[string]SectionRelevance `json:"section_skill_breakdown"`
}

// ReportDetails is the per-resume result record consumed by the presentation layer.
type ReportDetails struct {
	CalculatedYears       float64             `json:"calculated_years"`
	RecentYears           float64             `json:"recent_years"`
	MatchedSkills         []string            `json:"matched_skills"`
	MissingSkills         []string            `json:"missing_skills"`
	MissingOptionalSkills []string            `json:"missing_optional_skills"`
	CoreSkillMatches      []string            `json:"core_skill_matches"`
	SupportSkillMatches   []string            `json:"support_skill_matches"`
	DomainHits            []string            `json:"domain_hits"`
	RoleHits              []string            `json:"role_hits"`
	AISummary             string              `json:"ai_summary"`
	Strengths             []string            `json:"strengths"`
	Risks                 []string            `json:"risks"`
	Recommendations       []string            `json:"recommendations"`
	ExperienceSegments    []ExperienceSegment `json:"experience_segments"`
	HighlightedKeywords   []string            `json:"highlighted_keywords"`
	EducationHighlights   []string            `json:"education_highlights"`
	Certifications        []string            `json:"certifications"`
	SummaryHighlights     []string            `json:"summary_highlights"`
	ScoreBreakdown        *ScoreBreakdown     `json:"score_breakdown"`
	SkillsCoverageRatio   *float64            `json:"skills_coverage_ratio,omitempty"`
	EmploymentGaps        []EmploymentGap     `json:"employment_gaps,omitempty"`
	Notes                 string              `json:"notes,omitempty"`
	DeepInsights          *DeepInsights       `json:"deep_insights,omitempty"`
}

// Report is the analysis result for a single resume.
type Report struct {
	ID         uuid.UUID      `json:"id"`
	Filename   string         `json:"filename,omitempty"`
	Rank       int            `json:"rank,omitempty"`
	FinalScore float64        `json:"final_score"`
	Details    *ReportDetails `json:"details"`
	Error      string         `json:"error,omitempty"`
}

// BatchReport is the ranked result set for one JD against many resumes.
type BatchReport struct {
	ID        uuid.UUID  `json:"id"`
	JDProfile *JDProfile `json:"jd_profile"`
	Results   []*Report  `json:"results"`
}
