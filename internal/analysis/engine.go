// Package analysis orchestrates the full rule-based resume analysis pipeline:
// JD summarization, section splitting, signal extraction, and scoring.
package analysis

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/jonathan/resume-screener/internal/jd"
	"github.com/jonathan/resume-screener/internal/scoring"
	"github.com/jonathan/resume-screener/internal/sections"
	"github.com/jonathan/resume-screener/internal/signals"
	"github.com/jonathan/resume-screener/internal/skills"
	"github.com/jonathan/resume-screener/internal/timeline"
	"github.com/jonathan/resume-screener/internal/types"
)

// Analysis modes.
const (
	ModeStandard = "standard"
	ModeDeep     = "deep"
)

// errorTextPrefix marks upstream extraction failures; such input is treated
// as "no usable text" and analysis continues in degraded mode.
const errorTextPrefix = "Error:"

// Options configures an Engine.
type Options struct {
	// Mode selects standard or deep analysis output.
	Mode string
	// WindowYears is the recency window; zero means the default.
	WindowYears int
	// Now anchors all date arithmetic; zero means the wall clock.
	Now time.Time
}

// Engine runs analyses against one immutable skill alias index. It holds no
// per-request state and is safe for concurrent use.
type Engine struct {
	index     *skills.Index
	mode      string
	extractor *timeline.Extractor
}

// NewEngine builds an Engine around a skill alias index.
func NewEngine(index *skills.Index, opts Options) *Engine {
	mode := strings.ToLower(opts.Mode)
	if mode == "" {
		mode = ModeStandard
	}
	extractor := timeline.NewExtractor()
	if opts.WindowYears > 0 {
		extractor.WindowYears = opts.WindowYears
	}
	if !opts.Now.IsZero() {
		extractor.Now = opts.Now
	}
	return &Engine{index: index, mode: mode, extractor: extractor}
}

// SummarizeJD builds the JD requirements profile. Upstream extraction errors
// degrade to an empty profile.
func (e *Engine) SummarizeJD(jdText string) (*types.JDProfile, error) {
	return jd.Summarize(usableText(jdText), e.index)
}

// AnalyzeResume scores one resume against a JD profile and assembles the full
// result record. Missing or empty resume text degrades to an empty-signal
// analysis; the only error is non-text input.
func (e *Engine) AnalyzeResume(resumeText string, profile *types.JDProfile) (*types.Report, error) {
	resumeText = usableText(resumeText)
	if !utf8.ValidString(resumeText) {
		return nil, &InvalidInputError{Message: "resume text is not valid UTF-8"}
	}

	resumeSections := sections.Split(resumeText)
	sig := signals.Extract(resumeText, resumeSections, profile, e.index, e.extractor)
	breakdown := scoring.Score(profile, sig)

	requiredPool := profile.RequiredSkillPool()
	coveragePool := profile.CoveragePool()

	matchedSkills := concat(sig.MatchedMustHave, sig.MatchedNiceToHave)
	missingCore := difference(profile.MustHaveSkills, sig.MatchedMustHave)
	missingOptional := difference(profile.NiceToHaveSkills, sig.MatchedNiceToHave)

	sectionBreakdown := scoring.SectionSkillBreakdown(resumeSections, requiredPool, e.index)

	summary := scoring.ComposeSummary(breakdown.Overall, sig.ExperienceYears, matchedSkills, missingCore, len(coveragePool))
	strengths, risks, recommendations := scoring.DeriveStrengthsRisks(
		sig.ExperienceYears, matchedSkills, missingCore, sig.Gaps, breakdown.Overall, sectionBreakdown)

	details := &types.ReportDetails{
		CalculatedYears:       sig.ExperienceYears,
		RecentYears:           sig.RecentYears,
		MatchedSkills:         matchedSkills,
		MissingSkills:         missingCore,
		MissingOptionalSkills: missingOptional,
		CoreSkillMatches:      sig.MatchedMustHave,
		SupportSkillMatches:   sig.MatchedNiceToHave,
		DomainHits:            sig.DomainHits,
		RoleHits:              sig.RoleHits,
		AISummary:             summary,
		Strengths:             strengths,
		Risks:                 risks,
		Recommendations:       recommendations,
		ExperienceSegments:    sig.Segments,
		HighlightedKeywords:   scoring.TopSkillMentions(resumeText, e.index),
		EducationHighlights:   scoring.EducationHighlights(resumeSections["education"]),
		Certifications:        scoring.CertificationHighlights(resumeSections["certifications"], 3),
		SummaryHighlights:     scoring.SectionBullets(resumeSections["summary"], 3),
		ScoreBreakdown:        breakdown,
	}

	if len(coveragePool) > 0 {
		ratio := breakdown.MustHaveRatio
		details.SkillsCoverageRatio = &ratio
	}
	if len(sig.Gaps) > 0 {
		details.EmploymentGaps = sig.Gaps
	}
	if sig.UsedFallback {
		details.Notes = "Experience timeline inferred from the full resume text because a dedicated experience section header was not detected."
	}
	if e.mode == ModeDeep {
		details.DeepInsights = &types.DeepInsights{
			NotableSentences:      scoring.NotableSentences(resumeText, matchedSkills),
			RecommendedQuestions:  recommendedQuestions(missingCore),
			ExperienceTimeline:    sig.Segments,
			EmploymentGaps:        sig.Gaps,
			SectionSkillBreakdown: sectionBreakdown,
		}
	}

	return &types.Report{
		ID:         uuid.New(),
		FinalScore: breakdown.Overall,
		Details:    details,
	}, nil
}

func recommendedQuestions(missingSkills []string) []string {
	questions := []string{}
	for i, skill := range missingSkills {
		if i >= 3 {
			break
		}
		questions = append(questions, "Can you walk me through your work with "+skill+"?")
	}
	return questions
}

// usableText treats upstream extraction failures as empty input.
func usableText(text string) string {
	if strings.HasPrefix(text, errorTextPrefix) {
		return ""
	}
	return text
}

func concat(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

// difference returns the items of want missing from have, preserving order.
func difference(want, have []string) []string {
	haveSet := make(map[string]struct{}, len(have))
	for _, item := range have {
		haveSet[item] = struct{}{}
	}
	out := []string{}
	for _, item := range want {
		if _, ok := haveSet[item]; !ok {
			out = append(out, item)
		}
	}
	return out
}
