// Package scoring combines JD requirements and resume signals into a
// weighted, penalty/bonus-adjusted score with an explanatory breakdown.
package scoring

import (
	"math"

	"github.com/jonathan/resume-screener/internal/types"
)

// Component weights. Skill coverage dominates; domain, role, and experience
// alignment share the rest equally.
const (
	skillWeight      = 0.4
	domainWeight     = 0.2
	roleWeight       = 0.2
	experienceWeight = 0.2
)

// Skill component shaping.
const (
	mustRatioWeight  = 0.8
	niceRatioWeight  = 0.2
	extraSkillBoost  = 0.05
	extraSkillCap    = 0.2
	defaultRoleRatio = 0.5
)

// domainDenominatorCap keeps a long JD keyword list from diluting the domain
// ratio; only the first eight keywords need to land.
const domainDenominatorCap = 8

// defaultTargetYears is assumed when the JD states no minimum.
const defaultTargetYears = 5.0

// Penalty and bonus magnitudes, applied to the 0-1 weighted sum.
const (
	penaltyNoMustHave       = 0.35
	penaltyLowMustHave      = 0.20
	penaltyNoRoleMatch      = 0.12
	penaltyLowDomain        = 0.10
	penaltyLowExperience    = 0.15
	penaltyLongGap          = 0.05
	bonusStrongAlignment    = 0.07
	bonusSurplusExperience  = 0.03
	lowDomainRatioThreshold = 0.2
	longGapMonthsThreshold  = 6
	lowExperienceFraction   = 0.6
	alignmentRatioFloor     = 0.6
	surplusExperienceYears  = 3.0
)

// Penalty reason strings surfaced in the breakdown.
const (
	reasonNoMustHave    = "No core JD skills detected."
	reasonLowMustHave   = "Less than half of required JD skills matched."
	reasonNoRoleMatch   = "Role titles from the JD are missing in the resume."
	reasonLowDomain     = "Few JD domain keywords found in resume content."
	reasonLowExperience = "Verified experience below JD expectation."
	reasonLongGap       = "Employment gaps longer than six months detected."
)

// Score computes the full breakdown for one resume against a JD profile.
// Every ratio is clamped to [0,1]; the overall score lands in [0,100].
func Score(profile *types.JDProfile, sig *types.ResumeSignals) *types.ScoreBreakdown {
	penalties := []string{}
	penaltyValue := 0.0
	bonus := 0.0

	mustTotal := len(profile.MustHaveSkills)
	mustHits := len(sig.MatchedMustHave)
	var mustRatio float64
	if mustTotal > 0 {
		mustRatio = float64(mustHits) / float64(mustTotal)
	} else if len(sig.MatchedExtra) > 0 || len(sig.MatchedNiceToHave) > 0 {
		mustRatio = 1.0
	}

	niceTotal := len(profile.NiceToHaveSkills)
	niceHits := len(sig.MatchedNiceToHave)
	var niceRatio float64
	if niceTotal > 0 {
		niceRatio = float64(niceHits) / float64(niceTotal)
	} else if len(sig.MatchedExtra) > 0 {
		niceRatio = 1.0
	}

	var skillComponent float64
	if mustTotal > 0 {
		skillComponent = clamp01(mustRatioWeight*mustRatio + niceRatioWeight*niceRatio)
	} else {
		base := 0.0
		if niceTotal > 0 {
			base = niceRatio
		}
		extraBoost := math.Min(extraSkillCap, float64(len(sig.MatchedExtra))*extraSkillBoost)
		skillComponent = clamp01(base + extraBoost)
	}

	domainTotal := len(profile.DomainKeywords)
	if domainTotal > domainDenominatorCap {
		domainTotal = domainDenominatorCap
	}
	if domainTotal < 1 {
		domainTotal = 1
	}
	domainRatio := clamp01(float64(len(sig.DomainHits)) / float64(domainTotal))

	var roleRatio float64
	switch {
	case len(profile.RoleTitles) > 0:
		roleRatio = clamp01(float64(len(sig.RoleHits)) / float64(len(profile.RoleTitles)))
	case len(sig.RoleHits) > 0:
		roleRatio = 1.0
	default:
		roleRatio = defaultRoleRatio
	}

	targetYears := defaultTargetYears
	if profile.MinYearsExperience != nil && *profile.MinYearsExperience > 0 {
		targetYears = *profile.MinYearsExperience
	}
	experienceRatio := clamp01(sig.RecentYears / math.Max(1.0, targetYears))

	if mustTotal > 0 && mustRatio == 0 {
		penaltyValue += penaltyNoMustHave
		penalties = append(penalties, reasonNoMustHave)
	} else if mustTotal > 0 && mustRatio < 0.5 {
		penaltyValue += penaltyLowMustHave
		penalties = append(penalties, reasonLowMustHave)
	}

	if len(profile.RoleTitles) > 0 && len(sig.RoleHits) == 0 {
		penaltyValue += penaltyNoRoleMatch
		penalties = append(penalties, reasonNoRoleMatch)
	}

	if domainRatio < lowDomainRatioThreshold && len(profile.DomainKeywords) > 0 {
		penaltyValue += penaltyLowDomain
		penalties = append(penalties, reasonLowDomain)
	}

	if profile.MinYearsExperience != nil && *profile.MinYearsExperience > 0 &&
		sig.ExperienceYears < *profile.MinYearsExperience*lowExperienceFraction {
		penaltyValue += penaltyLowExperience
		penalties = append(penalties, reasonLowExperience)
	}

	for _, gap := range sig.Gaps {
		if gap.Months > longGapMonthsThreshold {
			penaltyValue += penaltyLongGap
			penalties = append(penalties, reasonLongGap)
			break
		}
	}

	if mustRatio >= 1.0 && domainRatio >= alignmentRatioFloor && roleRatio >= alignmentRatioFloor {
		bonus += bonusStrongAlignment
	}
	if sig.ExperienceYears >= targetYears+surplusExperienceYears {
		bonus += bonusSurplusExperience
	}

	weighted := skillComponent*skillWeight +
		domainRatio*domainWeight +
		roleRatio*roleWeight +
		experienceRatio*experienceWeight

	final := clamp01(weighted + bonus - penaltyValue)

	return &types.ScoreBreakdown{
		Overall:             round2(final * 100),
		SkillComponent:      round2(skillComponent * 100),
		DomainComponent:     round2(domainRatio * 100),
		RoleComponent:       round2(roleRatio * 100),
		ExperienceComponent: round2(experienceRatio * 100),
		BonusComponent:      round2((bonus - penaltyValue) * 100),
		MustHaveRatio:       round2(mustRatio),
		NiceToHaveRatio:     round2(niceRatio),
		DomainRatio:         round2(domainRatio),
		RoleRatio:           round2(roleRatio),
		ExperienceRatio:     round2(experienceRatio),
		Penalties:           penalties,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
