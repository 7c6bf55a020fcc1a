package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// Fixed narrative thresholds.
const (
	solidTenureYears       = 5.0
	mappedTenureYears      = 2.0
	strongProjectScore     = 40.0
	screenRecommendedBelow = 50.0
	narrativeItemLimit     = 5
)

// ComposeSummary renders the 2-3 sentence suitability summary from fixed
// templates. It is deterministic; no generation is involved.
func ComposeSummary(finalScorePct, experienceYears float64, matchedSkills, missingSkills []string, totalRequiredSkills int) string {
	expSentence := "Experience timeline could not be confidently inferred from the resume text."
	if experienceYears > 0 {
		expSentence = fmt.Sprintf("Approx. %.1f years of relevant experience identified from the timeline.", experienceYears)
	}

	var skillSentence string
	if len(matchedSkills) > 0 {
		topMatches := strings.Join(firstN(matchedSkills, 4), ", ")
		if totalRequiredSkills > 0 {
			skillSentence = fmt.Sprintf("Matches %d of %d priority skills including %s.", len(matchedSkills), totalRequiredSkills, topMatches)
		} else {
			skillSentence = fmt.Sprintf("Detected relevant skills including %s.", topMatches)
		}
	} else {
		skillSentence = "The resume does not explicitly reference the supplied priority skill set."
	}

	var gapsSentence string
	if len(missingSkills) > 0 {
		gapsSentence = fmt.Sprintf("Validate exposure to %s; overall suitability score: %d%%.",
			strings.Join(firstN(missingSkills, 3), ", "), int(math.Round(finalScorePct)))
	} else {
		gapsSentence = fmt.Sprintf("Overall suitability score: %d%%.", int(math.Round(finalScorePct)))
	}

	return strings.Join([]string{expSentence, skillSentence, gapsSentence}, " ")
}

// DeriveStrengthsRisks derives strength/risk/recommendation bullets from
// fixed threshold rules over the extracted signals.
func DeriveStrengthsRisks(
	experienceYears float64,
	matchedSkills, missingSkills []string,
	gaps []types.EmploymentGap,
	finalScorePct float64,
	sectionBreakdown map[string]types.SectionRelevance,
) (strengths, risks, recommendations []string) {
	switch {
	case experienceYears >= solidTenureYears:
		strengths = append(strengths, fmt.Sprintf("Demonstrates solid tenure (~%.1f years).", experienceYears))
	case experienceYears >= mappedTenureYears:
		strengths = append(strengths, fmt.Sprintf("Shows %.1f years of directly mapped experience.", experienceYears))
	default:
		risks = append(risks, "Limited verified experience (<2 years) detected in the timeline.")
	}

	if len(matchedSkills) > 0 {
		strengths = append(strengths, fmt.Sprintf("Hands-on exposure to %s.", strings.Join(firstN(matchedSkills, 5), ", ")))
	} else {
		risks = append(risks, "Priority technical keywords are missing or implicit.")
	}

	if len(missingSkills) > 0 {
		recommendations = append(recommendations, fmt.Sprintf("Probe recent work around %s.", strings.Join(firstN(missingSkills, 3), ", ")))
	}

	if len(gaps) > 0 {
		gap := gaps[0]
		risks = append(risks, fmt.Sprintf("Employment gap of %d months detected (%s - %s).", gap.Months, gap.Start, gap.End))
	}

	projectScore := sectionBreakdown["projects"].Score
	if projectScore >= strongProjectScore {
		strengths = append(strengths, "Projects section highlights measurable delivery aligned to the JD.")
	} else if projectScore == 0 {
		recommendations = append(recommendations, "Request project examples that demonstrate JD-aligned impact.")
	}

	if finalScorePct < screenRecommendedBelow {
		recommendations = append(recommendations, "Consider a technical screen to validate claims and potential fit.")
	}

	return uniqueTrimmed(strengths, narrativeItemLimit),
		uniqueTrimmed(risks, narrativeItemLimit),
		uniqueTrimmed(recommendations, narrativeItemLimit)
}

func firstN(items []string, n int) []string {
	if len(items) < n {
		n = len(items)
	}
	return items[:n]
}

// uniqueTrimmed trims, deduplicates case-insensitively, and caps a list.
func uniqueTrimmed(items []string, limit int) []string {
	seen := make(map[string]struct{})
	result := []string{}
	for _, item := range items {
		normalized := strings.TrimSpace(item)
		if normalized == "" {
			continue
		}
		lower := strings.ToLower(normalized)
		if _, dup := seen[lower]; dup {
			continue
		}
		seen[lower] = struct{}{}
		result = append(result, normalized)
		if len(result) >= limit {
			break
		}
	}
	return result
}
