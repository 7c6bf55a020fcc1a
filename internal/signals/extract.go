// Package signals extracts matched-skill, domain, role, and timeline signals
// from a resume against a JD profile.
package signals

import (
	"strings"

	"github.com/jonathan/resume-screener/internal/skills"
	"github.com/jonathan/resume-screener/internal/timeline"
	"github.com/jonathan/resume-screener/internal/types"
)

// Extract classifies every skill mention in the resume against the JD's
// must-have and nice-to-have sets, records which domain keywords and role
// titles appear verbatim, and reconstructs the experience timeline from the
// detected experience section (falling back to the whole resume).
func Extract(
	resumeText string,
	resumeSections map[string]string,
	profile *types.JDProfile,
	index *skills.Index,
	extractor *timeline.Extractor,
) *types.ResumeSignals {
	out := &types.ResumeSignals{
		MatchedMustHave:   []string{},
		MatchedNiceToHave: []string{},
		MatchedExtra:      []string{},
		DomainHits:        []string{},
		RoleHits:          []string{},
		Segments:          []types.ExperienceSegment{},
		Gaps:              []types.EmploymentGap{},
	}
	if resumeText == "" {
		return out
	}

	mustHave := toSet(profile.MustHaveSkills)
	niceToHave := toSet(profile.NiceToHaveSkills)

	for _, canonical := range index.MatchCanonicals(resumeText) {
		switch {
		case contains(mustHave, canonical):
			out.MatchedMustHave = appendUnique(out.MatchedMustHave, canonical)
		case contains(niceToHave, canonical):
			out.MatchedNiceToHave = appendUnique(out.MatchedNiceToHave, canonical)
		default:
			out.MatchedExtra = appendUnique(out.MatchedExtra, canonical)
		}
	}

	resumeLower := strings.ToLower(resumeText)
	out.DomainHits = verbatimHits(resumeLower, profile.DomainKeywords)
	out.RoleHits = verbatimHits(resumeLower, profile.RoleTitles)

	metrics := extractor.ComputeMetrics(resumeSections["experience"], resumeText)
	out.ExperienceYears = metrics.Years
	out.RecentYears = metrics.RecentYears
	out.Segments = metrics.Segments
	out.Gaps = metrics.Gaps
	out.UsedFallback = metrics.UsedFallback

	return out
}

// verbatimHits returns the terms whose lowercased form occurs as a substring
// of the resume, deduplicated, preserving term order and surface form.
func verbatimHits(resumeLower string, terms []string) []string {
	hits := []string{}
	seen := make(map[string]struct{})
	for _, term := range terms {
		lower := strings.ToLower(term)
		if lower == "" {
			continue
		}
		if _, dup := seen[lower]; dup {
			continue
		}
		if strings.Contains(resumeLower, lower) {
			seen[lower] = struct{}{}
			hits = append(hits, term)
		}
	}
	return hits
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}

func contains(set map[string]struct{}, item string) bool {
	_, ok := set[item]
	return ok
}

func appendUnique(list []string, item string) []string {
	for _, existing := range list {
		if existing == item {
			return list
		}
	}
	return append(list, item)
}
