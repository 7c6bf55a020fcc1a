package timeline

import (
	"regexp"
	"strings"
)

// Relevance filter keyword tables. A segment whose context looks academic or
// biographical rather than professional is dropped after extraction.
var nonExperienceKeywords = []string{
	"curriculum vitae", "course syllabus", "course outline", "gpa",
	"semester", "term", "module", "lab", "laboratory", "assignment",
	"hobby", "hobbies", "interest", "interests", "award", "awards",
	"honor", "honors", "honour", "honours",
}

var careerKeywords = []string{
	"manager", "developer", "engineer", "consultant", "intern", "assistant",
	"specialist", "lead", "supervisor", "coordinator", "director", "officer",
	"analyst", "advisor", "recruiter", "human resources", "hr",
	"administrator", "trainer", "associate", "executive", "agent",
	"technician",
}

var nonExperiencePatterns = compileKeywordPatterns(nonExperienceKeywords)

func compileKeywordPatterns(keywords []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(keywords))
	for _, kw := range keywords {
		patterns = append(patterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(kw)+`\b`))
	}
	return patterns
}

// contextBlob joins a segment's raw text, inferred company, and surrounding
// lines into one lowercased string for keyword checks.
func (s *segment) contextBlob() string {
	parts := []string{
		s.raw,
		s.company,
		s.context.previous,
		s.context.previous2,
		s.context.current,
		s.context.next,
		s.context.next2,
	}
	var kept []string
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.ToLower(strings.Join(kept, " "))
}

// isNonExperience reports whether a segment should be dropped as academic or
// otherwise non-work content.
func (s *segment) isNonExperience() bool {
	blob := s.contextBlob()
	if blob == "" {
		return true
	}

	for _, pattern := range nonExperiencePatterns {
		if pattern.MatchString(blob) {
			return true
		}
	}

	company := strings.ToLower(s.company)
	if company != "" && containsAny(company, nonCompanyTerms) {
		return true
	}

	if company == "" && !containsAny(blob, careerKeywords) {
		return true
	}

	if strings.Contains(blob, "honor roll") ||
		(strings.Contains(blob, "dean") && strings.Contains(blob, "list")) {
		return true
	}

	return false
}

// filterSegments drops non-experience segments. When that would remove every
// segment, the unfiltered list is returned instead so over-eager heuristics
// cannot erase the only available signal.
func filterSegments(segments []*segment) []*segment {
	filtered := make([]*segment, 0, len(segments))
	for _, seg := range segments {
		if !seg.isNonExperience() {
			filtered = append(filtered, seg)
		}
	}
	if len(filtered) > 0 {
		return filtered
	}
	return segments
}
