// Package sections partitions resume text into named blocks using heading-keyword detection.
package sections

import (
	"regexp"
	"sort"
	"strings"
)

// headingGroup binds a section name to the heading synonyms that introduce it.
type headingGroup struct {
	name     string
	headings []string
}

// Heading synonym tables. Order within a group is most-specific first so that
// "professional experience" is preferred over bare "experience" variants.
var headingGroups = []headingGroup{
	{"experience", []string{
		"professional experience",
		"work experience",
		"employment history",
		"job history",
		"career history",
		"experience summary",
		"experience overview",
		"relevant experience",
	}},
	{"education", []string{
		"education",
		"academic background",
		"academic qualifications",
		"education history",
	}},
	{"skills", []string{
		"skills",
		"technical skills",
		"core skills",
		"competencies",
		"proficiencies",
	}},
	{"projects", []string{
		"projects",
		"personal projects",
		"academic projects",
		"project highlights",
		"selected projects",
	}},
	{"certifications", []string{
		"certifications",
		"certification",
		"licenses",
		"professional certifications",
	}},
	{"summary", []string{
		"summary",
		"professional summary",
		"profile",
		"professional profile",
		"career summary",
		"executive summary",
	}},
	{"achievements", []string{
		"achievements",
		"accomplishments",
		"key achievements",
		"awards",
	}},
}

var headingPatterns = compileHeadingPatterns()

func compileHeadingPatterns() map[string][]*regexp.Regexp {
	patterns := make(map[string][]*regexp.Regexp, len(headingGroups))
	for _, group := range headingGroups {
		compiled := make([]*regexp.Regexp, 0, len(group.headings))
		for _, heading := range group.headings {
			compiled = append(compiled, regexp.MustCompile(`(?im)^[ \t]*`+regexp.QuoteMeta(heading)+`\b`))
		}
		patterns[group.name] = compiled
	}
	return patterns
}

type headingHit struct {
	offset int
	name   string
}

// Split returns a mapping from section name to its text block. A section's
// block runs from its heading to the next found heading (or end of document).
// When the same section name has several heading occurrences, the blocks are
// concatenated in document order. Sections with no heading are absent.
func Split(resumeText string) map[string]string {
	result := make(map[string]string)
	if resumeText == "" {
		return result
	}

	lower := strings.ToLower(resumeText)

	var hits []headingHit
	seenOffsets := make(map[int]struct{})
	for _, group := range headingGroups {
		for _, pattern := range headingPatterns[group.name] {
			for _, loc := range pattern.FindAllStringIndex(lower, -1) {
				// Heading start past any leading indent.
				start := loc[0] + indentWidth(lower[loc[0]:loc[1]])
				if _, dup := seenOffsets[start]; dup {
					continue
				}
				seenOffsets[start] = struct{}{}
				hits = append(hits, headingHit{offset: start, name: group.name})
			}
		}
	}

	if len(hits) == 0 {
		return result
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].offset < hits[j].offset })

	for i, hit := range hits {
		end := len(resumeText)
		if i+1 < len(hits) {
			end = hits[i+1].offset
		}
		block := strings.TrimSpace(resumeText[hit.offset:end])
		if block == "" {
			continue
		}
		if existing, ok := result[hit.name]; ok {
			result[hit.name] = existing + "\n\n" + block
		} else {
			result[hit.name] = block
		}
	}

	return result
}

func indentWidth(s string) int {
	for i, r := range s {
		if r != ' ' && r != '\t' {
			return i
		}
	}
	return len(s)
}
