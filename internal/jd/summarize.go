// Package jd summarizes job-description text into a structured requirements profile.
package jd

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/resume-screener/internal/skills"
	"github.com/jonathan/resume-screener/internal/types"
)

// Cue phrase tables for requirement classification. Matching is by substring
// on the lowercased line, so "require" also covers "required"/"requirements".
var (
	mustHaveHints = []string{"must", "mandatory", "require", "should have", "need to have", "minimum"}
	niceHints     = []string{"preferred", "nice to have", "plus", "bonus", "advantage", "good to have"}
)

// promotionCap bounds how many unclassified skills get promoted into the
// must-have (then nice-to-have) buckets when a JD lists skills without any
// priority language. Carried from the source system as a tunable constant.
const promotionCap = 5

var minYearsRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:\+|plus)?\s*(?:years?|yrs?)\s+(?:of\s+)?experience`)

// Summarize classifies the JD's skill mentions into must-have and
// nice-to-have sets, extracts domain keywords and role titles, and infers the
// minimum-years requirement. Empty text yields an empty profile, not an error;
// the only error path is the tokenizer rejecting non-text input.
func Summarize(jdText string, index *skills.Index) (*types.JDProfile, error) {
	profile := &types.JDProfile{
		MustHaveSkills:   []string{},
		NiceToHaveSkills: []string{},
		DomainKeywords:   []string{},
		RoleTitles:       []string{},
	}
	if strings.TrimSpace(jdText) == "" {
		return profile, nil
	}

	must := newOrderedSet()
	nice := newOrderedSet()
	general := newOrderedSet()

	for _, line := range strings.Split(jdText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		mentions := index.MatchCanonicals(line)
		if len(mentions) == 0 {
			continue
		}
		lowered := strings.ToLower(line)
		switch {
		case containsAnyHint(lowered, mustHaveHints):
			must.addAll(mentions)
		case containsAnyHint(lowered, niceHints):
			nice.addAll(mentions)
		default:
			general.addAll(mentions)
		}
	}

	// JDs that list skills without priority language still need a core set:
	// promote a handful of unclassified skills into must-have, and then, if
	// nothing was marked preferred either, into nice-to-have.
	if must.len() == 0 && general.len() > 0 {
		for _, skill := range general.take(promotionCap) {
			must.add(skill)
			general.remove(skill)
		}
	}
	if nice.len() == 0 && general.len() > 0 {
		nice.addAll(general.take(promotionCap))
	}

	// The sets must stay disjoint; must-have wins a tie.
	for _, skill := range must.items() {
		nice.remove(skill)
	}

	profile.MustHaveSkills = sortedCopy(must.items())
	profile.NiceToHaveSkills = sortedCopy(nice.items())

	doc, err := parseDocument(jdText)
	if err != nil {
		return nil, &TokenizeError{Message: "failed to tokenize JD text", Cause: err}
	}

	skillLower := make(map[string]struct{})
	for _, skill := range profile.RequiredSkillPool() {
		skillLower[strings.ToLower(skill)] = struct{}{}
	}

	profile.DomainKeywords = domainKeywords(doc, skillLower)
	profile.RoleTitles = roleTitles(doc, profile.RequiredSkillPool())

	if years, ok := maxYearsMentioned(jdText); ok {
		profile.MinYearsExperience = &years
	}

	return profile, nil
}

// maxYearsMentioned scans for "<N> (+|plus)? years (of)? experience" phrases
// and returns the largest value found.
func maxYearsMentioned(jdText string) (float64, bool) {
	matches := minYearsRe.FindAllStringSubmatch(strings.ToLower(jdText), -1)
	if len(matches) == 0 {
		return 0, false
	}
	best := 0.0
	for _, m := range matches {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil && v > best {
			best = v
		}
	}
	return best, true
}

func containsAnyHint(lowered string, hints []string) bool {
	for _, hint := range hints {
		if strings.Contains(lowered, hint) {
			return true
		}
	}
	return false
}

func sortedCopy(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	sort.Strings(out)
	return out
}

// orderedSet is a small insertion-ordered string set; promotion order must be
// deterministic.
type orderedSet struct {
	order []string
	seen  map[string]struct{}
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]struct{})}
}

func (s *orderedSet) add(v string) {
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.order = append(s.order, v)
}

func (s *orderedSet) addAll(vs []string) {
	for _, v := range vs {
		s.add(v)
	}
}

func (s *orderedSet) remove(v string) {
	if _, ok := s.seen[v]; !ok {
		return
	}
	delete(s.seen, v)
	for i, existing := range s.order {
		if existing == v {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *orderedSet) take(n int) []string {
	if n > len(s.order) {
		n = len(s.order)
	}
	out := make([]string, n)
	copy(out, s.order[:n])
	return out
}

func (s *orderedSet) items() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

func (s *orderedSet) len() int {
	return len(s.order)
}
