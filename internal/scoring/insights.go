package scoring

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-screener/internal/skills"
	"github.com/jonathan/resume-screener/internal/types"
)

const (
	topSkillMentionCount   = 5
	notableSentenceLimit   = 5
	minNotableSentenceLen  = 40
	educationHighlightMax  = 3
	sectionBulletTrimChars = " -\t•‣●◦"
	minBulletLength        = 4
	minCountedAliasLength  = 3
)

var (
	deliveryVerbRe = regexp.MustCompile(`\b(designed|built|developed|implemented|led|architected|deployed|optimized|mentored)\b`)
	degreeRe       = regexp.MustCompile(`(?i)(b\.tech|bachelor|b\.e|bsc|b\.sc|master|m\.tech|m\.s|msc|mba|ph\.d|diploma)`)
	contactRe      = regexp.MustCompile(`(?i)(@|https?://|www\.|linkedin\.com|github\.com|\b\d{3}[-\s]?\d{3}[-\s]?\d{4}\b)`)
)

var certificationKeywords = []string{
	"cert", "license", "credential", "foundation", "practitioner", "exam",
	"accredit", "pmp", "scrum", "safe", "azure", "aws", "gcp", "oracle",
	"sap", "microsoft", "google", "cisco", "salesforce", "itil",
	"six sigma", "black belt", "green belt", "eligibility",
}

// SkillRelevance measures what fraction of the required skills are mentioned
// in a text block, and returns the matched canonical names.
func SkillRelevance(text string, requiredSkills []string, index *skills.Index) (float64, []string) {
	if len(requiredSkills) == 0 || text == "" {
		return 0, []string{}
	}

	required := make(map[string]struct{}, len(requiredSkills))
	for _, skill := range requiredSkills {
		required[skill] = struct{}{}
	}

	matched := []string{}
	for _, canonical := range index.MatchCanonicals(text) {
		if _, ok := required[canonical]; ok {
			matched = append(matched, canonical)
		}
	}

	return float64(len(matched)) / float64(len(requiredSkills)), matched
}

// SectionSkillBreakdown computes per-section JD-skill relevance. Sections with
// no signal are omitted.
func SectionSkillBreakdown(resumeSections map[string]string, requiredSkills []string, index *skills.Index) map[string]types.SectionRelevance {
	breakdown := make(map[string]types.SectionRelevance)
	for name, text := range resumeSections {
		if strings.TrimSpace(text) == "" {
			continue
		}
		score, matches := SkillRelevance(text, requiredSkills, index)
		if score <= 0 && len(matches) == 0 {
			continue
		}
		breakdown[name] = types.SectionRelevance{
			Score:         math.Round(score*1000) / 10,
			MatchedSkills: matches,
		}
	}
	return breakdown
}

// TopSkillMentions counts alias occurrences per canonical skill across the
// resume and returns the most-mentioned names.
func TopSkillMentions(resumeText string, index *skills.Index) []string {
	if resumeText == "" {
		return []string{}
	}
	textLower := strings.ToLower(resumeText)

	counts := make(map[string]int)
	for _, canonical := range index.Canonicals() {
		for _, alias := range index.Aliases(canonical) {
			aliasLower := strings.ToLower(alias)
			if len(aliasLower) < minCountedAliasLength {
				continue
			}
			counts[canonical] += strings.Count(textLower, aliasLower)
		}
	}

	type mention struct {
		name  string
		count int
	}
	mentions := make([]mention, 0, len(counts))
	for name, count := range counts {
		if count > 0 {
			mentions = append(mentions, mention{name, count})
		}
	}
	sort.Slice(mentions, func(i, j int) bool {
		if mentions[i].count != mentions[j].count {
			return mentions[i].count > mentions[j].count
		}
		return mentions[i].name < mentions[j].name
	})

	top := []string{}
	for i := 0; i < len(mentions) && i < topSkillMentionCount; i++ {
		top = append(top, mentions[i].name)
	}
	return top
}

// NotableSentences picks sentences that mention matched skills or delivery
// verbs; the raw material for deep-mode highlights.
func NotableSentences(resumeText string, matchedSkills []string) []string {
	if resumeText == "" || len(matchedSkills) == 0 {
		return []string{}
	}

	matchedLower := make([]string, 0, len(matchedSkills))
	for _, skill := range matchedSkills {
		matchedLower = append(matchedLower, strings.ToLower(skill))
	}

	highlights := []string{}
	for _, sentence := range splitSentences(resumeText) {
		candidate := strings.TrimSpace(sentence)
		if len(candidate) < minNotableSentenceLen {
			continue
		}
		lower := strings.ToLower(candidate)
		if containsAnyTerm(lower, matchedLower) || deliveryVerbRe.MatchString(lower) {
			highlights = append(highlights, candidate)
		}
		if len(highlights) >= notableSentenceLimit {
			break
		}
	}
	return highlights
}

// SectionBullets extracts the leading deduplicated bullet lines of a section.
func SectionBullets(sectionText string, limit int) []string {
	if sectionText == "" {
		return []string{}
	}

	unique := []string{}
	seen := make(map[string]struct{})
	for _, line := range strings.Split(sectionText, "\n") {
		normalized := strings.Trim(strings.TrimSpace(line), sectionBulletTrimChars)
		if len(normalized) < minBulletLength {
			continue
		}
		lower := strings.ToLower(normalized)
		if _, dup := seen[lower]; dup {
			continue
		}
		seen[lower] = struct{}{}
		unique = append(unique, normalized)
		if len(unique) >= limit {
			break
		}
	}
	return unique
}

// EducationHighlights pulls up to three degree-bearing lines from the
// education section.
func EducationHighlights(educationText string) []string {
	if educationText == "" {
		return []string{}
	}
	highlights := []string{}
	for _, line := range strings.Split(educationText, "\n") {
		cleaned := strings.Trim(strings.TrimSpace(line), sectionBulletTrimChars)
		if cleaned == "" {
			continue
		}
		if degreeRe.MatchString(cleaned) {
			highlights = append(highlights, cleaned)
		}
		if len(highlights) >= educationHighlightMax {
			break
		}
	}
	return highlights
}

// CertificationHighlights filters the certification section's bullets down to
// lines that actually look like credentials.
func CertificationHighlights(certificationText string, limit int) []string {
	if certificationText == "" {
		return []string{}
	}

	filtered := []string{}
	for _, line := range SectionBullets(certificationText, limit*3) {
		normalized := strings.Trim(line, ":- ")
		if normalized == "" || contactRe.MatchString(normalized) {
			continue
		}
		lower := strings.ToLower(normalized)
		if strings.Contains(lower, "certificate") || strings.Contains(lower, "certification") || strings.Contains(lower, "certified") {
			filtered = append(filtered, normalized)
			continue
		}
		if containsAnyTerm(lower, certificationKeywords) {
			filtered = append(filtered, normalized)
		}
	}
	return uniqueTrimmed(filtered, limit)
}

// splitSentences breaks text on sentence-ending punctuation followed by
// whitespace, and on newlines, keeping the punctuation with the sentence.
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			sentences = append(sentences, current.String())
			current.Reset()
		}
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\n' {
			flush()
			continue
		}
		current.WriteRune(r)
		if (r == '.' || r == '!' || r == '?') && i+1 < len(runes) &&
			(runes[i+1] == ' ' || runes[i+1] == '\t') {
			flush()
		}
	}
	flush()

	return sentences
}

func containsAnyTerm(lower string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
