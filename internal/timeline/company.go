package timeline

import (
	"math"
	"regexp"
	"strings"
	"unicode"
)

// Employer inference is a pattern-and-weight table: candidate fragments are
// scored rule by rule and the best strictly-positive candidate wins.
var (
	companyHintRe = regexp.MustCompile(`(?i)\b(technolog(?:y|ies)|solutions?|labs?|systems?|limited|ltd|inc|corp(?:oration)?|consult(?:ing|ants)?|software|services|company|co\.?|global|digital|studio|group|pvt|private|llc|llp|enterprises?|industries|networks|partners|associates|holdings?)\b`)

	jobTitleHintRe = regexp.MustCompile(`(?i)\b(engineer|developer|manager|lead|consultant|intern|architect|analyst|officer|executive|specialist|associate|director|programmer|designer|scientist|administrator|supervisor|coordinator|trainer|advisor|technician|support|assistant)\b`)

	contactRe = regexp.MustCompile(`(?i)(@|https?://|www\.|linkedin\.com|github\.com|\b\d{3}[-\s]?\d{3}[-\s]?\d{4}\b)`)

	fragmentSplitRe = regexp.MustCompile(`[|\x{2022}\x{00b7}]+`)
	connectorRe     = regexp.MustCompile(`(?i)\b(?:at|@|for)\b`)
	dashSplitRe     = regexp.MustCompile(`-{1,2}`)
	listPrefixRe    = regexp.MustCompile(`^\(?\d{1,2}\)?\.\s*`)
	multiSpaceRe    = regexp.MustCompile(`\s{2,}`)
)

const candidateTrimSet = " -–—|•·,:;()[]{}"

// Candidate scoring weights.
const (
	companyHintBonus    = 2.0
	jobTitlePenalty     = 3.0
	nonCompanyPenalty   = 4.0
	sectionNoisePenalty = 3.0
	educationPenalty    = 2.5
	colonPenalty        = 0.6
	contactPenalty      = 5.0
	capitalizationBonus = 0.8
	punctuationPenalty  = 1.0
	leadCapBonus        = 0.6
	shortPhraseBonus    = 0.4
	digitPenalty        = 0.2
	lengthBonusPerWord  = 0.1
	lengthBonusCapWords = 6
)

// Position bias: the current line is the most likely home of the employer,
// then the previous, then the next.
const (
	currentLineBias  = 0.3
	previousLineBias = 0.15
	nextLinePenalty  = 0.05
	searchOrderDecay = 0.15
)

var nonCompanyTerms = []string{
	"contact", "skills", "skill", "development", "initiative", "community",
	"india", "youth", "entrepreneurship", "education", "summary", "profile",
	"objective", "goal", "courses", "course", "curriculum", "module",
	"semester", "term", "gpa", "grade", "linkedin", "email", "gmail",
	"hotmail", "phone", "mobile", "address", "website", "portfolio",
	"university", "college", "school", "academy", "institute", "foundation",
	"chapter", "organization", "volunteer", "honors", "awards", "award",
	"activities", "seminar", "seminars", "psu", "psy", "biochemistry",
	"eligibility",
}

var sectionNoiseTerms = []string{
	"technologies used", "technology stack", "tech stack",
	"responsibilities", "summary", "skills",
}

var educationKeywords = []string{
	"university", "college", "institute", "school", "academy", "polytechnic",
	"faculty", "curriculum", "bachelor", "master", "degree", "psychology",
	"psy", "biology", "chemistry", "biochemistry", "major", "bechelors",
	"b.sc", "b.s.", "b.e", "mba", "pgdm", "diploma", "cum laude", "student",
	"semester", "gpa", "grade", "course",
}

func cleanCompanyCandidate(candidate string) string {
	candidate = strings.Trim(candidate, candidateTrimSet)
	candidate = multiSpaceRe.ReplaceAllString(candidate, " ")
	return strings.TrimSpace(candidate)
}

// scoreCompanyCandidate applies the weight table to a cleaned fragment.
// Returns -Inf for fragments too short to consider.
func scoreCompanyCandidate(candidate string) float64 {
	if len(candidate) < 3 {
		return math.Inf(-1)
	}
	words := strings.Fields(candidate)
	if len(words) == 0 {
		return math.Inf(-1)
	}

	score := 0.0
	if companyHintRe.MatchString(candidate) {
		score += companyHintBonus
	}
	if jobTitleHintRe.MatchString(candidate) {
		score -= jobTitlePenalty
	}

	lowered := strings.ToLower(candidate)
	if containsAny(lowered, nonCompanyTerms) {
		score -= nonCompanyPenalty
	}
	if containsAny(lowered, sectionNoiseTerms) {
		score -= sectionNoisePenalty
	}
	if containsAny(lowered, educationKeywords) {
		score -= educationPenalty
	}
	if strings.Contains(candidate, ":") && !strings.HasSuffix(strings.TrimSpace(candidate), ":") {
		score -= colonPenalty
	}
	if contactRe.MatchString(candidate) || strings.Contains(candidate, "@") ||
		strings.Contains(lowered, "http") || strings.Contains(candidate, "/") {
		score -= contactPenalty
	}

	upper, alpha := 0, 0
	for _, r := range candidate {
		if unicode.IsLetter(r) {
			alpha++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}
	if alpha > 0 {
		if float64(upper)/float64(alpha) >= 0.4 {
			score += capitalizationBonus
		}
	} else {
		score -= 1.0
	}

	punct := 0
	for _, r := range candidate {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r) {
			punct++
		}
	}
	if alpha > 0 && float64(punct)/math.Max(1, float64(len(candidate))) > 0.25 {
		score -= punctuationPenalty
	}

	if firstWordIsCapitalizedAlpha(words[0]) {
		score += leadCapBonus
	}
	if len(words) <= 5 {
		score += shortPhraseBonus
	}
	if strings.ContainsFunc(candidate, unicode.IsDigit) {
		score -= digitPenalty
	}

	score += math.Min(float64(len(words)), lengthBonusCapWords) * lengthBonusPerWord
	return score
}

func firstWordIsCapitalizedAlpha(word string) bool {
	for i, r := range word {
		if i == 0 && !unicode.IsUpper(r) {
			return false
		}
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return word != ""
}

func containsAny(lowered string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(lowered, term) {
			return true
		}
	}
	return false
}

// selectCompanyCandidate splits a line into fragments on pipes/bullets,
// "at/@/for" connectors, and dash runs, then scores every cleaned fragment.
func selectCompanyCandidate(text string) (string, float64) {
	if text == "" {
		return "", math.Inf(-1)
	}

	text = strings.TrimSpace(listPrefixRe.ReplaceAllString(text, ""))

	bestCandidate := ""
	bestScore := math.Inf(-1)

	fragments := fragmentSplitRe.Split(text, -1)
	if len(fragments) == 0 {
		fragments = []string{text}
	}
	for _, fragment := range fragments {
		fragment = strings.TrimSpace(fragment)
		if fragment == "" {
			continue
		}
		for _, chunk := range connectorRe.Split(fragment, -1) {
			chunk = strings.TrimSpace(chunk)
			if chunk == "" {
				continue
			}
			for _, part := range dashSplitRe.Split(chunk, -1) {
				cleaned := cleanCompanyCandidate(part)
				if cleaned == "" {
					continue
				}
				if score := scoreCompanyCandidate(cleaned); score > bestScore {
					bestCandidate = cleaned
					bestScore = score
				}
			}
		}
	}

	return bestCandidate, bestScore
}

// guessCompanyFromContext picks the best-scoring fragment across the current
// line (with the matched date text masked out), the previous line, and the
// next line, applying the position bias. A candidate is accepted only when its
// adjusted score is strictly positive.
func guessCompanyFromContext(ctx contextLines, matchText string) string {
	lines := []struct {
		text string
		bias float64
	}{
		{ctx.current, currentLineBias},
		{ctx.previous, previousLineBias},
		{ctx.next, -nextLinePenalty},
	}

	bestCandidate := ""
	bestScore := math.Inf(-1)

	for i, line := range lines {
		if strings.TrimSpace(line.text) == "" {
			continue
		}

		candidateText := line.text
		if i == 0 && matchText != "" {
			maskRe, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(matchText))
			if err == nil {
				candidateText = maskRe.ReplaceAllString(candidateText, " ")
			}
		}

		candidate, score := selectCompanyCandidate(candidateText)
		if candidate == "" {
			continue
		}

		adjusted := score - searchOrderDecay*float64(i) + line.bias
		if adjusted > bestScore {
			bestScore = adjusted
			bestCandidate = candidate
		}
	}

	if bestScore > 0 {
		return bestCandidate
	}
	return ""
}
