package jd

import (
	"strings"

	"github.com/jdkato/prose/v2"
)

// domainKeywordCap bounds the number of domain keywords carried on a profile.
const domainKeywordCap = 15

// minKeywordLength drops short noise tokens before they become keywords.
const minKeywordLength = 4

// Generic JD vocabulary that never makes a useful domain keyword.
var domainStopwords = map[string]struct{}{
	"the": {}, "and": {}, "with": {}, "for": {}, "in": {}, "of": {}, "to": {},
	"on": {}, "a": {}, "an": {}, "by": {}, "or": {}, "as": {}, "per": {},
	"across": {}, "using": {}, "ability": {}, "experience": {},
	"including": {}, "responsible": {}, "responsibilities": {}, "skills": {},
	"skill": {}, "development": {}, "initiative": {}, "community": {},
	"india": {}, "youth": {}, "entrepreneurship": {}, "requirements": {},
	"manager": {}, "management": {}, "team": {}, "teams": {},
	"stakeholder": {}, "stakeholders": {}, "lead": {}, "leading": {},
	"deliver": {}, "delivery": {}, "ensure": {}, "ensuring": {}, "work": {},
	"working": {}, "drive": {}, "driving": {}, "support": {},
	"supporting": {},
}

// Role-indicator words used both for noun-phrase role titles and the
// skill-name fallback.
var roleKeywords = []string{"manager", "lead", "head", "director", "specialist", "consultant", "program", "project"}

// parseDocument tokenizes and POS-tags text. Entity extraction is disabled;
// only token tags are needed.
func parseDocument(text string) (*prose.Document, error) {
	return prose.NewDocument(text, prose.WithExtraction(false))
}

func isNounTag(tag string) bool {
	return strings.HasPrefix(tag, "NN")
}

// domainKeywords extracts noun and proper-noun terms from the tagged JD,
// excluding stopwords and terms already matched as skills. Terms are
// deduplicated by lowercased form but keep their surface spelling.
func domainKeywords(doc *prose.Document, skillLower map[string]struct{}) []string {
	keywords := []string{}
	seen := make(map[string]struct{})

	for _, tok := range doc.Tokens() {
		if !isNounTag(tok.Tag) {
			continue
		}
		lemma := strings.ToLower(tok.Text)
		if len(lemma) < minKeywordLength {
			continue
		}
		if _, stop := domainStopwords[lemma]; stop {
			continue
		}
		if _, isSkill := skillLower[lemma]; isSkill {
			continue
		}
		if _, dup := seen[lemma]; dup {
			continue
		}
		seen[lemma] = struct{}{}
		keywords = append(keywords, strings.TrimSpace(tok.Text))
		if len(keywords) >= domainKeywordCap {
			break
		}
	}

	return keywords
}

// roleTitles collects noun phrases that contain a role-indicator keyword as a
// standalone word. When the JD has none, skill names containing a role
// keyword stand in so the role component is never silently empty.
func roleTitles(doc *prose.Document, requiredSkills []string) []string {
	titles := newOrderedSet()

	for _, chunk := range nounPhrases(doc) {
		words := strings.Fields(strings.ToLower(chunk))
		if containsRoleWord(words) {
			titles.add(chunk)
		}
	}

	if titles.len() == 0 {
		for _, skill := range requiredSkills {
			lower := strings.ToLower(skill)
			for _, kw := range roleKeywords {
				if strings.Contains(lower, kw) {
					titles.add(skill)
					break
				}
			}
		}
	}

	return sortedCopy(titles.items())
}

func containsRoleWord(words []string) bool {
	for _, word := range words {
		for _, kw := range roleKeywords {
			if word == kw {
				return true
			}
		}
	}
	return false
}

// nounPhrases builds simple noun phrases from the tagged token stream: maximal
// runs of determiners, adjectives, and nouns that end in a noun.
func nounPhrases(doc *prose.Document) []string {
	var phrases []string
	var current []prose.Token

	flush := func() {
		// Trim non-noun tail, then require a noun head.
		for len(current) > 0 && !isNounTag(current[len(current)-1].Tag) {
			current = current[:len(current)-1]
		}
		if len(current) > 0 {
			hasNoun := false
			words := make([]string, 0, len(current))
			for _, tok := range current {
				words = append(words, tok.Text)
				if isNounTag(tok.Tag) {
					hasNoun = true
				}
			}
			if hasNoun {
				phrases = append(phrases, strings.Join(words, " "))
			}
		}
		current = nil
	}

	for _, tok := range doc.Tokens() {
		if isNounTag(tok.Tag) || strings.HasPrefix(tok.Tag, "JJ") || tok.Tag == "DT" {
			current = append(current, tok)
			continue
		}
		flush()
	}
	flush()

	return phrases
}
