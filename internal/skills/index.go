// Package skills provides the canonical skill alias index and phrase matching over free text.
package skills

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// KnowledgeBase maps a canonical skill name to its alias surface forms.
// It is treated as read-only configuration once an Index is built from it.
type KnowledgeBase map[string][]string

// Match is a single alias occurrence found in free text.
type Match struct {
	Canonical string
	Surface   string
	Start     int
	End       int
}

// aliasPattern is one lowercased alias bound to its canonical name.
type aliasPattern struct {
	aliasLower string
	canonical  string
}

// Index is an immutable lookup from alias phrases to canonical skill names.
// It is safe for concurrent read-only use across simultaneous analyses.
type Index struct {
	canonicals []string
	aliases    map[string][]string // canonical -> aliases, original casing
	aliasMap   map[string]string   // lowercased alias -> canonical
	patterns   []aliasPattern      // sorted longest alias first
}

// NewIndex builds an Index from a knowledge base. Canonical names are ordered
// alphabetically so that duplicate aliases resolve deterministically: the
// first canonical name in that order claims the alias.
func NewIndex(kb KnowledgeBase) (*Index, error) {
	if len(kb) == 0 {
		return nil, &KnowledgeBaseError{Message: "knowledge base is empty"}
	}

	canonicals := make([]string, 0, len(kb))
	for name := range kb {
		canonicals = append(canonicals, name)
	}
	sort.Strings(canonicals)

	idx := &Index{
		canonicals: canonicals,
		aliases:    make(map[string][]string, len(kb)),
		aliasMap:   make(map[string]string),
	}

	for _, name := range canonicals {
		aliases := kb[name]
		if len(aliases) == 0 {
			return nil, &KnowledgeBaseError{
				Message: "skill has no aliases",
				Skill:   name,
			}
		}
		kept := make([]string, 0, len(aliases))
		for _, alias := range aliases {
			alias = strings.TrimSpace(alias)
			if alias == "" {
				continue
			}
			kept = append(kept, alias)
			lower := strings.ToLower(alias)
			if _, claimed := idx.aliasMap[lower]; !claimed {
				idx.aliasMap[lower] = name
				idx.patterns = append(idx.patterns, aliasPattern{aliasLower: lower, canonical: name})
			}
		}
		if len(kept) == 0 {
			return nil, &KnowledgeBaseError{
				Message: "skill has only blank aliases",
				Skill:   name,
			}
		}
		idx.aliases[name] = kept
	}

	// Longer aliases match first so "Amazon Web Services" beats "AWS" on ties,
	// then alphabetical for determinism.
	sort.SliceStable(idx.patterns, func(i, j int) bool {
		if len(idx.patterns[i].aliasLower) != len(idx.patterns[j].aliasLower) {
			return len(idx.patterns[i].aliasLower) > len(idx.patterns[j].aliasLower)
		}
		return idx.patterns[i].aliasLower < idx.patterns[j].aliasLower
	})

	return idx, nil
}

// Canonicals returns all canonical skill names in alphabetical order.
func (idx *Index) Canonicals() []string {
	out := make([]string, len(idx.canonicals))
	copy(out, idx.canonicals)
	return out
}

// Aliases returns the alias list registered for a canonical name.
func (idx *Index) Aliases(canonical string) []string {
	return idx.aliases[canonical]
}

// Canonical resolves an alias (case-insensitive) to its canonical name.
func (idx *Index) Canonical(alias string) (string, bool) {
	name, ok := idx.aliasMap[strings.ToLower(strings.TrimSpace(alias))]
	return name, ok
}

// MatchText returns every alias occurrence in text, matched case-insensitively
// on whole-phrase boundaries. Hits are deduplicated by exact (start, end) span
// and returned in document order. No classification or scoring happens here.
func (idx *Index) MatchText(text string) []Match {
	if text == "" {
		return nil
	}

	lower := strings.ToLower(text)
	seen := make(map[[2]int]struct{})
	var out []Match

	for _, p := range idx.patterns {
		from := 0
		for {
			rel := strings.Index(lower[from:], p.aliasLower)
			if rel < 0 {
				break
			}
			start := from + rel
			end := start + len(p.aliasLower)
			from = start + 1

			if !phraseBoundary(lower, start, end) {
				continue
			}
			span := [2]int{start, end}
			if _, dup := seen[span]; dup {
				continue
			}
			seen[span] = struct{}{}
			out = append(out, Match{
				Canonical: p.canonical,
				Surface:   text[start:end],
				Start:     start,
				End:       end,
			})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].End < out[j].End
	})
	return out
}

// MatchCanonicals returns the deduplicated canonical names found in text, in
// first-occurrence order.
func (idx *Index) MatchCanonicals(text string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, m := range idx.MatchText(text) {
		if _, dup := seen[m.Canonical]; dup {
			continue
		}
		seen[m.Canonical] = struct{}{}
		out = append(out, m.Canonical)
	}
	return out
}

// phraseBoundary reports whether the span [start, end) sits on whole-word
// boundaries: the adjacent runes on both sides must not be letters or digits.
func phraseBoundary(s string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:start])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	if end < len(s) {
		r, _ := utf8.DecodeRuneInString(s[end:])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
