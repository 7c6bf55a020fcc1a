package timeline

import (
	"regexp"
	"sort"
	"strings"
	"time"
)

// Extractor recognizes experience date ranges in text. Now anchors the century
// heuristic, "present" resolution, and the recency window; WindowYears is the
// trailing period that counts as recent experience.
type Extractor struct {
	Now         time.Time
	WindowYears int
}

// DefaultWindowYears is the default recency window.
const DefaultWindowYears = 5

// NewExtractor returns an Extractor anchored at the current time with the
// default recency window.
func NewExtractor() *Extractor {
	return &Extractor{Now: time.Now(), WindowYears: DefaultWindowYears}
}

// segment is a recognized date range before payload conversion.
type segment struct {
	start   time.Time
	end     time.Time
	present bool
	source  string
	raw     string
	months  int
	company string
	context contextLines
}

// contextLines captures up to two lines around the line a date matched on.
type contextLines struct {
	previous2 string
	previous  string
	current   string
	next      string
	next2     string
}

type grammar struct {
	re     *regexp.Regexp
	source string
}

// extractSegments runs all three date grammars over a sanitized copy of text,
// dedupes by (start-month, end-month) across grammars in priority order,
// infers employers from surrounding lines, and applies the relevance filter.
func (e *Extractor) extractSegments(text string) []*segment {
	if text == "" {
		return nil
	}

	sanitized := sanitizeText(text)
	lines := strings.Split(sanitized, "\n")
	lineStarts := make([]int, len(lines))
	pos := 0
	for i, line := range lines {
		lineStarts[i] = pos
		pos += len(line) + 1
	}

	lineIndexFor := func(offset int) int {
		idx := sort.Search(len(lineStarts), func(i int) bool { return lineStarts[i] > offset }) - 1
		if idx < 0 {
			idx = 0
		}
		if idx > len(lines)-1 {
			idx = len(lines) - 1
		}
		return idx
	}

	grammars := []grammar{
		{numericRangeRe, sourceNumeric},
		{monthYearRangeRe, sourceMonthYear},
		{yearOnlyRangeRe, sourceYearOnly},
	}

	var segments []*segment
	seen := make(map[[2]int]struct{})

	for _, g := range grammars {
		for _, loc := range g.re.FindAllStringSubmatchIndex(sanitized, -1) {
			group := func(name string) string {
				i := g.re.SubexpIndex(name)
				if i < 0 || loc[2*i] < 0 {
					return ""
				}
				return sanitized[loc[2*i]:loc[2*i+1]]
			}

			startMonthToken := group("startMonth")
			if startMonthToken == "" {
				startMonthToken = group("startMonthNum")
			}
			endMonthToken := group("endMonth")
			if endMonthToken == "" {
				endMonthToken = group("endMonthNum")
			}

			start, _, ok := composeDate(group("startYear"), startMonthToken, false, "", e.Now)
			if !ok {
				continue
			}
			end, present, ok := composeDate(group("endYear"), endMonthToken, true, group("endMarker"), e.Now)
			if !ok || end.Before(start) {
				continue
			}

			key := [2]int{monthIndex(start), monthIndex(end)}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			months := monthsSpan(start, end)
			if months <= 0 {
				continue
			}

			matchText := sanitized[loc[0]:loc[1]]
			lineIdx := lineIndexFor(loc[0])
			ctx := contextLines{current: lines[lineIdx]}
			if lineIdx > 0 {
				ctx.previous = lines[lineIdx-1]
			}
			if lineIdx > 1 {
				ctx.previous2 = lines[lineIdx-2]
			}
			if lineIdx+1 < len(lines) {
				ctx.next = lines[lineIdx+1]
			}
			if lineIdx+2 < len(lines) {
				ctx.next2 = lines[lineIdx+2]
			}

			seg := &segment{
				start:   start,
				end:     end,
				present: present,
				source:  g.source,
				raw:     strings.TrimSpace(matchText),
				months:  months,
				context: ctx,
			}
			seg.company = guessCompanyFromContext(ctx, matchText)
			segments = append(segments, seg)
		}
	}

	return filterSegments(segments)
}
