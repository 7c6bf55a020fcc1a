// Package timeline reconstructs work-experience timelines from resume text:
// date-range recognition, employer inference, interval merging, gap detection,
// and recency-weighted tenure.
package timeline

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// The three date grammars run in this priority order; duplicate
// (start-month, end-month) pairs across grammars keep the first hit.
const (
	sourceNumeric   = "numeric"
	sourceMonthYear = "month_year"
	sourceYearOnly  = "year_only"
)

const (
	monthPattern = `(?:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|` +
		`Aug(?:ust)?|Sep(?:t|tember)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)`
	separatorPattern = `\s*(?:-+|to|through|till|until|&|~)\s*`
	presentPattern   = `(?:Present|Current|Now|Today|Till\s*Date|Till\s*Now|Till\s*Today)`
)

var (
	numericRangeRe = regexp.MustCompile(
		`(?i)(?P<startMonthNum>\d{1,2})\s*[/.\-]\s*(?P<startYear>\d{2,4})` + separatorPattern +
			`(?:(?P<endMonthNum>\d{1,2})\s*[/.\-]\s*(?P<endYear>\d{2,4})|(?P<endMarker>` + presentPattern + `))`)

	monthYearRangeRe = regexp.MustCompile(
		`(?i)(?P<startMonth>` + monthPattern + `)[\s.,'-]*(?P<startYear>\d{2,4})` + separatorPattern +
			`(?:(?P<endMonth>` + monthPattern + `)[\s.,'-]*(?P<endYear>\d{2,4})|(?P<endMarker>` + presentPattern + `))`)

	yearOnlyRangeRe = regexp.MustCompile(
		`(?i)\b(?P<startYear>(?:19|20)\d{2})\b` + separatorPattern +
			`(?:(?P<endYear>(?:19|20)\d{2})|(?P<endMarker>` + presentPattern + `))`)
)

var monthLookup = map[string]int{
	"jan": 1, "january": 1,
	"feb": 2, "february": 2,
	"mar": 3, "march": 3,
	"apr": 4, "april": 4,
	"may": 5,
	"jun": 6, "june": 6,
	"jul": 7, "july": 7,
	"aug": 8, "august": 8,
	"sep": 9, "september": 9,
	"oct": 10, "october": 10,
	"nov": 11, "november": 11,
	"dec": 12, "december": 12,
}

var presentTerms = map[string]struct{}{
	"present":    {},
	"current":    {},
	"now":        {},
	"today":      {},
	"tilldate":   {},
	"tillnow":    {},
	"tilltoday":  {},
	"till-date":  {},
	"till-now":   {},
	"till-today": {},
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// earliestValidYear bounds date recognition; anything older is noise.
const earliestValidYear = 1950

// monthIndex converts a date to a month-granularity ordinal.
func monthIndex(t time.Time) int {
	return t.Year()*12 + int(t.Month())
}

// indexToDate converts a month ordinal back to the first day of that month.
func indexToDate(idx int) time.Time {
	year := idx / 12
	month := idx % 12
	if month == 0 {
		year--
		month = 12
	}
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
}

// monthsSpan is the inclusive month count between two dates.
func monthsSpan(start, end time.Time) int {
	return monthIndex(end) - monthIndex(start) + 1
}

func formatYearMonth(t time.Time) string {
	return t.Format("2006-01")
}

// monthTokenToInt resolves a numeric or named month token. Returns 0 when the
// token is absent or unrecognized.
func monthTokenToInt(token string) int {
	clean := strings.ToLower(strings.TrimSpace(token))
	clean = strings.NewReplacer("�", "", "'", "", ".", "").Replace(clean)
	clean = strings.Replace(clean, "sept", "sep", 1)
	if clean == "" {
		return 0
	}
	if v, err := strconv.Atoi(clean); err == nil {
		if v >= 1 && v <= 12 {
			return v
		}
		return 0
	}
	return monthLookup[clean]
}

// normalizeYear parses a year token, expanding two-digit years with a century
// heuristic anchored to now: pick the current century unless that lands past
// next year, in which case roll back one century. Out-of-range years fail.
func normalizeYear(token string, now time.Time) (int, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, false
	}
	year, err := strconv.Atoi(token)
	if err != nil {
		return 0, false
	}
	if year < 100 {
		baseCentury := (now.Year() / 100) * 100
		candidate := baseCentury + year
		if candidate > now.Year()+1 {
			candidate -= 100
		}
		year = candidate
	}
	if year < earliestValidYear || year > now.Year()+1 {
		return 0, false
	}
	return year, true
}

// composeDate builds a month-granularity date from year/month tokens, or from
// an open-ended marker ("present"/"current"/...), which resolves to the first
// day of the current month. A missing month defaults to January for a start
// date and December for an end date.
func composeDate(yearToken, monthToken string, isEnd bool, marker string, now time.Time) (t time.Time, present, ok bool) {
	if marker != "" {
		compact := whitespaceRe.ReplaceAllString(strings.ToLower(marker), "")
		if _, found := presentTerms[compact]; found {
			return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC), true, true
		}
	}

	year, ok := normalizeYear(yearToken, now)
	if !ok {
		return time.Time{}, false, false
	}

	month := monthTokenToInt(monthToken)
	if month == 0 {
		if isEnd {
			month = 12
		} else {
			month = 1
		}
	}

	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC), false, true
}

// sanitizeText normalizes the dash variants, non-breaking spaces, and stray
// glyphs that break the date grammars on real resumes.
func sanitizeText(text string) string {
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.NewReplacer(
		"‐", "-",
		"‑", "-",
		"‒", "-",
		"–", "-",
		"—", "-",
		"―", "-",
		"−", "-",
		" ", " ",
		"�", " ",
		"'", " ",
	).Replace(text)
	return text
}
