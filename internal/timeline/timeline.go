package timeline

import (
	"math"
	"sort"

	"github.com/jonathan/resume-screener/internal/types"
)

// mergeToleranceMonths is the adjacency tolerance: a segment starting within
// one month of the current run's end continues the run. A separation of two
// or more months becomes a reportable gap. The discontinuity at exactly one
// month is intentional; downstream consumers depend on this boundary.
const mergeToleranceMonths = 1

// minReportableGapMonths is the smallest idle period reported as a gap.
const minReportableGapMonths = 2

// Metrics is the aggregated timeline extracted from a resume.
type Metrics struct {
	Years        float64
	TotalMonths  int
	RecentYears  float64
	Segments     []types.ExperienceSegment
	Gaps         []types.EmploymentGap
	UsedFallback bool
}

// run is a merged span of contiguous or overlapping segments.
type run struct {
	start int // month index
	end   int // month index
}

// ComputeMetrics builds the experience timeline for a resume. The section
// text is tried first; when it yields no segments the fallback text (the
// whole resume) is tried and UsedFallback is set. Missing or unparseable
// input degrades to zero tenure, never an error.
func (e *Extractor) ComputeMetrics(sectionText, fallbackText string) Metrics {
	segments := e.extractSegments(sectionText)
	usedFallback := false

	if len(segments) == 0 && fallbackText != "" {
		if fallbackSegments := e.extractSegments(fallbackText); len(fallbackSegments) > 0 {
			segments = fallbackSegments
			usedFallback = true
		}
	}

	if len(segments) == 0 {
		return Metrics{
			Segments:     []types.ExperienceSegment{},
			Gaps:         []types.EmploymentGap{},
			UsedFallback: usedFallback,
		}
	}

	sort.SliceStable(segments, func(i, j int) bool {
		si, sj := monthIndex(segments[i].start), monthIndex(segments[j].start)
		if si != sj {
			return si < sj
		}
		return monthIndex(segments[i].end) < monthIndex(segments[j].end)
	})

	runs := mergeRuns(segments)
	totalMonths := 0
	for _, r := range runs {
		totalMonths += r.end - r.start + 1
	}

	payload := make([]types.ExperienceSegment, 0, len(segments))
	for _, seg := range segments {
		end := formatYearMonth(seg.end)
		if seg.present {
			end = "Present"
		}
		payload = append(payload, types.ExperienceSegment{
			Label:          seg.raw,
			Start:          formatYearMonth(seg.start),
			End:            end,
			DurationMonths: seg.months,
			DurationYears:  round2(float64(seg.months) / 12.0),
			Source:         seg.source,
			Company:        seg.company,
		})
	}

	return Metrics{
		Years:        round1(float64(totalMonths) / 12.0),
		TotalMonths:  totalMonths,
		RecentYears:  e.recentYears(segments),
		Segments:     payload,
		Gaps:         gapsBetweenRuns(runs),
		UsedFallback: usedFallback,
	}
}

// mergeRuns merges sorted segments into disjoint runs using the one-month
// adjacency tolerance.
func mergeRuns(segments []*segment) []run {
	var runs []run
	current := run{start: monthIndex(segments[0].start), end: monthIndex(segments[0].end)}

	for _, seg := range segments[1:] {
		start, end := monthIndex(seg.start), monthIndex(seg.end)
		if start <= current.end+mergeToleranceMonths {
			if end > current.end {
				current.end = end
			}
		} else {
			runs = append(runs, current)
			current = run{start: start, end: end}
		}
	}

	return append(runs, current)
}

// gapsBetweenRuns reports the idle months between consecutive merged runs.
// The separation between a run ending at month E and the next starting at
// month S is S-E-1 months; anything under minReportableGapMonths is ignored.
func gapsBetweenRuns(runs []run) []types.EmploymentGap {
	gaps := []types.EmploymentGap{}
	for i := 1; i < len(runs); i++ {
		months := runs[i].start - runs[i-1].end - 1
		if months < minReportableGapMonths {
			continue
		}
		gaps = append(gaps, types.EmploymentGap{
			Months: months,
			Start:  formatYearMonth(indexToDate(runs[i-1].end + 1)),
			End:    formatYearMonth(indexToDate(runs[i].start - 1)),
		})
	}
	return gaps
}

// recentYears sums each segment's overlap with the trailing recency window,
// counting overlapping months proportionally. Overlapping segments are
// counted as-is, matching total-tenure semantics only after merging; recency
// deliberately works on raw segments so parallel engagements both count.
func (e *Extractor) recentYears(segments []*segment) float64 {
	window := e.WindowYears
	if window <= 0 {
		window = DefaultWindowYears
	}
	cutoff := (e.Now.Year()-window)*12 + int(e.Now.Month())

	totalMonths := 0
	for _, seg := range segments {
		endIdx := monthIndex(seg.end)
		if seg.present {
			endIdx = monthIndex(e.Now)
		}
		if endIdx < cutoff {
			continue
		}
		startIdx := monthIndex(seg.start)
		if startIdx < cutoff {
			startIdx = cutoff
		}
		if months := endIdx - startIdx + 1; months > 0 {
			totalMonths += months
		}
	}

	return round1(float64(totalMonths) / 12.0)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
