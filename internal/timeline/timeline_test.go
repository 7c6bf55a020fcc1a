package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/types"
)

func testExtractor() *Extractor {
	return &Extractor{Now: testNow, WindowYears: DefaultWindowYears}
}

func TestComputeMetrics_SingleRange(t *testing.T) {
	section := `Acme Solutions | Software Engineer
Jan 2019 - Mar 2020
Built data pipelines.`

	m := testExtractor().ComputeMetrics(section, "")

	require.Len(t, m.Segments, 1)
	seg := m.Segments[0]
	assert.Equal(t, "2019-01", seg.Start)
	assert.Equal(t, "2020-03", seg.End)
	assert.Equal(t, 15, seg.DurationMonths)
	assert.InDelta(t, 1.25, seg.DurationYears, 0.001)
	assert.Equal(t, "month_year", seg.Source)
	assert.Equal(t, "Acme Solutions", seg.Company)

	assert.Equal(t, 15, m.TotalMonths)
	assert.InDelta(t, 1.3, m.Years, 0.001)
	assert.Empty(t, m.Gaps)
	assert.False(t, m.UsedFallback)
}

func TestComputeMetrics_NumericAndPresent(t *testing.T) {
	// Two-digit years exercise the century heuristic, and the open-ended range
	// resolves against the extractor's anchor time (June 2024).
	section := `Globex Technologies | Developer
06/20 - Present`

	m := testExtractor().ComputeMetrics(section, "")

	require.Len(t, m.Segments, 1)
	seg := m.Segments[0]
	assert.Equal(t, "2020-06", seg.Start)
	assert.Equal(t, "Present", seg.End)
	assert.Equal(t, 49, seg.DurationMonths)
	assert.Equal(t, "numeric", seg.Source)

	assert.InDelta(t, 4.1, m.Years, 0.001)
	assert.InDelta(t, 4.1, m.RecentYears, 0.001)
}

func TestComputeMetrics_GapBetweenRuns(t *testing.T) {
	section := `Acme Solutions | Software Engineer
01/2019 - 03/2020

Globex Technologies | Senior Engineer
06/2020 - 05/2024`

	m := testExtractor().ComputeMetrics(section, "")

	require.Len(t, m.Segments, 2)
	assert.Equal(t, 15+48, m.TotalMonths)
	assert.InDelta(t, 5.3, m.Years, 0.001)

	require.Len(t, m.Gaps, 1)
	assert.Equal(t, types.EmploymentGap{Months: 2, Start: "2020-04", End: "2020-05"}, m.Gaps[0])

	// Window covers June 2019 onward: 10 months of the first run plus all 48
	// of the second.
	assert.InDelta(t, 4.8, m.RecentYears, 0.001)
}

func TestComputeMetrics_AdjacentRunsMerge(t *testing.T) {
	// A one-month separation continues the run; no gap is reported and the
	// idle month is not counted.
	section := `Acme Solutions | Software Engineer
01/2020 - 03/2020

Globex Technologies | Engineer
04/2020 - 06/2020`

	m := testExtractor().ComputeMetrics(section, "")

	assert.Equal(t, 6, m.TotalMonths)
	assert.Empty(t, m.Gaps)
}

func TestComputeMetrics_OneIdleMonthNotAGap(t *testing.T) {
	section := `Acme Solutions | Software Engineer
01/2020 - 03/2020

Globex Technologies | Engineer
05/2020 - 08/2020`

	m := testExtractor().ComputeMetrics(section, "")

	// Runs stay separate (3 + 4 months) but a single idle month is below the
	// reporting threshold.
	assert.Equal(t, 7, m.TotalMonths)
	assert.Empty(t, m.Gaps)
}

func TestComputeMetrics_OverlapsCountOnce(t *testing.T) {
	section := `Acme Solutions | Software Engineer
01/2019 - 12/2019

Globex Technologies | Consultant
06/2019 - 05/2020`

	m := testExtractor().ComputeMetrics(section, "")

	require.Len(t, m.Segments, 2)
	// Jan 2019 through May 2020 as one merged run.
	assert.Equal(t, 17, m.TotalMonths)
	assert.Empty(t, m.Gaps)
}

func TestComputeMetrics_FallbackToFullText(t *testing.T) {
	full := `Career notes scattered through the document.
Acme Solutions | Software Engineer
01/2019 - 03/2020`

	m := testExtractor().ComputeMetrics("", full)

	require.Len(t, m.Segments, 1)
	assert.True(t, m.UsedFallback)
	assert.Equal(t, 15, m.TotalMonths)
}

func TestComputeMetrics_NoDates(t *testing.T) {
	m := testExtractor().ComputeMetrics("no dates here", "still no dates")

	assert.Zero(t, m.TotalMonths)
	assert.Zero(t, m.Years)
	assert.Zero(t, m.RecentYears)
	assert.Empty(t, m.Segments)
	assert.Empty(t, m.Gaps)
	assert.False(t, m.UsedFallback)
}

func TestComputeMetrics_YearOnlyRange(t *testing.T) {
	section := `Acme Solutions | Analyst
2018 - 2019`

	m := testExtractor().ComputeMetrics(section, "")

	require.Len(t, m.Segments, 1)
	seg := m.Segments[0]
	assert.Equal(t, "2018-01", seg.Start)
	assert.Equal(t, "2019-12", seg.End)
	assert.Equal(t, 24, seg.DurationMonths)
	assert.Equal(t, "year_only", seg.Source)
}

func TestComputeMetrics_DuplicateRangeAcrossGrammars(t *testing.T) {
	// The same (start, end) months recognized by two grammars count once; the
	// higher-priority grammar claims the segment.
	section := `Acme Solutions | Engineer
01/2018 - 12/2019
Globex Technologies | Engineer
2018 - 2019`

	m := testExtractor().ComputeMetrics(section, "")

	require.Len(t, m.Segments, 1)
	assert.Equal(t, "numeric", m.Segments[0].Source)
	assert.Equal(t, 24, m.TotalMonths)
}

func TestComputeMetrics_RecencyWindowRespectsConfiguredYears(t *testing.T) {
	e := &Extractor{Now: testNow, WindowYears: 2}
	section := `Acme Solutions | Engineer
01/2019 - 05/2024`

	m := e.ComputeMetrics(section, "")

	// Window covers June 2022 onward: 24 months.
	assert.InDelta(t, 2.0, m.RecentYears, 0.001)
}
