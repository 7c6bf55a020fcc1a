package signals

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/sections"
	"github.com/jonathan/resume-screener/internal/skills"
	"github.com/jonathan/resume-screener/internal/timeline"
	"github.com/jonathan/resume-screener/internal/types"
)

var testNow = time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

func testIndex(t *testing.T) *skills.Index {
	t.Helper()
	idx, err := skills.NewIndex(skills.KnowledgeBase{
		"Python":     {"python"},
		"SQL":        {"sql"},
		"Docker":     {"docker"},
		"Kubernetes": {"kubernetes", "k8s"},
		"Redis":      {"redis"},
	})
	require.NoError(t, err)
	return idx
}

func testExtractor() *timeline.Extractor {
	return &timeline.Extractor{Now: testNow, WindowYears: timeline.DefaultWindowYears}
}

const sampleResume = `Jane Smith
Backend Engineer

Professional Experience
Acme Solutions | Software Engineer
01/2019 - 03/2020
Built Python data pipelines on SQL warehouses.

Globex Technologies | Senior Engineer
06/2020 - 05/2024
Ran Docker workloads and Redis caches for the payments platform.

Education
BSc Computer Science, 2014 - 2018
`

func sampleProfile() *types.JDProfile {
	return &types.JDProfile{
		MustHaveSkills:   []string{"Python", "SQL"},
		NiceToHaveSkills: []string{"Docker"},
		DomainKeywords:   []string{"payments", "reconciliation"},
		RoleTitles:       []string{"backend engineer", "platform engineer"},
	}
}

func TestExtract(t *testing.T) {
	resumeSections := sections.Split(sampleResume)
	sig := Extract(sampleResume, resumeSections, sampleProfile(), testIndex(t), testExtractor())

	assert.ElementsMatch(t, []string{"Python", "SQL"}, sig.MatchedMustHave)
	assert.Equal(t, []string{"Docker"}, sig.MatchedNiceToHave)
	assert.Equal(t, []string{"Redis"}, sig.MatchedExtra)

	assert.Equal(t, []string{"payments"}, sig.DomainHits)
	assert.Equal(t, []string{"backend engineer"}, sig.RoleHits)

	// Timeline comes from the experience section: the education years never
	// enter the tenure math.
	require.Len(t, sig.Segments, 2)
	assert.False(t, sig.UsedFallback)
	assert.InDelta(t, 5.3, sig.ExperienceYears, 0.001)
	require.Len(t, sig.Gaps, 1)
	assert.Equal(t, 2, sig.Gaps[0].Months)
}

func TestExtract_FallbackWithoutExperienceSection(t *testing.T) {
	resume := `Jane Smith - Software Engineer
Acme Solutions | Software Engineer
01/2019 - 03/2020
Python and SQL heavy role.
`
	resumeSections := sections.Split(resume)
	sig := Extract(resume, resumeSections, sampleProfile(), testIndex(t), testExtractor())

	assert.True(t, sig.UsedFallback)
	require.Len(t, sig.Segments, 1)
	assert.InDelta(t, 1.3, sig.ExperienceYears, 0.001)
}

func TestExtract_EmptyResume(t *testing.T) {
	sig := Extract("", map[string]string{}, sampleProfile(), testIndex(t), testExtractor())

	assert.Empty(t, sig.MatchedMustHave)
	assert.Empty(t, sig.MatchedNiceToHave)
	assert.Empty(t, sig.DomainHits)
	assert.Empty(t, sig.RoleHits)
	assert.Empty(t, sig.Segments)
	assert.Zero(t, sig.ExperienceYears)
}

func TestExtract_SkillClassificationIsExclusive(t *testing.T) {
	profile := &types.JDProfile{
		MustHaveSkills:   []string{"Python"},
		NiceToHaveSkills: []string{"SQL"},
	}
	resume := "Python and SQL and Kubernetes."
	sig := Extract(resume, map[string]string{}, profile, testIndex(t), testExtractor())

	assert.Equal(t, []string{"Python"}, sig.MatchedMustHave)
	assert.Equal(t, []string{"SQL"}, sig.MatchedNiceToHave)
	assert.Equal(t, []string{"Kubernetes"}, sig.MatchedExtra)
}
