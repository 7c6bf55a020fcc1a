package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNonExperience(t *testing.T) {
	tests := []struct {
		name string
		seg  segment
		want bool
	}{
		{
			name: "Work context with career keyword kept",
			seg: segment{
				raw:     "Jan 2019 - Mar 2020",
				context: contextLines{previous: "Software Engineer"},
			},
			want: false,
		},
		{
			name: "Inferred company keeps the segment",
			seg: segment{
				raw:     "Jan 2019 - Mar 2020",
				company: "Acme Solutions",
				context: contextLines{previous: "Acme Solutions"},
			},
			want: false,
		},
		{
			name: "Academic keyword drops the segment",
			seg: segment{
				raw:     "2018 - 2022",
				context: contextLines{previous: "Bachelor program, GPA 3.8", current: "2018 - 2022"},
			},
			want: true,
		},
		{
			name: "Semester context dropped",
			seg: segment{
				raw:     "Jan 2020 - May 2020",
				context: contextLines{current: "Semester project, Jan 2020 - May 2020"},
			},
			want: true,
		},
		{
			name: "No company and no career keyword dropped",
			seg: segment{
				raw:     "2019 - 2021",
				context: contextLines{current: "2019 - 2021"},
			},
			want: true,
		},
		{
			name: "Non-company employer dropped",
			seg: segment{
				raw:     "2019 - 2021",
				company: "State University",
				context: contextLines{previous: "State University", current: "2019 - 2021"},
			},
			want: true,
		},
		{
			name: "Empty context dropped",
			seg:  segment{},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.seg.isNonExperience())
		})
	}
}

func TestFilterSegments_FallsBackWhenAllDropped(t *testing.T) {
	academic := &segment{
		raw:     "2018 - 2022",
		context: contextLines{previous: "GPA 3.8"},
	}
	out := filterSegments([]*segment{academic})
	assert.Len(t, out, 1, "filter must not erase the only available signal")
}

func TestFilterSegments_DropsOnlyNoise(t *testing.T) {
	work := &segment{
		raw:     "Jan 2019 - Mar 2020",
		context: contextLines{previous: "Software Engineer"},
	}
	academic := &segment{
		raw:     "2018 - 2022",
		context: contextLines{previous: "GPA 3.8"},
	}
	out := filterSegments([]*segment{work, academic})
	assert.Equal(t, []*segment{work}, out)
}
