package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKB() KnowledgeBase {
	return KnowledgeBase{
		"Python":              {"python", "python3", "py"},
		"Go":                  {"go", "golang"},
		"Amazon Web Services": {"aws", "amazon web services"},
		"Node.js":             {"node.js", "nodejs", "node js"},
	}
}

func TestNewIndex(t *testing.T) {
	idx, err := NewIndex(testKB())
	require.NoError(t, err)

	assert.Equal(t, []string{"Amazon Web Services", "Go", "Node.js", "Python"}, idx.Canonicals())
	assert.Equal(t, []string{"python", "python3", "py"}, idx.Aliases("Python"))
}

func TestNewIndex_Invalid(t *testing.T) {
	tests := []struct {
		name string
		kb   KnowledgeBase
	}{
		{"Empty knowledge base", KnowledgeBase{}},
		{"Nil knowledge base", nil},
		{"Skill with no aliases", KnowledgeBase{"Python": {}}},
		{"Skill with only blank aliases", KnowledgeBase{"Python": {"", "  "}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewIndex(tt.kb)
			require.Error(t, err)
			var kbErr *KnowledgeBaseError
			assert.ErrorAs(t, err, &kbErr)
		})
	}
}

func TestCanonical(t *testing.T) {
	idx, err := NewIndex(testKB())
	require.NoError(t, err)

	tests := []struct {
		alias     string
		canonical string
		found     bool
	}{
		{"python", "Python", true},
		{"PYTHON3", "Python", true},
		{"  golang  ", "Go", true},
		{"aws", "Amazon Web Services", true},
		{"rust", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.alias, func(t *testing.T) {
			canonical, found := idx.Canonical(tt.alias)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.canonical, canonical)
		})
	}
}

func TestMatchCanonicals(t *testing.T) {
	idx, err := NewIndex(testKB())
	require.NoError(t, err)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "Case-insensitive multi-skill match",
			text: "Built services in Golang and Python on AWS.",
			want: []string{"Go", "Python", "Amazon Web Services"},
		},
		{
			name: "Whole-word boundaries respected",
			text: "pythonic gopher awsome",
			want: nil,
		},
		{
			name: "Duplicate mentions collapse to one canonical",
			text: "python, python3 and py everywhere",
			want: []string{"Python"},
		},
		{
			name: "Multi-word alias matches as a phrase",
			text: "5 years on Amazon Web Services.",
			want: []string{"Amazon Web Services"},
		},
		{
			name: "Dotted alias matches",
			text: "Backend in Node.js.",
			want: []string{"Node.js"},
		},
		{
			name: "Empty text",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, idx.MatchCanonicals(tt.text))
		})
	}
}

func TestMatchCanonicals_Idempotent(t *testing.T) {
	idx, err := NewIndex(testKB())
	require.NoError(t, err)

	text := "Golang, Python, AWS, Node.js and more Golang."
	first := idx.MatchCanonicals(text)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, idx.MatchCanonicals(text))
	}
}

func TestMatchText_SpansAndOrder(t *testing.T) {
	idx, err := NewIndex(testKB())
	require.NoError(t, err)

	matches := idx.MatchText("Python and golang")
	require.Len(t, matches, 2)

	assert.Equal(t, "Python", matches[0].Canonical)
	assert.Equal(t, "Python", matches[0].Surface)
	assert.Equal(t, 0, matches[0].Start)
	assert.Equal(t, 6, matches[0].End)

	assert.Equal(t, "Go", matches[1].Canonical)
	assert.Equal(t, "golang", matches[1].Surface)
}

func TestMatchText_LongestAliasWins(t *testing.T) {
	// "amazon web services" and "aws" both map to the same canonical; a text
	// containing the long form must match it as one span, not partial hits.
	idx, err := NewIndex(testKB())
	require.NoError(t, err)

	matches := idx.MatchText("amazon web services")
	require.Len(t, matches, 1)
	assert.Equal(t, "Amazon Web Services", matches[0].Canonical)
	assert.Equal(t, 0, matches[0].Start)
	assert.Equal(t, len("amazon web services"), matches[0].End)
}

func TestNewIndex_DuplicateAliasResolution(t *testing.T) {
	// The alphabetically first canonical claims a contested alias.
	kb := KnowledgeBase{
		"Zulu":  {"shared"},
		"Alpha": {"shared"},
	}
	idx, err := NewIndex(kb)
	require.NoError(t, err)

	canonical, found := idx.Canonical("shared")
	require.True(t, found)
	assert.Equal(t, "Alpha", canonical)
}
