package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeJDCommand_FlagsValidation(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "summarize-jd")
	output, err := cmd.CombinedOutput()
	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}

func TestSummarizeJDCommand_WritesProfile(t *testing.T) {
	binaryPath := getBinaryPath(t)
	dir := t.TempDir()

	jdPath := filepath.Join(dir, "jd.txt")
	require.NoError(t, os.WriteFile(jdPath, []byte("Required: Python.\nNice to have: Docker.\n5+ years of experience required."), 0o644))

	outPath := filepath.Join(dir, "profile.json")
	cmd := exec.Command(binaryPath, "summarize-jd", "--jd", jdPath, "--output", outPath)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, string(output))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var profile struct {
		MustHaveSkills     []string `json:"must_have_skills"`
		NiceToHaveSkills   []string `json:"nice_to_have_skills"`
		MinYearsExperience *float64 `json:"min_years_experience"`
	}
	require.NoError(t, json.Unmarshal(data, &profile))
	assert.Equal(t, []string{"Python"}, profile.MustHaveSkills)
	assert.Equal(t, []string{"Docker"}, profile.NiceToHaveSkills)
	require.NotNil(t, profile.MinYearsExperience)
	assert.InDelta(t, 5.0, *profile.MinYearsExperience, 0.001)
}
