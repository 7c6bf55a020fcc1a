package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeTempFile(t, "config.json", `{
		"jd": "jd.txt",
		"mode": "deep",
		"recency_window_years": 3,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "jd.txt", cfg.JD)
	assert.Equal(t, "deep", cfg.Mode)
	assert.Equal(t, 3, cfg.RecencyWindowYears)
	assert.True(t, cfg.Verbose)
	assert.Empty(t, cfg.Output)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_MalformedJSON(t *testing.T) {
	path := writeTempFile(t, "config.json", `{"mode": `)
	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestValidate(t *testing.T) {
	jdPath := writeTempFile(t, "jd.txt", "Backend role.")

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "valid",
			cfg:  Config{JD: jdPath, Mode: "standard", RecencyWindowYears: 4},
		},
		{
			name: "empty config is valid",
			cfg:  Config{},
		},
		{
			name:    "unknown mode",
			cfg:     Config{Mode: "exhaustive"},
			wantErr: "config error: Mode - oneof",
		},
		{
			name:    "jd file missing",
			cfg:     Config{JD: "/nonexistent/jd.txt"},
			wantErr: "jd file not found",
		},
		{
			name:    "knowledge base file missing",
			cfg:     Config{KnowledgeBase: "/nonexistent/kb.json"},
			wantErr: "knowledge base file not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{JD: "mine.txt", Verbose: true}
	defaults := Config{
		JD:                 "default.txt",
		Mode:               "standard",
		RecencyWindowYears: 4,
		Output:             "report.json",
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "mine.txt", merged.JD, "explicit value wins over default")
	assert.Equal(t, "standard", merged.Mode)
	assert.Equal(t, 4, merged.RecencyWindowYears)
	assert.Equal(t, "report.json", merged.Output)
	assert.True(t, merged.Verbose)
}

func TestMergeWithDefaults_ZeroWindowUsesDefault(t *testing.T) {
	merged := (&Config{RecencyWindowYears: 0}).MergeWithDefaults(Config{RecencyWindowYears: 4})
	assert.Equal(t, 4, merged.RecencyWindowYears)

	merged = (&Config{RecencyWindowYears: 2}).MergeWithDefaults(Config{RecencyWindowYears: 4})
	assert.Equal(t, 2, merged.RecencyWindowYears)
}
