// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	JD            string `json:"jd,omitempty"`             // Path to job description text file
	KnowledgeBase string `json:"knowledge_base,omitempty"` // Path to skill knowledge base JSON (empty = built-in)
	Output        string `json:"output,omitempty"`         // Path to write the JSON report (empty = stdout)

	// Behavior
	Mode               string `json:"mode,omitempty" validate:"omitempty,oneof=standard deep"` // Analysis mode
	RecencyWindowYears int    `json:"recency_window_years,omitempty" validate:"min=0"`         // Recent-experience window
	Verbose            bool   `json:"verbose,omitempty"`                                       // Print detailed progress
	DatabaseURL        string `json:"database_url,omitempty"`                                  // PostgreSQL connection URL for report persistence
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			ve := verrs[0]
			return fmt.Errorf("config error: %s - %s", ve.Field(), ve.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}

	// Validate file paths exist (if specified)
	if c.JD != "" {
		if _, err := os.Stat(c.JD); os.IsNotExist(err) {
			return fmt.Errorf("config error: jd file not found: %s", c.JD)
		}
	}
	if c.KnowledgeBase != "" {
		if _, err := os.Stat(c.KnowledgeBase); os.IsNotExist(err) {
			return fmt.Errorf("config error: knowledge base file not found: %s", c.KnowledgeBase)
		}
	}

	return nil
}

var validate = validator.New()

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.JD == "" {
		result.JD = defaults.JD
	}
	if result.KnowledgeBase == "" {
		result.KnowledgeBase = defaults.KnowledgeBase
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.Mode == "" {
		result.Mode = defaults.Mode
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Int fields: use default if zero
	if result.RecencyWindowYears == 0 {
		result.RecencyWindowYears = defaults.RecencyWindowYears
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
