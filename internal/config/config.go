// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config is the CLI configuration, loadable from a JSON file. All
// fields are optional; missing values use defaults or come from CLI
// flags and the environment.
type Config struct {
	// Reference data overrides. Empty paths use the embedded defaults.
	SkillsFile       string `json:"skills_file,omitempty" validate:"omitempty,file"`
	UniversitiesFile string `json:"universities_file,omitempty" validate:"omitempty,file"`
	TitlesFile       string `json:"titles_file,omitempty" validate:"omitempty,file"`

	// Scoring
	SkillWeight float64 `json:"skill_weight,omitempty" validate:"omitempty,gte=1"` // Weight of job skills in similarity (default 2)
	Scale       float64 `json:"scale,omitempty" validate:"omitempty,gt=0"`         // Score scale, 100 or 1
	TopKeyterms int     `json:"top_keyterms,omitempty" validate:"omitempty,gt=0"`  // Keyterms kept per record

	// Batch
	Workers int `json:"workers,omitempty" validate:"omitempty,gte=1"` // Concurrent document pipelines

	// Services
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key for the keyword strategy
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Behavior
	Verbose  bool `json:"verbose,omitempty"`   // Print detailed debug information
	JSONLogs bool `json:"json_logs,omitempty"` // Emit logs as JSON instead of console lines
}

var validate = validator.New()

// Load reads configuration from a JSON file. Returns an error if the
// file cannot be read, parsed or validated.
func Load(path string) (*Config, error) {
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

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints and returns the first violation.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return fmt.Errorf("config error: field %s failed %q validation", errs[0].Field(), errs[0].Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// FromEnv fills secrets from the environment, reading a .env file
// first when one exists. Values already set in the config win over
// the environment.
func (c *Config) FromEnv() {
	// Absent .env is fine; explicit environment still applies.
	_ = godotenv.Load()

	if c.APIKey == "" {
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
}

// WithDefaults fills zero-valued tunables.
func (c *Config) WithDefaults() {
	if c.SkillWeight == 0 {
		c.SkillWeight = 2
	}
	if c.Scale == 0 {
		c.Scale = 100
	}
	if c.TopKeyterms == 0 {
		c.TopKeyterms = 20
	}
	if c.Workers == 0 {
		c.Workers = 4
	}
}
