// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/prkumar-ishir/candidate-profiling/internal/keywords"
)

// Config is the CLI/server configuration loadable from a JSON file. All
// fields are optional; missing values use defaults or come from flags.
type Config struct {
	// Inputs
	JD    string `json:"jd,omitempty"`     // Path to a JD text file
	JDURL string `json:"jd_url,omitempty"` // URL to fetch the JD from

	// Behavior
	Limit    int    `json:"limit,omitempty"`    // Maximum number of keywords to extract
	APIKey   string `json:"api_key,omitempty"`  // Gemini API key for the semantic collaborator
	Semantic bool   `json:"semantic,omitempty"` // Blend in the semantic assessment when possible
	Verbose  bool   `json:"verbose,omitempty"`  // Print detailed progress

	// Server
	Port int `json:"port,omitempty"`
}

// DefaultPort is the HTTP API listen port when none is configured.
const DefaultPort = 8080

// Load reads configuration from a JSON file.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}
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

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.JD != "" && c.JDURL != "" {
		return fmt.Errorf("config error: 'jd' and 'jd_url' are mutually exclusive")
	}
	if c.Limit < 0 {
		return fmt.Errorf("config error: 'limit' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid TCP port")
	}
	if c.JD != "" {
		if _, err := os.Stat(c.JD); os.IsNotExist(err) {
			return fmt.Errorf("config error: JD file not found: %s", c.JD)
		}
	}
	return nil
}

// MergeWithDefaults fills empty fields from defaults and applies built-in
// fallbacks. Bool fields are not merged: flags always win for those.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.JD == "" {
		result.JD = defaults.JD
	}
	if result.JDURL == "" {
		result.JDURL = defaults.JDURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Limit == 0 {
		result.Limit = defaults.Limit
	}
	if result.Limit == 0 {
		result.Limit = keywords.DefaultLimit
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.Port == 0 {
		result.Port = DefaultPort
	}

	return result
}
