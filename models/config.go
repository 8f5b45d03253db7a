package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds runtime configuration. Values come from an optional YAML
// file and may be overridden by CLI flags.
type Config struct {
	BaseURL      string `yaml:"base_url"`
	DatabasePath string `yaml:"database_path"`
	HTMLDir      string `yaml:"html_dir"`
	WorkerCount  int    `yaml:"workers"`
	MaxRetries   int    `yaml:"max_retries"`
	// RequestDelaySeconds spaces out network fetches to avoid hammering
	// the gazette server. Ignored when serving from the HTML cache.
	RequestDelaySeconds int  `yaml:"request_delay_seconds"`
	UseSaved            bool `yaml:"use_saved"`
}

// DefaultConfig mirrors the defaults the scraper has always shipped with.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:             "https://nkp.gov.np/",
		DatabasePath:        "legal_cases.db",
		HTMLDir:             "scraped_html",
		WorkerCount:         4,
		MaxRetries:          3,
		RequestDelaySeconds: 2,
		UseSaved:            true,
	}
}

// LoadConfig reads a YAML config file, filling unset fields from
// defaults. A missing file is not an error; defaults are returned.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = DefaultConfig().WorkerCount
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = DefaultConfig().MaxRetries
	}
	return cfg, nil
}
