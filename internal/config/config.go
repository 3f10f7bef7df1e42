package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Digital-Shane/title-group/internal/naming"
)

// Config holds the user-tunable grouping settings.
type Config struct {
	// CleanPatterns are the regexes stripped from names before version
	// eligibility and ranking checks.
	CleanPatterns []string `json:"clean_patterns"`

	// MultiVersion enables alternate-version grouping by default; the
	// --multi-version flag overrides it per run.
	MultiVersion bool `json:"multi_version"`

	// MaxDepth overrides each command's scan depth when nonzero; 0 keeps
	// the command default.
	MaxDepth int `json:"max_depth"`

	LogLevel      string `json:"log_level"`
	EnableLogging bool   `json:"enable_logging"`
}

// DefaultConfig returns the default grouping configuration.
func DefaultConfig() *Config {
	return &Config{
		CleanPatterns: naming.DefaultCleanPatterns,
		MultiVersion:  true,
		LogLevel:      "info",
		EnableLogging: true,
	}
}

// ConfigPath returns the path to the config file.
func ConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".title-group", "config.json"), nil
}

// Load reads the configuration from disk, falling back to defaults when no
// config file exists yet.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Fill in any missing fields with defaults
	defaults := DefaultConfig()
	if len(cfg.CleanPatterns) == 0 {
		cfg.CleanPatterns = defaults.CleanPatterns
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaults.LogLevel
	}

	return &cfg, nil
}

// Save writes the configuration to disk, creating the config directory on
// first use.
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Compile builds the immutable pattern set the resolver runs on.
func (c *Config) Compile() (*naming.Patterns, error) {
	patterns, err := naming.NewPatterns(c.CleanPatterns)
	if err != nil {
		return nil, fmt.Errorf("invalid clean pattern: %w", err)
	}
	return patterns, nil
}
