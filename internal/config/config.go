package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level spenso.yaml configuration.
type Config struct {
	Ledger LedgerConfig `yaml:"ledger"`
	Server ServerConfig `yaml:"server"`
	Git    GitConfig    `yaml:"git"`
}

// LedgerConfig locates the record store and controls display.
type LedgerConfig struct {
	Path     string `yaml:"path"`     // expenses CSV, relative to the project dir
	Currency string `yaml:"currency"` // symbol used when rendering amounts
}

// ServerConfig controls the HTTP surface.
type ServerConfig struct {
	Address string `yaml:"address"`
	Mode    string `yaml:"mode"` // gin mode: debug, release, test
}

// GitConfig controls git integration.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a spenso.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default() *Config {
	return &Config{
		Ledger: LedgerConfig{
			Path:     "data/expenses.csv",
			Currency: "$",
		},
		Server: ServerConfig{
			Address: "127.0.0.1:8080",
			Mode:    "release",
		},
		Git: GitConfig{
			AutoCommit:  false,
			AuthorName:  "Spenso",
			AuthorEmail: "ledger@spenso.dev",
		},
	}
}
