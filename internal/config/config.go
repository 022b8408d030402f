package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level ledgerkit.yaml configuration.
type Config struct {
	Data     DataConfig `yaml:"data"`
	Accounts []Account  `yaml:"accounts,omitempty"`
	Logging  LogConfig  `yaml:"logging"`
}

// DataConfig locates the persisted ledger state.
type DataConfig struct {
	Dir      string `yaml:"dir"`
	Database string `yaml:"database"`
}

// Account names a bank feed whose CSVs get imported under a stable label.
type Account struct {
	Label string `yaml:"label"`
	Bank  string `yaml:"bank,omitempty"`
}

// LogConfig controls log verbosity.
type LogConfig struct {
	Level string `yaml:"level"`
}

// DatabasePath resolves the database file relative to the data dir.
func (c *Config) DatabasePath() string {
	if filepath.IsAbs(c.Data.Database) {
		return c.Data.Database
	}
	return filepath.Join(c.Data.Dir, c.Data.Database)
}

// Load reads a ledgerkit.yaml file from disk.
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

// Default returns a Config with sensible defaults for a new ledger.
func Default(dataDir string) *Config {
	return &Config{
		Data: DataConfig{
			Dir:      dataDir,
			Database: "ledger.db",
		},
		Accounts: []Account{
			{Label: "checking"},
			{Label: "credit"},
		},
		Logging: LogConfig{
			Level: "info",
		},
	}
}
