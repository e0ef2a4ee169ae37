// Package config loads and validates engine configuration from YAML or
// JSON files.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/advisor/indicators"
	"github.com/rustyeddy/advisor/strategy"
)

// Config is the complete engine configuration.
type Config struct {
	Account  AccountConfig   `json:"account" yaml:"account"`
	Strategy strategy.Params `json:"strategy" yaml:"strategy"`
	Runner   RunnerConfig    `json:"runner" yaml:"runner"`
	Journal  JournalConfig   `json:"journal" yaml:"journal"`
	Logging  LoggingConfig   `json:"logging" yaml:"logging"`
	Metrics  MetricsConfig   `json:"metrics" yaml:"metrics"`
}

// AccountConfig seeds the sim gateway account.
type AccountConfig struct {
	ID       string  `json:"id" yaml:"id"`
	Currency string  `json:"currency" yaml:"currency"`
	Balance  float64 `json:"balance" yaml:"balance"`
}

// RunnerConfig controls the polling loop.
type RunnerConfig struct {
	Interval string `json:"interval" yaml:"interval"` // e.g. "60s", "30m"
}

// ParseInterval converts the interval string to a duration.
func (r RunnerConfig) ParseInterval() (time.Duration, error) {
	if r.Interval == "" {
		return time.Minute, nil
	}
	return time.ParseDuration(r.Interval)
}

// JournalConfig selects backtest journaling: "none", "csv" or "sqlite".
type JournalConfig struct {
	Type         string `json:"type" yaml:"type"`
	RunsFile     string `json:"runs_file,omitempty" yaml:"runs_file,omitempty"`
	OutcomesFile string `json:"outcomes_file,omitempty" yaml:"outcomes_file,omitempty"`
	DBPath       string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

type LoggingConfig struct {
	Level string `json:"level" yaml:"level"`
}

// MetricsConfig enables the Prometheus listener when Addr is set.
type MetricsConfig struct {
	Addr string `json:"addr,omitempty" yaml:"addr,omitempty"`
}

// LoadFromFile loads configuration from a file, trying YAML first and
// falling back to JSON.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	// A file may omit the indicators block entirely.
	if cfg.Strategy.Indicators == (indicators.Config{}) {
		cfg.Strategy.Indicators = indicators.DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveToFile writes the configuration as YAML or JSON based on the file
// extension.
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks the configuration as a whole.
func (c *Config) Validate() error {
	if c.Account.Currency == "" {
		return fmt.Errorf("account.currency is required")
	}
	if c.Account.Balance <= 0 {
		return fmt.Errorf("account.balance must be positive")
	}
	if err := c.Strategy.Validate(); err != nil {
		return fmt.Errorf("strategy: %w", err)
	}
	if _, err := c.Runner.ParseInterval(); err != nil {
		return fmt.Errorf("runner.interval: %w", err)
	}
	switch c.Journal.Type {
	case "", "none":
	case "csv":
		if c.Journal.RunsFile == "" || c.Journal.OutcomesFile == "" {
			return fmt.Errorf("journal runs_file and outcomes_file required for csv type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for sqlite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'none', 'csv' or 'sqlite'")
	}
	return nil
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Account: AccountConfig{
			ID:       "SIM-001",
			Currency: "USD",
			Balance:  100000,
		},
		Strategy: strategy.DefaultParams(),
		Runner:   RunnerConfig{Interval: "60s"},
		Journal: JournalConfig{
			Type:         "csv",
			RunsFile:     "./runs.csv",
			OutcomesFile: "./outcomes.csv",
		},
		Logging: LoggingConfig{Level: "info"},
	}
}
