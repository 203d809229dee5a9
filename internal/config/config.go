package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v8"
)

// Config is the process configuration, populated from environment
// variables. A .env file, when present, is loaded by the entry point
// before parsing.
type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// SQLiteDBPath locates the persistence blob database.
	SQLiteDBPath string `env:"COINFLOW_DB_PATH" envDefault:"./data/coinflow.db"`

	// MonthlyIncome is the fixed income figure used for savings math.
	MonthlyIncome int64 `env:"COINFLOW_MONTHLY_INCOME" envDefault:"512000"`

	// RecentLimit caps the most-recent transaction list on the dashboard.
	RecentLimit int `env:"COINFLOW_RECENT_LIMIT" envDefault:"12"`

	// SaveDebounce, when positive, coalesces persistence writes instead of
	// flushing on every mutation. Zero keeps the immediate synchronous save.
	SaveDebounce time.Duration `env:"COINFLOW_SAVE_DEBOUNCE" envDefault:"0s"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate collects every configuration problem into a single error.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port %q: must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.MonthlyIncome < 0 {
		problems = append(problems, fmt.Sprintf("invalid monthly income %d: must not be negative", c.MonthlyIncome))
	}

	if c.RecentLimit < 1 {
		problems = append(problems, fmt.Sprintf("invalid recent limit %d: must be at least 1", c.RecentLimit))
	}

	if c.SaveDebounce < 0 {
		problems = append(problems, fmt.Sprintf("invalid save debounce %v: must not be negative", c.SaveDebounce))
	}

	if c.SQLiteDBPath == "" {
		problems = append(problems, "database path cannot be empty")
	} else if dir := filepath.Dir(c.SQLiteDBPath); dir != "." && dir != "" {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			if err := os.MkdirAll(dir, 0755); err != nil {
				problems = append(problems, fmt.Sprintf("cannot create database directory %q: %v", dir, err))
			}
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}
