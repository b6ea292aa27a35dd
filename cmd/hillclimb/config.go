package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/hillclimb/climb"
)

// Multi-source modes.
const (
	modeForward = "forward"
	modeReverse = "reverse"
)

type Duration struct{ time.Duration }

// [Duration] implements [json.Marshaler]
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		var err error
		d.Duration, err = time.ParseDuration(value)
		if err != nil {
			return err
		}
		return nil

	default:
		return errors.New("invalid duration")
	}
}

type LogConfig struct {
	File       string `json:"file"`
	MaxSizeMB  int    `json:"max_size_mb"`
	MaxBackups int    `json:"max_backups"`
	MaxAgeDays int    `json:"max_age_days"`
}

type Config struct {
	Mode        string    `json:"mode"`
	Input       string    `json:"input"`
	Strategy    string    `json:"strategy"`
	MultiSource string    `json:"multi_source"`
	Workers     int       `json:"workers"`
	Prune       bool      `json:"prune"`
	Verify      bool      `json:"verify"`
	Timeout     Duration  `json:"timeout"`
	Log         LogConfig `json:"log"`
}

func DefaultConfig() *Config {
	return &Config{
		Mode:        "production",
		Input:       "-",
		Strategy:    climb.StrategyBFS.String(),
		MultiSource: modeForward,
		Workers:     1,
		Prune:       true,
		Log: LogConfig{
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// LoadConfig reads a JSON config file on top of DefaultConfig.
// An empty path returns the defaults.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return config, nil
}

func (c Config) Validate() error {
	if _, err := climb.ParseStrategy(c.Strategy); err != nil {
		return err
	}
	if c.MultiSource != modeForward && c.MultiSource != modeReverse {
		return fmt.Errorf("unknown multi_source mode %q (want %q or %q)", c.MultiSource, modeForward, modeReverse)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.Timeout.Duration < 0 {
		return fmt.Errorf("timeout cannot be negative, got %s", c.Timeout)
	}

	return nil
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":         c.Mode,
		"input":        c.Input,
		"strategy":     c.Strategy,
		"multi_source": c.MultiSource,
		"workers":      c.Workers,
		"prune":        c.Prune,
		"verify":       c.Verify,
		"timeout":      c.Timeout.Duration.String(),
		"log_file":     c.Log.File,
	}
}

func (c Config) Development() bool {
	return c.Mode == "development"
}
