// Package config loads server settings from a YAML file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Addr is the listen address, e.g. ":3000".
	Addr string `yaml:"addr"`
	// AllowOrigins are the CORS origins allowed to call the API.
	AllowOrigins []string `yaml:"allow_origins"`
	// MatchIntervalMS is how often the matchmaking loop runs.
	MatchIntervalMS int `yaml:"match_interval_ms"`
	// ClockSeconds is each side's time budget per game.
	ClockSeconds int `yaml:"clock_seconds"`
}

func Default() Config {
	return Config{
		Addr:            ":3000",
		AllowOrigins:    []string{"http://localhost:5173"},
		MatchIntervalMS: 1000,
		ClockSeconds:    600,
	}
}

// Load reads a YAML config file, rejecting unknown keys. Missing
// fields fall back to the defaults.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.UnmarshalStrict(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Addr == "" {
		return Config{}, fmt.Errorf("config %s: addr must not be empty", path)
	}
	if cfg.MatchIntervalMS <= 0 {
		return Config{}, fmt.Errorf("config %s: match_interval_ms must be positive", path)
	}
	if cfg.ClockSeconds <= 0 {
		return Config{}, fmt.Errorf("config %s: clock_seconds must be positive", path)
	}
	return cfg, nil
}

func (c Config) MatchInterval() time.Duration {
	return time.Duration(c.MatchIntervalMS) * time.Millisecond
}

func (c Config) ClockBudget() time.Duration {
	return time.Duration(c.ClockSeconds) * time.Second
}
