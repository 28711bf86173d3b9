// Package config loads daemon configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all daemon configuration.
type Config struct {
	Server    ServerConfig
	Reconcile ReconcileConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
	Sim       SimConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8433"`
	Host string `envconfig:"HOST" default:"127.0.0.1"`
}

// ReconcileConfig tunes the geometry reconciliation engine. The settle
// delays exist because the control surface offers no confirmation that a
// write took effect; they are the only suspension in the engine.
type ReconcileConfig struct {
	Tolerance             float64       `envconfig:"RECONCILE_TOLERANCE" default:"10"`
	Slack                 float64       `envconfig:"RECONCILE_SLACK" default:"5"`
	AttemptBudget         int           `envconfig:"RECONCILE_ATTEMPTS" default:"6"`
	EdgeThreshold         float64       `envconfig:"RECONCILE_EDGE_THRESHOLD" default:"100"`
	SettleRelocate        time.Duration `envconfig:"SETTLE_RELOCATE" default:"30ms"`
	SettleInitialSize     time.Duration `envconfig:"SETTLE_INITIAL_SIZE" default:"40ms"`
	SettleInitialPosition time.Duration `envconfig:"SETTLE_INITIAL_POSITION" default:"30ms"`
	SettleCorrection      time.Duration `envconfig:"SETTLE_CORRECTION" default:"25ms"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"50"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"100"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// SimConfig controls the simulated desktop backend used for demos and
// development on hosts without a real window server binding.
type SimConfig struct {
	Enabled      bool    `envconfig:"SIM_ENABLED" default:"true"`
	ScreenWidth  float64 `envconfig:"SIM_SCREEN_WIDTH" default:"1920"`
	ScreenHeight float64 `envconfig:"SIM_SCREEN_HEIGHT" default:"1080"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns defaults.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8433",
			Host: "127.0.0.1",
		},
		Reconcile: ReconcileConfig{
			Tolerance:             10,
			Slack:                 5,
			AttemptBudget:         6,
			EdgeThreshold:         100,
			SettleRelocate:        30 * time.Millisecond,
			SettleInitialSize:     40 * time.Millisecond,
			SettleInitialPosition: 30 * time.Millisecond,
			SettleCorrection:      25 * time.Millisecond,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 50,
			Burst:             100,
			Enabled:           true,
		},
		Sim: SimConfig{
			Enabled:      true,
			ScreenWidth:  1920,
			ScreenHeight: 1080,
		},
	}
}
