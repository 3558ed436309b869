// Package config loads simulation settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate and Load for unusable settings.
var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Table      TableConfig      `yaml:"table"`
	Wheel      WheelConfig      `yaml:"wheel"`
	Player     PlayerConfig     `yaml:"player"`
	Simulation SimulationConfig `yaml:"simulation"`
	Log        LogConfig        `yaml:"log"`
	Server     ServerConfig     `yaml:"server"`
}

type TableConfig struct {
	Limit   float64 `yaml:"limit"`
	Minimum float64 `yaml:"minimum"`
}

type WheelConfig struct {
	Rules string `yaml:"rules"` // "default" or "prison"
	// Seed makes the wheel reproducible. Unset means an entropy seed.
	Seed *int64 `yaml:"seed"`
}

type PlayerConfig struct {
	Strategy     string  `yaml:"strategy"`
	FixedAmount  float64 `yaml:"fixed_amount"`
	FixedOutcome string  `yaml:"fixed_outcome"`
	Streak       int     `yaml:"streak"`
	Seed         uint32  `yaml:"seed"` // random strategy only
	// Script is inline JavaScript; ScriptPath is read when Script is empty.
	Script        string        `yaml:"script"`
	ScriptPath    string        `yaml:"script_path"`
	ScriptTimeout time.Duration `yaml:"script_timeout"`
}

type SimulationConfig struct {
	Duration  int     `yaml:"duration"`
	InitStake float64 `yaml:"init_stake"`
	Samples   int     `yaml:"samples"`
	Debug     bool    `yaml:"debug"`
}

// ServerConfig configures the optional HTTP API.
type ServerConfig struct {
	Addr string `yaml:"addr"`
	// MaxSamples caps the sessions one request may ask for.
	MaxSamples int `yaml:"max_samples"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Default returns the settings used when no file overrides them.
func Default() Config {
	return Config{
		Table: TableConfig{Limit: 100},
		Wheel: WheelConfig{Rules: "default"},
		Player: PlayerConfig{
			Strategy:      "martingale",
			FixedAmount:   10,
			FixedOutcome:  "black",
			Streak:        7,
			Seed:          1,
			ScriptTimeout: time.Second,
		},
		Simulation: SimulationConfig{
			Duration:  250,
			InitStake: 100,
			Samples:   50,
		},
		Log:    LogConfig{Level: "info"},
		Server: ServerConfig{Addr: ":8080", MaxSamples: 10000},
	}
}

// Load reads a YAML file over Default, resolves script_path relative to the
// file and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Player.Script == "" && cfg.Player.ScriptPath != "" {
		p := cfg.Player.ScriptPath
		if !filepath.IsAbs(p) {
			p = filepath.Join(filepath.Dir(path), p)
		}
		src, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("failed to read script: %w", err)
		}
		cfg.Player.Script = string(src)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every unusable setting in one error.
func (c *Config) Validate() error {
	var problems []string
	if c.Table.Limit <= 0 {
		problems = append(problems, "table.limit must be positive")
	}
	if c.Table.Minimum < 0 || c.Table.Minimum > c.Table.Limit {
		problems = append(problems, "table.minimum must be within [0, table.limit]")
	}
	switch c.Wheel.Rules {
	case "default", "prison":
	default:
		problems = append(problems, fmt.Sprintf("wheel.rules %q is not default or prison", c.Wheel.Rules))
	}
	if c.Player.Strategy == "" {
		problems = append(problems, "player.strategy is required")
	}
	if strings.EqualFold(c.Player.Strategy, "script") && c.Player.Script == "" {
		problems = append(problems, "player.script or player.script_path is required for the script strategy")
	}
	if c.Simulation.Duration <= 0 {
		problems = append(problems, "simulation.duration must be positive")
	}
	if c.Simulation.InitStake <= 0 {
		problems = append(problems, "simulation.init_stake must be positive")
	}
	if c.Simulation.Samples <= 0 {
		problems = append(problems, "simulation.samples must be positive")
	}
	if c.Server.MaxSamples < 0 {
		problems = append(problems, "server.max_samples must not be negative")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
