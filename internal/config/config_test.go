package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Simulation.Duration != 250 || cfg.Simulation.InitStake != 100 || cfg.Simulation.Samples != 50 {
		t.Errorf("unexpected simulation defaults %+v", cfg.Simulation)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "sim.yaml", `
table:
  limit: 500
wheel:
  rules: prison
  seed: 42
player:
  strategy: sevenreds
simulation:
  samples: 10
  debug: true
log:
  level: debug
`)

	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Table.Limit != 500 || cfg.Wheel.Rules != "prison" {
		t.Errorf("table/wheel not loaded: %+v %+v", cfg.Table, cfg.Wheel)
	}
	if cfg.Wheel.Seed == nil || *cfg.Wheel.Seed != 42 {
		t.Errorf("seed = %v, want 42", cfg.Wheel.Seed)
	}
	if cfg.Player.Strategy != "sevenreds" || cfg.Simulation.Samples != 10 || !cfg.Simulation.Debug {
		t.Errorf("player/simulation not loaded: %+v %+v", cfg.Player, cfg.Simulation)
	}
	// Untouched keys keep their defaults.
	if cfg.Simulation.Duration != 250 || cfg.Player.ScriptTimeout != time.Second {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadScriptPath(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "strategy.js", "dobet = function() {}")
	p := writeFile(t, dir, "sim.yaml", `
player:
  strategy: script
  script_path: strategy.js
  script_timeout: 250ms
`)

	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !strings.Contains(cfg.Player.Script, "dobet") {
		t.Errorf("script not read from script_path: %q", cfg.Player.Script)
	}
	if cfg.Player.ScriptTimeout != 250*time.Millisecond {
		t.Errorf("script timeout = %s", cfg.Player.ScriptTimeout)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := writeFile(t, dir, "bad.yaml", "table: [1, 2")
	if _, err := Load(bad); err == nil {
		t.Error("expected parse error")
	}

	missingScript := writeFile(t, dir, "script.yaml", "player:\n  strategy: script\n  script_path: nope.js\n")
	if _, err := Load(missingScript); err == nil {
		t.Error("expected error for missing script file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		field  string
	}{
		{"limit", func(c *Config) { c.Table.Limit = 0 }, "table.limit"},
		{"minimum", func(c *Config) { c.Table.Minimum = 1000 }, "table.minimum"},
		{"rules", func(c *Config) { c.Wheel.Rules = "european" }, "wheel.rules"},
		{"strategy", func(c *Config) { c.Player.Strategy = "" }, "player.strategy"},
		{"script", func(c *Config) { c.Player.Strategy = "script" }, "player.script"},
		{"duration", func(c *Config) { c.Simulation.Duration = -1 }, "simulation.duration"},
		{"stake", func(c *Config) { c.Simulation.InitStake = 0 }, "simulation.init_stake"},
		{"samples", func(c *Config) { c.Simulation.Samples = 0 }, "simulation.samples"},
		{"max samples", func(c *Config) { c.Server.MaxSamples = -1 }, "server.max_samples"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q does not name %s", err, tt.field)
			}
		})
	}
}
