// Package config holds the static configuration consumed by the engine, the
// catalog and the adapters.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/aretw0/zerohour/pkg/domain"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// CountdownDefaults are minute offsets from "now" used by the countdown view.
type CountdownDefaults struct {
	Detected     int `yaml:"detected"`
	WindowCloses int `yaml:"window_closes"`
	ExposureLost int `yaml:"exposure_lost"`
}

// Config is loaded once at startup and never mutated afterwards.
type Config struct {
	Port         string `yaml:"port" env:"PORT"`
	AdminToken   string `yaml:"admin_token" env:"ADMIN_TOKEN"`
	LogLevel     string `yaml:"log_level" env:"LOG_LEVEL"`
	LogFormat    string `yaml:"log_format" env:"LOG_FORMAT"`
	PublicDir    string `yaml:"public_dir" env:"PUBLIC_DIR"`
	RedisAddr    string `yaml:"redis_addr" env:"REDIS_ADDR"`
	RedisChannel string `yaml:"redis_channel" env:"REDIS_CHANNEL"`

	// States is ordered by escalation severity.
	States    []domain.State    `yaml:"states"`
	Scenarios []domain.Scenario `yaml:"scenarios"`
	Domains   []domain.Domain   `yaml:"domains"`

	DefaultScenario domain.Scenario `yaml:"default_scenario" env:"DEFAULT_SCENARIO"`
	DefaultState    domain.State    `yaml:"default_state" env:"DEFAULT_STATE"`

	Target    domain.TargetEntity `yaml:"target"`
	Countdown CountdownDefaults   `yaml:"countdown"`
}

// Default returns the demo configuration.
func Default() Config {
	return Config{
		Port:         "3000",
		AdminToken:   "DEMO_ADMIN_TOKEN",
		LogLevel:     "info",
		LogFormat:    "text",
		RedisChannel: "zerohour:transitions",

		States:    domain.States(),
		Scenarios: domain.Scenarios(),
		Domains:   domain.AllDomains(),

		DefaultScenario: domain.ScenarioCyberBreach,
		DefaultState:    domain.StateNormal,

		Target: domain.TargetEntity{
			Name: "MERIDIAN HOLDINGS",
			ID:   "E-08471",
		},
		Countdown: CountdownDefaults{
			Detected:     -106, // 1h 46min ago
			WindowCloses: 98,
			ExposureLost: 248,
		},
	}
}

// Load layers an optional YAML file and then the environment on top of Default.
// An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the defaults belong to their enumerations.
func (c Config) Validate() error {
	var errs []error
	if len(c.States) == 0 {
		errs = append(errs, errors.New("at least one state is required"))
	}
	if len(c.Scenarios) == 0 {
		errs = append(errs, errors.New("at least one scenario is required"))
	}
	if !c.HasScenario(c.DefaultScenario) {
		errs = append(errs, fmt.Errorf("default scenario %q is not a configured scenario", c.DefaultScenario))
	}
	if !c.HasState(c.DefaultState) {
		errs = append(errs, fmt.Errorf("default state %q is not a configured state", c.DefaultState))
	}
	if c.LogFormat != "" && c.LogFormat != "text" && c.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("unknown log format %q: expected text or json", c.LogFormat))
	}
	return errors.Join(errs...)
}

// HasScenario reports whether s is a configured scenario.
func (c Config) HasScenario(s domain.Scenario) bool {
	return slices.Contains(c.Scenarios, s)
}

// HasState reports whether s is a configured state.
func (c Config) HasState(s domain.State) bool {
	return slices.Contains(c.States, s)
}

// StateIndex returns the 0-based position of s in the escalation sequence, or -1.
func (c Config) StateIndex(s domain.State) int {
	return slices.Index(c.States, s)
}

// ScenarioNames and StateNames render the enumerations for messages.
func (c Config) ScenarioNames() []string {
	names := make([]string, len(c.Scenarios))
	for i, s := range c.Scenarios {
		names[i] = string(s)
	}
	return names
}

func (c Config) StateNames() []string {
	names := make([]string, len(c.States))
	for i, s := range c.States {
		names[i] = string(s)
	}
	return names
}
