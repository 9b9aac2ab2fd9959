// Package config loads game settings from defaults, an optional YAML file and SKI_RUSH_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/lixenwraith/ski-rush/constants"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Bindable actions
const (
	ActionLeft    = "left"
	ActionRight   = "right"
	ActionUp      = "up"
	ActionDown    = "down"
	ActionJump    = "jump"
	ActionPause   = "pause"
	ActionRestart = "restart"
	ActionQuit    = "quit"
)

// Actions lists every bindable action
var Actions = []string{
	ActionLeft, ActionRight, ActionUp, ActionDown,
	ActionJump, ActionPause, ActionRestart, ActionQuit,
}

// AudioConfig holds sound settings
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"`
}

// Config holds all runtime settings
type Config struct {
	TickInterval time.Duration       `yaml:"tick_interval"`
	Seed         string              `yaml:"seed"`
	LevelStep    int                 `yaml:"level_step"`
	Audio        AudioConfig         `yaml:"audio"`
	Keys         map[string][]string `yaml:"keys"`
	SentryDSN    string              `yaml:"sentry_dsn"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		TickInterval: constants.GameUpdateInterval,
		LevelStep:    constants.DefaultLevelStep,
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.5,
		},
		Keys: map[string][]string{
			ActionLeft:    {"ArrowLeft", "h"},
			ActionRight:   {"ArrowRight", "l"},
			ActionUp:      {"ArrowUp", "k"},
			ActionDown:    {"ArrowDown", "j"},
			ActionJump:    {" "},
			ActionPause:   {"p"},
			ActionRestart: {"r"},
			ActionQuit:    {"q", "Esc", "Ctrl+C"},
		},
	}
}

// Load returns defaults overlaid with the YAML file at path and then the environment
// An empty path skips the file
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides settings from SKI_RUSH_* environment variables
// Unparseable values are ignored
func (c *Config) ApplyEnv() {
	if v := os.Getenv("SKI_RUSH_TICK_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.TickInterval = d
		}
	}

	if v, ok := os.LookupEnv("SKI_RUSH_SEED"); ok {
		c.Seed = v
	}

	if v := os.Getenv("SKI_RUSH_LEVEL_STEP"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.LevelStep = n
		}
	}

	if v := os.Getenv("SKI_RUSH_AUDIO_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Audio.Enabled = b
		}
	}

	// Master volume is given as 0-100
	if v := os.Getenv("SKI_RUSH_MASTER_VOLUME"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Audio.MasterVolume = min(max(float64(n)/100.0, 0), 1)
		}
	}

	if v, ok := os.LookupEnv("SKI_RUSH_SENTRY_DSN"); ok {
		c.SentryDSN = v
	}
}

// Validate reports the first invalid setting, wrapped in ErrInvalidConfig
func (c *Config) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick_interval must be positive, got %s", ErrInvalidConfig, c.TickInterval)
	}
	if c.LevelStep <= 0 {
		return fmt.Errorf("%w: level_step must be positive, got %d", ErrInvalidConfig, c.LevelStep)
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return fmt.Errorf("%w: audio.master_volume must be within 0..1, got %g", ErrInvalidConfig, c.Audio.MasterVolume)
	}

	known := make(map[string]bool, len(Actions))
	for _, a := range Actions {
		known[a] = true
	}

	owner := make(map[string]string)
	for action, keys := range c.Keys {
		if !known[action] {
			return fmt.Errorf("%w: unknown key action %q", ErrInvalidConfig, action)
		}
		for _, k := range keys {
			if k == "" {
				return fmt.Errorf("%w: empty key for action %q", ErrInvalidConfig, action)
			}
			if prev, ok := owner[k]; ok && prev != action {
				return fmt.Errorf("%w: key %q bound to both %q and %q", ErrInvalidConfig, k, prev, action)
			}
			owner[k] = action
		}
	}
	return nil
}

// KeyActions inverts the bindings into key name to action
func (c *Config) KeyActions() map[string]string {
	m := make(map[string]string)
	for action, keys := range c.Keys {
		for _, k := range keys {
			m[k] = action
		}
	}
	return m
}
