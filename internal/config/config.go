package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables that override the built-in defaults.
const (
	PauseEnvVar    = "LOADMON_PAUSE"
	TitleEnvVar    = "LOADMON_TITLE"
	SubtitleEnvVar = "LOADMON_SUBTITLE"
)

const supportedVersion = 1

//go:embed defaults.yaml
var defaultsYAML []byte

// Default returns the built-in configuration without environment overrides.
func Default() (*Config, error) {
	return Parse(defaultsYAML)
}

// Load returns the built-in configuration with environment overrides applied.
func Load() (*Config, error) {
	return LoadWithEnv(os.LookupEnv)
}

// LoadWithEnv is Load with a custom environment lookup, for tests.
func LoadWithEnv(lookup func(string) (string, bool)) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	if v, ok := lookup(PauseEnvVar); ok && v != "" {
		cfg.Console.Pause = PauseMode(strings.ToLower(strings.TrimSpace(v)))
	}
	if v, ok := lookup(TitleEnvVar); ok && v != "" {
		cfg.Banner.Title = v
	}
	if v, ok := lookup(SubtitleEnvVar); ok {
		cfg.Banner.Subtitle = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes a YAML document into a Config and validates it.
// Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Console.Pause == "" {
		cfg.Console.Pause = PauseAuto
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Version != supportedVersion {
		return fmt.Errorf("unsupported config version: %d (expected %d)", c.Version, supportedVersion)
	}
	if c.Banner.Title == "" {
		return fmt.Errorf("banner title cannot be empty")
	}
	if !c.Console.Pause.Valid() {
		return fmt.Errorf("invalid pause mode %q (expected auto, always or never)", c.Console.Pause)
	}
	return nil
}
