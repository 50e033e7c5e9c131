// Package config provides application configuration loaded from an optional
// YAML file and environment variables. Environment variables win.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Mode determines whether queries go to the cloud API or to stub fixtures.
type Mode string

const (
	ModeStub       Mode = "stub"
	ModeProduction Mode = "production"
)

const (
	DefaultAPIURL        = "https://api.prefect.io/graphql"
	DefaultPlaygroundURL = "https://cloud.prefect.io/playground"
	DefaultLimit         = 10
	DefaultTimeout       = 30 * time.Second
)

// Config holds all application configuration.
type Config struct {
	Mode        Mode   `yaml:"mode"`
	FixturesDir string `yaml:"fixtures_dir"`

	APIURL        string        `yaml:"api_url"`
	APIToken      string        `yaml:"api_token"`
	PlaygroundURL string        `yaml:"playground_url"`
	Timeout       time.Duration `yaml:"timeout"`

	// DefaultLimit is used when --limit is not given.
	DefaultLimit int `yaml:"default_limit"`
	// Timezone names the location start times are shown in. Empty means local.
	Timezone string `yaml:"timezone"`

	LogLevel    string `yaml:"log_level"`
	OTelEnabled bool   `yaml:"otel_enabled"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Mode:          ModeProduction,
		APIURL:        DefaultAPIURL,
		PlaygroundURL: DefaultPlaygroundURL,
		Timeout:       DefaultTimeout,
		DefaultLimit:  DefaultLimit,
		LogLevel:      "warn",
	}
}

// LoadFromEnv reads configuration from environment variables with sensible
// defaults, honouring FLOWMETA_CONFIG as the config file path.
func LoadFromEnv() (Config, error) {
	return Load(os.Getenv("FLOWMETA_CONFIG"))
}

// Load reads the YAML file at path (skipped when path is empty), then applies
// environment overrides and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	cfg.Mode = Mode(envOr("FLOWMETA_MODE", string(cfg.Mode)))
	cfg.FixturesDir = envOr("FIXTURES_DIR", cfg.FixturesDir)
	cfg.APIURL = envOr("FLOWMETA_API_URL", cfg.APIURL)
	cfg.APIToken = envOr("FLOWMETA_API_TOKEN", cfg.APIToken)
	cfg.PlaygroundURL = envOr("FLOWMETA_PLAYGROUND_URL", cfg.PlaygroundURL)
	cfg.Timezone = envOr("FLOWMETA_TIMEZONE", cfg.Timezone)
	cfg.LogLevel = envOr("FLOWMETA_LOG_LEVEL", cfg.LogLevel)

	if v := os.Getenv("FLOWMETA_DEFAULT_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid FLOWMETA_DEFAULT_LIMIT %q: %w", v, err)
		}
		cfg.DefaultLimit = n
	}
	if v := os.Getenv("FLOWMETA_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: invalid FLOWMETA_TIMEOUT %q: %w", v, err)
		}
		cfg.Timeout = d
	}
	if v := os.Getenv("FLOWMETA_OTEL_ENABLED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: invalid FLOWMETA_OTEL_ENABLED %q: %w", v, err)
		}
		cfg.OTelEnabled = b
	}
	return nil
}

func (c Config) validate() error {
	switch c.Mode {
	case ModeStub:
		if c.FixturesDir == "" {
			return errors.New("config: FIXTURES_DIR required in stub mode")
		}
	case ModeProduction:
		if c.APIURL == "" {
			return errors.New("config: FLOWMETA_API_URL required in production mode")
		}
	default:
		return fmt.Errorf("config: invalid FLOWMETA_MODE %q (must be stub or production)", c.Mode)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves Timezone, defaulting to the local zone.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("config: invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
