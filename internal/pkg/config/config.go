// Package config resolves server settings. Later layers win:
// built-in defaults, then an optional YAML file, then a .env file, then the
// process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const (
	CatalogEmbedded = "embedded"
	CatalogSpanner  = "spanner"
)

type Config struct {
	AppEnv   string `yaml:"app_env"`
	LogLevel string `yaml:"log_level"`
	GRPCAddr string `yaml:"grpc_addr"`
	// Locale drives price formatting, e.g. "ru" renders "24 900 ₽".
	Locale string `yaml:"locale"`

	Catalog  CatalogConfig  `yaml:"catalog"`
	Advisor  AdvisorConfig  `yaml:"advisor"`
	Sessions SessionsConfig `yaml:"sessions"`
}

type CatalogConfig struct {
	// Source is "embedded" (YAML, optionally from File) or "spanner".
	Source          string `yaml:"source"`
	File            string `yaml:"file"`
	SpannerDatabase string `yaml:"spanner_database"`
}

type AdvisorConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

type SessionsConfig struct {
	TTL           time.Duration `yaml:"ttl"`
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

func Default() Config {
	return Config{
		AppEnv:   "dev",
		LogLevel: "info",
		GRPCAddr: ":50051",
		Locale:   "ru",
		Catalog: CatalogConfig{
			Source:          CatalogEmbedded,
			SpannerDatabase: "projects/test-project/instances/emulator-instance/databases/test-db",
		},
		Advisor: AdvisorConfig{
			Model: "gemini-3-flash-preview",
		},
		Sessions: SessionsConfig{
			TTL:           30 * time.Minute,
			SweepInterval: time.Minute,
		},
	}
}

// Load resolves the configuration. path may be empty; a missing .env is fine.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	c.AppEnv = env("APP_ENV", c.AppEnv)
	c.LogLevel = env("LOG_LEVEL", c.LogLevel)
	c.GRPCAddr = env("GRPC_ADDR", c.GRPCAddr)
	c.Locale = env("LOCALE", c.Locale)

	c.Catalog.Source = env("CATALOG_SOURCE", c.Catalog.Source)
	c.Catalog.File = env("CATALOG_FILE", c.Catalog.File)
	c.Catalog.SpannerDatabase = env("SPANNER_DATABASE", c.Catalog.SpannerDatabase)

	c.Advisor.APIKey = env("GEMINI_API_KEY", env("API_KEY", c.Advisor.APIKey))
	c.Advisor.Model = env("ADVISOR_MODEL", c.Advisor.Model)

	var err error
	if c.Sessions.TTL, err = envDuration("SESSION_TTL", c.Sessions.TTL); err != nil {
		return err
	}
	if c.Sessions.SweepInterval, err = envDuration("SESSION_SWEEP_INTERVAL", c.Sessions.SweepInterval); err != nil {
		return err
	}
	return nil
}

// LanguageTag returns the parsed locale. Validate has already rejected bad values.
func (c Config) LanguageTag() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Russian
	}
	return tag
}

func (c Config) Validate() error {
	switch c.Catalog.Source {
	case CatalogEmbedded:
	case CatalogSpanner:
		if c.Catalog.SpannerDatabase == "" {
			return errors.New("config: spanner catalog source needs SPANNER_DATABASE")
		}
	default:
		return fmt.Errorf("config: unknown catalog source %q", c.Catalog.Source)
	}
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("config: locale %q: %w", c.Locale, err)
	}
	if c.Sessions.TTL <= 0 {
		return fmt.Errorf("config: session ttl must be positive, got %s", c.Sessions.TTL)
	}
	if c.Sessions.SweepInterval <= 0 {
		return fmt.Errorf("config: sweep interval must be positive, got %s", c.Sessions.SweepInterval)
	}
	return nil
}

func env(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := env(key, "")
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return d, nil
}
