package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Project  string         `yaml:"project"`
	Version  int            `yaml:"version"`
	Database DatabaseConfig `yaml:"database"`
	HTTP     HTTPConfig     `yaml:"http"`
	Auth     AuthConfig     `yaml:"auth"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret"`
}

// overrides holds environment values that take precedence over the file.
type overrides struct {
	DSN       string `env:"CHRONICLER_DATABASE_DSN"`
	Addr      string `env:"CHRONICLER_HTTP_ADDR"`
	JWTSecret string `env:"CHRONICLER_JWT_SECRET"`
}

// Load reads the project config file, applies environment overrides, and
// validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	var ov overrides
	if err := env.Parse(&ov); err != nil {
		return nil, fmt.Errorf("parsing config overrides: %w", err)
	}
	if ov.DSN != "" {
		cfg.Database.DSN = ov.DSN
	}
	if ov.Addr != "" {
		cfg.HTTP.Addr = ov.Addr
	}
	if ov.JWTSecret != "" {
		cfg.Auth.JWTSecret = ov.JWTSecret
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = ":8080"
	}
	if cfg.Auth.JWTSecret == "" {
		cfg.Auth.JWTSecret = "dev-secret"
	}
}

func validate(cfg *Config) error {
	if strings.TrimSpace(cfg.Project) == "" {
		return fmt.Errorf("project name is required")
	}
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported version: %d", cfg.Version)
	}
	if strings.TrimSpace(cfg.Database.DSN) == "" {
		return fmt.Errorf("database dsn is required")
	}
	return nil
}
