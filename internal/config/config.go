package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const minSecretKeyLength = 32

var (
	ErrSecretKeyMissing  = errors.New("SECRET_KEY is required")
	ErrSecretKeyInsecure = errors.New("SECRET_KEY uses an insecure placeholder")
	ErrSecretKeyTooShort = fmt.Errorf("SECRET_KEY must be at least %d characters", minSecretKeyLength)
	ErrInvalidPort       = errors.New("PORT must be a number between 1 and 65535")
)

var insecureSecretKeys = map[string]struct{}{
	"change_me_in_production":                    {},
	"replace_with_at_least_32_random_characters": {},
}

// Config holds the service configuration. Values come from defaults, then an
// optional YAML file, then environment variables.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type ServerConfig struct {
	Port         string   `yaml:"port"`
	Timezone     string   `yaml:"timezone"`
	CookieSecure bool     `yaml:"cookie_secure"`
	CORSOrigins  []string `yaml:"cors_origins"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type AuthConfig struct {
	SecretKey        string `yaml:"secret_key"`
	TokenTTL         string `yaml:"token_ttl"`
	LoginMaxAttempts int    `yaml:"login_max_attempts"`
	LoginWindow      string `yaml:"login_window"`
}

type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:     "8080",
			Timezone: "UTC",
		},
		Database: DatabaseConfig{
			Path: filepath.Join("data", "musclemap.db"),
		},
		Auth: AuthConfig{
			TokenTTL:         "168h",
			LoginMaxAttempts: 8,
			LoginWindow:      "15m",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadDotEnv loads variables from the given .env files. Missing files are
// skipped and variables already set in the process win.
func LoadDotEnv(files ...string) error {
	for _, file := range files {
		if _, err := os.Stat(file); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return fmt.Errorf("load %s: %w", file, err)
		}
	}
	return nil
}

// Load reads the YAML file at path, if any, and applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}

func (c *Config) applyEnvOverrides() {
	if value := strings.TrimSpace(os.Getenv("PORT")); value != "" {
		c.Server.Port = value
	}
	if value := strings.TrimSpace(os.Getenv("TZ")); value != "" {
		c.Server.Timezone = value
	}
	if value := strings.TrimSpace(os.Getenv("COOKIE_SECURE")); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			c.Server.CookieSecure = parsed
		}
	}
	if value := strings.TrimSpace(os.Getenv("CORS_ORIGINS")); value != "" {
		c.Server.CORSOrigins = splitList(value)
	}
	if value := strings.TrimSpace(os.Getenv("DB_PATH")); value != "" {
		c.Database.Path = value
	}
	if value := strings.TrimSpace(os.Getenv("SECRET_KEY")); value != "" {
		c.Auth.SecretKey = value
	}
	if value := strings.TrimSpace(os.Getenv("LOG_LEVEL")); value != "" {
		c.Logging.Level = value
	}
}

// Validate checks the settings the server cannot start without.
func (c *Config) Validate() error {
	if err := ValidateSecretKey(c.Auth.SecretKey); err != nil {
		return err
	}
	if _, err := ParsePort(c.Server.Port); err != nil {
		return err
	}
	return nil
}

func ValidateSecretKey(secret string) error {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return ErrSecretKeyMissing
	}
	if _, insecure := insecureSecretKeys[strings.ToLower(secret)]; insecure {
		return ErrSecretKeyInsecure
	}
	if len(secret) < minSecretKeyLength {
		return ErrSecretKeyTooShort
	}
	return nil
}

func ParsePort(raw string) (int, error) {
	port, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || port < 1 || port > 65535 {
		return 0, ErrInvalidPort
	}
	return port, nil
}

// Location falls back to UTC for an unknown timezone name.
func (c *Config) Location() *time.Location {
	location, err := time.LoadLocation(c.Server.Timezone)
	if err != nil {
		return time.UTC
	}
	return location
}

func (c *Config) GetTokenTTL() time.Duration {
	return parseDurationOr(c.Auth.TokenTTL, 7*24*time.Hour)
}

func (c *Config) GetLoginWindow() time.Duration {
	return parseDurationOr(c.Auth.LoginWindow, 15*time.Minute)
}

func parseDurationOr(raw string, fallback time.Duration) time.Duration {
	value, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
