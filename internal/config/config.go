// Package config loads and validates application configuration from
// defaults, an optional config.yaml, and LOANCAM_* environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Providers the model.provider key accepts. ProviderNone disables the
// remote model entirely; advice is then always rule-based.
const (
	ProviderNone        = "none"
	ProviderHuggingFace = "huggingface"
	ProviderGemini      = "gemini"
)

// Config defines all application settings.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Model     ModelConfig     `mapstructure:"model"`
	Log       LogConfig       `mapstructure:"log"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr         string        `mapstructure:"addr"          validate:"required"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"  validate:"min=1s"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" validate:"min=1s"`
}

// DatabaseConfig holds SQLite settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// ModelConfig holds remote model settings. Token is a credential: it is read
// only from configuration, never hard-coded, and must never be logged.
type ModelConfig struct {
	Provider    string        `mapstructure:"provider"    validate:"oneof=none huggingface gemini"`
	Token       string        `mapstructure:"token"`
	Endpoint    string        `mapstructure:"endpoint"    validate:"omitempty,url"`
	Model       string        `mapstructure:"model"`
	Timeout     time.Duration `mapstructure:"timeout"     validate:"min=1s,max=10m"`
	MaxTokens   int           `mapstructure:"max_tokens"  validate:"min=1,max=4096"`
	Temperature float32       `mapstructure:"temperature" validate:"min=0,max=2"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// SchedulerConfig holds background maintenance settings.
type SchedulerConfig struct {
	MaintenanceInterval time.Duration `mapstructure:"maintenance_interval" validate:"min=1m"`
}

// ModelConfigured reports whether a remote model credential is available.
// This is the capability flag the advice path keys on: false routes every
// request to the rule-based advisor.
func (c *Config) ModelConfigured() bool {
	return c.Model.Provider != ProviderNone && c.Model.Token != ""
}

// Load reads configuration from the given path (optional file), applies
// defaults and environment overrides, and validates the result.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetEnvPrefix("LOANCAM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Missing config file is fine, defaults and env vars apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if cfg.Model.Provider == ProviderHuggingFace && cfg.Model.Token != "" && cfg.Model.Endpoint == "" {
		return nil, fmt.Errorf("model.endpoint is required when model.provider is %s", ProviderHuggingFace)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)

	v.SetDefault("database.path", "loancam.db")

	v.SetDefault("model.provider", ProviderNone)
	// Every key needs a default so AutomaticEnv surfaces it through
	// Unmarshal; the credential is usually supplied via LOANCAM_MODEL_TOKEN.
	v.SetDefault("model.token", "")
	v.SetDefault("model.endpoint", "")
	v.SetDefault("model.model", "")
	v.SetDefault("model.timeout", 30*time.Second)
	v.SetDefault("model.max_tokens", 256)
	v.SetDefault("model.temperature", 0.7)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", true)

	v.SetDefault("scheduler.maintenance_interval", 24*time.Hour)
}
