// Package config resolves runtime configuration from defaults, an optional
// worksheetz.yaml, a .env file and WORKSHEETZ_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/abhisek/worksheetz/internal/llm"
	"github.com/abhisek/worksheetz/internal/problem"
)

const envPrefix = "WORKSHEETZ"

type Config struct {
	Env        string           `mapstructure:"env"`
	Log        LogConfig        `mapstructure:"log"`
	Generation GenerationConfig `mapstructure:"generation"`
	Server     ServerConfig     `mapstructure:"server"`
	DB         DBConfig         `mapstructure:"db"`
	Sentry     SentryConfig     `mapstructure:"sentry"`
	LLM        llm.Config       `mapstructure:"llm"`
}

type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level"`
	// File redirects logs away from stderr. The TUI discards logs unless
	// this is set.
	File string `mapstructure:"file"`
}

type GenerationConfig struct {
	// MaxAttempts caps every generate-validate-retry loop whose settings do
	// not set their own cap.
	MaxAttempts int `mapstructure:"max_attempts"`
	// DefaultCount is used when a request names neither a count nor auto-fit.
	DefaultCount int `mapstructure:"default_count"`
	// MaxCount bounds the problems in one batch.
	MaxCount int `mapstructure:"max_count"`
	// Concurrency bounds the sections of a bundle generated at once.
	Concurrency int `mapstructure:"concurrency"`
}

type ServerConfig struct {
	Addr         string        `mapstructure:"addr"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type DBConfig struct {
	// Path is the SQLite history file. Empty means the XDG default.
	Path string `mapstructure:"path"`
	// Disabled turns off the generation history.
	Disabled bool `mapstructure:"disabled"`
}

type SentryConfig struct {
	DSN              string  `mapstructure:"dsn"`
	TracesSampleRate float64 `mapstructure:"traces_sample_rate"`
}

// Production reports whether the service runs in production mode.
func (c *Config) Production() bool {
	return c.Env == "production"
}

// AIEnabled reports whether an LLM provider is configured.
func (c *Config) AIEnabled() bool {
	return c.LLM.Provider != ""
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	v.SetDefault("generation.max_attempts", problem.DefaultMaxAttempts)
	v.SetDefault("generation.default_count", 10)
	v.SetDefault("generation.max_count", 100)
	v.SetDefault("generation.concurrency", 4)

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 60*time.Second)

	v.SetDefault("db.path", "")
	v.SetDefault("db.disabled", false)

	v.SetDefault("sentry.dsn", "")
	v.SetDefault("sentry.traces_sample_rate", 0.2)

	d := llm.DefaultConfig()
	// An empty provider means "discover from the standard API key variables".
	v.SetDefault("llm.provider", "")
	v.SetDefault("llm.timeout", d.Timeout)
	for name, pc := range d.Providers() {
		v.SetDefault("llm."+name+".api_key", "")
		v.SetDefault("llm."+name+".model", pc.Model)
		v.SetDefault("llm."+name+".base_url", pc.BaseURL)
	}
	v.SetDefault("llm.retry.max_attempts", d.Retry.MaxAttempts)
	v.SetDefault("llm.retry.initial_wait", d.Retry.InitialWait)
	v.SetDefault("llm.retry.max_wait", d.Retry.MaxWait)
	v.SetDefault("llm.retry.multiplier", d.Retry.Multiplier)
}

// Load resolves the configuration. file, when non-empty, must exist;
// otherwise worksheetz.yaml is looked up in the working directory and in
// $XDG_CONFIG_HOME/worksheetz, and is optional.
func Load(file string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("worksheetz")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir := configDir(); dir != "" {
			v.AddConfigPath(dir)
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if cfg.LLM.Provider == "" {
		cfg.LLM.Discover()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges. An explicitly selected LLM provider must
// have its key.
func (c *Config) Validate() error {
	g := c.Generation
	if g.MaxAttempts < 1 {
		return fmt.Errorf("generation.max_attempts must be positive, got %d", g.MaxAttempts)
	}
	if g.MaxCount < 1 {
		return fmt.Errorf("generation.max_count must be positive, got %d", g.MaxCount)
	}
	if g.DefaultCount < 1 || g.DefaultCount > g.MaxCount {
		return fmt.Errorf("generation.default_count must be between 1 and %d, got %d", g.MaxCount, g.DefaultCount)
	}
	if g.Concurrency < 1 {
		return fmt.Errorf("generation.concurrency must be positive, got %d", g.Concurrency)
	}
	if c.AIEnabled() {
		if err := c.LLM.Validate(); err != nil {
			return fmt.Errorf("llm: %w", err)
		}
	}
	return nil
}

func configDir() string {
	if d := os.Getenv("XDG_CONFIG_HOME"); d != "" {
		return filepath.Join(d, "worksheetz")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "worksheetz")
	}
	return ""
}
