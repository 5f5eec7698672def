package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config selects and configures the LLM backend. It is decoded from the
// "llm" section of the app config.
type Config struct {
	// Provider is one of anthropic, openai, gemini, openrouter or mock.
	Provider string `mapstructure:"provider"`

	Anthropic  ProviderConfig `mapstructure:"anthropic"`
	OpenAI     ProviderConfig `mapstructure:"openai"`
	Gemini     ProviderConfig `mapstructure:"gemini"`
	OpenRouter ProviderConfig `mapstructure:"openrouter"`

	Retry RetryConfig `mapstructure:"retry"`
	// Timeout bounds one Generate call, retries included. Zero disables it.
	Timeout time.Duration `mapstructure:"timeout"`
}

// ProviderConfig is the per-vendor part of Config. Model may be one of
// the short aliases in modelAliases.
type ProviderConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

type RetryConfig struct {
	MaxAttempts int           `mapstructure:"max_attempts"`
	InitialWait time.Duration `mapstructure:"initial_wait"`
	MaxWait     time.Duration `mapstructure:"max_wait"`
	Multiplier  float64       `mapstructure:"multiplier"`
}

func DefaultConfig() Config {
	return Config{
		Provider:   "anthropic",
		Anthropic:  ProviderConfig{Model: "claude-haiku"},
		OpenAI:     ProviderConfig{Model: "gpt-mini"},
		Gemini:     ProviderConfig{Model: "gemini-flash"},
		OpenRouter: ProviderConfig{Model: "google/gemini-2.5-flash", BaseURL: defaultOpenRouterBaseURL},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2,
		},
		Timeout: 30 * time.Second,
	}
}

// vendors lists the keyed providers in discovery order with the API key
// variable each vendor's own tooling reads.
var vendors = []struct {
	name string
	env  string
	conf func(*Config) *ProviderConfig
}{
	{"gemini", "GEMINI_API_KEY", func(c *Config) *ProviderConfig { return &c.Gemini }},
	{"openai", "OPENAI_API_KEY", func(c *Config) *ProviderConfig { return &c.OpenAI }},
	{"anthropic", "ANTHROPIC_API_KEY", func(c *Config) *ProviderConfig { return &c.Anthropic }},
	{"openrouter", "OPENROUTER_API_KEY", func(c *Config) *ProviderConfig { return &c.OpenRouter }},
}

// Providers returns the per-vendor sections keyed by provider name.
func (c *Config) Providers() map[string]*ProviderConfig {
	out := make(map[string]*ProviderConfig, len(vendors))
	for _, v := range vendors {
		out[v.name] = v.conf(c)
	}
	return out
}

// Discover picks the first vendor whose API key variable is set and
// reports whether there was one. Models and other settings are kept.
func (c *Config) Discover() bool {
	for _, v := range vendors {
		if key := os.Getenv(v.env); key != "" {
			c.Provider = v.name
			v.conf(c).APIKey = key
			return true
		}
	}
	return false
}

// Validate checks that Provider is known and, unless it is the mock, has
// an API key.
func (c Config) Validate() error {
	if c.Provider == "mock" {
		return nil
	}
	for _, v := range vendors {
		if v.name != c.Provider {
			continue
		}
		if v.conf(&c).APIKey == "" {
			return fmt.Errorf("WORKSHEETZ_LLM_%s_API_KEY or %s is required for the %s provider",
				strings.ToUpper(v.name), v.env, v.name)
		}
		return nil
	}
	return fmt.Errorf("unknown LLM provider: %q", c.Provider)
}
