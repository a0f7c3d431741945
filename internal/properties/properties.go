package properties

import (
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v10"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	RootPath string `env:"ROOT_PATH" envDefault:"."`

	Logging   LoggingConfig   `envPrefix:"LOG_"`
	Narrative NarrativeConfig `envPrefix:"OPENAI_"`
	Samples   SamplesConfig   `envPrefix:"SAMPLES_"`

	DiscordErrorNotificationURL   string `env:"DISCORD_ERROR_NOTIFICATION_URL"`
	DiscordSuccessNotificationURL string `env:"DISCORD_SUCCESS_NOTIFICATION_URL"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"text"`
}

// NarrativeConfig contains the hosted AI summary configuration.
// The feature stays disabled while APIKey is empty.
type NarrativeConfig struct {
	APIKey  string `env:"API_KEY"`
	BaseURL string `env:"BASE_URL"`
	Model   string `env:"MODEL" envDefault:"gpt-4o-mini"`
}

// SamplesConfig contains optional credentials for protected sample mirrors.
// Anonymous HTTP is used when they are unset.
type SamplesConfig struct {
	ClientID     string `env:"OAUTH_CLIENT_ID"`
	ClientSecret string `env:"OAUTH_CLIENT_SECRET"`
	TokenURL     string `env:"OAUTH_TOKEN_URL"`
}

var current = Config{RootPath: ".", Logging: LoggingConfig{Level: "info", Format: "text"}, Narrative: NarrativeConfig{Model: "gpt-4o-mini"}}

// Load parses configuration from environment variables and keeps the result
// for the package accessors.
func Load() error {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("failed to parse configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	current = cfg
	return nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level %q, must be one of: debug, info, warn, error", c.Logging.Level)
	}

	validLogFormats := map[string]bool{
		"json": true,
		"text": true,
	}
	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("invalid log format %q, must be one of: json, text", c.Logging.Format)
	}

	if c.RootPath == "" {
		return fmt.Errorf("root path cannot be empty")
	}

	return nil
}

// Get returns the last loaded configuration.
func Get() Config {
	return current
}

func RootPath() string {
	return current.RootPath
}

// DataPath is the directory holding downloads, caches and results.
func DataPath() string {
	return filepath.Join(current.RootPath, "data")
}

// ResultPath is the directory artifacts are written to.
func ResultPath() string {
	return filepath.Join(DataPath(), "result")
}

func DiscordErrorNotificationUrl() string {
	return current.DiscordErrorNotificationURL
}

func DiscordSuccessNotificationUrl() string {
	return current.DiscordSuccessNotificationURL
}
