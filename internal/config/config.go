package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Session struct {
		// WelcomeDelay is how long after the session enters the main state
		// the welcome notification is synthesized.
		WelcomeDelay string `yaml:"welcome_delay" env:"SESSION_WELCOME_DELAY"`
	} `yaml:"session"`

	Suggestions struct {
		APIKey   string `yaml:"api_key" env:"SUGGESTIONS_API_KEY"`
		Endpoint string `yaml:"endpoint" env:"SUGGESTIONS_ENDPOINT"`
		Model    string `yaml:"model" env:"SUGGESTIONS_MODEL"`
		Timeout  string `yaml:"timeout" env:"SUGGESTIONS_TIMEOUT"`
	} `yaml:"suggestions"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load default config with sane defaults
	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		// Parse YAML into Config structure
		err = yaml.Unmarshal(file, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	// Validate config
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	// Session defaults
	config.Session.WelcomeDelay = "2s"

	// Suggestion collaborator defaults. An empty API key keeps the static
	// provider active; the engine never requires the collaborator.
	config.Suggestions.Endpoint = "https://generativelanguage.googleapis.com/v1beta/models"
	config.Suggestions.Model = "gemini-3-flash-preview"
	config.Suggestions.Timeout = "5s"

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	// Recursively process the config structure and look for env tags
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	if _, err := time.ParseDuration(config.Session.WelcomeDelay); err != nil {
		return fmt.Errorf("invalid session welcome delay format: %w", err)
	}

	if _, err := time.ParseDuration(config.Suggestions.Timeout); err != nil {
		return fmt.Errorf("invalid suggestions timeout format: %w", err)
	}

	return nil
}

// WelcomeDelay returns the parsed session welcome delay
func (c *Config) WelcomeDelay() time.Duration {
	d, err := time.ParseDuration(c.Session.WelcomeDelay)
	if err != nil {
		return 2 * time.Second
	}
	return d
}

// SuggestionTimeout returns the parsed suggestion request timeout
func (c *Config) SuggestionTimeout() time.Duration {
	d, err := time.ParseDuration(c.Suggestions.Timeout)
	if err != nil {
		return 5 * time.Second
	}
	return d
}
