// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Organizer struct {
		CategoriesFile   string `mapstructure:"categories_file" yaml:"categories_file"`
		FallbackCategory string `mapstructure:"fallback_category" yaml:"fallback_category"`
	} `mapstructure:"organizer" yaml:"organizer"`

	Scraper struct {
		TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		MaxRetries     int    `mapstructure:"max_retries" yaml:"max_retries"`
		UserAgent      string `mapstructure:"user_agent" yaml:"user_agent"`
		Format         string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"scraper" yaml:"scraper"`

	AI struct {
		Enabled        bool   `mapstructure:"enabled" yaml:"enabled"`
		Model          string `mapstructure:"model" yaml:"model"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		APIKey         string `mapstructure:"api_key" yaml:"-"` // Never serialize API key
	} `mapstructure:"ai" yaml:"ai"`

	SMTP struct {
		Host     string `mapstructure:"host" yaml:"host"`
		Port     int    `mapstructure:"port" yaml:"port"`
		Username string `mapstructure:"username" yaml:"username"`
		Password string `mapstructure:"password" yaml:"-"` // Never serialize password
		From     string `mapstructure:"from" yaml:"from"`
		StartTLS bool   `mapstructure:"starttls" yaml:"starttls"`
	} `mapstructure:"smtp" yaml:"smtp"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.autokit")
	v.AddConfigPath(".autokit")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("AUTOKIT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	// 5. Secrets always come from unprefixed env variables
	if err := v.BindEnv("ai.api_key", "GEMINI_API_KEY"); err != nil {
		fmt.Printf("Warning: failed to bind GEMINI_API_KEY environment variable: %v\n", err)
	}
	if err := v.BindEnv("smtp.password", "SMTP_PASSWORD"); err != nil {
		fmt.Printf("Warning: failed to bind SMTP_PASSWORD environment variable: %v\n", err)
	}
	if err := v.BindEnv("smtp.username", "SMTP_USERNAME"); err != nil {
		fmt.Printf("Warning: failed to bind SMTP_USERNAME environment variable: %v\n", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 6. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Organizer defaults. An empty categories_file means the store searches
	// its standard locations and falls back to the built-in table.
	v.SetDefault("organizer.categories_file", "")
	v.SetDefault("organizer.fallback_category", "Other")

	// Scraper defaults
	v.SetDefault("scraper.timeout_seconds", 10)
	v.SetDefault("scraper.max_retries", 3)
	v.SetDefault("scraper.user_agent", "autokit/1.0")
	v.SetDefault("scraper.format", "json")

	// AI defaults
	v.SetDefault("ai.enabled", false)
	v.SetDefault("ai.model", "gemini-2.0-flash")
	v.SetDefault("ai.timeout_seconds", 30)

	// SMTP defaults
	v.SetDefault("smtp.host", "")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.from", "")
	v.SetDefault("smtp.starttls", true)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Organizer.FallbackCategory == "" {
		return fmt.Errorf("organizer.fallback_category must not be empty")
	}

	if config.Scraper.TimeoutSeconds < 1 || config.Scraper.TimeoutSeconds > 300 {
		return fmt.Errorf("scraper.timeout_seconds must be between 1 and 300, got: %d", config.Scraper.TimeoutSeconds)
	}

	if config.Scraper.MaxRetries < 1 || config.Scraper.MaxRetries > 10 {
		return fmt.Errorf("scraper.max_retries must be between 1 and 10, got: %d", config.Scraper.MaxRetries)
	}

	switch config.Scraper.Format {
	case "json", "csv", "markdown":
	default:
		return fmt.Errorf("invalid scraper format: %s (must be 'json', 'csv' or 'markdown')", config.Scraper.Format)
	}

	if config.AI.Enabled {
		if config.AI.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY required when AI is enabled")
		}

		if config.AI.TimeoutSeconds < 1 || config.AI.TimeoutSeconds > 300 {
			return fmt.Errorf("ai.timeout_seconds must be between 1 and 300, got: %d", config.AI.TimeoutSeconds)
		}
	}

	if config.SMTP.Port < 1 || config.SMTP.Port > 65535 {
		return fmt.Errorf("smtp.port must be between 1 and 65535, got: %d", config.SMTP.Port)
	}

	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
