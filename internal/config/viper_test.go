package config

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfig_Defaults(t *testing.T) {
	// Run from a temp dir so no stray config.yaml is picked up
	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer func() { _ = os.Chdir(origDir) }()

	config, err := InitializeConfig()
	require.NoError(t, err)
	require.NotNil(t, config)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Empty(t, config.Organizer.CategoriesFile)
	assert.Equal(t, "Other", config.Organizer.FallbackCategory)
	assert.Equal(t, 10, config.Scraper.TimeoutSeconds)
	assert.Equal(t, 3, config.Scraper.MaxRetries)
	assert.Equal(t, "json", config.Scraper.Format)
	assert.False(t, config.AI.Enabled)
	assert.Equal(t, 587, config.SMTP.Port)
	assert.True(t, config.SMTP.StartTLS)
}

func TestInitializeConfig_EnvOverride(t *testing.T) {
	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer func() { _ = os.Chdir(origDir) }()

	t.Setenv("AUTOKIT_LOG_LEVEL", "debug")
	t.Setenv("AUTOKIT_SCRAPER_FORMAT", "csv")
	t.Setenv("SMTP_PASSWORD", "hunter2")

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "csv", config.Scraper.Format)
	assert.Equal(t, "hunter2", config.SMTP.Password)
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		c := &Config{}
		c.Log.Level = "info"
		c.Log.Format = "text"
		c.Organizer.FallbackCategory = "Other"
		c.Scraper.TimeoutSeconds = 10
		c.Scraper.MaxRetries = 3
		c.Scraper.Format = "json"
		c.SMTP.Port = 587
		return c
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:    "invalid log level",
			mutate:  func(c *Config) { c.Log.Level = "verbose" },
			wantErr: "invalid log level",
		},
		{
			name:    "invalid log format",
			mutate:  func(c *Config) { c.Log.Format = "xml" },
			wantErr: "invalid log format",
		},
		{
			name:    "empty fallback category",
			mutate:  func(c *Config) { c.Organizer.FallbackCategory = "" },
			wantErr: "fallback_category",
		},
		{
			name:    "scraper timeout out of range",
			mutate:  func(c *Config) { c.Scraper.TimeoutSeconds = 0 },
			wantErr: "timeout_seconds",
		},
		{
			name:    "scraper retries out of range",
			mutate:  func(c *Config) { c.Scraper.MaxRetries = 11 },
			wantErr: "max_retries",
		},
		{
			name:    "invalid scraper format",
			mutate:  func(c *Config) { c.Scraper.Format = "xml" },
			wantErr: "invalid scraper format",
		},
		{
			name:    "AI enabled without key",
			mutate:  func(c *Config) { c.AI.Enabled = true; c.AI.TimeoutSeconds = 30 },
			wantErr: "GEMINI_API_KEY",
		},
		{
			name:    "invalid smtp port",
			mutate:  func(c *Config) { c.SMTP.Port = 0 },
			wantErr: "smtp.port",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := validateConfig(c)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	c := &Config{}
	c.Log.Level = "debug"
	c.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(c)
	require.NotNil(t, logger)
	assert.Equal(t, logrus.DebugLevel, logger.Level)
	_, ok := logger.Formatter.(*logrus.JSONFormatter)
	assert.True(t, ok)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("AUTOKIT_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("AUTOKIT_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("AUTOKIT_MISSING_KEY", "fallback"))
}
