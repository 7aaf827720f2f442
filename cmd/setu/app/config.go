package app

import (
	"os"
	"time"

	"github.com/dhartisetu/setu/internal/config"
)

// Config holds the application configuration loaded from config files,
// environment variables and .env files. Flags override it after parsing.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Backend
	APIURL  string
	Timeout time.Duration

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (applied later by UpdateFromFlags)
// 2. Environment variables
// 3. .env and .env.local files
// 4. Config file (~/.setu.yaml)
// 5. Defaults
//
// A missing API URL is not an error here; commands that need the backend
// report it when they create the client.
func LoadConfig(configFile string) (*Config, error) {
	v := config.New(configFile)

	return &Config{
		Verbose:    v.GetBool("verbose"),
		Quiet:      v.GetBool("quiet"),
		NoColor:    v.GetBool("no-color"),
		Format:     v.GetString("format"),
		ConfigFile: v.ConfigFileUsed(),
		APIURL:     v.GetString(config.KeyAPIURL),
		Timeout:    config.Timeout(v),
		LogLevel:   os.Getenv("LOG_LEVEL"),
		LogFormat:  getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput:  getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}, nil
}

// UpdateFromFlags updates config values from parsed command flags so that
// explicit flags take precedence over the config file and environment.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel, apiURL string, timeout time.Duration) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
	if apiURL != "" {
		c.APIURL = apiURL
	}
	if timeout > 0 {
		c.Timeout = timeout
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
