// Package config resolves the client's process configuration from
// environment variables, .env files and an optional ~/.setu.yaml.
package config

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/dhartisetu/setu/pkg/constants"
	"github.com/dhartisetu/setu/pkg/errors"
)

// Viper keys.
const (
	KeyAPIURL  = "api_url"
	KeyTimeout = "timeout"
)

var loadEnvOnce sync.Once

// LoadEnvFiles loads .env then .env.local into the process environment.
// Variables already set in the environment win. Safe to call repeatedly.
func LoadEnvFiles() {
	loadEnvOnce.Do(func() {
		for _, envFile := range []string{".env", ".env.local"} {
			_ = godotenv.Load(envFile)
		}
	})
}

// New returns a viper instance bound to the setu environment variables
// and the optional config file. Missing files are not an error.
func New(configFile string) *viper.Viper {
	LoadEnvFiles()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv(KeyAPIURL, constants.EnvAPIURL, constants.EnvLegacyAPIURL)
	_ = v.BindEnv(KeyTimeout, constants.EnvTimeout)
	v.SetDefault(KeyTimeout, constants.DefaultHTTPTimeout)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".setu")
	}
	_ = v.ReadInConfig()

	return v
}

// APIURL returns the configured backend server URL (without the /api/v1 prefix).
func APIURL(v *viper.Viper) (string, error) {
	url := strings.TrimSpace(v.GetString(KeyAPIURL))
	if url == "" {
		return "", errors.NewConfigError("config",
			constants.EnvAPIURL+" (or "+constants.EnvLegacyAPIURL+") is not set", nil)
	}
	return url, nil
}

// Timeout returns the configured request timeout.
func Timeout(v *viper.Viper) time.Duration {
	if d := v.GetDuration(KeyTimeout); d > 0 {
		return d
	}
	return constants.DefaultHTTPTimeout
}
