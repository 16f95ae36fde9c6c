package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"marketadapter/internal/fmp"
	"marketadapter/internal/fred"
	"marketadapter/internal/platform"
)

// DefaultTimeout bounds a single upstream query.
const DefaultTimeout = 30 * time.Second

// Config holds all configuration for the market data adapter.
type Config struct {
	// Provider credentials. Both are optional; a provider called without its
	// key reports the upstream rejection.
	FMPAPIKey  string `mapstructure:"fmp_api_key"`
	FREDAPIKey string `mapstructure:"fred_api_key"`

	// Base URLs for API endpoints (configurable for testing)
	FMPBaseURL  string `mapstructure:"fmp_base_url"`
	FREDBaseURL string `mapstructure:"fred_base_url"`

	Timeout  time.Duration `mapstructure:"timeout"`
	LogLevel string        `mapstructure:"log_level"`
}

// Load reads configuration from an optional .env file, environment variables,
// an optional config file and any flags already bound to v. Flags take
// precedence over environment variables, which take precedence over the
// config file.
//
// Recognised environment variables:
//   - OPENBB_FMP_API_KEY or FMP_API_KEY
//   - OPENBB_FRED_API_KEY or FRED_API_KEY
//   - FMP_BASE_URL (optional, defaults to production)
//   - FRED_BASE_URL (optional, defaults to production)
//   - ADAPTER_TIMEOUT (optional, defaults to 30s)
//   - ADAPTER_LOG_LEVEL (optional, defaults to warn)
//
// When configFile is empty, config.yaml is looked up in the working directory
// and in $HOME/.marketadapter and skipped if absent.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	// Existing environment variables win over .env entries.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	v.SetDefault("fmp_base_url", fmp.DefaultBaseURL)
	v.SetDefault("fred_base_url", fred.DefaultBaseURL)
	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("log_level", "warn")

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.marketadapter")

		var notFound viper.ConfigFileNotFoundError
		if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	_ = v.BindEnv("fmp_api_key", "OPENBB_FMP_API_KEY", "FMP_API_KEY")
	_ = v.BindEnv("fred_api_key", "OPENBB_FRED_API_KEY", "FRED_API_KEY")
	_ = v.BindEnv("fmp_base_url", "FMP_BASE_URL")
	_ = v.BindEnv("fred_base_url", "FRED_BASE_URL")
	_ = v.BindEnv("timeout", "ADAPTER_TIMEOUT")
	_ = v.BindEnv("log_level", "ADAPTER_LOG_LEVEL")

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.Timeout < 0 {
		return nil, fmt.Errorf("invalid timeout %s: must not be negative", config.Timeout)
	}
	if _, err := config.Level(); err != nil {
		return nil, err
	}

	return config, nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// Credentials returns the provider credential store.
func (c *Config) Credentials() platform.Credentials {
	return platform.Credentials{
		FMPAPIKey:  c.FMPAPIKey,
		FREDAPIKey: c.FREDAPIKey,
	}
}

// Endpoints returns the provider base URLs.
func (c *Config) Endpoints() platform.Endpoints {
	return platform.Endpoints{
		FMPBaseURL:  c.FMPBaseURL,
		FREDBaseURL: c.FREDBaseURL,
	}
}
