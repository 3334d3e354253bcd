// Package config provides configuration loading for the errtrail CLI.
package config

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/fyrsmithlabs/errtrail/internal/logging"
)

const (
	maxConfigFileSize = 1024 * 1024 // 1MB

	// envPrefix namespaces errtrail environment variables, e.g.
	// ERRTRAIL_API_KEY, ERRTRAIL_ENDPOINT, ERRTRAIL_LOG_LEVEL.
	envPrefix = "ERRTRAIL_"
)

// Config holds the CLI's full configuration.
//
// The telemetry library itself accepts whatever it is given without
// validation; the Validate here protects interactive users from silently
// misconfigured sends.
type Config struct {
	APIKey      Secret            `koanf:"api_key"`
	Endpoint    string            `koanf:"endpoint"`
	Environment string            `koanf:"environment"`
	Release     string            `koanf:"release"`
	Tags        map[string]string `koanf:"tags"`
	Log         logging.Config    `koanf:"log"`
}

// NewDefaultConfig returns the default configuration.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "production",
		Tags:        map[string]string{},
		Log:         *logging.NewDefaultConfig(),
	}
}

// Validate checks that the configuration can produce working sends.
func (c *Config) Validate() error {
	if !c.APIKey.IsSet() {
		return fmt.Errorf("api_key is required")
	}
	if c.Endpoint == "" {
		return fmt.Errorf("endpoint is required")
	}
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint %q: %w", c.Endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("endpoint %q must use http or https", c.Endpoint)
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log config: %w", err)
	}
	return nil
}

// Load reads configuration from an optional YAML file, then overrides with
// ERRTRAIL_* environment variables.
//
// Configuration precedence (highest to lowest):
//  1. Environment variables (ERRTRAIL_API_KEY, ERRTRAIL_LOG_LEVEL, ...)
//  2. YAML config file, when configPath is non-empty and the file exists
//  3. Defaults from NewDefaultConfig
//
// Environment variable mapping strips the prefix, lowercases, and turns the
// first underscore-separated token into a section when one matches:
//
//	ERRTRAIL_API_KEY   -> api_key
//	ERRTRAIL_ENDPOINT  -> endpoint
//	ERRTRAIL_LOG_LEVEL -> log.level
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			f, err := os.Open(configPath)
			if err != nil {
				return nil, fmt.Errorf("failed to open config file: %w", err)
			}
			defer f.Close()

			content, err := io.ReadAll(io.LimitReader(f, maxConfigFileSize+1))
			if err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
			if len(content) > maxConfigFileSize {
				return nil, fmt.Errorf("config file %s exceeds %d bytes", configPath, maxConfigFileSize)
			}

			if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
			}
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", transformEnv), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	cfg := NewDefaultConfig()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// transformEnv maps an environment variable name to a koanf key.
func transformEnv(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, envPrefix))

	// LOG_* variables address the nested log section; everything else is a
	// flat top-level key (api_key, endpoint, environment, release).
	if rest, ok := strings.CutPrefix(s, "log_"); ok {
		return "log." + rest
	}
	return s
}
