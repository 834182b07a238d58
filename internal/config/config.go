// Package config loads the process configuration for the Solvr MCP server.
//
// Configuration comes from two sources, in precedence order:
//
//  1. Environment variables (SOLVR_API_KEY, SOLVR_API_URL, SOLVR_CALL_TIMEOUT)
//  2. An optional TOML config file, by default ~/.solvr/config.toml
//
// The API key is mandatory: the server refuses to start without credentials.
// Configuration is loaded once at startup and never reloaded.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

const (
	// DefaultAPIURL is the production Solvr API endpoint, used when no
	// override is configured.
	DefaultAPIURL = "https://api.solvr.dev"

	// DefaultCallTimeout bounds a single tool call, including the REST
	// round trip. A call that exceeds it yields an error-flagged tool
	// result instead of stalling the transport loop.
	DefaultCallTimeout = 30 * time.Second
)

// Config holds the immutable process-wide configuration.
type Config struct {
	// APIKey authenticates every request against the Solvr API.
	APIKey string `env:"SOLVR_API_KEY"`

	// APIURL is the base URL of the Solvr API, without a trailing slash.
	APIURL string `env:"SOLVR_API_URL"`

	// CallTimeout is the per-tool-call deadline.
	CallTimeout time.Duration `env:"SOLVR_CALL_TIMEOUT"`
}

// fileConfig is the subset of configuration that may live in the config
// file. The timeout is deliberately env/flag-only: the file mirrors the
// Solvr CLI's config, which carries credentials and endpoint only.
type fileConfig struct {
	APIKey string `toml:"api_key"`
	APIURL string `toml:"api_url"`
}

// DefaultPath returns the default config file location (~/.solvr/config.toml),
// or "" when the home directory cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".solvr", "config.toml")
}

// Load builds the configuration from the optional TOML file at path and the
// process environment. Environment values override file values. A missing
// file is not an error; a missing API key is.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		switch _, err := os.Stat(path); {
		case err == nil:
			var fc fileConfig
			if _, err := toml.DecodeFile(path, &fc); err != nil {
				return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
			}
			cfg.APIKey = fc.APIKey
			cfg.APIURL = fc.APIURL
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")

	if cfg.CallTimeout <= 0 {
		cfg.CallTimeout = DefaultCallTimeout
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("SOLVR_API_KEY is not set: export it, or put api_key in %s", configHint(path))
	}

	return cfg, nil
}

func configHint(path string) string {
	if path != "" {
		return path
	}
	return "~/.solvr/config.toml"
}

// MaskAPIKey renders an API key safe for logging, keeping only the first
// and last few characters.
func MaskAPIKey(key string) string {
	if len(key) <= 10 {
		return "****"
	}
	return key[:6] + "****" + key[len(key)-4:]
}
