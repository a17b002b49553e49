// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept here; credentials go to the OS keychain.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"superchain/client/internal/xdg"
)

// DefaultEndpoint is the hosted service the client talks to when no endpoint
// is configured.
const DefaultEndpoint = "app.superchain.network"

// Config holds non-sensitive CLI settings.
type Config struct {
	Endpoint string `json:"endpoint"`
	Secure   bool   `json:"secure"`
	LogLevel string `json:"log_level"`
}

// path returns the path to the config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads configuration; a missing file returns defaults.
func Load() (Config, error) {
	var c Config
	p, err := path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// Defaults (credentials come from env/keychain, not config)
			c.Endpoint = DefaultEndpoint
			c.Secure = true
			c.LogLevel = "info"
			return c, nil
		}
		return c, err
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, err
	}
	if c.Endpoint == "" {
		c.Endpoint = DefaultEndpoint
		c.Secure = true
	}
	return c, nil
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}
