// Package xdg resolves XDG Base Directory paths for the superchain client.
// It determines where configuration files belong on Unix-like systems,
// falling back to the traditional dotfile location when the XDG environment
// variable is unset.
package xdg

import (
	"os"
	"path/filepath"
)

// ConfigDir returns the XDG config directory for the client.
// The directory is created with private permissions (0700) if missing.
// It falls back to ~/.config/superchain when XDG_CONFIG_HOME is unset.
func ConfigDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	dir := filepath.Join(base, "superchain")
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}
