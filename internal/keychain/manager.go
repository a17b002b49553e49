// Copyright (c) 2025 Superchain
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package keychain provides centralized, thread-safe keychain operations for
// the superchain client. It manages all interactions with the OS
// keychain/credential store, giving the CLI one place to store and retrieve
// the API username and password used for the data streams.
//
// The package supports macOS Keychain, Windows Credential Manager and the
// freedesktop secret service, with thread-safe operations and proper error
// handling.
package keychain

import (
	"errors"
	"runtime"
	"sync"

	"github.com/99designs/keyring"
)

// Global keychain manager instance
var (
	globalManager *Manager
	globalError   error
	mu            sync.Mutex
)

// Manager provides centralized, thread-safe operations for the OS keychain.
type Manager struct {
	mu      sync.RWMutex
	ring    keyring.Keyring
	backend keychainBackend
}

// keychainBackend defines the interface for keychain operations.
type keychainBackend interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Delete(key string) error
}

// ServiceName identifies our keychain/credential store namespace.
const ServiceName = "superchain"

// Keys used for storing secrets in the OS keychain.
const (
	KeyUsername = "api_username"
	KeyPassword = "api_password"
)

// NewManager creates a new keychain manager with the OS keyring initialized.
func NewManager() (*Manager, error) {
	// Try native security backend first on macOS
	if runtime.GOOS == "darwin" {
		backend, err := newSecurityBackend()
		if err == nil {
			return &Manager{backend: backend}, nil
		}
		// Fall through to keyring library if security command fails
	}

	ring, err := openRing()
	if err != nil {
		return nil, err
	}

	return &Manager{
		ring: ring,
	}, nil
}

// GetManager returns the global keychain manager instance.
// If not initialized, it will be created on first call.
// If initialization fails, it will retry on subsequent calls.
func GetManager() (*Manager, error) {
	mu.Lock()
	defer mu.Unlock()

	// If already initialized successfully, return it
	if globalManager != nil {
		return globalManager, nil
	}

	// If previous initialization failed, retry
	globalManager, globalError = NewManager()
	if globalError != nil {
		return nil, globalError
	}

	return globalManager, nil
}

// openRing opens the OS keyring using native platform backends only.
// No file fallback: credentials either land in a real credential store or
// the caller falls back to environment variables.
func openRing() (keyring.Keyring, error) {
	var allowedBackends []keyring.BackendType
	switch runtime.GOOS {
	case "darwin":
		// Try macOS Keychain first, then pass (password store) as fallback.
		// Pass requires the 'pass' utility installed: brew install pass
		allowedBackends = []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.PassBackend,
		}
	case "windows":
		allowedBackends = []keyring.BackendType{keyring.WinCredBackend}
	case "linux":
		allowedBackends = []keyring.BackendType{
			keyring.SecretServiceBackend,
			keyring.PassBackend,
		}
	default:
		return nil, errors.New("secure storage not supported on this OS")
	}

	cfg := keyring.Config{
		ServiceName:     ServiceName,
		AllowedBackends: allowedBackends,
		PassPrefix:      ServiceName,
	}

	// Hint prefixes where supported to minimize namespace collisions
	if runtime.GOOS == "windows" {
		cfg.WinCredPrefix = ServiceName
	}

	ring, err := keyring.Open(cfg)
	if err != nil {
		if runtime.GOOS == "darwin" {
			return nil, errors.New("macOS Keychain unavailable. On macOS 26.0+, install 'pass': brew install pass gnupg && gpg --generate-key && pass init <gpg-key-id>")
		}
		return nil, err
	}

	return ring, nil
}

// SaveCredentials stores the API username and password in the OS keychain.
// This method is thread-safe.
func (m *Manager) SaveCredentials(username, password string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Use native backend if available
	if m.backend != nil {
		if err := m.backend.Set(KeyUsername, username); err != nil {
			return err
		}
		return m.backend.Set(KeyPassword, password)
	}

	// Fallback to keyring library
	if err := m.ring.Set(keyring.Item{Key: KeyUsername, Data: []byte(username)}); err != nil {
		return err
	}
	return m.ring.Set(keyring.Item{Key: KeyPassword, Data: []byte(password)})
}

// LoadCredentials retrieves the API username and password from the keychain.
// This method is thread-safe.
func (m *Manager) LoadCredentials() (username, password string, err error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.backend != nil {
		username, err = m.backend.Get(KeyUsername)
		if err != nil {
			return "", "", err
		}
		password, err = m.backend.Get(KeyPassword)
		if err != nil {
			return "", "", err
		}
	} else {
		var it keyring.Item
		if it, err = m.ring.Get(KeyUsername); err != nil {
			return "", "", err
		}
		username = string(it.Data)
		if it, err = m.ring.Get(KeyPassword); err != nil {
			return "", "", err
		}
		password = string(it.Data)
	}

	if username == "" {
		return "", "", errors.New("empty stored username")
	}
	return username, password, nil
}

// ClearCredentials removes the stored API credentials from the keychain.
// This method is thread-safe.
func (m *Manager) ClearCredentials() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.backend != nil {
		_ = m.backend.Delete(KeyUsername)
		_ = m.backend.Delete(KeyPassword)
		return nil
	}

	_ = m.ring.Remove(KeyUsername)
	_ = m.ring.Remove(KeyPassword)
	return nil
}
