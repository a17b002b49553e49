// Copyright (c) 2025 Superchain
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package credentials resolves the API username and password for the client.
// Environment variables win so scripts and CI can inject credentials without
// touching the keychain; interactive use falls back to the OS credential
// store populated by `superchain login`.
package credentials

import (
	"errors"
	"os"

	"superchain/client/internal/keychain"
)

// Environment variables honored for credential and endpoint overrides.
const (
	EnvURL      = "SUPER_URL"
	EnvUsername = "SUPER_USERNAME"
	EnvPassword = "SUPER_PASSWORD"
)

// ErrNotFound is returned when no credentials can be resolved from either
// the environment or the keychain.
var ErrNotFound = errors.New("no credentials: set " + EnvUsername + "/" + EnvPassword + " or run 'superchain login'")

// Resolve returns the API credentials, environment first, keychain second.
func Resolve() (username, password string, err error) {
	if u, p, ok := fromEnv(); ok {
		return u, p, nil
	}

	mgr, err := keychain.GetManager()
	if err != nil {
		return "", "", ErrNotFound
	}
	u, p, err := mgr.LoadCredentials()
	if err != nil {
		return "", "", ErrNotFound
	}
	return u, p, nil
}

// EndpointOverride returns the SUPER_URL value, when set. It overrides the
// configured endpoint entirely, credentials included when embedded.
func EndpointOverride() (string, bool) {
	v := os.Getenv(EnvURL)
	return v, v != ""
}

func fromEnv() (username, password string, ok bool) {
	username = os.Getenv(EnvUsername)
	password = os.Getenv(EnvPassword)
	return username, password, username != ""
}
