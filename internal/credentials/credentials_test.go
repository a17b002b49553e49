// Copyright (c) 2025 Superchain
// Licensed under the MIT License. See LICENSE file in the project root for details.

package credentials

import (
	"testing"
)

func TestResolvePrefersEnvironment(t *testing.T) {
	t.Setenv(EnvUsername, "env-user")
	t.Setenv(EnvPassword, "env-pass")

	u, p, err := Resolve()
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if u != "env-user" || p != "env-pass" {
		t.Errorf("Resolve() = %q, %q, want env-user, env-pass", u, p)
	}
}

func TestResolveAllowsEmptyEnvPassword(t *testing.T) {
	t.Setenv(EnvUsername, "env-user")
	t.Setenv(EnvPassword, "")

	u, p, err := Resolve()
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if u != "env-user" || p != "" {
		t.Errorf("Resolve() = %q, %q, want env-user with empty password", u, p)
	}
}

func TestEndpointOverride(t *testing.T) {
	t.Setenv(EnvURL, "")
	if _, ok := EndpointOverride(); ok {
		t.Error("EndpointOverride() reported a value for an unset variable")
	}

	t.Setenv(EnvURL, "wss://example.com/v1/websocket")
	v, ok := EndpointOverride()
	if !ok || v != "wss://example.com/v1/websocket" {
		t.Errorf("EndpointOverride() = %q, %v", v, ok)
	}
}
