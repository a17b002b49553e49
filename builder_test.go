// Copyright (c) 2025 Superchain
// Licensed under the MIT License. See LICENSE file in the project root for details.

package client

import (
	"encoding/json"
	"testing"

	"superchain/client/internal/config"
	"superchain/client/internal/credentials"
)

func TestNewBuilderDefaults(t *testing.T) {
	t.Setenv(credentials.EnvURL, "")
	t.Setenv(credentials.EnvUsername, "")
	t.Setenv(credentials.EnvPassword, "")

	b := NewBuilder()
	if b.endpoint != config.DefaultEndpoint {
		t.Errorf("endpoint = %q, want %q", b.endpoint, config.DefaultEndpoint)
	}
	if !b.secure {
		t.Error("default transport is not secure")
	}

	u := b.wsURL()
	if u.Scheme != "wss" {
		t.Errorf("scheme = %q, want wss", u.Scheme)
	}
	if u.Host != config.DefaultEndpoint {
		t.Errorf("host = %q, want %q", u.Host, config.DefaultEndpoint)
	}
}

func TestNewBuilderEnvOverrides(t *testing.T) {
	t.Setenv(credentials.EnvURL, "dev.internal:8080")
	t.Setenv(credentials.EnvUsername, "ci-bot")
	t.Setenv(credentials.EnvPassword, "hunter2")

	b := NewBuilder()
	if b.endpoint != "dev.internal:8080" {
		t.Errorf("endpoint = %q", b.endpoint)
	}
	if b.username != "ci-bot" || b.password != "hunter2" {
		t.Errorf("credentials = %q/%q", b.username, b.password)
	}
}

func TestBuilderSettersWin(t *testing.T) {
	t.Setenv(credentials.EnvURL, "dev.internal:8080")
	t.Setenv(credentials.EnvUsername, "ci-bot")
	t.Setenv(credentials.EnvPassword, "hunter2")

	b := NewBuilder().
		Endpoint("localhost:9000").
		Credential("alice", "s3cret").
		Secure(false)

	u := b.wsURL()
	if u.Scheme != "ws" {
		t.Errorf("scheme = %q, want ws", u.Scheme)
	}
	if u.Host != "localhost:9000" {
		t.Errorf("host = %q", u.Host)
	}
	if name := u.User.Username(); name != "alice" {
		t.Errorf("username = %q", name)
	}
	if pw, _ := u.User.Password(); pw != "s3cret" {
		t.Errorf("password = %q", pw)
	}
}

func TestEndpointAcceptsFullURL(t *testing.T) {
	t.Setenv(credentials.EnvURL, "")
	t.Setenv(credentials.EnvUsername, "")
	t.Setenv(credentials.EnvPassword, "")

	b := NewBuilder().Endpoint("ws://bob:pw@localhost:9000/ignored")
	if b.endpoint != "localhost:9000" {
		t.Errorf("endpoint = %q, want localhost:9000", b.endpoint)
	}
	if b.secure {
		t.Error("ws scheme did not disable secure transport")
	}
	if b.username != "bob" || b.password != "pw" {
		t.Errorf("credentials = %q/%q, want bob/pw", b.username, b.password)
	}
}

func TestToParams(t *testing.T) {
	got, err := toParams(nil)
	if err != nil {
		t.Fatalf("toParams(nil): %v", err)
	}
	if got != nil {
		t.Errorf("toParams(nil) = %v, want nil", got)
	}

	req := struct {
		Address string `json:"address"`
		Value   uint64 `json:"value"`
	}{Address: "0xabc", Value: 18446744073709551615}

	params, err := toParams(req)
	if err != nil {
		t.Fatalf("toParams: %v", err)
	}
	if params["address"] != "0xabc" {
		t.Errorf("address = %v", params["address"])
	}
	// Large numbers must survive without float rounding.
	if params["value"] != json.Number("18446744073709551615") {
		t.Errorf("value = %v (%T)", params["value"], params["value"])
	}
}
