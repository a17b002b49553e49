// Copyright (c) 2025 Superchain
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package client is the public entry point to the Superchain data service.
// A Builder assembles endpoint and credentials (environment variables and the
// OS keychain fill the gaps), and produces either a websocket client for
// multiplexed streaming queries or an HTTP client for one-shot requests.
package client

import (
	"context"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"superchain/client/internal/config"
	"superchain/client/internal/credentials"
	"superchain/client/internal/session"
)

// Builder assembles a client configuration. The zero-configuration path
// works: NewBuilder seeds the endpoint from SUPER_URL or the default hosted
// service, and credentials from SUPER_USERNAME/SUPER_PASSWORD.
type Builder struct {
	endpoint string
	secure   bool
	username string
	password string
	logger   zerolog.Logger

	retainCompleted bool
}

// NewBuilder returns a builder with defaults: the hosted endpoint, secure
// transport, and credentials from the environment when present.
func NewBuilder() *Builder {
	b := &Builder{
		endpoint: config.DefaultEndpoint,
		secure:   true,
		logger:   zerolog.Nop(),
	}
	if u, p, err := credentials.Resolve(); err == nil {
		b.username = u
		b.password = p
	}
	// SUPER_URL overrides the endpoint, credentials included when embedded.
	if ep, ok := credentials.EndpointOverride(); ok {
		b.Endpoint(ep)
	}
	return b
}

// Endpoint sets the service host, e.g. "app.superchain.network". A full URL
// is accepted too: the scheme selects the transport security, and userinfo,
// when present, replaces the credentials.
func (b *Builder) Endpoint(endpoint string) *Builder {
	if strings.Contains(endpoint, "://") {
		u, err := url.Parse(endpoint)
		if err == nil && u.Host != "" {
			b.endpoint = u.Host
			switch u.Scheme {
			case "ws", "http":
				b.secure = false
			case "wss", "https":
				b.secure = true
			}
			if u.User != nil {
				pass, _ := u.User.Password()
				b.username = u.User.Username()
				b.password = pass
			}
			return b
		}
	}
	b.endpoint = endpoint
	return b
}

// Credential sets the API username and password, overriding environment and
// keychain resolution.
func (b *Builder) Credential(username, password string) *Builder {
	b.username = username
	b.password = password
	return b
}

// Secure toggles TLS. Insecure transports are for local development only.
// Default is true.
func (b *Builder) Secure(secure bool) *Builder {
	b.secure = secure
	return b
}

// Logger sets the structured logger. Default is a no-op logger.
func (b *Builder) Logger(log zerolog.Logger) *Builder {
	b.logger = log
	return b
}

// RetainCompleted keeps finished subscription entries in memory instead of
// purging them when their stream terminates.
func (b *Builder) RetainCompleted(retain bool) *Builder {
	b.retainCompleted = retain
	return b
}

func (b *Builder) wsURL() *url.URL {
	return session.Endpoint(b.endpoint, b.secure, b.username, b.password)
}

// Build connects the websocket client. The initial connection failure is
// returned here; later disconnects are recovered automatically.
func (b *Builder) Build(ctx context.Context) (*Client, error) {
	sess, err := session.Dial(ctx, session.Config{
		URL:             b.wsURL(),
		RetainCompleted: b.retainCompleted,
		Logger:          b.logger,
	})
	if err != nil {
		return nil, err
	}
	return &Client{sess: sess, log: b.logger}, nil
}

// BuildHTTP returns the one-shot HTTP client for the same endpoint.
func (b *Builder) BuildHTTP() (*HTTPClient, error) {
	return newHTTPClient(b.endpoint, b.secure, b.username, b.password)
}
