// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package transport

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// Defaults for [New].
const (
	DefaultBaseURL   = "https://oauth.reddit.com"
	DefaultUserAgent = "go:rivaas.dev/reddit:v0 (library)"
	DefaultTimeout   = 30 * time.Second

	// DefaultMaxResponseSize bounds a response body (10 MiB).
	DefaultMaxResponseSize = 10 << 20
)

// TokenSource supplies OAuth bearer tokens. Implementations own refresh.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a TokenSource that always returns the same token.
type StaticToken string

// Token implements [TokenSource].
func (s StaticToken) Token(context.Context) (string, error) {
	return string(s), nil
}

// Option configures a [Client].
type Option func(*Client)

// WithBaseURL sets the API root. The default is [DefaultBaseURL].
//
// Example:
//
//	transport.New(transport.WithBaseURL("https://www.reddit.com"))
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithUserAgent sets the User-Agent header. reddit throttles generic
// agents, so set one of the form "platform:app:version (by /u/name)".
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout bounds each call. Zero disables the per-call deadline.
// The default is [DefaultTimeout].
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithTokenSource sets the source of bearer tokens. Without one, requests
// are sent unauthenticated.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) {
		c.tokens = ts
	}
}

// WithMaxResponseSize bounds response bodies.
// The default is [DefaultMaxResponseSize].
func WithMaxResponseSize(n int64) Option {
	return func(c *Client) {
		c.maxResponseSize = n
	}
}

// WithLogger sets the logger for per-call debug records.
// A nil logger discards them.
//
// Example:
//
//	transport.New(transport.WithLogger(slog.Default()))
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}
