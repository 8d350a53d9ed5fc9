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

package config

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"rivaas.dev/reddit/model"
	"rivaas.dev/reddit/transport"
)

var listingPolicies = map[string]model.ListingPolicy{
	model.ListingSkip.String():    model.ListingSkip,
	model.ListingCollect.String(): model.ListingCollect,
	model.ListingAbort.String():   model.ListingAbort,
}

// TransportOptions returns the client options c describes.
// A token becomes a [transport.StaticToken].
func (c *Config) TransportOptions() ([]transport.Option, error) {
	timeout, err := time.ParseDuration(c.Transport.Timeout)
	if err != nil {
		return nil, &Error{Source: "config", Field: "transport.timeout", Operation: "validate", Err: fmt.Errorf("%w: %w", ErrInvalid, err)}
	}

	opts := []transport.Option{
		transport.WithBaseURL(c.Transport.BaseURL),
		transport.WithUserAgent(c.Transport.UserAgent),
		transport.WithTimeout(timeout),
		transport.WithMaxResponseSize(c.Transport.MaxResponseSize),
	}
	if c.Transport.Token != "" {
		opts = append(opts, transport.WithTokenSource(transport.StaticToken(c.Transport.Token)))
	}

	return opts, nil
}

// DecoderOptions returns the decoder options c describes.
func (c *Config) DecoderOptions() ([]model.Option, error) {
	policy, ok := listingPolicies[c.Decoder.ListingPolicy]
	if !ok {
		return nil, &Error{
			Source:    "config",
			Field:     "decoder.listing_policy",
			Operation: "validate",
			Err:       fmt.Errorf("%w: %q", ErrInvalid, c.Decoder.ListingPolicy),
		}
	}

	opts := []model.Option{
		model.WithListingPolicy(policy),
		model.WithMaxDepth(c.Decoder.MaxDepth),
	}
	if c.Decoder.AllErrors {
		opts = append(opts, model.WithAllErrors())
	}
	if c.Decoder.SchemaValidation != nil {
		opts = append(opts, model.WithSchemaValidation(*c.Decoder.SchemaValidation))
	}

	return opts, nil
}

// NewClient builds a transport client from c. Options in extra are applied
// after the configured ones.
func (c *Config) NewClient(extra ...transport.Option) (*transport.Client, error) {
	opts, err := c.TransportOptions()
	if err != nil {
		return nil, err
	}

	return transport.New(append(opts, extra...)...)
}

// NewDecoder builds a decoder over [model.StandardRegistry] from c.
func (c *Config) NewDecoder(extra ...model.Option) (*model.Decoder, error) {
	opts, err := c.DecoderOptions()
	if err != nil {
		return nil, err
	}

	return model.NewDecoder(model.StandardRegistry(), append(opts, extra...)...)
}

// NewLogger returns a logger writing to w in the configured format and
// level. Unrecognized values fall back to JSON at info level.
//
// Example:
//
//	logger := cfg.NewLogger(os.Stderr)
//	client, err := cfg.NewClient(transport.WithLogger(logger))
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if c.Logging.Format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}

	return slog.New(slog.NewJSONHandler(w, opts))
}
