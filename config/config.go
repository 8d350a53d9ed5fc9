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
	"os"

	"dario.cat/mergo"

	"rivaas.dev/reddit/model"
	"rivaas.dev/reddit/transport"
)

// Config holds transport and decoder settings.
type Config struct {
	Transport Transport `yaml:"transport" toml:"transport"`
	Decoder   Decoder   `yaml:"decoder" toml:"decoder"`
	Logging   Logging   `yaml:"logging" toml:"logging"`
}

// Transport configures the HTTP client. Zero values take the defaults.
type Transport struct {
	BaseURL         string `yaml:"base_url" toml:"base_url" validate:"required,url"`
	UserAgent       string `yaml:"user_agent" toml:"user_agent" validate:"required"`
	Timeout         string `yaml:"timeout" toml:"timeout" validate:"required,duration"`
	MaxResponseSize int64  `yaml:"max_response_size" toml:"max_response_size" validate:"gt=0"`
	Token           string `yaml:"token" toml:"token"`
}

// Decoder configures envelope decoding. Zero values take the defaults.
type Decoder struct {
	ListingPolicy    string `yaml:"listing_policy" toml:"listing_policy" validate:"oneof=skip collect abort"`
	AllErrors        bool   `yaml:"all_errors" toml:"all_errors"`
	MaxDepth         int    `yaml:"max_depth" toml:"max_depth" validate:"gte=1"`
	SchemaValidation *bool  `yaml:"schema_validation" toml:"schema_validation"`
}

// Logging configures the logger built by [Config.NewLogger].
type Logging struct {
	Level  string `yaml:"level" toml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" toml:"format" validate:"oneof=json text"`
}

// Defaults returns the configuration used for unset values.
func Defaults() Config {
	schema := true

	return Config{
		Transport: Transport{
			BaseURL:         transport.DefaultBaseURL,
			UserAgent:       transport.DefaultUserAgent,
			Timeout:         transport.DefaultTimeout.String(),
			MaxResponseSize: transport.DefaultMaxResponseSize,
		},
		Decoder: Decoder{
			ListingPolicy:    model.ListingSkip.String(),
			MaxDepth:         model.DefaultMaxDepth,
			SchemaValidation: &schema,
		},
		Logging: Logging{
			Level:  "info",
			Format: "json",
		},
	}
}

type options struct {
	format    Format
	envPrefix string
}

// Option configures [Load] and [Parse].
type Option func(*options)

// WithFormat sets the file format instead of detecting it from the extension.
func WithFormat(format Format) Option {
	return func(o *options) {
		o.format = format
	}
}

// WithEnvPrefix enables environment overrides. Variables are named
// prefix + section + key in upper case.
//
// Example:
//
//	config.Load("reddit.toml", config.WithEnvPrefix("REDDIT_"))
//	// REDDIT_TRANSPORT_TOKEN overrides transport.token
func WithEnvPrefix(prefix string) Option {
	return func(o *options) {
		o.envPrefix = prefix
	}
}

// Load reads the file at path and returns its validated configuration.
//
// Errors:
//   - [*Error] wrapping the read, decode, merge or validation failure
func Load(path string, opts ...Option) (*Config, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if o.format == "" {
		format, err := detectFormat(path)
		if err != nil {
			return nil, &Error{Source: path, Operation: "read", Err: err}
		}
		o.format = format
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Source: path, Operation: "read", Err: fmt.Errorf("failed to read file: %w", err)}
	}

	return parse(path, data, o)
}

// Parse decodes configuration from data. The format defaults to YAML.
func Parse(data []byte, opts ...Option) (*Config, error) {
	o := &options{format: FormatYAML}
	for _, opt := range opts {
		opt(o)
	}

	return parse("<bytes>", data, o)
}

func parse(source string, data []byte, o *options) (*Config, error) {
	cfg := &Config{}
	if err := decode(data, o.format, cfg); err != nil {
		return nil, &Error{Source: source, Operation: "decode", Err: err}
	}

	if o.envPrefix != "" {
		if err := applyEnv(cfg, o.envPrefix); err != nil {
			return nil, err
		}
	}

	if err := mergo.Merge(cfg, Defaults()); err != nil {
		return nil, &Error{Source: source, Operation: "merge", Err: err}
	}

	if err := cfg.validate(source); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks c the way [Load] does. It does not apply defaults.
func (c *Config) Validate() error {
	return c.validate("config")
}
