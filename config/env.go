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

	"github.com/spf13/cast"
)

// envKey binds one environment variable suffix to a field.
type envKey struct {
	name  string // Suffix after the prefix, e.g. "TRANSPORT_TOKEN"
	field string // Dotted key for errors
	set   func(c *Config, v string) error
}

var envKeys = []envKey{
	{"TRANSPORT_BASE_URL", "transport.base_url", func(c *Config, v string) error {
		c.Transport.BaseURL = v
		return nil
	}},
	{"TRANSPORT_USER_AGENT", "transport.user_agent", func(c *Config, v string) error {
		c.Transport.UserAgent = v
		return nil
	}},
	{"TRANSPORT_TIMEOUT", "transport.timeout", func(c *Config, v string) error {
		c.Transport.Timeout = v
		return nil
	}},
	{"TRANSPORT_MAX_RESPONSE_SIZE", "transport.max_response_size", func(c *Config, v string) (err error) {
		c.Transport.MaxResponseSize, err = cast.ToInt64E(v)
		return err
	}},
	{"TRANSPORT_TOKEN", "transport.token", func(c *Config, v string) error {
		c.Transport.Token = v
		return nil
	}},
	{"DECODER_LISTING_POLICY", "decoder.listing_policy", func(c *Config, v string) error {
		c.Decoder.ListingPolicy = v
		return nil
	}},
	{"DECODER_ALL_ERRORS", "decoder.all_errors", func(c *Config, v string) (err error) {
		c.Decoder.AllErrors, err = cast.ToBoolE(v)
		return err
	}},
	{"DECODER_MAX_DEPTH", "decoder.max_depth", func(c *Config, v string) (err error) {
		c.Decoder.MaxDepth, err = cast.ToIntE(v)
		return err
	}},
	{"DECODER_SCHEMA_VALIDATION", "decoder.schema_validation", func(c *Config, v string) error {
		enabled, err := cast.ToBoolE(v)
		if err != nil {
			return err
		}
		c.Decoder.SchemaValidation = &enabled

		return nil
	}},
	{"LOGGING_LEVEL", "logging.level", func(c *Config, v string) error {
		c.Logging.Level = v
		return nil
	}},
	{"LOGGING_FORMAT", "logging.format", func(c *Config, v string) error {
		c.Logging.Format = v
		return nil
	}},
}

// applyEnv overrides cfg with the set variables named prefix + key.
func applyEnv(cfg *Config, prefix string) error {
	for _, k := range envKeys {
		v, ok := os.LookupEnv(prefix + k.name)
		if !ok {
			continue
		}
		if err := k.set(cfg, v); err != nil {
			return &Error{
				Source:    "env",
				Field:     k.field,
				Operation: "decode",
				Err:       fmt.Errorf("%w: %s=%q: %w", ErrInvalid, prefix+k.name, v, err),
			}
		}
	}

	return nil
}
