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

// Package config loads client and decoder settings from YAML or TOML
// files, fills unset values with defaults and validates the result.
//
// # Quick Start
//
//	cfg, err := config.Load("reddit.yaml", config.WithEnvPrefix("REDDIT_"))
//	if err != nil {
//		return err
//	}
//	logger := cfg.NewLogger(os.Stderr)
//	client, err := cfg.NewClient(transport.WithLogger(logger))
//	dec, err := cfg.NewDecoder()
//
// # File Format
//
// The format is detected from the file extension (.yaml, .yml or .toml)
// unless [WithFormat] is given. Unknown keys are rejected.
//
//	transport:
//	  base_url: https://oauth.reddit.com
//	  user_agent: "linux:example:v1 (by /u/example)"
//	  timeout: 10s
//	  token: "..."
//	decoder:
//	  listing_policy: collect
//	  max_depth: 16
//	logging:
//	  level: debug
//	  format: text
//
// # Environment
//
// With [WithEnvPrefix], variables such as REDDIT_TRANSPORT_TOKEN or
// REDDIT_DECODER_MAX_DEPTH override file values before validation.
//
// # Errors
//
// Every failure is an [*Error] naming the source, the field (when one is
// at fault) and the operation that failed.
package config
