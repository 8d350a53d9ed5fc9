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
	"errors"
	"fmt"
)

// Static errors for configuration.
var (
	ErrUnknownFormat = errors.New("config: unknown format")
	ErrUnknownField  = errors.New("config: unknown field")
	ErrInvalid       = errors.New("config: invalid value")
)

// Error reports a configuration failure with its context.
type Error struct {
	Source    string // File path, "<bytes>" or "env"
	Field     string // Dotted key, e.g. "transport.timeout"; may be empty
	Operation string // "read", "decode", "merge" or "validate"
	Err       error
}

// Error returns a formatted error message.
func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config error in %s.%s during %s: %v", e.Source, e.Field, e.Operation, e.Err)
	}

	return fmt.Sprintf("config error in %s during %s: %v", e.Source, e.Operation, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Err
}

// Code returns a machine-readable error code.
func (e *Error) Code() string {
	return "config_" + e.Operation
}
