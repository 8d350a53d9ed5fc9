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

package codec

import (
	"errors"
	"fmt"
)

// Static errors for codec operations.
var (
	ErrAbsent     = errors.New("value is absent")
	ErrNull       = errors.New("value is null")
	ErrWrongShape = errors.New("unexpected JSON type")
	ErrOutOfRange = errors.New("value out of range")
)

// maxRawLen bounds the raw value echoed back in error messages.
const maxRawLen = 64

// DecodeError reports a raw JSON value a codec could not interpret.
//
// Use [errors.As] to inspect it:
//
//	var decErr *codec.DecodeError
//	if errors.As(err, &decErr) {
//	    fmt.Println(decErr.Type, decErr.Raw)
//	}
type DecodeError struct {
	Type string // Target type name, e.g. "timestamp"
	Raw  string // Offending raw JSON, truncated; empty when absent
	Err  error  // Underlying cause
}

func newDecodeError(typ string, raw []byte, err error) *DecodeError {
	s := string(raw)
	if len(s) > maxRawLen {
		s = s[:maxRawLen] + "..."
	}

	return &DecodeError{Type: typ, Raw: s, Err: err}
}

// Error returns a formatted error message.
func (e *DecodeError) Error() string {
	if e.Raw == "" {
		return fmt.Sprintf("decoding %s: %v", e.Type, e.Err)
	}

	return fmt.Sprintf("decoding %s from %s: %v", e.Type, e.Raw, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As compatibility.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Code returns a machine-readable error code.
func (e *DecodeError) Code() string {
	return "decode_error"
}

// IsMissing reports whether the value itself was absent or null, as
// opposed to an element or member nested inside it.
func (e *DecodeError) IsMissing() bool {
	return e.Err == ErrAbsent || e.Err == ErrNull
}
