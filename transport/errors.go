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
	"errors"
	"fmt"
	"strings"
)

// Static errors for the transport.
var (
	// ErrUnknownOperation is returned for operations without an endpoint.
	ErrUnknownOperation = errors.New("transport: unknown operation")

	// ErrUnexpectedStatus is wrapped for non-2xx responses.
	ErrUnexpectedStatus = errors.New("transport: unexpected status")

	// ErrResponseTooLarge is wrapped when a body exceeds the configured limit.
	ErrResponseTooLarge = errors.New("transport: response too large")

	// ErrToken is wrapped when the token source fails.
	ErrToken = errors.New("transport: obtaining token")

	// ErrInvalidBaseURL is returned by [New] for a base URL that is not absolute.
	ErrInvalidBaseURL = errors.New("transport: base URL must be absolute")

	// ErrMissingUserAgent is returned by [New] when the user agent is empty.
	ErrMissingUserAgent = errors.New("transport: user agent must not be empty")
)

// APIError is an error reddit reported inside a successful response, e.g.
// ["RATELIMIT", "you are doing that too much", "ratelimit"].
type APIError struct {
	Code    string
	Message string
	Field   string
}

// Error returns a formatted error message.
func (e *APIError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("reddit: %s: %s", e.Code, e.Message)
	}

	return fmt.Sprintf("reddit: %s: %s (field %s)", e.Code, e.Message, e.Field)
}

// ErrorCode returns the lower-cased reddit error code.
func (e *APIError) ErrorCode() string {
	return strings.ToLower(e.Code)
}
