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

package reference

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"rivaas.dev/reddit/kind"
)

// Static errors for reference operations.
var (
	ErrNilClient              = errors.New("reference: nil client")
	ErrUnsupportedDistinguish = errors.New("reference: unsupported distinguish value")
)

// TransportError is the conventional error a [Client] returns when an
// operation or fetch fails. References return it unchanged.
type TransportError struct {
	Operation  Operation // Empty for fetches
	Target     string    // Full name or fetched path
	StatusCode int       // HTTP status, 0 when no response was received
	Err        error
}

// Error returns a formatted error message.
func (e *TransportError) Error() string {
	op := string(e.Operation)
	if op == "" {
		op = "fetch"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "transport: %s %s", op, e.Target)
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, ": status %d", e.StatusCode)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}

	return b.String()
}

// Unwrap returns the underlying error for errors.Is/As compatibility.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Code returns a machine-readable error code.
func (e *TransportError) Code() string {
	return "transport_error"
}

// IdentityError reports a reference built from a malformed kind or id.
type IdentityError struct {
	Kind   kind.Kind
	ID     string
	Field  string // "kind" or "id"
	Reason string
	Err    error
}

// Error returns a formatted error message.
func (e *IdentityError) Error() string {
	return fmt.Sprintf("reference: invalid %s %q for %s: %s", e.Field, e.value(), e.Kind.Name(), e.Reason)
}

func (e *IdentityError) value() string {
	if e.Field == "kind" {
		return string(e.Kind)
	}

	return e.ID
}

// Unwrap returns the underlying error for errors.Is/As compatibility.
func (e *IdentityError) Unwrap() error {
	return e.Err
}

// Code returns a machine-readable error code.
func (e *IdentityError) Code() string {
	return "invalid_reference"
}

func newIdentityError(k kind.Kind, id string, err error) error {
	ierr := &IdentityError{Kind: k, ID: id, Field: "id", Reason: err.Error(), Err: err}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		ierr.Field = strings.ToLower(fe.Field())
		ierr.Reason = reasonFor(fe)
	}

	return ierr
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "oneof":
		return "must be one of " + fe.Param()
	case "alphanum", "lowercase":
		return "must be lowercase base-36"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	default:
		return "failed " + fe.Tag() + " check"
	}
}
