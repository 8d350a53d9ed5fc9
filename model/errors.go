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

package model

import (
	"errors"
	"fmt"

	"rivaas.dev/reddit/kind"
)

// Static errors for decoding.
var (
	// ErrNilRegistry is returned by [NewDecoder] when no registry is given.
	ErrNilRegistry = errors.New("model: nil registry")

	// ErrNoKinds is returned by [NewRegistry] when called without kinds.
	ErrNoKinds = errors.New("model: registry needs at least one kind")

	// ErrUnsupportedKind is returned by [NewRegistry] for kinds without a builder.
	ErrUnsupportedKind = errors.New("model: kind has no builder")

	// ErrDuplicateKind is returned by [NewRegistry] when a kind is listed twice.
	ErrDuplicateKind = errors.New("model: duplicate kind")

	// ErrInvalidMaxDepth is returned by [NewDecoder] for a depth below one.
	ErrInvalidMaxDepth = errors.New("model: max depth must be at least 1")

	// ErrMaxDepthExceeded is returned when envelopes nest deeper than the
	// configured maximum.
	ErrMaxDepthExceeded = errors.New("model: max nesting depth exceeded")

	// ErrKindMismatch is returned by [Decode] when the decoded entity is not
	// of the requested type.
	ErrKindMismatch = errors.New("model: kind mismatch")

	// ErrNotFound is returned by [Lookup] when the response does not
	// contain the referenced entity.
	ErrNotFound = errors.New("model: entity not found")

	// ErrNotObject is wrapped when an envelope or data member is not a JSON object.
	ErrNotObject = errors.New("not a JSON object")
)

// ValidationError reports a field of an entity that failed to decode or
// failed a consistency check.
//
// Use [errors.As] to inspect it:
//
//	var verr *model.ValidationError
//	if errors.As(err, &verr) {
//		fmt.Printf("%s.%s: %s\n", verr.Kind, verr.Field, verr.Reason)
//	}
type ValidationError struct {
	Kind   kind.Kind // Kind being built; empty for envelope-level failures
	Field  string    // External field name, e.g. "created_utc"
	Value  string    // Offending raw value, truncated
	Reason string    // Human-readable reason, may be empty when Err says it all
	Err    error     // Underlying error
}

// Error returns a formatted error message.
func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("validating %s field %q: %s", e.subject(), e.Field, e.Reason)
	}

	return fmt.Sprintf("validating %s field %q: %v", e.subject(), e.Field, e.Err)
}

func (e *ValidationError) subject() string {
	if e.Kind == "" {
		return "envelope"
	}

	return string(e.Kind)
}

// Unwrap returns the underlying error for errors.Is/As compatibility.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Code returns a machine-readable error code.
func (e *ValidationError) Code() string {
	return "validation_error"
}

// MultiError aggregates the field failures of one entity.
// It is returned when [WithAllErrors] is used and more than one field fails.
//
//	var multi *model.MultiError
//	if errors.As(err, &multi) {
//		for _, e := range multi.Errors {
//			// Handle each error
//		}
//	}
type MultiError struct {
	Errors []*ValidationError
}

// Error returns a formatted error message.
func (m *MultiError) Error() string {
	if len(m.Errors) == 0 {
		return "no errors"
	}
	if len(m.Errors) == 1 {
		return m.Errors[0].Error()
	}

	return fmt.Sprintf("%d validation errors occurred (first: %v)", len(m.Errors), m.Errors[0])
}

// Unwrap returns all errors for errors.Is/As compatibility.
func (m *MultiError) Unwrap() []error {
	errs := make([]error, 0, len(m.Errors))
	for _, e := range m.Errors {
		errs = append(errs, e)
	}

	return errs
}

// Code returns a machine-readable error code.
func (m *MultiError) Code() string {
	return "multiple_validation_errors"
}

// Add appends an error to the MultiError.
func (m *MultiError) Add(err *ValidationError) {
	m.Errors = append(m.Errors, err)
}

// HasErrors returns true if there are any errors.
func (m *MultiError) HasErrors() bool {
	return len(m.Errors) > 0
}

// ErrorOrNil returns nil if there are no errors, otherwise returns the MultiError.
func (m *MultiError) ErrorOrNil() error {
	if !m.HasErrors() {
		return nil
	}

	return m
}

// UnrecognizedKindError reports an envelope whose kind has no builder in
// the decoder's registry.
type UnrecognizedKindError struct {
	Kind kind.Kind
}

// Error returns a formatted error message.
func (e *UnrecognizedKindError) Error() string {
	return fmt.Sprintf("model: unrecognized kind %q", string(e.Kind))
}

// Code returns a machine-readable error code.
func (e *UnrecognizedKindError) Code() string {
	return "unrecognized_kind"
}

// ChildError reports a listing child that could not be decoded.
type ChildError struct {
	Index int       // Position in the listing's children array
	Kind  kind.Kind // Child kind when known
	Err   error
}

// Error returns a formatted error message.
func (e *ChildError) Error() string {
	if e.Kind == "" {
		return fmt.Sprintf("listing child %d: %v", e.Index, e.Err)
	}

	return fmt.Sprintf("listing child %d (%s): %v", e.Index, e.Kind, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As compatibility.
func (e *ChildError) Unwrap() error {
	return e.Err
}

// Code returns a machine-readable error code.
func (e *ChildError) Code() string {
	return "listing_child_error"
}

func newChildError(index int, err error) *ChildError {
	cerr := &ChildError{Index: index, Err: err}

	switch e := err.(type) {
	case *UnrecognizedKindError:
		cerr.Kind = e.Kind
	case *ValidationError:
		cerr.Kind = e.Kind
	case *MultiError:
		if len(e.Errors) > 0 {
			cerr.Kind = e.Errors[0].Kind
		}
	}

	return cerr
}
