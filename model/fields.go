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
	"encoding/json"
	"errors"
	"fmt"

	"rivaas.dev/reddit/codec"
	"rivaas.dev/reddit/kind"
	"rivaas.dev/reddit/reference"
)

// maxValueLen bounds the raw value kept on a ValidationError.
const maxValueLen = 64

// fieldReader reads the members of one data object. It records failures
// instead of returning them so a builder can list its fields in one
// composite literal and check the outcome once.
type fieldReader struct {
	kind    kind.Kind
	members map[string]json.RawMessage
	all     bool
	errs    []*ValidationError
}

func newFieldReader(k kind.Kind, data json.RawMessage, all bool) (*fieldReader, error) {
	members, err := object(data)
	if err != nil {
		verr := &ValidationError{Kind: k, Field: "data", Value: preview(data), Reason: "must be a JSON object", Err: err}
		if codec.IsAbsent(data) {
			verr.Reason = "required field is missing"
		}

		return nil, verr
	}

	return &fieldReader{kind: k, members: members, all: all}, nil
}

// field decodes the named member with c. Absent members reach the codec
// as nil. After the first failure, and without all-errors, it returns the
// zero value without decoding.
func field[T any](r *fieldReader, name string, c codec.Codec[T]) T {
	var zero T
	if r.stopped() {
		return zero
	}

	raw := r.members[name]
	v, err := c.Decode(raw)
	if err != nil {
		r.fail(name, raw, err)
		return zero
	}

	return v
}

func (r *fieldReader) raw(name string) json.RawMessage {
	return r.members[name]
}

func (r *fieldReader) stopped() bool {
	return !r.all && len(r.errs) > 0
}

func (r *fieldReader) failed(name string) bool {
	for _, e := range r.errs {
		if e.Field == name {
			return true
		}
	}

	return false
}

func (r *fieldReader) fail(name string, raw json.RawMessage, err error) {
	verr := &ValidationError{Kind: r.kind, Field: name, Value: preview(raw), Err: err}

	// Only the codec's own error says whether this member was missing;
	// nested envelopes may carry missing fields of their own.
	if derr, ok := err.(*codec.DecodeError); ok && derr.IsMissing() {
		verr.Reason = "required field is missing"
		if derr.Err == codec.ErrNull {
			verr.Reason = "required field is null"
		}
	}

	r.errs = append(r.errs, verr)
}

func (r *fieldReader) reject(name, value, reason string, err error) {
	r.errs = append(r.errs, &ValidationError{Kind: r.kind, Field: name, Value: value, Reason: reason, Err: err})
}

// identity checks the id format and, when checkName is set, that the
// name member equals the kind-prefixed id.
func (r *fieldReader) identity(id, name string, checkName bool) {
	if r.stopped() || r.failed("id") {
		return
	}

	if err := reference.ValidateIdentity(r.kind, id); err != nil {
		reason := err.Error()
		var ierr *reference.IdentityError
		if errors.As(err, &ierr) {
			reason = "id " + ierr.Reason
		}
		r.reject("id", id, reason, err)

		return
	}

	if !checkName || r.failed("name") {
		return
	}
	if want := r.kind.FullName(id); name != want {
		r.reject("name", name, fmt.Sprintf("full name must be %q", want), nil)
	}
}

func (r *fieldReader) err() error {
	if len(r.errs) == 1 {
		return r.errs[0]
	}

	multi := &MultiError{}
	for _, e := range r.errs {
		multi.Add(e)
	}

	return multi.ErrorOrNil()
}

// object splits a JSON object into its raw members.
func object(raw json.RawMessage) (map[string]json.RawMessage, error) {
	if codec.IsEmpty(raw) {
		return nil, ErrNotObject
	}

	var members map[string]json.RawMessage
	if err := json.Unmarshal(raw, &members); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotObject, err)
	}

	return members, nil
}

func preview(raw json.RawMessage) string {
	s := string(raw)
	if len(s) > maxValueLen {
		return s[:maxValueLen] + "..."
	}

	return s
}
