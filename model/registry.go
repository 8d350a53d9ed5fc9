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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	jskind "github.com/santhosh-tekuri/jsonschema/v6/kind"

	"rivaas.dev/reddit/codec"
	"rivaas.dev/reddit/kind"
)

// builder builds one entity from the data member of its envelope.
type builder func(st *decodeState, k kind.Kind, data json.RawMessage) (Entity, error)

// builders is the static kind table. It is never written after init.
var builders = map[kind.Kind]builder{
	kind.Comment:    buildComment,
	kind.Account:    buildAccount,
	kind.Submission: buildSubmission,
	kind.Subreddit:  buildSubreddit,
	kind.More:       buildMore,
	kind.Listing:    buildListing,
}

const envelopeSchemaURL = "envelope.json"

// envelopeSchema checks the envelope shape only. Field-level rules live in
// the builders.
const envelopeSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["kind", "data"],
	"properties": {
		"kind": {"type": "string", "minLength": 1},
		"data": {"type": "object"}
	},
	"if": {
		"properties": {"kind": {"const": "Listing"}},
		"required": ["kind"]
	},
	"then": {
		"properties": {
			"data": {
				"required": ["children"],
				"properties": {
					"children": {"type": "array"},
					"before": {"type": ["string", "null"]},
					"after": {"type": ["string", "null"]}
				}
			}
		}
	}
}`

// Registry maps kinds to builders. It is immutable and safe for
// concurrent use.
type Registry struct {
	builders map[kind.Kind]builder
	schema   *jsonschema.Schema
}

// StandardRegistry returns a registry holding every built-in kind:
// t1, t2, t3, t5, more and Listing.
func StandardRegistry() *Registry {
	reg, err := NewRegistry(slices.Collect(maps.Keys(builders))...)
	if err != nil {
		panic(fmt.Sprintf("model: standard registry: %v", err))
	}

	return reg
}

// NewRegistry returns a registry restricted to kinds. Envelopes of any
// other kind decode to an [*UnrecognizedKindError], and listing children
// of other kinds are dropped.
//
// Example:
//
//	// Only comments and the listings that carry them
//	reg, err := model.NewRegistry(kind.Comment, kind.Listing)
func NewRegistry(kinds ...kind.Kind) (*Registry, error) {
	if len(kinds) == 0 {
		return nil, ErrNoKinds
	}

	table := make(map[kind.Kind]builder, len(kinds))
	for _, k := range kinds {
		b, ok := builders[k]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedKind, string(k))
		}
		if _, dup := table[k]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKind, string(k))
		}
		table[k] = b
	}

	schema, err := compileEnvelopeSchema()
	if err != nil {
		return nil, err
	}

	return &Registry{builders: table, schema: schema}, nil
}

// Kinds returns the registered kinds, sorted.
func (r *Registry) Kinds() []kind.Kind {
	return slices.Sorted(maps.Keys(r.builders))
}

// Supports reports whether k has a builder in the registry.
func (r *Registry) Supports(k kind.Kind) bool {
	_, ok := r.builders[k]
	return ok
}

func (r *Registry) builder(k kind.Kind) (builder, bool) {
	b, ok := r.builders[k]
	return b, ok
}

func compileEnvelopeSchema() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(envelopeSchema))
	if err != nil {
		return nil, fmt.Errorf("model: parsing envelope schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err = compiler.AddResource(envelopeSchemaURL, doc); err != nil {
		return nil, fmt.Errorf("model: adding envelope schema: %w", err)
	}

	schema, err := compiler.Compile(envelopeSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("model: compiling envelope schema: %w", err)
	}

	return schema, nil
}

// validateEnvelope checks data against the envelope schema and reports the
// first failure as a ValidationError.
func (r *Registry) validateEnvelope(data []byte) error {
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return &ValidationError{Field: "envelope", Value: preview(data), Reason: "malformed JSON", Err: err}
	}

	err = r.schema.Validate(inst)
	if err == nil {
		return nil
	}

	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return &ValidationError{Field: "envelope", Err: err}
	}

	return schemaError(leaf(verr), err)
}

// unrecognized returns an UnrecognizedKindError when data names a kind
// outside the registry, and nil otherwise.
func (r *Registry) unrecognized(data []byte) error {
	members, err := object(data)
	if err != nil {
		return nil
	}

	k, err := codec.String.Decode(members["kind"])
	if err != nil || k == "" || r.Supports(kind.Kind(k)) {
		return nil
	}

	return &UnrecognizedKindError{Kind: kind.Kind(k)}
}

// leaf follows the first cause down to the most specific failure.
func leaf(verr *jsonschema.ValidationError) *jsonschema.ValidationError {
	for len(verr.Causes) > 0 {
		verr = verr.Causes[0]
	}

	return verr
}

func schemaError(verr *jsonschema.ValidationError, full error) *ValidationError {
	path := slices.Clone(verr.InstanceLocation)
	reason := "does not match the envelope schema"

	switch k := verr.ErrorKind.(type) {
	case *jskind.Required:
		if len(k.Missing) > 0 {
			path = append(path, k.Missing[0])
		}
		reason = "required field is missing"
	case *jskind.Type:
		reason = fmt.Sprintf("must be %s, got %s", strings.Join(k.Want, " or "), k.Got)
	case *jskind.MinLength:
		reason = "must not be empty"
	}

	name := strings.Join(path, ".")
	if name == "" {
		name = "envelope"
	}

	return &ValidationError{Field: name, Reason: reason, Err: full}
}
