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
	"fmt"
	"io"

	"rivaas.dev/reddit/codec"
	"rivaas.dev/reddit/kind"
)

// Decoder decodes envelopes into entities. It is immutable after
// construction and safe for concurrent use.
type Decoder struct {
	registry *Registry
	opts     *Options
}

// NewDecoder returns a decoder dispatching through reg.
//
// Example:
//
//	dec, err := model.NewDecoder(model.StandardRegistry(),
//		model.WithListingPolicy(model.ListingCollect),
//		model.WithMaxDepth(16),
//	)
func NewDecoder(reg *Registry, opts ...Option) (*Decoder, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}

	o := applyOptions(opts)
	if o.MaxDepth < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMaxDepth, o.MaxDepth)
	}

	return &Decoder{registry: reg, opts: o}, nil
}

// MustNewDecoder is like [NewDecoder] but panics on error.
// Use it for package-level decoders built from constant options.
func MustNewDecoder(reg *Registry, opts ...Option) *Decoder {
	d, err := NewDecoder(reg, opts...)
	if err != nil {
		panic(err)
	}

	return d
}

// Registry returns the decoder's registry.
func (d *Decoder) Registry() *Registry {
	return d.registry
}

// Decode decodes one envelope.
//
// Errors:
//   - [*ValidationError] or [*MultiError] when the envelope or a field is malformed
//   - [*UnrecognizedKindError] when the top-level kind is not registered,
//     even if the rest of the envelope is malformed
//   - [*ChildError] when a listing child fails under [ListingAbort]
//   - [ErrMaxDepthExceeded] when nesting exceeds the configured depth
func (d *Decoder) Decode(data []byte) (e Entity, err error) {
	st := &decodeState{dec: d}
	defer func() {
		if err != nil {
			st.stats.Errors++
		}
		if d.opts.Events.Done != nil {
			d.opts.Events.Done(st.stats)
		}
	}()

	if d.opts.SchemaValidation {
		if err = d.registry.validateEnvelope(data); err != nil {
			if uerr := d.registry.unrecognized(data); uerr != nil {
				return nil, uerr
			}

			return nil, err
		}
	}

	return st.envelope(data)
}

// DecodeReader reads r to the end and decodes the envelope.
func (d *Decoder) DecodeReader(r io.Reader) (Entity, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("model: reading envelope: %w", err)
	}

	return d.Decode(data)
}

// Decode decodes one envelope and asserts its type.
// A well-formed envelope of another kind fails with [ErrKindMismatch].
//
// Example:
//
//	post, err := model.Decode[*model.Submission](dec, body)
func Decode[T Entity](d *Decoder, data []byte) (T, error) {
	var zero T

	e, err := d.Decode(data)
	if err != nil {
		return zero, err
	}

	t, ok := e.(T)
	if !ok {
		return zero, fmt.Errorf("%w: want %T, got %s", ErrKindMismatch, zero, e.Kind())
	}

	return t, nil
}

// decodeState carries the per-call depth and statistics.
type decodeState struct {
	dec   *Decoder
	depth int
	stats Stats
}

func (st *decodeState) envelope(raw json.RawMessage) (Entity, error) {
	if st.depth >= st.dec.opts.MaxDepth {
		return nil, ErrMaxDepthExceeded
	}
	st.depth++
	defer func() { st.depth-- }()

	members, err := object(raw)
	if err != nil {
		return nil, &ValidationError{Field: "envelope", Value: preview(raw), Reason: "must be a JSON object", Err: err}
	}

	r := &fieldReader{members: members}
	k := kind.Kind(field(r, "kind", codec.String))
	if err = r.err(); err != nil {
		return nil, err
	}

	build, ok := st.dec.registry.builder(k)
	if !ok {
		return nil, &UnrecognizedKindError{Kind: k}
	}

	e, err := build(st, k, members["data"])
	if err != nil {
		return nil, err
	}

	st.stats.Entities++
	if fn := st.dec.opts.Events.EntityDecoded; fn != nil {
		fn(k)
	}

	return e, nil
}

func (st *decodeState) fields(k kind.Kind, data json.RawMessage) (*fieldReader, error) {
	return newFieldReader(k, data, st.dec.opts.AllErrors)
}

func (st *decodeState) skipped(index int, err error) {
	st.stats.Skipped++
	if fn := st.dec.opts.Events.ChildSkipped; fn != nil {
		fn(index, err)
	}
}
