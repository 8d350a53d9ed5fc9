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
	"bytes"
	"cmp"
	"encoding/json"
	"fmt"
)

// Nullable wraps c so that absent or null input decodes to an absent
// [Optional] instead of failing. Present input is delegated to c.
func Nullable[T any](c Codec[T]) Codec[Optional[T]] {
	return nullable[T]{inner: c}
}

type nullable[T any] struct {
	inner Codec[T]
}

func (n nullable[T]) Decode(raw json.RawMessage) (Optional[T], error) {
	if IsEmpty(raw) {
		return None[T](), nil
	}

	v, err := n.inner.Decode(raw)
	if err != nil {
		return None[T](), err
	}

	return Some(v), nil
}

func (n nullable[T]) Encode(v Optional[T]) (json.RawMessage, error) {
	inner, ok := v.Get()
	if !ok {
		return null, nil
	}

	return n.inner.Encode(inner)
}

// WithDefault wraps c so that absent or null input decodes to def.
// Encoding def writes null, so a null input round-trips.
func WithDefault[T comparable](c Codec[T], def T) Codec[T] {
	return defaulted[T]{inner: c, def: def}
}

type defaulted[T comparable] struct {
	inner Codec[T]
	def   T
}

func (d defaulted[T]) Decode(raw json.RawMessage) (T, error) {
	if IsEmpty(raw) {
		return d.def, nil
	}

	return d.inner.Decode(raw)
}

func (d defaulted[T]) Encode(v T) (json.RawMessage, error) {
	if v == d.def {
		return null, nil
	}

	return d.inner.Encode(v)
}

// Bounded wraps c and rejects decoded values outside [lo, hi].
func Bounded[T cmp.Ordered](c Codec[T], lo, hi T) Codec[T] {
	return bounded[T]{inner: c, lo: lo, hi: hi}
}

type bounded[T cmp.Ordered] struct {
	inner  Codec[T]
	lo, hi T
}

func (b bounded[T]) Decode(raw json.RawMessage) (T, error) {
	v, err := b.inner.Decode(raw)
	if err != nil {
		return v, err
	}
	if v < b.lo || v > b.hi {
		var zero T
		return zero, newDecodeError(fmt.Sprintf("%T", v), raw,
			fmt.Errorf("%w: %v not in [%v, %v]", ErrOutOfRange, v, b.lo, b.hi))
	}

	return v, nil
}

func (b bounded[T]) Encode(v T) (json.RawMessage, error) {
	return b.inner.Encode(v)
}

// Slice decodes a JSON array whose elements are decoded by c.
func Slice[T any](c Codec[T]) Codec[[]T] {
	return slice[T]{inner: c}
}

type slice[T any] struct {
	inner Codec[T]
}

func (s slice[T]) Decode(raw json.RawMessage) ([]T, error) {
	if err := present(raw, "array"); err != nil {
		return nil, err
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, newDecodeError("array", raw, ErrWrongShape)
	}

	out := make([]T, 0, len(elems))
	for i, elem := range elems {
		v, err := s.inner.Decode(elem)
		if err != nil {
			return nil, newDecodeError("array", raw, fmt.Errorf("element %d: %w", i, err))
		}
		out = append(out, v)
	}

	return out, nil
}

func (s slice[T]) Encode(v []T) (json.RawMessage, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, elem := range v {
		if i > 0 {
			buf.WriteByte(',')
		}
		b, err := s.inner.Encode(elem)
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	}
	buf.WriteByte(']')

	return buf.Bytes(), nil
}

// Reports decodes moderator-only counters such as num_reports. reddit omits
// or nulls them when the caller lacks permission, which decodes to absent.
var Reports = Nullable(Bounded(Int, 0, 1<<31-1))
