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
	"encoding/json"
)

// Codec decodes a raw JSON member into T and encodes T back into JSON.
//
// Decode receives nil when the member is absent. Implementations must be
// safe for concurrent use.
type Codec[T any] interface {
	// Decode converts raw into a T.
	Decode(raw json.RawMessage) (T, error)

	// Encode converts v into its JSON representation.
	Encode(v T) (json.RawMessage, error)
}

// DecodeFunc decodes a raw JSON member.
type DecodeFunc[T any] func(raw json.RawMessage) (T, error)

// EncodeFunc encodes a value into JSON.
type EncodeFunc[T any] func(v T) (json.RawMessage, error)

// funcCodec adapts a pair of functions to [Codec].
type funcCodec[T any] struct {
	decode DecodeFunc[T]
	encode EncodeFunc[T]
}

// New returns a Codec built from a decode and an encode function.
// A nil encode falls back to [encoding/json.Marshal].
//
// Example:
//
//	upper := codec.New(
//	    func(raw json.RawMessage) (string, error) {
//	        s, err := codec.String.Decode(raw)
//	        return strings.ToUpper(s), err
//	    },
//	    nil,
//	)
func New[T any](decode DecodeFunc[T], encode EncodeFunc[T]) Codec[T] {
	return funcCodec[T]{decode: decode, encode: encode}
}

func (c funcCodec[T]) Decode(raw json.RawMessage) (T, error) {
	return c.decode(raw)
}

func (c funcCodec[T]) Encode(v T) (json.RawMessage, error) {
	if c.encode == nil {
		return json.Marshal(v)
	}

	return c.encode(v)
}

// Raw passes a member through undecoded. Only absent input fails, so
// array elements that are null still reach the caller.
var Raw Codec[json.RawMessage] = New(
	func(raw json.RawMessage) (json.RawMessage, error) {
		if IsAbsent(raw) {
			return nil, newDecodeError("json", raw, ErrAbsent)
		}
		return raw, nil
	},
	func(v json.RawMessage) (json.RawMessage, error) {
		if v == nil {
			return null, nil
		}
		return v, nil
	},
)

var nullLiteral = []byte("null")

// null is the JSON null literal.
var null = json.RawMessage(nullLiteral)

// IsAbsent reports whether raw denotes an absent member.
func IsAbsent(raw json.RawMessage) bool {
	return raw == nil
}

// IsNull reports whether raw is the JSON null literal.
func IsNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), nullLiteral)
}

// IsEmpty reports whether raw is absent or null.
func IsEmpty(raw json.RawMessage) bool {
	return IsAbsent(raw) || IsNull(raw)
}

// present returns a DecodeError when raw is absent or null.
func present(raw json.RawMessage, typ string) error {
	if IsAbsent(raw) {
		return newDecodeError(typ, raw, ErrAbsent)
	}
	if IsNull(raw) {
		return newDecodeError(typ, raw, ErrNull)
	}

	return nil
}

// parse decodes raw into a generic value, keeping numbers as json.Number.
func parse(raw json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}

	return v, nil
}
