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
	"encoding/json"
	"fmt"
	"slices"
)

// EnumCodec decodes a bounded string enumeration with a fallback for values
// outside the known set.
//
// Decoding never fails because a string is unknown: it returns T(raw) and
// [EnumCodec.Known] reports false for it. Encoding writes string(v), so
// unknown values round-trip exactly. Matching is case-sensitive.
//
// Example:
//
//	type Sort string
//
//	var sorts = codec.NewEnum[Sort]("top", "new")
//
//	v, _ := sorts.Decode(json.RawMessage(`"best"`))
//	sorts.Known(v)       // false
//	raw, _ := sorts.Encode(v) // "best"
type EnumCodec[T ~string] struct {
	known  map[string]T
	values []T
}

// NewEnum returns an EnumCodec over the known values.
func NewEnum[T ~string](known ...T) *EnumCodec[T] {
	m := make(map[string]T, len(known))
	for _, v := range known {
		m[string(v)] = v
	}

	return &EnumCodec[T]{known: m, values: slices.Clone(known)}
}

// Decode decodes a JSON string. Absent, null and non-string input fail.
func (c *EnumCodec[T]) Decode(raw json.RawMessage) (T, error) {
	typ := fmt.Sprintf("%T", *new(T))
	if err := present(raw, typ); err != nil {
		return "", err
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", newDecodeError(typ, raw, ErrWrongShape)
	}

	return c.Parse(s), nil
}

// Encode writes v as a JSON string.
func (c *EnumCodec[T]) Encode(v T) (json.RawMessage, error) {
	return json.Marshal(string(v))
}

// Parse maps s to its enumeration value. Unknown strings map to T(s).
func (c *EnumCodec[T]) Parse(s string) T {
	if v, ok := c.known[s]; ok {
		return v
	}

	return T(s)
}

// Known reports whether v is in the known set.
func (c *EnumCodec[T]) Known(v T) bool {
	_, ok := c.known[string(v)]
	return ok
}

// Values returns the known values in declaration order.
func (c *EnumCodec[T]) Values() []T {
	return slices.Clone(c.values)
}
