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
	"strconv"

	"github.com/spf13/cast"
)

// Scalar codecs.
var (
	// String decodes a JSON string. Other JSON types are rejected.
	String Codec[string] = stringCodec{}

	// Bool decodes a JSON boolean, also accepting "true"/"false" strings
	// and 0/1.
	Bool Codec[bool] = boolCodec{}

	// Int decodes an integral JSON number, also accepting numeric strings
	// and floats with a zero fraction.
	Int Codec[int] = intCodec{}

	// Int64 is the 64-bit variant of [Int].
	Int64 Codec[int64] = int64Codec{}

	// Float64 decodes any JSON number or numeric string.
	Float64 Codec[float64] = float64Codec{}
)

type stringCodec struct{}

func (stringCodec) Decode(raw json.RawMessage) (string, error) {
	if err := present(raw, "string"); err != nil {
		return "", err
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", newDecodeError("string", raw, ErrWrongShape)
	}

	return s, nil
}

func (stringCodec) Encode(v string) (json.RawMessage, error) {
	return json.Marshal(v)
}

type boolCodec struct{}

func (boolCodec) Decode(raw json.RawMessage) (bool, error) {
	v, err := scalar(raw, "bool")
	if err != nil {
		return false, err
	}

	b, err := cast.ToBoolE(v)
	if err != nil {
		return false, newDecodeError("bool", raw, err)
	}

	return b, nil
}

func (boolCodec) Encode(v bool) (json.RawMessage, error) {
	return json.RawMessage(strconv.FormatBool(v)), nil
}

type intCodec struct{}

func (intCodec) Decode(raw json.RawMessage) (int, error) {
	v, err := number(raw, "int")
	if err != nil {
		return 0, err
	}

	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, newDecodeError("int", raw, err)
	}

	return n, nil
}

func (intCodec) Encode(v int) (json.RawMessage, error) {
	return json.RawMessage(strconv.Itoa(v)), nil
}

type int64Codec struct{}

func (int64Codec) Decode(raw json.RawMessage) (int64, error) {
	v, err := number(raw, "int64")
	if err != nil {
		return 0, err
	}

	n, err := cast.ToInt64E(v)
	if err != nil {
		return 0, newDecodeError("int64", raw, err)
	}

	return n, nil
}

func (int64Codec) Encode(v int64) (json.RawMessage, error) {
	return json.RawMessage(strconv.FormatInt(v, 10)), nil
}

type float64Codec struct{}

func (float64Codec) Decode(raw json.RawMessage) (float64, error) {
	v, err := number(raw, "float64")
	if err != nil {
		return 0, err
	}

	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, newDecodeError("float64", raw, err)
	}

	return f, nil
}

func (float64Codec) Encode(v float64) (json.RawMessage, error) {
	return json.Marshal(v)
}

// scalar parses raw and rejects absent, null, objects and arrays.
func scalar(raw json.RawMessage, typ string) (any, error) {
	if err := present(raw, typ); err != nil {
		return nil, err
	}

	v, err := parse(raw)
	if err != nil {
		return nil, newDecodeError(typ, raw, err)
	}

	switch n := v.(type) {
	case map[string]any, []any:
		return nil, newDecodeError(typ, raw, ErrWrongShape)
	case json.Number:
		// cast parses the literal text, which keeps 64-bit integers exact.
		return n.String(), nil
	}

	return v, nil
}

// number is scalar, additionally rejecting booleans.
func number(raw json.RawMessage, typ string) (any, error) {
	v, err := scalar(raw, typ)
	if err != nil {
		return nil, err
	}
	if _, ok := v.(bool); ok {
		return nil, newDecodeError(typ, raw, ErrWrongShape)
	}

	return v, nil
}
