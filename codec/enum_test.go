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

//go:build !integration

package codec_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/reddit/codec"
)

type sortOrder string

const (
	sortTop sortOrder = "top"
	sortNew sortOrder = "new"
)

var sortCodec = codec.NewEnum(sortTop, sortNew)

func TestEnumCodec_Known(t *testing.T) {
	t.Parallel()

	got, err := sortCodec.Decode(json.RawMessage(`"top"`))
	require.NoError(t, err)
	assert.Equal(t, sortTop, got)
	assert.True(t, sortCodec.Known(got))
	assert.Equal(t, []sortOrder{sortTop, sortNew}, sortCodec.Values())
}

func TestEnumCodec_UnknownRoundTrips(t *testing.T) {
	t.Parallel()

	inputs := []string{"best", "TOP", "", "  spaced ", "ünïcode", "q&a"}

	for _, in := range inputs {
		raw, err := json.Marshal(in)
		require.NoError(t, err)

		got, err := sortCodec.Decode(raw)
		require.NoError(t, err, "unknown values must not fail: %q", in)
		assert.False(t, sortCodec.Known(got))
		assert.Equal(t, in, string(got))

		encoded, err := sortCodec.Encode(got)
		require.NoError(t, err)
		assert.JSONEq(t, string(raw), string(encoded))
	}
}

func TestEnumCodec_Shape(t *testing.T) {
	t.Parallel()

	_, err := sortCodec.Decode(json.RawMessage(`3`))
	require.ErrorIs(t, err, codec.ErrWrongShape)

	_, err = sortCodec.Decode(nil)
	require.ErrorIs(t, err, codec.ErrAbsent)

	opt, err := codec.Nullable[sortOrder](sortCodec).Decode(json.RawMessage(`null`))
	require.NoError(t, err)
	assert.False(t, opt.IsPresent())
}

func TestEnumCodec_Parse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, sortNew, sortCodec.Parse("new"))
	assert.Equal(t, sortOrder("hot"), sortCodec.Parse("hot"))
}
