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

package enum_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/reddit/enum"
)

func TestDistinguishedCodec(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		raw         json.RawMessage
		want        enum.Distinguished
		wantUnknown bool
	}{
		{name: "null is normal", raw: json.RawMessage(`null`), want: enum.DistinguishedNormal},
		{name: "absent is normal", raw: nil, want: enum.DistinguishedNormal},
		{name: "moderator", raw: json.RawMessage(`"moderator"`), want: enum.DistinguishedModerator},
		{name: "admin", raw: json.RawMessage(`"admin"`), want: enum.DistinguishedAdmin},
		{name: "special", raw: json.RawMessage(`"special"`), want: enum.DistinguishedSpecial},
		{name: "unknown", raw: json.RawMessage(`"gold"`), want: enum.Distinguished("gold"), wantUnknown: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := enum.DistinguishedCodec.Decode(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantUnknown, got.IsUnknown())
		})
	}
}

func TestDistinguishedCodec_Encode(t *testing.T) {
	t.Parallel()

	raw, err := enum.DistinguishedCodec.Encode(enum.DistinguishedNormal)
	require.NoError(t, err)
	assert.Equal(t, "null", string(raw))

	raw, err = enum.DistinguishedCodec.Encode(enum.Distinguished("gold"))
	require.NoError(t, err)
	assert.Equal(t, `"gold"`, string(raw))

	assert.Equal(t, "normal", enum.DistinguishedNormal.String())
	assert.Equal(t, "admin", enum.DistinguishedAdmin.String())
}

func TestVoteCodec(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		raw         json.RawMessage
		want        enum.VoteDirection
		wantDir     int
		wantUnknown bool
	}{
		{name: "true", raw: json.RawMessage(`true`), want: enum.VoteUp, wantDir: 1},
		{name: "false", raw: json.RawMessage(`false`), want: enum.VoteDown, wantDir: -1},
		{name: "null", raw: json.RawMessage(`null`), want: enum.VoteNone},
		{name: "absent", raw: nil, want: enum.VoteNone},
		{name: "unexpected string", raw: json.RawMessage(`"sideways"`), want: enum.VoteDirection(`"sideways"`), wantUnknown: true},
		{name: "unexpected number", raw: json.RawMessage(`2`), want: enum.VoteDirection(`2`), wantUnknown: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := enum.VoteCodec.Decode(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantDir, got.Dir())
			assert.Equal(t, tt.wantUnknown, got.IsUnknown())

			if tt.raw == nil {
				return
			}
			encoded, err := enum.VoteCodec.Encode(got)
			require.NoError(t, err)
			assert.JSONEq(t, string(tt.raw), string(encoded))
		})
	}
}

func TestVoteCodec_InvalidJSON(t *testing.T) {
	t.Parallel()

	_, err := enum.VoteCodec.Decode(json.RawMessage(`{oops`))
	require.Error(t, err)
}

func TestCommentSortCodec(t *testing.T) {
	t.Parallel()

	for _, v := range enum.CommentSortCodec.Values() {
		raw, err := enum.CommentSortCodec.Encode(v)
		require.NoError(t, err)

		got, err := enum.CommentSortCodec.Decode(raw)
		require.NoError(t, err)
		assert.Equal(t, v, got)
		assert.False(t, got.IsUnknown())
	}

	got, err := enum.CommentSortCodec.Decode(json.RawMessage(`"best"`))
	require.NoError(t, err)
	assert.True(t, got.IsUnknown())
	assert.Equal(t, "best", got.String())

	raw, err := enum.CommentSortCodec.Encode(got)
	require.NoError(t, err)
	assert.Equal(t, `"best"`, string(raw))
}

func TestSubredditTypeCodec(t *testing.T) {
	t.Parallel()

	got, err := enum.SubredditTypeCodec.Decode(json.RawMessage(`"restricted"`))
	require.NoError(t, err)
	assert.Equal(t, enum.SubredditRestricted, got)
	assert.False(t, got.IsUnknown())

	got, err = enum.SubredditTypeCodec.Decode(json.RawMessage(`"invite_only"`))
	require.NoError(t, err)
	assert.True(t, got.IsUnknown())
	assert.Equal(t, "invite_only", got.String())
}
