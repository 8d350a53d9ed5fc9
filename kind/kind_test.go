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

package kind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/reddit/kind"
)

func TestKind_FullName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "t3_92dd8", kind.Submission.FullName("92dd8"))
	assert.Equal(t, "t1_abc", kind.Comment.FullName("abc"))
	assert.Equal(t, "t5_2qh0u", kind.Subreddit.FullName("2qh0u"))
}

func TestKind_Name(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "submission", kind.Submission.Name())
	assert.Equal(t, "listing", kind.Listing.Name())
	assert.Equal(t, "unknown", kind.Kind("t9").Name())
}

func TestParseFullName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantKind kind.Kind
		wantID   string
		wantErr  bool
	}{
		{name: "submission", input: "t3_92dd8", wantKind: kind.Submission, wantID: "92dd8"},
		{name: "comment", input: "t1_e4ckzbt", wantKind: kind.Comment, wantID: "e4ckzbt"},
		{name: "no separator", input: "t392dd8", wantErr: true},
		{name: "empty id", input: "t3_", wantErr: true},
		{name: "unknown kind", input: "t9_abc", wantErr: true},
		{name: "listing is not a thing", input: "Listing_abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			k, id, err := kind.ParseFullName(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, kind.ErrInvalidFullName)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, k)
			assert.Equal(t, tt.wantID, id)
		})
	}
}
