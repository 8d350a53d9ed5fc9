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

package model_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/reddit/model"
	"rivaas.dev/reddit/reference"
	"rivaas.dev/reddit/reference/referencetest"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	dec := model.MustNewDecoder(model.StandardRegistry())
	client := referencetest.NewRecorder(t)
	client.Serve("/api/info?id=t3_92dd8", listingOf(fixture(t, "submission.json")))

	ref, err := reference.NewSubmission(client, "92dd8")
	require.NoError(t, err)

	s, err := model.Lookup[*model.Submission](context.Background(), dec, ref)
	require.NoError(t, err)
	assert.Equal(t, "Generics in practice", s.Title())

	fetches := client.Fetches()
	require.Len(t, fetches, 1)
	assert.Equal(t, model.InfoPath, fetches[0].Path)
	assert.Equal(t, "t3_92dd8", fetches[0].Query.Get("id"))
	assert.Empty(t, client.Requests())
}

func TestLookup_NotFound(t *testing.T) {
	t.Parallel()

	dec := model.MustNewDecoder(model.StandardRegistry())
	client := referencetest.NewRecorder(t)
	client.Serve("/api/info?id=t1_g4o2x1a", listingOf())

	ref, err := reference.NewComment(client, "g4o2x1a")
	require.NoError(t, err)

	_, err = model.Lookup[*model.Comment](context.Background(), dec, ref)
	require.ErrorIs(t, err, model.ErrNotFound)
	assert.Contains(t, err.Error(), "t1_g4o2x1a")
}

func TestLookup_WrongEntity(t *testing.T) {
	t.Parallel()

	dec := model.MustNewDecoder(model.StandardRegistry())
	client := referencetest.NewRecorder(t)
	// reddit answered with a different submission
	other := withData(t, "submission.json", func(d map[string]any) {
		d["id"] = "92dd9"
		d["name"] = "t3_92dd9"
	})
	client.Serve("/api/info?id=t3_92dd8", listingOf(other))

	ref, err := reference.NewSubmission(client, "92dd8")
	require.NoError(t, err)

	_, err = model.Lookup[*model.Submission](context.Background(), dec, ref)
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestLookup_TransportError(t *testing.T) {
	t.Parallel()

	dec := model.MustNewDecoder(model.StandardRegistry())
	client := referencetest.NewRecorder(t)

	ref, err := reference.NewSubreddit(client, "2rc7j")
	require.NoError(t, err)

	_, err = model.Lookup[*model.Subreddit](context.Background(), dec, ref)

	var terr *reference.TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, 404, terr.StatusCode)
	assert.Len(t, client.Fetches(), 1)
}

func TestLookup_NotAListing(t *testing.T) {
	t.Parallel()

	dec := model.MustNewDecoder(model.StandardRegistry())
	client := referencetest.NewRecorder(t)
	client.Serve("/api/info?id=t5_2rc7j", fixture(t, "subreddit.json"))

	ref, err := reference.NewSubreddit(client, "2rc7j")
	require.NoError(t, err)

	_, err = model.Lookup[*model.Subreddit](context.Background(), dec, ref)
	require.ErrorIs(t, err, model.ErrKindMismatch)
}
