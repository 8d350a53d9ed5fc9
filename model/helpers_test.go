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
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// fixture reads a file from testdata.
func fixture(t *testing.T, name string) []byte {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)

	return data
}

// withData returns the fixture with its data member modified by edit.
func withData(t *testing.T, name string, edit func(data map[string]any)) []byte {
	t.Helper()

	var env map[string]any
	require.NoError(t, json.Unmarshal(fixture(t, name), &env))

	data, ok := env["data"].(map[string]any)
	require.True(t, ok, "fixture %s has no data object", name)
	edit(data)

	out, err := json.Marshal(env)
	require.NoError(t, err)

	return out
}

// listingOf wraps envelopes in a Listing envelope.
func listingOf(children ...[]byte) []byte {
	raws := make([]json.RawMessage, 0, len(children))
	for _, c := range children {
		raws = append(raws, c)
	}

	out, err := json.Marshal(map[string]any{
		"kind": "Listing",
		"data": map[string]any{"children": raws, "before": nil, "after": nil},
	})
	if err != nil {
		panic(err)
	}

	return out
}
