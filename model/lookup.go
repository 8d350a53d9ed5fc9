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
	"context"
	"fmt"
	"net/url"

	"rivaas.dev/reddit/reference"
)

// InfoPath is the endpoint [Lookup] fetches entities from.
const InfoPath = "/api/info"

// Target is satisfied by every reference type.
type Target interface {
	Client() reference.Client
	FullName() string
}

// Lookup fetches the entity ref points at and decodes it as T. It issues
// exactly one Fetch through the reference's client; transport errors are
// returned unchanged. A response without the entity fails with
// [ErrNotFound].
//
// Example:
//
//	ref, _ := reference.NewSubmission(client, "92dd8")
//	post, err := model.Lookup[*model.Submission](ctx, dec, ref)
func Lookup[T Identifiable](ctx context.Context, d *Decoder, ref Target) (T, error) {
	var zero T

	client := ref.Client()
	if client == nil {
		return zero, reference.ErrNilClient
	}

	body, err := client.Fetch(ctx, InfoPath, url.Values{"id": {ref.FullName()}})
	if err != nil {
		return zero, err
	}

	listing, err := Decode[*Listing](d, body)
	if err != nil {
		return zero, err
	}

	for _, e := range listing.children {
		t, ok := e.(T)
		if ok && t.FullName() == ref.FullName() {
			return t, nil
		}
	}

	return zero, fmt.Errorf("%w: %s", ErrNotFound, ref.FullName())
}
