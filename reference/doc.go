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

// Package reference provides address-only handles for performing stateful
// operations on reddit entities.
//
// A reference is the triple (client, kind, id). It holds no entity state and
// never caches anything: every operation issues exactly one call to the
// [Client] and returns what the client reports. A reference can be built
// from a decoded entity (see model's ToReference methods) or directly from a
// known id, without fetching anything:
//
//	ref, err := reference.NewSubmission(client, "92dd8")
//	if err != nil {
//	    return err
//	}
//	if _, err := ref.Upvote(ctx); err != nil {
//	    var terr *reference.TransportError
//	    if errors.As(err, &terr) {
//	        log.Printf("vote failed with status %d", terr.StatusCode)
//	    }
//	}
//
// Each reference type only carries the operations valid for its kind:
// there is no way to upvote a [SubredditReference].
//
// # Ordering
//
// Operations are synchronous. Operations issued one after another against
// the same reference reach the client in the order they were issued; the
// client is responsible for what happens on the wire after that.
//
// # Errors
//
// Construction fails with [*IdentityError] for malformed identifiers and
// [ErrNilClient] without a client. Errors returned by the client are passed
// through unchanged; this package does not retry.
package reference
