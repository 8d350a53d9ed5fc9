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

// Package model turns reddit API JSON into immutable, validated entities.
//
// Every response object is an envelope of the form {"kind": ..., "data": {...}}.
// A [Decoder] dispatches on the kind through a [Registry], and the kind's
// builder reads the data object through an explicit field table of
// [codec.Codec] values. No reflection or struct tags are involved.
//
// # Quick Start
//
//	dec := model.MustNewDecoder(model.StandardRegistry())
//
//	// Any entity
//	e, err := dec.Decode(body)
//
//	// A specific kind
//	post, err := model.Decode[*model.Submission](dec, body)
//
//	// Listing children of one kind
//	listing, err := model.Decode[*model.Listing](dec, body)
//	comments := model.Children[*model.Comment](listing)
//
// # Absence
//
// Fields that reddit may omit or send as null are exposed as
// [codec.Optional] values. A missing num_reports is absent, never zero, and
// a missing created_utc fails the entity instead of defaulting to the epoch.
//
// # Listings
//
// Listing children are decoded independently. How a malformed child is
// handled depends on the [ListingPolicy]:
//
//	dec := model.MustNewDecoder(model.StandardRegistry(),
//		model.WithListingPolicy(model.ListingCollect),
//	)
//	listing, _ := model.Decode[*model.Listing](dec, body)
//	for _, cerr := range listing.Errors() {
//		log.Printf("child %d dropped: %v", cerr.Index, cerr)
//	}
//
// Children whose kind is not registered are always dropped; they never fail
// the listing.
//
// # Errors
//
// Field failures are reported as [*ValidationError] naming the kind and the
// field. With [WithAllErrors] every failing field of an entity is collected
// into a [*MultiError]:
//
//	var verr *model.ValidationError
//	if errors.As(err, &verr) {
//		fmt.Println(verr.Kind, verr.Field)
//	}
//
// # References
//
// Submissions, comments and subreddits convert to lightweight references
// through ToReference. Conversion performs no network activity; the
// reference carries only the kind, the id and the client:
//
//	ref, err := post.ToReference(client)
//	_, err = ref.Upvote(ctx)
//
// # Thread Safety
//
// A [Decoder] and its [Registry] are immutable after construction and safe
// for concurrent use. Decoded entities are immutable.
package model
