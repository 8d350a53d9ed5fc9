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

import "rivaas.dev/reddit/kind"

// ListingPolicy defines how a listing treats a child that fails validation.
type ListingPolicy int

const (
	// ListingSkip drops the failing child and keeps decoding.
	// This is the default policy.
	ListingSkip ListingPolicy = iota

	// ListingCollect drops the failing child and records a [*ChildError]
	// on the listing, available through [Listing.Errors].
	ListingCollect

	// ListingAbort fails the whole listing with the child's [*ChildError].
	ListingAbort
)

// String returns the policy name.
func (p ListingPolicy) String() string {
	switch p {
	case ListingSkip:
		return "skip"
	case ListingCollect:
		return "collect"
	case ListingAbort:
		return "abort"
	default:
		return "unknown"
	}
}

// DefaultMaxDepth is the default maximum envelope nesting depth.
// It bounds recursion through listings and comment replies.
const DefaultMaxDepth = 32

// Events provides hooks for observability without coupling.
// Hooks run on the goroutine that called Decode.
type Events struct {
	// EntityDecoded is called after each entity is built, nested ones included.
	EntityDecoded func(k kind.Kind)

	// ChildSkipped is called when a listing drops a child.
	ChildSkipped func(index int, err error)

	// Done is called at the end of every Decode call with its statistics.
	Done func(stats Stats)
}

// Stats tracks the work of one Decode call.
type Stats struct {
	Entities int // Entities built, nested ones included
	Skipped  int // Listing children dropped
	Errors   int // 1 when the call failed, else 0
}

// Options configures a [Decoder].
type Options struct {
	ListingPolicy    ListingPolicy // How listings treat failing children
	AllErrors        bool          // Collect every failing field into a MultiError
	MaxDepth         int           // Maximum envelope nesting depth
	SchemaValidation bool          // Check the top-level envelope against the registry schema
	Events           Events        // Observability hooks
}

// Option configures decoding behavior.
type Option func(*Options)

func defaultOptions() *Options {
	return &Options{
		ListingPolicy:    ListingSkip,
		MaxDepth:         DefaultMaxDepth,
		SchemaValidation: true,
	}
}

func applyOptions(opts []Option) *Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return o
}

// WithListingPolicy sets how listings treat children that fail validation.
//
// Example:
//
//	dec := model.MustNewDecoder(reg, model.WithListingPolicy(model.ListingAbort))
func WithListingPolicy(policy ListingPolicy) Option {
	return func(o *Options) {
		o.ListingPolicy = policy
	}
}

// WithAllErrors makes builders report every failing field of an entity as
// a [*MultiError] instead of stopping at the first.
func WithAllErrors() Option {
	return func(o *Options) {
		o.AllErrors = true
	}
}

// WithMaxDepth sets the maximum envelope nesting depth.
// When exceeded, decoding returns [ErrMaxDepthExceeded].
// The default is [DefaultMaxDepth].
func WithMaxDepth(depth int) Option {
	return func(o *Options) {
		o.MaxDepth = depth
	}
}

// WithSchemaValidation toggles the envelope schema check that runs before
// building. It is enabled by default.
func WithSchemaValidation(enabled bool) Option {
	return func(o *Options) {
		o.SchemaValidation = enabled
	}
}

// WithEvents sets observability hooks.
//
// Example:
//
//	model.WithEvents(model.Events{
//		ChildSkipped: func(i int, err error) {
//			log.Printf("dropped child %d: %v", i, err)
//		},
//		Done: func(stats model.Stats) {
//			log.Printf("decoded %d entities", stats.Entities)
//		},
//	})
func WithEvents(events Events) Option {
	return func(o *Options) {
		o.Events = events
	}
}
