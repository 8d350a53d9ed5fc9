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
	"encoding/json"
	"errors"
	"slices"

	"rivaas.dev/reddit/codec"
	"rivaas.dev/reddit/kind"
)

// Listing is a page of entities (kind Listing). Children keep their order
// in the response; children that failed to decode are left out.
type Listing struct {
	children []Entity
	before   codec.Optional[string]
	after    codec.Optional[string]
	dist     codec.Optional[int]
	errs     []*ChildError
}

var childList = codec.Slice(codec.Raw)

func buildListing(st *decodeState, k kind.Kind, data json.RawMessage) (Entity, error) {
	r, err := st.fields(k, data)
	if err != nil {
		return nil, err
	}

	raws := field(r, "children", childList)
	l := &Listing{
		before: field(r, "before", optionalString),
		after:  field(r, "after", optionalString),
		dist:   field(r, "dist", optionalInt),
	}

	if err := r.err(); err != nil {
		return nil, err
	}

	l.children = make([]Entity, 0, len(raws))
	for i, raw := range raws {
		e, err := st.envelope(raw)
		if err == nil {
			l.children = append(l.children, e)
			continue
		}

		if errors.Is(err, ErrMaxDepthExceeded) {
			return nil, err
		}

		cerr := newChildError(i, err)
		if st.dec.opts.ListingPolicy == ListingAbort && !isUnrecognized(err) {
			return nil, cerr
		}
		if st.dec.opts.ListingPolicy == ListingCollect {
			l.errs = append(l.errs, cerr)
		}
		st.skipped(i, cerr)
	}

	return l, nil
}

// isUnrecognized reports whether the child's own kind is unknown. Unknown
// kinds nested inside a recognized child are that child's validation failure.
func isUnrecognized(err error) bool {
	_, ok := err.(*UnrecognizedKindError)
	return ok
}

func (*Listing) entity() {}

// Kind returns [kind.Listing].
func (*Listing) Kind() kind.Kind { return kind.Listing }

// Children returns a copy of the decoded children in response order.
func (l *Listing) Children() []Entity { return slices.Clone(l.children) }

// Len returns the number of decoded children.
func (l *Listing) Len() int { return len(l.children) }

// Before returns the cursor for the previous page.
func (l *Listing) Before() codec.Optional[string] { return l.before }

// After returns the cursor for the next page.
func (l *Listing) After() codec.Optional[string] { return l.after }

// Dist returns the number of children reddit reports for this page.
func (l *Listing) Dist() codec.Optional[int] { return l.dist }

// Errors returns the children dropped under [ListingCollect]. Unrecognized
// kinds are recorded too, so len(Errors())+Len() is the size of the
// children array.
func (l *Listing) Errors() []*ChildError { return slices.Clone(l.errs) }

// Children returns the listing's children of type T, in order.
//
// Example:
//
//	comments := model.Children[*model.Comment](listing)
func Children[T Entity](l *Listing) []T {
	if l == nil {
		return nil
	}

	out := make([]T, 0, len(l.children))
	for _, e := range l.children {
		if t, ok := e.(T); ok {
			out = append(out, t)
		}
	}

	return out
}
