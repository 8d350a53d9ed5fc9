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
	"slices"

	"rivaas.dev/reddit/codec"
	"rivaas.dev/reddit/kind"
)

// More is a placeholder for comments that were left out of a listing.
// Its children are the ids of the omitted comments; fetch them through
// /api/morechildren. A More with id "_" and no children stands for a
// "continue this thread" link.
type More struct {
	id         string
	fullName   string
	parentName string
	count      int
	depth      int
	children   []string
}

var idList = codec.Slice(codec.String)

func buildMore(st *decodeState, k kind.Kind, data json.RawMessage) (Entity, error) {
	r, err := st.fields(k, data)
	if err != nil {
		return nil, err
	}

	m := &More{
		id:         field(r, "id", codec.String),
		fullName:   field(r, "name", codec.String),
		parentName: field(r, "parent_id", codec.String),
		count:      field(r, "count", codec.Int),
		depth:      field(r, "depth", codec.Int),
		children:   field(r, "children", idList),
	}

	if err := r.err(); err != nil {
		return nil, err
	}

	return m, nil
}

func (*More) entity() {}

// Kind returns [kind.More].
func (*More) Kind() kind.Kind { return kind.More }

// ID returns the placeholder id.
func (m *More) ID() string { return m.id }

// FullName returns the placeholder name, e.g. "t1_e3zk1hq".
func (m *More) FullName() string { return m.fullName }

// ParentFullName returns the full name of the parent comment or submission.
func (m *More) ParentFullName() string { return m.parentName }

// Count returns the number of omitted comments, descendants included.
func (m *More) Count() int { return m.count }

// Depth returns the nesting depth of the omitted comments.
func (m *More) Depth() int { return m.depth }

// Children returns a copy of the omitted comment ids.
func (m *More) Children() []string { return slices.Clone(m.children) }

// IsContinueThread reports whether this placeholder stands for a
// "continue this thread" link rather than a list of comments.
func (m *More) IsContinueThread() bool {
	return m.id == "_" && len(m.children) == 0
}
