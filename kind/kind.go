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

// Package kind defines the discriminator tags reddit attaches to every
// object it returns, and the "full name" identifiers built from them.
//
// A full name joins a kind tag and a base-36 id with an underscore:
//
//	kind.Submission.FullName("92dd8") // "t3_92dd8"
//
//	k, id, err := kind.ParseFullName("t1_e4ckzbt")
package kind

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is a reddit discriminator tag, as found in the "kind" member of an
// envelope.
type Kind string

// Known kinds.
const (
	Comment    Kind = "t1"
	Account    Kind = "t2"
	Submission Kind = "t3"
	Message    Kind = "t4"
	Subreddit  Kind = "t5"
	Award      Kind = "t6"
	More       Kind = "more"
	Listing    Kind = "Listing"
)

// Separator joins a kind tag and an id in a full name.
const Separator = "_"

// ErrInvalidFullName is returned by [ParseFullName] for malformed input.
var ErrInvalidFullName = errors.New("invalid full name")

// String returns the raw tag.
func (k Kind) String() string {
	return string(k)
}

// Name returns a human-readable name for the kind.
func (k Kind) Name() string {
	switch k {
	case Comment:
		return "comment"
	case Account:
		return "account"
	case Submission:
		return "submission"
	case Message:
		return "message"
	case Subreddit:
		return "subreddit"
	case Award:
		return "award"
	case More:
		return "more"
	case Listing:
		return "listing"
	default:
		return "unknown"
	}
}

// IsThing reports whether the kind is one of the "tN" thing kinds that can
// carry a full name.
func (k Kind) IsThing() bool {
	switch k {
	case Comment, Account, Submission, Message, Subreddit, Award:
		return true
	default:
		return false
	}
}

// FullName returns the full name for id under this kind.
func (k Kind) FullName(id string) string {
	return string(k) + Separator + id
}

// ParseFullName splits a full name into its kind and id.
// Only thing kinds (t1 through t6) are accepted.
func ParseFullName(s string) (Kind, string, error) {
	prefix, id, ok := strings.Cut(s, Separator)
	if !ok || id == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidFullName, s)
	}

	k := Kind(prefix)
	if !k.IsThing() {
		return "", "", fmt.Errorf("%w: unknown kind %q in %q", ErrInvalidFullName, prefix, s)
	}

	return k, id, nil
}
