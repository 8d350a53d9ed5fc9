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
	"time"

	"rivaas.dev/reddit/codec"
	"rivaas.dev/reddit/enum"
	"rivaas.dev/reddit/kind"
	"rivaas.dev/reddit/reference"
)

// Entity is any decoded reddit object. The set of implementations is
// closed: [*Submission], [*Comment], [*Subreddit], [*Account], [*More] and
// [*Listing].
type Entity interface {
	Kind() kind.Kind
	entity()
}

// Identifiable is an entity with a reddit id.
type Identifiable interface {
	Entity
	ID() string
	FullName() string
}

// Created is an entity with a creation time.
type Created interface {
	Entity
	Created() time.Time
}

// Votable is an entity that can be voted on.
type Votable interface {
	Identifiable
	Score() int
	IsScoreHidden() bool
	Vote() enum.VoteDirection
}

// Distinguishable is an entity that moderators or admins can distinguish.
type Distinguishable interface {
	Entity
	Distinguished() enum.Distinguished
}

// Gildable is an entity that can receive awards.
type Gildable interface {
	Entity
	Gilded() int
	IsGildable() bool
}

// PublicContribution is a submission or comment: something a user posted
// that others can vote on, distinguish and gild. R is the reference type
// produced by ToReference.
type PublicContribution[R any] interface {
	Votable
	Created
	Distinguishable
	Gildable
	Author() string
	AuthorFlairText() codec.Optional[string]
	Edited() codec.Optional[time.Time]
	Subreddit() string
	SubredditFullName() string
	Reports() codec.Optional[int]
	IsArchived() bool
	IsStickied() bool
	ToReference(client reference.Client) (R, error)
}
