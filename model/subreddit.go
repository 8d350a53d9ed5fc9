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
	"time"

	"rivaas.dev/reddit/codec"
	"rivaas.dev/reddit/enum"
	"rivaas.dev/reddit/kind"
	"rivaas.dev/reddit/reference"
)

// Subreddit is a community (kind t5).
type Subreddit struct {
	id                string
	fullName          string
	displayName       string
	title             string
	publicDescription string
	description       codec.Optional[string]
	subscribers       codec.Optional[int]
	created           time.Time
	nsfw              bool
	quarantined       bool
	subredditType     enum.SubredditType
	url               string
	subscriber        codec.Optional[bool]
	moderator         codec.Optional[bool]
	suggestedSort     codec.Optional[enum.CommentSort]
}

var (
	_ Identifiable = (*Subreddit)(nil)
	_ Created      = (*Subreddit)(nil)
)

var optionalBool = codec.Nullable(codec.Bool)

func buildSubreddit(st *decodeState, k kind.Kind, data json.RawMessage) (Entity, error) {
	r, err := st.fields(k, data)
	if err != nil {
		return nil, err
	}

	s := &Subreddit{
		id:                field(r, "id", codec.String),
		fullName:          field(r, "name", codec.String),
		displayName:       field(r, "display_name", codec.String),
		title:             field(r, "title", codec.String),
		publicDescription: field(r, "public_description", codec.String),
		description:       field(r, "description", optionalString),
		subscribers:       field(r, "subscribers", optionalInt),
		created:           field(r, "created_utc", codec.Timestamp),
		nsfw:              field(r, "over18", codec.Bool),
		quarantined:       field(r, "quarantine", codec.Bool),
		subredditType:     field[enum.SubredditType](r, "subreddit_type", enum.SubredditTypeCodec),
		url:               field(r, "url", codec.String),
		subscriber:        field(r, "user_is_subscriber", optionalBool),
		moderator:         field(r, "user_is_moderator", optionalBool),
		suggestedSort:     field(r, "suggested_comment_sort", suggestedSort),
	}
	r.identity(s.id, s.fullName, true)

	if err := r.err(); err != nil {
		return nil, err
	}

	return s, nil
}

func (*Subreddit) entity() {}

// Kind returns [kind.Subreddit].
func (*Subreddit) Kind() kind.Kind { return kind.Subreddit }

// ID returns the base-36 id.
func (s *Subreddit) ID() string { return s.id }

// FullName returns the kind-prefixed id, e.g. "t5_2qh33".
func (s *Subreddit) FullName() string { return s.fullName }

// DisplayName returns the name without the "r/" prefix, e.g. "funny".
func (s *Subreddit) DisplayName() string { return s.displayName }

// Title returns the title shown in the header.
func (s *Subreddit) Title() string { return s.title }

// PublicDescription returns the short description shown to non-members.
func (s *Subreddit) PublicDescription() string { return s.publicDescription }

// Description returns the sidebar markdown.
func (s *Subreddit) Description() codec.Optional[string] { return s.description }

// Subscribers returns the subscriber count, when visible.
func (s *Subreddit) Subscribers() codec.Optional[int] { return s.subscribers }

// Created returns the creation time in UTC.
func (s *Subreddit) Created() time.Time { return s.created }

// IsNSFW reports whether the subreddit is marked over 18.
func (s *Subreddit) IsNSFW() bool { return s.nsfw }

// IsQuarantined reports whether the subreddit is quarantined.
func (s *Subreddit) IsQuarantined() bool { return s.quarantined }

// Type returns the access type, e.g. public or restricted.
func (s *Subreddit) Type() enum.SubredditType { return s.subredditType }

// URL returns the site-relative URL, e.g. "/r/funny/".
func (s *Subreddit) URL() string { return s.url }

// IsSubscriber reports whether the current user is subscribed. Absent for
// anonymous requests.
func (s *Subreddit) IsSubscriber() codec.Optional[bool] { return s.subscriber }

// IsModerator reports whether the current user moderates the subreddit.
func (s *Subreddit) IsModerator() codec.Optional[bool] { return s.moderator }

// SuggestedCommentSort returns the default comment sort set by moderators.
func (s *Subreddit) SuggestedCommentSort() codec.Optional[enum.CommentSort] { return s.suggestedSort }

// ToReference returns a reference to this subreddit bound to client.
// It performs no network activity.
func (s *Subreddit) ToReference(client reference.Client) (reference.SubredditReference, error) {
	return reference.NewSubreddit(client, s.id)
}
