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

// Submission is a post (kind t3).
type Submission struct {
	author            string
	authorFlairText   codec.Optional[string]
	archived          bool
	gildable          bool
	created           time.Time
	contestMode       bool
	distinguished     enum.Distinguished
	domain            string
	edited            codec.Optional[time.Time]
	fullName          string
	gilded            int
	hidden            bool
	scoreHidden       bool
	id                string
	selfPost          bool
	linkFlairText     codec.Optional[string]
	locked            bool
	nsfw              bool
	permalink         string
	postHint          codec.Optional[string]
	quarantined       bool
	reports           codec.Optional[int]
	commentCount      int
	score             int
	selfText          codec.Optional[string]
	spam              bool
	spoiler           bool
	stickied          bool
	subreddit         string
	subredditFullName string
	suggestedSort     codec.Optional[enum.CommentSort]
	thumbnail         string
	title             string
	url               string
	visited           bool
	vote              enum.VoteDirection
}

var _ PublicContribution[reference.SubmissionReference] = (*Submission)(nil)

var (
	optionalString = codec.Nullable(codec.String)
	suggestedSort  = codec.Nullable[enum.CommentSort](enum.CommentSortCodec)
)

func buildSubmission(st *decodeState, k kind.Kind, data json.RawMessage) (Entity, error) {
	r, err := st.fields(k, data)
	if err != nil {
		return nil, err
	}

	s := &Submission{
		author:            field(r, "author", codec.String),
		authorFlairText:   field(r, "author_flair_text", optionalString),
		archived:          field(r, "archived", codec.Bool),
		gildable:          field(r, "can_gild", codec.Bool),
		created:           field(r, "created_utc", codec.Timestamp),
		contestMode:       field(r, "contest_mode", codec.Bool),
		distinguished:     field(r, "distinguished", enum.DistinguishedCodec),
		domain:            field(r, "domain", codec.String),
		edited:            field(r, "edited", codec.Edited),
		fullName:          field(r, "name", codec.String),
		gilded:            field(r, "gilded", codec.Int),
		hidden:            field(r, "hidden", codec.Bool),
		scoreHidden:       field(r, "hide_score", codec.Bool),
		id:                field(r, "id", codec.String),
		selfPost:          field(r, "is_self", codec.Bool),
		linkFlairText:     field(r, "link_flair_text", optionalString),
		locked:            field(r, "locked", codec.Bool),
		nsfw:              field(r, "over_18", codec.Bool),
		permalink:         field(r, "permalink", codec.String),
		postHint:          field(r, "post_hint", optionalString),
		quarantined:       field(r, "quarantine", codec.Bool),
		reports:           field(r, "num_reports", codec.Reports),
		commentCount:      field(r, "num_comments", codec.Int),
		score:             field(r, "score", codec.Int),
		selfText:          field(r, "selftext", optionalString),
		spam:              field(r, "spam", codec.Bool),
		spoiler:           field(r, "spoiler", codec.Bool),
		stickied:          field(r, "stickied", codec.Bool),
		subreddit:         field(r, "subreddit", codec.String),
		subredditFullName: field(r, "subreddit_id", codec.String),
		suggestedSort:     field(r, "suggested_sort", suggestedSort),
		thumbnail:         field(r, "thumbnail", codec.String),
		title:             field(r, "title", codec.String),
		url:               field(r, "url", codec.String),
		visited:           field(r, "visited", codec.Bool),
		vote:              field(r, "likes", enum.VoteCodec),
	}
	r.identity(s.id, s.fullName, true)

	if err := r.err(); err != nil {
		return nil, err
	}

	return s, nil
}

func (*Submission) entity() {}

// Kind returns [kind.Submission].
func (*Submission) Kind() kind.Kind { return kind.Submission }

// ID returns the base-36 id, e.g. "92dd8".
func (s *Submission) ID() string { return s.id }

// FullName returns the kind-prefixed id, e.g. "t3_92dd8".
func (s *Submission) FullName() string { return s.fullName }

// Author returns the author's username.
func (s *Submission) Author() string { return s.author }

// AuthorFlairText returns the author's flair in this subreddit, if any.
func (s *Submission) AuthorFlairText() codec.Optional[string] { return s.authorFlairText }

// IsArchived reports whether the submission no longer accepts votes or comments.
func (s *Submission) IsArchived() bool { return s.archived }

// IsGildable reports whether the current user can gild the submission.
func (s *Submission) IsGildable() bool { return s.gildable }

// Created returns the creation time in UTC.
func (s *Submission) Created() time.Time { return s.created }

// IsContestMode reports whether comments are shown in contest mode.
func (s *Submission) IsContestMode() bool { return s.contestMode }

// Distinguished returns how the submission is distinguished.
func (s *Submission) Distinguished() enum.Distinguished { return s.distinguished }

// Domain returns the link domain, or "self.<subreddit>" for self posts.
func (s *Submission) Domain() string { return s.domain }

// Edited returns the last edit time; absent when never edited.
func (s *Submission) Edited() codec.Optional[time.Time] { return s.edited }

// Gilded returns the number of times the submission was gilded.
func (s *Submission) Gilded() int { return s.gilded }

// IsHidden reports whether the current user hid the submission.
func (s *Submission) IsHidden() bool { return s.hidden }

// IsScoreHidden reports whether the score is hidden.
func (s *Submission) IsScoreHidden() bool { return s.scoreHidden }

// IsSelfPost reports whether this is a text post.
func (s *Submission) IsSelfPost() bool { return s.selfPost }

// LinkFlairText returns the link flair, if any.
func (s *Submission) LinkFlairText() codec.Optional[string] { return s.linkFlairText }

// IsLocked reports whether new comments are disabled.
func (s *Submission) IsLocked() bool { return s.locked }

// IsNSFW reports whether the submission is marked over 18.
func (s *Submission) IsNSFW() bool { return s.nsfw }

// Permalink returns the site-relative permalink.
func (s *Submission) Permalink() string { return s.permalink }

// PostHint returns reddit's content hint, e.g. "image" or "link".
func (s *Submission) PostHint() codec.Optional[string] { return s.postHint }

// IsQuarantined reports whether the submission's subreddit is quarantined.
func (s *Submission) IsQuarantined() bool { return s.quarantined }

// Reports returns the report count, which is only visible to moderators.
func (s *Submission) Reports() codec.Optional[int] { return s.reports }

// CommentCount returns the number of comments.
func (s *Submission) CommentCount() int { return s.commentCount }

// Score returns the net score.
func (s *Submission) Score() int { return s.score }

// SelfText returns the markdown body of a self post.
func (s *Submission) SelfText() codec.Optional[string] { return s.selfText }

// IsSpam reports whether the submission was removed as spam.
func (s *Submission) IsSpam() bool { return s.spam }

// IsSpoiler reports whether the submission is marked as a spoiler.
func (s *Submission) IsSpoiler() bool { return s.spoiler }

// IsStickied reports whether the submission is stickied in its subreddit.
func (s *Submission) IsStickied() bool { return s.stickied }

// Subreddit returns the subreddit name without the "r/" prefix.
func (s *Submission) Subreddit() string { return s.subreddit }

// SubredditFullName returns the subreddit's full name, e.g. "t5_2qh33".
func (s *Submission) SubredditFullName() string { return s.subredditFullName }

// SuggestedSort returns the sort the author suggested for comments.
func (s *Submission) SuggestedSort() codec.Optional[enum.CommentSort] { return s.suggestedSort }

// Thumbnail returns the thumbnail URL or a placeholder such as "self".
func (s *Submission) Thumbnail() string { return s.thumbnail }

// Title returns the title.
func (s *Submission) Title() string { return s.title }

// URL returns the link target, or the permalink URL for self posts.
func (s *Submission) URL() string { return s.url }

// IsVisited reports whether the current user visited the link.
func (s *Submission) IsVisited() bool { return s.visited }

// Vote returns the current user's vote.
func (s *Submission) Vote() enum.VoteDirection { return s.vote }

// ToReference returns a reference to this submission bound to client.
// It performs no network activity.
func (s *Submission) ToReference(client reference.Client) (reference.SubmissionReference, error) {
	return reference.NewSubmission(client, s.id)
}
