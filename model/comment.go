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
	"fmt"
	"time"

	"rivaas.dev/reddit/codec"
	"rivaas.dev/reddit/enum"
	"rivaas.dev/reddit/kind"
	"rivaas.dev/reddit/reference"
)

// Comment is a comment on a submission (kind t1).
type Comment struct {
	author            string
	authorFlairText   codec.Optional[string]
	archived          bool
	body              string
	gildable          bool
	controversiality  int
	created           time.Time
	depth             codec.Optional[int]
	distinguished     enum.Distinguished
	edited            codec.Optional[time.Time]
	gilded            int
	id                string
	submitter         bool
	vote              enum.VoteDirection
	submissionName    string
	fullName          string
	reports           codec.Optional[int]
	parentName        string
	permalink         codec.Optional[string]
	replies           *Listing
	saved             bool
	score             int
	scoreHidden       bool
	stickied          bool
	subreddit         string
	subredditFullName string
}

var _ PublicContribution[reference.CommentReference] = (*Comment)(nil)

var optionalInt = codec.Nullable(codec.Int)

func buildComment(st *decodeState, k kind.Kind, data json.RawMessage) (Entity, error) {
	r, err := st.fields(k, data)
	if err != nil {
		return nil, err
	}

	c := &Comment{
		author:            field(r, "author", codec.String),
		authorFlairText:   field(r, "author_flair_text", optionalString),
		archived:          field(r, "archived", codec.Bool),
		body:              field(r, "body", codec.String),
		gildable:          field(r, "can_gild", codec.Bool),
		controversiality:  field(r, "controversiality", codec.Int),
		created:           field(r, "created_utc", codec.Timestamp),
		depth:             field(r, "depth", optionalInt),
		distinguished:     field(r, "distinguished", enum.DistinguishedCodec),
		edited:            field(r, "edited", codec.Edited),
		gilded:            field(r, "gilded", codec.Int),
		id:                field(r, "id", codec.String),
		submitter:         field(r, "is_submitter", codec.Bool),
		vote:              field(r, "likes", enum.VoteCodec),
		submissionName:    field(r, "link_id", codec.String),
		fullName:          field(r, "name", codec.String),
		reports:           field(r, "num_reports", codec.Reports),
		parentName:        field(r, "parent_id", codec.String),
		permalink:         field(r, "permalink", optionalString),
		replies:           st.replies(r, "replies"),
		saved:             field(r, "saved", codec.Bool),
		score:             field(r, "score", codec.Int),
		scoreHidden:       field(r, "score_hidden", codec.Bool),
		stickied:          field(r, "stickied", codec.Bool),
		subreddit:         field(r, "subreddit", codec.String),
		subredditFullName: field(r, "subreddit_id", codec.String),
	}
	r.identity(c.id, c.fullName, true)

	if err := r.err(); err != nil {
		return nil, err
	}

	return c, nil
}

// replies decodes a comment's reply tree. reddit sends "" instead of a
// listing when there are no replies.
func (st *decodeState) replies(r *fieldReader, name string) *Listing {
	empty := &Listing{}
	if r.stopped() {
		return empty
	}

	raw := r.raw(name)
	if codec.IsEmpty(raw) {
		return empty
	}
	if s, err := codec.String.Decode(raw); err == nil && s == "" {
		return empty
	}

	e, err := st.envelope(raw)
	if err != nil {
		r.fail(name, raw, err)
		return empty
	}

	l, ok := e.(*Listing)
	if !ok {
		r.reject(name, preview(raw), "must be a Listing or empty string",
			fmt.Errorf("%w: got %s", ErrKindMismatch, e.Kind()))

		return empty
	}

	return l
}

func (*Comment) entity() {}

// Kind returns [kind.Comment].
func (*Comment) Kind() kind.Kind { return kind.Comment }

// ID returns the base-36 id.
func (c *Comment) ID() string { return c.id }

// FullName returns the kind-prefixed id, e.g. "t1_e3zk1hq".
func (c *Comment) FullName() string { return c.fullName }

// Author returns the author's username.
func (c *Comment) Author() string { return c.author }

// AuthorFlairText returns the author's flair in this subreddit, if any.
func (c *Comment) AuthorFlairText() codec.Optional[string] { return c.authorFlairText }

// IsArchived reports whether the comment no longer accepts votes or replies.
func (c *Comment) IsArchived() bool { return c.archived }

// Body returns the markdown body.
func (c *Comment) Body() string { return c.body }

// IsGildable reports whether the current user can gild the comment.
func (c *Comment) IsGildable() bool { return c.gildable }

// Controversiality returns 1 for controversial comments, else 0.
func (c *Comment) Controversiality() int { return c.controversiality }

// Created returns the creation time in UTC.
func (c *Comment) Created() time.Time { return c.created }

// Depth returns the nesting depth in the thread, when reddit sends it.
func (c *Comment) Depth() codec.Optional[int] { return c.depth }

// Distinguished returns how the comment is distinguished.
func (c *Comment) Distinguished() enum.Distinguished { return c.distinguished }

// Edited returns the last edit time; absent when never edited.
func (c *Comment) Edited() codec.Optional[time.Time] { return c.edited }

// Gilded returns the number of times the comment was gilded.
func (c *Comment) Gilded() int { return c.gilded }

// IsSubmitter reports whether the author also wrote the submission.
func (c *Comment) IsSubmitter() bool { return c.submitter }

// Vote returns the current user's vote.
func (c *Comment) Vote() enum.VoteDirection { return c.vote }

// SubmissionFullName returns the full name of the submission, e.g. "t3_92dd8".
func (c *Comment) SubmissionFullName() string { return c.submissionName }

// Reports returns the report count, which is only visible to moderators.
func (c *Comment) Reports() codec.Optional[int] { return c.reports }

// ParentFullName returns the full name of the parent comment or submission.
func (c *Comment) ParentFullName() string { return c.parentName }

// Permalink returns the site-relative permalink, when reddit sends it.
func (c *Comment) Permalink() codec.Optional[string] { return c.permalink }

// Replies returns the reply listing. It is empty, never nil, when the
// comment has no replies.
func (c *Comment) Replies() *Listing { return c.replies }

// IsSaved reports whether the current user saved the comment.
func (c *Comment) IsSaved() bool { return c.saved }

// Score returns the net score.
func (c *Comment) Score() int { return c.score }

// IsScoreHidden reports whether the score is hidden.
func (c *Comment) IsScoreHidden() bool { return c.scoreHidden }

// IsStickied reports whether the comment is stickied.
func (c *Comment) IsStickied() bool { return c.stickied }

// Subreddit returns the subreddit name without the "r/" prefix.
func (c *Comment) Subreddit() string { return c.subreddit }

// SubredditFullName returns the subreddit's full name.
func (c *Comment) SubredditFullName() string { return c.subredditFullName }

// ToReference returns a reference to this comment bound to client.
// It performs no network activity.
func (c *Comment) ToReference(client reference.Client) (reference.CommentReference, error) {
	return reference.NewComment(client, c.id)
}
