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

package reference

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"rivaas.dev/reddit/enum"
	"rivaas.dev/reddit/kind"
)

// SubmissionReference addresses a submission (kind t3).
type SubmissionReference struct {
	contribution
}

// NewSubmission returns a reference to the submission with the given id.
func NewSubmission(client Client, id string) (SubmissionReference, error) {
	ref, err := New(client, kind.Submission, id)
	if err != nil {
		return SubmissionReference{}, err
	}

	return SubmissionReference{contribution{ref}}, nil
}

// Distinguish sets the submission's distinguished status. Passing
// enum.DistinguishedNormal removes it.
func (s SubmissionReference) Distinguish(ctx context.Context, how enum.Distinguished) (Result, error) {
	param, err := distinguishParam(how)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %q", err, string(how))
	}

	return s.execute(ctx, OpDistinguish, url.Values{"how": {param}})
}

// Hide hides the submission from the current user's listings.
func (s SubmissionReference) Hide(ctx context.Context) (Result, error) {
	return s.execute(ctx, OpHide, nil)
}

// Unhide reverses [SubmissionReference.Hide].
func (s SubmissionReference) Unhide(ctx context.Context) (Result, error) {
	return s.execute(ctx, OpUnhide, nil)
}

// Lock prevents new comments. Requires moderator permissions.
func (s SubmissionReference) Lock(ctx context.Context) (Result, error) {
	return s.execute(ctx, OpLock, nil)
}

// Unlock reverses [SubmissionReference.Lock].
func (s SubmissionReference) Unlock(ctx context.Context) (Result, error) {
	return s.execute(ctx, OpUnlock, nil)
}

// CommentReference addresses a comment (kind t1).
type CommentReference struct {
	contribution
}

// NewComment returns a reference to the comment with the given id.
func NewComment(client Client, id string) (CommentReference, error) {
	ref, err := New(client, kind.Comment, id)
	if err != nil {
		return CommentReference{}, err
	}

	return CommentReference{contribution{ref}}, nil
}

// Distinguish sets the comment's distinguished status. Sticky pins a
// top-level comment to the top of its thread.
func (c CommentReference) Distinguish(ctx context.Context, how enum.Distinguished, sticky bool) (Result, error) {
	param, err := distinguishParam(how)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %q", err, string(how))
	}

	return c.execute(ctx, OpDistinguish, url.Values{
		"how":    {param},
		"sticky": {strconv.FormatBool(sticky)},
	})
}

// SubredditReference addresses a subreddit (kind t5).
type SubredditReference struct {
	Reference
}

// NewSubreddit returns a reference to the subreddit with the given id.
func NewSubreddit(client Client, id string) (SubredditReference, error) {
	ref, err := New(client, kind.Subreddit, id)
	if err != nil {
		return SubredditReference{}, err
	}

	return SubredditReference{ref}, nil
}

// Subscribe subscribes the current user.
func (s SubredditReference) Subscribe(ctx context.Context) (Result, error) {
	return s.execute(ctx, OpSubscribe, url.Values{"action": {"sub"}})
}

// Unsubscribe unsubscribes the current user.
func (s SubredditReference) Unsubscribe(ctx context.Context) (Result, error) {
	return s.execute(ctx, OpSubscribe, url.Values{"action": {"unsub"}})
}
