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
	"net/url"
	"strconv"

	"rivaas.dev/reddit/enum"
)

// contribution carries the operations shared by submissions and comments.
type contribution struct {
	Reference
}

// Upvote casts an upvote.
func (c contribution) Upvote(ctx context.Context) (Result, error) {
	return c.vote(ctx, enum.VoteUp)
}

// Downvote casts a downvote.
func (c contribution) Downvote(ctx context.Context) (Result, error) {
	return c.vote(ctx, enum.VoteDown)
}

// Unvote clears the current user's vote.
func (c contribution) Unvote(ctx context.Context) (Result, error) {
	return c.vote(ctx, enum.VoteNone)
}

func (c contribution) vote(ctx context.Context, dir enum.VoteDirection) (Result, error) {
	return c.execute(ctx, OpVote, url.Values{"dir": {strconv.Itoa(dir.Dir())}})
}

// Delete deletes the entity. Only its author may do this.
func (c contribution) Delete(ctx context.Context) (Result, error) {
	return c.execute(ctx, OpDelete, nil)
}

// Edit replaces the body text. Only self posts and comments have one.
func (c contribution) Edit(ctx context.Context, text string) (Result, error) {
	return c.execute(ctx, OpEdit, url.Values{"text": {text}})
}

// Reply posts a comment in reply. The result body holds the new comment.
func (c contribution) Reply(ctx context.Context, text string) (Result, error) {
	return c.execute(ctx, OpReply, url.Values{"text": {text}})
}

// Save saves the entity to the current user's saved list.
func (c contribution) Save(ctx context.Context) (Result, error) {
	return c.execute(ctx, OpSave, nil)
}

// Unsave removes the entity from the current user's saved list.
func (c contribution) Unsave(ctx context.Context) (Result, error) {
	return c.execute(ctx, OpUnsave, nil)
}

// distinguishParam maps a distinguished status to reddit's "how" argument.
func distinguishParam(how enum.Distinguished) (string, error) {
	switch how {
	case enum.DistinguishedNormal:
		return "no", nil
	case enum.DistinguishedModerator:
		return "yes", nil
	case enum.DistinguishedAdmin:
		return "admin", nil
	case enum.DistinguishedSpecial:
		return "special", nil
	default:
		return "", ErrUnsupportedDistinguish
	}
}
