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
	"rivaas.dev/reddit/kind"
)

// Account is a user (kind t2). Accounts have no mutating operations, so
// there is no reference type for them.
type Account struct {
	id            string
	name          string
	created       time.Time
	linkKarma     int
	commentKarma  int
	gold          bool
	moderator     bool
	employee      bool
	verifiedEmail codec.Optional[bool]
	suspended     codec.Optional[bool]
}

var (
	_ Identifiable = (*Account)(nil)
	_ Created      = (*Account)(nil)
)

func buildAccount(st *decodeState, k kind.Kind, data json.RawMessage) (Entity, error) {
	r, err := st.fields(k, data)
	if err != nil {
		return nil, err
	}

	a := &Account{
		id:            field(r, "id", codec.String),
		name:          field(r, "name", codec.String),
		created:       field(r, "created_utc", codec.Timestamp),
		linkKarma:     field(r, "link_karma", codec.Int),
		commentKarma:  field(r, "comment_karma", codec.Int),
		gold:          field(r, "is_gold", codec.Bool),
		moderator:     field(r, "is_mod", codec.Bool),
		employee:      field(r, "is_employee", codec.Bool),
		verifiedEmail: field(r, "has_verified_email", optionalBool),
		suspended:     field(r, "is_suspended", optionalBool),
	}
	// An account's name member is the username, not the full name.
	r.identity(a.id, "", false)

	if err := r.err(); err != nil {
		return nil, err
	}

	return a, nil
}

func (*Account) entity() {}

// Kind returns [kind.Account].
func (*Account) Kind() kind.Kind { return kind.Account }

// ID returns the base-36 id.
func (a *Account) ID() string { return a.id }

// FullName returns the kind-prefixed id, e.g. "t2_1w72".
func (a *Account) FullName() string { return kind.Account.FullName(a.id) }

// Name returns the username.
func (a *Account) Name() string { return a.name }

// Created returns the registration time in UTC.
func (a *Account) Created() time.Time { return a.created }

// LinkKarma returns the karma earned from submissions.
func (a *Account) LinkKarma() int { return a.linkKarma }

// CommentKarma returns the karma earned from comments.
func (a *Account) CommentKarma() int { return a.commentKarma }

// IsGold reports whether the user has premium.
func (a *Account) IsGold() bool { return a.gold }

// IsModerator reports whether the user moderates any subreddit.
func (a *Account) IsModerator() bool { return a.moderator }

// IsEmployee reports whether the user is a reddit employee.
func (a *Account) IsEmployee() bool { return a.employee }

// HasVerifiedEmail reports whether the user verified their email, when visible.
func (a *Account) HasVerifiedEmail() codec.Optional[bool] { return a.verifiedEmail }

// IsSuspended reports whether the account is suspended, when visible.
func (a *Account) IsSuspended() codec.Optional[bool] { return a.suspended }
