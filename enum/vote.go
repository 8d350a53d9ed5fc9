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

package enum

import (
	"bytes"
	"encoding/json"

	"rivaas.dev/reddit/codec"
)

// VoteDirection is the current user's vote on a votable entity.
//
// reddit reports it through the "likes" member: true for an upvote, false
// for a downvote and null when there is no vote. Any other JSON value is
// kept verbatim, as raw JSON text, as an unknown direction.
type VoteDirection string

// Known vote directions.
const (
	VoteNone VoteDirection = "none"
	VoteUp   VoteDirection = "up"
	VoteDown VoteDirection = "down"
)

// VoteCodec decodes the "likes" member.
var VoteCodec codec.Codec[VoteDirection] = voteCodec{}

type voteCodec struct{}

func (voteCodec) Decode(raw json.RawMessage) (VoteDirection, error) {
	if codec.IsEmpty(raw) {
		return VoteNone, nil
	}

	switch string(bytes.TrimSpace(raw)) {
	case "true":
		return VoteUp, nil
	case "false":
		return VoteDown, nil
	}

	if !json.Valid(raw) {
		return VoteNone, &codec.DecodeError{Type: "vote", Raw: string(raw), Err: codec.ErrWrongShape}
	}

	return VoteDirection(bytes.TrimSpace(raw)), nil
}

func (voteCodec) Encode(v VoteDirection) (json.RawMessage, error) {
	switch v {
	case VoteUp:
		return json.RawMessage("true"), nil
	case VoteDown:
		return json.RawMessage("false"), nil
	case VoteNone:
		return json.RawMessage("null"), nil
	}

	return json.RawMessage(v), nil
}

// IsUnknown reports whether v is outside the known set.
func (v VoteDirection) IsUnknown() bool {
	switch v {
	case VoteNone, VoteUp, VoteDown:
		return false
	default:
		return true
	}
}

// Dir returns the numeric direction reddit's vote endpoint expects:
// 1, -1, or 0 for none and unknown directions.
func (v VoteDirection) Dir() int {
	switch v {
	case VoteUp:
		return 1
	case VoteDown:
		return -1
	default:
		return 0
	}
}

func (v VoteDirection) String() string {
	return string(v)
}
