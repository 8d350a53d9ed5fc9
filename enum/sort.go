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

import "rivaas.dev/reddit/codec"

// CommentSort is a comment ordering, as used by a submission's
// "suggested_sort" member.
type CommentSort string

// Known comment sorts.
const (
	CommentSortConfidence    CommentSort = "confidence"
	CommentSortTop           CommentSort = "top"
	CommentSortNew           CommentSort = "new"
	CommentSortControversial CommentSort = "controversial"
	CommentSortOld           CommentSort = "old"
	CommentSortRandom        CommentSort = "random"
	CommentSortQA            CommentSort = "qa"
	CommentSortLive          CommentSort = "live"
)

// CommentSortCodec decodes a comment sort.
var CommentSortCodec = codec.NewEnum(
	CommentSortConfidence,
	CommentSortTop,
	CommentSortNew,
	CommentSortControversial,
	CommentSortOld,
	CommentSortRandom,
	CommentSortQA,
	CommentSortLive,
)

// IsUnknown reports whether s is outside the known set.
func (s CommentSort) IsUnknown() bool {
	return !CommentSortCodec.Known(s)
}

func (s CommentSort) String() string {
	return string(s)
}

// SubredditType is a subreddit's access type.
type SubredditType string

// Known subreddit types.
const (
	SubredditPublic         SubredditType = "public"
	SubredditPrivate        SubredditType = "private"
	SubredditRestricted     SubredditType = "restricted"
	SubredditGoldRestricted SubredditType = "gold_restricted"
	SubredditGoldOnly       SubredditType = "gold_only"
	SubredditArchived       SubredditType = "archived"
	SubredditEmployeesOnly  SubredditType = "employees_only"
	SubredditUser           SubredditType = "user"
)

// SubredditTypeCodec decodes a subreddit type.
var SubredditTypeCodec = codec.NewEnum(
	SubredditPublic,
	SubredditPrivate,
	SubredditRestricted,
	SubredditGoldRestricted,
	SubredditGoldOnly,
	SubredditArchived,
	SubredditEmployeesOnly,
	SubredditUser,
)

// IsUnknown reports whether s is outside the known set.
func (s SubredditType) IsUnknown() bool {
	return !SubredditTypeCodec.Known(s)
}

func (s SubredditType) String() string {
	return string(s)
}
