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

// Distinguished is the distinguishing mark on a submission or comment.
type Distinguished string

// Known distinguished values. DistinguishedNormal is encoded as JSON null.
const (
	DistinguishedNormal    Distinguished = ""
	DistinguishedModerator Distinguished = "moderator"
	DistinguishedAdmin     Distinguished = "admin"
	DistinguishedSpecial   Distinguished = "special"
)

var distinguished = codec.NewEnum(
	DistinguishedNormal,
	DistinguishedModerator,
	DistinguishedAdmin,
	DistinguishedSpecial,
)

// DistinguishedCodec decodes the "distinguished" member; null and absent
// decode to DistinguishedNormal.
var DistinguishedCodec = codec.WithDefault[Distinguished](distinguished, DistinguishedNormal)

// IsUnknown reports whether d is outside the known set.
func (d Distinguished) IsUnknown() bool {
	return !distinguished.Known(d)
}

// String returns the raw value, or "normal" for DistinguishedNormal.
func (d Distinguished) String() string {
	if d == DistinguishedNormal {
		return "normal"
	}

	return string(d)
}
