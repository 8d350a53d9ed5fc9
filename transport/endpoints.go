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

package transport

import "rivaas.dev/reddit/reference"

// endpoint is where an operation is posted and which form field carries
// the target's full name.
type endpoint struct {
	path    string
	idParam string
}

var endpoints = map[reference.Operation]endpoint{
	reference.OpVote:        {path: "/api/vote", idParam: "id"},
	reference.OpDelete:      {path: "/api/del", idParam: "id"},
	reference.OpEdit:        {path: "/api/editusertext", idParam: "thing_id"},
	reference.OpReply:       {path: "/api/comment", idParam: "thing_id"},
	reference.OpDistinguish: {path: "/api/distinguish", idParam: "id"},
	reference.OpSave:        {path: "/api/save", idParam: "id"},
	reference.OpUnsave:      {path: "/api/unsave", idParam: "id"},
	reference.OpHide:        {path: "/api/hide", idParam: "id"},
	reference.OpUnhide:      {path: "/api/unhide", idParam: "id"},
	reference.OpLock:        {path: "/api/lock", idParam: "id"},
	reference.OpUnlock:      {path: "/api/unlock", idParam: "id"},
	reference.OpSubscribe:   {path: "/api/subscribe", idParam: "sr"},
}
