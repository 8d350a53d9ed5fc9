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

	"rivaas.dev/reddit/kind"
)

// Operation names a state-changing remote operation.
type Operation string

// Operations issued by references.
const (
	OpVote        Operation = "vote"
	OpDelete      Operation = "del"
	OpEdit        Operation = "editusertext"
	OpReply       Operation = "comment"
	OpDistinguish Operation = "distinguish"
	OpSave        Operation = "save"
	OpUnsave      Operation = "unsave"
	OpHide        Operation = "hide"
	OpUnhide      Operation = "unhide"
	OpLock        Operation = "lock"
	OpUnlock      Operation = "unlock"
	OpSubscribe   Operation = "subscribe"
)

// Request is one operation against one entity.
type Request struct {
	Operation Operation
	Kind      kind.Kind
	ID        string
	Params    url.Values // Operation arguments, e.g. "dir" or "text"
}

// FullName returns the full name of the target entity.
func (r Request) FullName() string {
	return r.Kind.FullName(r.ID)
}

// Result is the success payload reported by a client.
type Result struct {
	StatusCode int
	Body       []byte // Raw response body, usually JSON
}

// Client is the transport collaborator references talk to.
//
// Execute performs a named operation against a (kind, id) pair. Fetch
// returns the raw JSON served at an API path. Implementations own
// authentication, rate limiting, retries, timeouts and cancellation, and
// must report failures as errors; [*TransportError] is the conventional type.
type Client interface {
	Execute(ctx context.Context, req Request) (Result, error)
	Fetch(ctx context.Context, path string, query url.Values) ([]byte, error)
}
