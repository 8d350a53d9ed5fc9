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

// Package referencetest provides an in-memory [reference.Client] for tests.
//
//	client := referencetest.NewRecorder(t)
//	ref, _ := reference.NewSubmission(client, "92dd8")
//	ref.Upvote(ctx)
//	client.Requests() // one OpVote request with dir=1
package referencetest

import (
	"context"
	"net/url"
	"slices"
	"sync"
	"testing"

	"rivaas.dev/reddit/reference"
)

// Fetch records one call to [Recorder.Fetch].
type Fetch struct {
	Path  string
	Query url.Values
}

// Recorder is a [reference.Client] that records every call and answers with
// configurable responses. It is safe for concurrent use.
type Recorder struct {
	t testing.TB

	mu       sync.Mutex
	requests []reference.Request
	fetches  []Fetch
	execute  func(ctx context.Context, req reference.Request) (reference.Result, error)
	pages    map[string][]byte
}

// NewRecorder returns a Recorder whose operations succeed with status 200
// and an empty JSON object.
func NewRecorder(t testing.TB) *Recorder {
	t.Helper()

	return &Recorder{t: t, pages: make(map[string][]byte)}
}

// OnExecute replaces the response to every subsequent operation.
func (r *Recorder) OnExecute(fn func(ctx context.Context, req reference.Request) (reference.Result, error)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.execute = fn
}

// FailWith makes every subsequent operation return err.
func (r *Recorder) FailWith(err error) {
	r.OnExecute(func(context.Context, reference.Request) (reference.Result, error) {
		return reference.Result{}, err
	})
}

// Serve registers body as the response to fetches of pathAndQuery. Fetches
// carrying an "id" query parameter are looked up as "path?id=<id>", e.g.
// Serve("/api/info?id=t3_92dd8", body).
func (r *Recorder) Serve(pathAndQuery string, body []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pages[pathAndQuery] = body
}

// Execute implements [reference.Client].
func (r *Recorder) Execute(ctx context.Context, req reference.Request) (reference.Result, error) {
	r.mu.Lock()
	req.Params = cloneValues(req.Params)
	r.requests = append(r.requests, req)
	fn := r.execute
	r.mu.Unlock()

	if fn != nil {
		return fn(ctx, req)
	}

	return reference.Result{StatusCode: 200, Body: []byte("{}")}, nil
}

// Fetch implements [reference.Client]. Unregistered paths fail with a
// 404 [*reference.TransportError].
func (r *Recorder) Fetch(_ context.Context, path string, query url.Values) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.fetches = append(r.fetches, Fetch{Path: path, Query: cloneValues(query)})

	key := path
	if id := query.Get("id"); id != "" {
		key += "?id=" + id
	}
	if body, ok := r.pages[key]; ok {
		return slices.Clone(body), nil
	}

	return nil, &reference.TransportError{Target: key, StatusCode: 404}
}

// Requests returns the operations received so far, in order.
func (r *Recorder) Requests() []reference.Request {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.requests)
}

// Fetches returns the fetches received so far, in order.
func (r *Recorder) Fetches() []Fetch {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.fetches)
}

// Calls returns the total number of operations and fetches received.
func (r *Recorder) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.requests) + len(r.fetches)
}

// LastRequest returns the most recent operation, failing the test if
// there is none.
func (r *Recorder) LastRequest() reference.Request {
	r.t.Helper()

	reqs := r.Requests()
	if len(reqs) == 0 {
		r.t.Fatalf("referencetest: no requests recorded")
		return reference.Request{}
	}

	return reqs[len(reqs)-1]
}

func cloneValues(v url.Values) url.Values {
	if v == nil {
		return nil
	}

	out := make(url.Values, len(v))
	for k, vals := range v {
		out[k] = slices.Clone(vals)
	}

	return out
}
