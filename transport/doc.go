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

// Package transport is an HTTP implementation of [reference.Client] for
// the reddit OAuth API.
//
// # Quick Start
//
//	client, err := transport.New(
//		transport.WithUserAgent("linux:myapp:1.0 (by /u/me)"),
//		transport.WithTokenSource(transport.StaticToken(accessToken)),
//		transport.WithLogger(slog.Default()),
//	)
//	ref, _ := reference.NewSubmission(client, "92dd8")
//	_, err = ref.Upvote(ctx)
//
// Operations are POSTed as forms to their endpoint with api_type=json.
// Fetches are plain GETs with raw_json=1 so bodies arrive unescaped.
//
// # Errors
//
// Every failure is a [*reference.TransportError]: network errors, token
// failures, non-2xx statuses, oversized bodies and errors reddit reports
// inside a 200 response ([*APIError]). Nothing is retried; callers that
// want retries or rate limiting wrap the client.
package transport
