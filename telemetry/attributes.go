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

package telemetry

// Attribute keys for metrics, spans and log records.
const (
	// KindKey stores an entity kind, e.g. "t3" or "Listing".
	KindKey = "reddit.kind"

	// OperationKey stores a reference operation, e.g. "vote".
	OperationKey = "reddit.operation"

	// TargetKey stores the full name of an operation's target or a fetched path.
	TargetKey = "reddit.target"

	// ChildIndexKey stores the position of a listing child.
	ChildIndexKey = "reddit.listing.index"

	// OutcomeKey stores "ok" or "error".
	OutcomeKey = "outcome"

	// HTTPStatusCode stores the response status code, when there was one.
	HTTPStatusCode = "http.status_code"

	// ErrorKey stores an error message in log records.
	ErrorKey = "error"
)

// Outcome values.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metric names.
const (
	MetricEntities = "reddit_decode_entities_total"
	MetricSkipped  = "reddit_decode_skipped_total"
	MetricDecodes  = "reddit_decodes_total"
)
