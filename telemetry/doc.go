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

// Package telemetry connects decoding and the reddit client to
// OpenTelemetry and structured logging.
//
// # Decode metrics
//
// [DecodeEvents] returns [model.Events] hooks backed by counters:
//
//	events, err := telemetry.DecodeEvents(otel.Meter("reddit"), slog.Default())
//	dec := model.MustNewDecoder(model.StandardRegistry(), model.WithEvents(events))
//
// Skipped listing children are also logged at warn level.
//
// # Client spans
//
// [TraceClient] wraps a [reference.Client] so that every operation and
// fetch runs in a client span:
//
//	client := telemetry.TraceClient(httpClient, otel.GetTracerProvider())
//
// Attribute keys follow OpenTelemetry conventions where one exists; the
// rest live under the "reddit." prefix. They are exported so logs can use
// the same names.
package telemetry
