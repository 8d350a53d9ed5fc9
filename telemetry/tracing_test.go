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

//go:build !integration

package telemetry_test

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"rivaas.dev/reddit/kind"
	"rivaas.dev/reddit/reference"
	"rivaas.dev/reddit/reference/referencetest"
	"rivaas.dev/reddit/telemetry"
)

func newTracedClient(t *testing.T) (reference.Client, *referencetest.Recorder, *tracetest.SpanRecorder) {
	t.Helper()

	spans := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	rec := referencetest.NewRecorder(t)

	return telemetry.TraceClient(rec, tp), rec, spans
}

func attrs(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value)
	for _, kv := range span.Attributes() {
		out[kv.Key] = kv.Value
	}

	return out
}

func TestTraceClient_Execute(t *testing.T) {
	t.Parallel()

	client, rec, spans := newTracedClient(t)

	ref, err := reference.NewSubmission(client, "92dd8")
	require.NoError(t, err)
	_, err = ref.Upvote(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, rec.Calls())
	ended := spans.Ended()
	require.Len(t, ended, 1)

	span := ended[0]
	assert.Equal(t, "reddit vote", span.Name())
	assert.Equal(t, trace.SpanKindClient, span.SpanKind())
	assert.Equal(t, codes.Ok, span.Status().Code)

	got := attrs(span)
	assert.Equal(t, "vote", got[telemetry.OperationKey].AsString())
	assert.Equal(t, string(kind.Submission), got[telemetry.KindKey].AsString())
	assert.Equal(t, "t3_92dd8", got[telemetry.TargetKey].AsString())
	assert.Equal(t, int64(200), got[telemetry.HTTPStatusCode].AsInt64())
}

func TestTraceClient_ExecuteError(t *testing.T) {
	t.Parallel()

	client, rec, spans := newTracedClient(t)
	want := &reference.TransportError{Operation: reference.OpSave, Target: "t3_92dd8", StatusCode: 403}
	rec.FailWith(want)

	_, err := client.Execute(context.Background(), reference.Request{
		Operation: reference.OpSave,
		Kind:      kind.Submission,
		ID:        "92dd8",
	})
	require.ErrorIs(t, err, want)

	ended := spans.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, int64(403), attrs(ended[0])[telemetry.HTTPStatusCode].AsInt64())
	require.Len(t, ended[0].Events(), 1)
	assert.Equal(t, "exception", ended[0].Events()[0].Name)
}

func TestTraceClient_Fetch(t *testing.T) {
	t.Parallel()

	client, rec, spans := newTracedClient(t)
	rec.Serve("/r/golang/about", []byte(`{"kind":"t5"}`))

	body, err := client.Fetch(context.Background(), "/r/golang/about", nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"t5"}`, string(body))

	_, err = client.Fetch(context.Background(), "/r/missing/about", url.Values{})
	require.Error(t, err)

	ended := spans.Ended()
	require.Len(t, ended, 2)
	assert.Equal(t, "reddit fetch", ended[0].Name())
	assert.Equal(t, "/r/golang/about", attrs(ended[0])[telemetry.TargetKey].AsString())
	assert.Equal(t, codes.Ok, ended[0].Status().Code)
	assert.Equal(t, codes.Error, ended[1].Status().Code)
	assert.Equal(t, int64(404), attrs(ended[1])[telemetry.HTTPStatusCode].AsInt64())
}
