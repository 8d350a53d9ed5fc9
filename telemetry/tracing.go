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

import (
	"context"
	"errors"
	"net/url"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"rivaas.dev/reddit/reference"
)

// TracerName is the instrumentation scope of client spans.
const TracerName = "rivaas.dev/reddit"

type tracedClient struct {
	next   reference.Client
	tracer trace.Tracer
}

// TraceClient wraps next so that each Execute and Fetch runs in a client
// span named "reddit <operation>" or "reddit fetch". Errors are recorded on
// the span and returned unchanged.
func TraceClient(next reference.Client, tp trace.TracerProvider) reference.Client {
	return &tracedClient{next: next, tracer: tp.Tracer(TracerName)}
}

func (c *tracedClient) Execute(ctx context.Context, req reference.Request) (reference.Result, error) {
	ctx, span := c.tracer.Start(ctx, "reddit "+string(req.Operation),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String(OperationKey, string(req.Operation)),
			attribute.String(KindKey, string(req.Kind)),
			attribute.String(TargetKey, req.FullName()),
		),
	)
	defer span.End()

	res, err := c.next.Execute(ctx, req)
	if res.StatusCode != 0 {
		span.SetAttributes(attribute.Int(HTTPStatusCode, res.StatusCode))
	}
	finish(span, err)

	return res, err
}

func (c *tracedClient) Fetch(ctx context.Context, path string, query url.Values) ([]byte, error) {
	ctx, span := c.tracer.Start(ctx, "reddit fetch",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String(TargetKey, path)),
	)
	defer span.End()

	body, err := c.next.Fetch(ctx, path, query)
	finish(span, err)

	return body, err
}

func finish(span trace.Span, err error) {
	if err == nil {
		span.SetStatus(codes.Ok, "")
		return
	}

	var terr *reference.TransportError
	if errors.As(err, &terr) && terr.StatusCode != 0 {
		span.SetAttributes(attribute.Int(HTTPStatusCode, terr.StatusCode))
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
