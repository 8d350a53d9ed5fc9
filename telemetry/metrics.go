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
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"rivaas.dev/reddit/kind"
	"rivaas.dev/reddit/model"
)

// DecodeEvents returns decoder hooks that count entities, skipped listing
// children and decode outcomes on meter. A nil logger discards the
// warnings for skipped children.
//
// Example:
//
//	events, err := telemetry.DecodeEvents(otel.Meter("reddit"), logger)
//	if err != nil {
//		return err
//	}
//	dec, err := model.NewDecoder(model.StandardRegistry(), model.WithEvents(events))
func DecodeEvents(meter metric.Meter, logger *slog.Logger) (model.Events, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	entities, err := meter.Int64Counter(
		MetricEntities,
		metric.WithDescription("Total number of entities decoded, nested ones included"),
	)
	if err != nil {
		return model.Events{}, fmt.Errorf("failed to create entities counter: %w", err)
	}

	skipped, err := meter.Int64Counter(
		MetricSkipped,
		metric.WithDescription("Total number of listing children dropped"),
	)
	if err != nil {
		return model.Events{}, fmt.Errorf("failed to create skipped counter: %w", err)
	}

	decodes, err := meter.Int64Counter(
		MetricDecodes,
		metric.WithDescription("Total number of decode calls by outcome"),
	)
	if err != nil {
		return model.Events{}, fmt.Errorf("failed to create decodes counter: %w", err)
	}

	ok := metric.WithAttributeSet(attribute.NewSet(attribute.String(OutcomeKey, OutcomeOK)))
	failed := metric.WithAttributeSet(attribute.NewSet(attribute.String(OutcomeKey, OutcomeError)))

	// Hooks carry no context; the counters do not need one.
	ctx := context.Background()

	return model.Events{
		EntityDecoded: func(k kind.Kind) {
			entities.Add(ctx, 1, metric.WithAttributes(attribute.String(KindKey, string(k))))
		},
		ChildSkipped: func(index int, err error) {
			skipped.Add(ctx, 1)
			logger.Warn("listing child skipped",
				slog.Int(ChildIndexKey, index),
				slog.String(ErrorKey, err.Error()),
			)
		},
		Done: func(stats model.Stats) {
			if stats.Errors > 0 {
				decodes.Add(ctx, 1, failed)
				return
			}
			decodes.Add(ctx, 1, ok)
		},
	}, nil
}
