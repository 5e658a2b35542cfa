// Package telemetry provides tracing and metrics for tool invocations.
//
// The Telemetry interface keeps the rest of the module decoupled from
// OpenTelemetry: callers receive spans and record metrics without
// importing the SDK, and hosts that do not run a collector get the
// no-op implementation for free.
package telemetry

import "context"

// Telemetry provides observability capabilities
type Telemetry interface {
	StartSpan(ctx context.Context, name string) (context.Context, Span)
	RecordMetric(name string, value float64, labels map[string]string)
}

// Span represents a telemetry span
type Span interface {
	End()
	SetAttribute(key string, value interface{})
	RecordError(err error)
}

// NoOpTelemetry provides a no-op implementation of Telemetry
type NoOpTelemetry struct{}

func (t *NoOpTelemetry) StartSpan(ctx context.Context, name string) (context.Context, Span) {
	return ctx, &NoOpSpan{}
}

func (t *NoOpTelemetry) RecordMetric(name string, value float64, labels map[string]string) {}

// NoOpSpan provides a no-op implementation of Span
type NoOpSpan struct{}

func (s *NoOpSpan) End()                                       {}
func (s *NoOpSpan) SetAttribute(key string, value interface{}) {}
func (s *NoOpSpan) RecordError(err error)                      {}
