// Package telemetry implements tracing with OpenTelemetry.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/rolegraph/internal/core/ports"
)

// InstrumentationName names the tracer of the application.
const InstrumentationName = "rolegraph"

// OTelTracer is a concrete implementation of ports.Tracer using OpenTelemetry.
type OTelTracer struct {
	tracer   trace.Tracer
	shutdown func(context.Context) error
}

var _ ports.Tracer = (*OTelTracer)(nil)

// NewOTelTracer creates a tracer over an existing provider.
func NewOTelTracer(tp trace.TracerProvider, name string) *OTelTracer {
	t := &OTelTracer{
		tracer:   tp.Tracer(name),
		shutdown: func(context.Context) error { return nil },
	}
	if sdk, ok := tp.(*sdktrace.TracerProvider); ok {
		t.shutdown = sdk.Shutdown
	}
	return t
}

// NewProgressTracer creates a tracer whose spans are recorded as progress phases.
func NewProgressTracer(progress ports.Progress) *OTelTracer {
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(NewProgressBridge(progress)))
	return NewOTelTracer(tp, InstrumentationName)
}

// Start creates a new span.
func (t *OTelTracer) Start(ctx context.Context, name string) (context.Context, ports.Span) {
	ctx, span := t.tracer.Start(ctx, name)
	return ctx, &OTelSpan{span: span}
}

// EmitRoles adds the queried roles as an event on the current span.
func (t *OTelTracer) EmitRoles(ctx context.Context, roles []string) {
	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.AddEvent("roles_planned", trace.WithAttributes(
			attribute.StringSlice("roles", roles),
		))
	}
}

// Shutdown flushes and stops the provider when the tracer owns an SDK provider.
func (t *OTelTracer) Shutdown(ctx context.Context) error {
	return t.shutdown(ctx)
}

// OTelSpan is a concrete implementation of ports.Span using OpenTelemetry.
type OTelSpan struct {
	span trace.Span
}

// End completes the span.
func (s *OTelSpan) End() {
	s.span.End()
}

// RecordError records err and marks the span as failed.
func (s *OTelSpan) RecordError(err error) {
	if err == nil {
		return
	}
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

// SetAttribute adds a key-value pair to the span.
func (s *OTelSpan) SetAttribute(key string, value any) {
	switch v := value.(type) {
	case string:
		s.span.SetAttributes(attribute.String(key, v))
	case int:
		s.span.SetAttributes(attribute.Int(key, v))
	case int64:
		s.span.SetAttributes(attribute.Int64(key, v))
	case float64:
		s.span.SetAttributes(attribute.Float64(key, v))
	case bool:
		s.span.SetAttributes(attribute.Bool(key, v))
	case []string:
		s.span.SetAttributes(attribute.StringSlice(key, v))
	default:
		s.span.SetAttributes(attribute.String(key, fmt.Sprintf("%v", v)))
	}
}
