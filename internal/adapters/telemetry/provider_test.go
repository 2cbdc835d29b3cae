package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/rolegraph/internal/adapters/telemetry"
	"go.trai.ch/rolegraph/internal/core/ports"
)

func setupMonitor() (*tracetest.SpanRecorder, *trace.TracerProvider) {
	sr := tracetest.NewSpanRecorder()
	tp := trace.NewTracerProvider(trace.WithSpanProcessor(sr))
	return sr, tp
}

func TestOTelTracer_StartAndAttributes(t *testing.T) {
	sr, tp := setupMonitor()
	tracer := telemetry.NewOTelTracer(tp, "test-tracer")
	defer func() { _ = tracer.Shutdown(context.Background()) }()

	_, span := tracer.Start(context.Background(), "collect rules")
	span.SetAttribute("roles", 3)
	span.SetAttribute(ports.AttrCacheHit, false)
	span.SetAttribute("names", []string{"a", "b"})
	span.SetAttribute("other", struct{}{})
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "collect rules", spans[0].Name())

	attrs := map[string]string{}
	for _, kv := range spans[0].Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	assert.Equal(t, "3", attrs["roles"])
	assert.Equal(t, "false", attrs[ports.AttrCacheHit])
	assert.Equal(t, "{}", attrs["other"])
}

func TestOTelTracer_RecordError(t *testing.T) {
	sr, tp := setupMonitor()
	tracer := telemetry.NewOTelTracer(tp, "test-tracer")
	defer func() { _ = tracer.Shutdown(context.Background()) }()

	_, span := tracer.Start(context.Background(), "collect roles")
	span.RecordError(errors.New("boom"))
	span.RecordError(nil)
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "boom", spans[0].Status().Description)
	require.Len(t, spans[0].Events(), 1)
}

func TestOTelTracer_EmitRoles(t *testing.T) {
	sr, tp := setupMonitor()
	tracer := telemetry.NewOTelTracer(tp, "test-tracer")
	defer func() { _ = tracer.Shutdown(context.Background()) }()

	// No span in context: nothing is recorded.
	tracer.EmitRoles(context.Background(), []string{"api"})
	assert.Empty(t, sr.Ended())

	ctx, span := tracer.Start(context.Background(), "root")
	tracer.EmitRoles(ctx, []string{"api", "auth"})
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	events := spans[0].Events()
	require.Len(t, events, 1)
	assert.Equal(t, "roles_planned", events[0].Name)
}

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()
	ctx, span := tracer.Start(context.Background(), "anything")
	assert.NotNil(t, ctx)
	span.SetAttribute("k", "v")
	span.RecordError(errors.New("ignored"))
	span.End()
	tracer.EmitRoles(ctx, nil)
	assert.NoError(t, tracer.Shutdown(ctx))
}
