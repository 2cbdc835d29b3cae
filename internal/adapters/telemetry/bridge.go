package telemetry

import (
	"context"
	"errors"
	"sync"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/rolegraph/internal/core/ports"
)

// ProgressBridge implements sdktrace.SpanProcessor to mirror spans as progress phases.
type ProgressBridge struct {
	progress ports.Progress
	mu       sync.Mutex
	phases   map[string]ports.PhaseRecorder
}

var _ sdktrace.SpanProcessor = (*ProgressBridge)(nil)

// NewProgressBridge returns a new ProgressBridge.
func NewProgressBridge(progress ports.Progress) *ProgressBridge {
	return &ProgressBridge{
		progress: progress,
		phases:   make(map[string]ports.PhaseRecorder),
	}
}

// OnStart opens a phase for the span.
func (b *ProgressBridge) OnStart(parent context.Context, s sdktrace.ReadWriteSpan) {
	sc := s.SpanContext()
	if !sc.IsValid() {
		return
	}
	phase := b.progress.Phase(parent, s.Name())

	b.mu.Lock()
	b.phases[sc.SpanID().String()] = phase
	b.mu.Unlock()
}

// OnEnd completes the phase of the span.
func (b *ProgressBridge) OnEnd(s sdktrace.ReadOnlySpan) {
	id := s.SpanContext().SpanID().String()

	b.mu.Lock()
	phase, ok := b.phases[id]
	delete(b.phases, id)
	b.mu.Unlock()
	if !ok {
		return
	}

	for _, attr := range s.Attributes() {
		if string(attr.Key) == ports.AttrCacheHit && attr.Value.AsBool() {
			phase.Cached()
		}
	}

	var err error
	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "phase failed"
		}
		err = errors.New(desc)
	}
	phase.Done(err)
}

// ForceFlush does nothing.
func (b *ProgressBridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown closes the progress recording.
func (b *ProgressBridge) Shutdown(_ context.Context) error {
	return b.progress.Close()
}
