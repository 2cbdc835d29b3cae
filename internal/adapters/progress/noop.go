package progress

import (
	"context"
	"io"

	"go.trai.ch/rolegraph/internal/core/ports"
)

// NoOp is a no-op implementation of ports.Progress.
type NoOp struct{}

// Phase returns a phase that records nothing.
func (NoOp) Phase(_ context.Context, _ string) ports.PhaseRecorder {
	return noOpPhase{}
}

// Close does nothing.
func (NoOp) Close() error {
	return nil
}

type noOpPhase struct{}

func (noOpPhase) Output() io.Writer { return io.Discard }
func (noOpPhase) Cached() {}
func (noOpPhase) Done(_ error) {}
