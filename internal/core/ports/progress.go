package ports

import (
	"context"
	"io"
)

//go:generate go run go.uber.org/mock/mockgen -source=progress.go -destination=mocks/mock_progress.go -package=mocks

// Progress records the phases of a collection run.
type Progress interface {
	// Phase starts recording a named phase.
	Phase(ctx context.Context, name string) PhaseRecorder
	// Close flushes the recording.
	Close() error
}

// PhaseRecorder tracks a single phase.
type PhaseRecorder interface {
	// Output returns a writer for free-form phase output.
	Output() io.Writer
	// Cached marks the phase as served from cache.
	Cached()
	// Done completes the phase, successfully when err is nil.
	Done(err error)
}
