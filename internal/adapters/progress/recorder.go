// Package progress records collection phases with progrock.
package progress

import (
	"context"
	"io"
	"strconv"
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/rolegraph/internal/core/ports"
)

// Recorder implements ports.Progress using progrock vertices.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder

	mu    sync.Mutex
	count map[string]int
}

var _ ports.Progress = (*Recorder)(nil)

// New creates a Recorder that reports completed phases to log.
func New(log ports.Logger) *Recorder {
	return NewRecorder(NewLogWriter(log))
}

// NewRecorder creates a Recorder writing to w.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:     w,
		rec:   progrock.NewRecorder(w),
		count: make(map[string]int),
	}
}

// Phase starts a vertex named after the phase. Repeated phases of the same
// name, such as retried rule fetches, get distinct vertexes.
func (r *Recorder) Phase(_ context.Context, name string) ports.PhaseRecorder {
	r.mu.Lock()
	r.count[name]++
	n := r.count[name]
	r.mu.Unlock()

	v := r.rec.Vertex(digest.FromString(name+"#"+strconv.Itoa(n)), name)
	return &phase{vertex: v}
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	return r.w.Close()
}

// phase implements ports.PhaseRecorder wrapping *progrock.VertexRecorder.
type phase struct {
	vertex *progrock.VertexRecorder
}

func (p *phase) Output() io.Writer {
	return p.vertex.Stdout()
}

func (p *phase) Cached() {
	p.vertex.Cached()
}

func (p *phase) Done(err error) {
	p.vertex.Done(err)
}
