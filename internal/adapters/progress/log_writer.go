package progress

import (
	"fmt"
	"sync"
	"time"

	"github.com/vito/progrock"
	"go.trai.ch/rolegraph/internal/core/ports"
)

// LogWriter is a progrock.Writer that reports each completed vertex once
// through the logger at debug level.
type LogWriter struct {
	log  ports.Logger
	mu   sync.Mutex
	done map[string]struct{}
}

// NewLogWriter creates a LogWriter reporting to log.
func NewLogWriter(log ports.Logger) *LogWriter {
	return &LogWriter{log: log, done: make(map[string]struct{})}
}

// WriteStatus logs the vertexes of update that completed since the last call.
func (w *LogWriter) WriteStatus(update *progrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, v := range update.Vertexes {
		if v.Completed == nil {
			continue
		}
		if _, seen := w.done[v.Id]; seen {
			continue
		}
		w.done[v.Id] = struct{}{}
		w.log.Debug(describe(v))
	}
	return nil
}

// Close does nothing.
func (w *LogWriter) Close() error {
	return nil
}

func describe(v *progrock.Vertex) string {
	msg := "phase " + v.Name
	switch {
	case v.Error != nil:
		msg += " failed: " + *v.Error
	case v.Cached:
		msg += " served from cache"
	default:
		msg += " done"
	}
	if v.Started != nil {
		msg += fmt.Sprintf(" (%s)", v.Completed.AsTime().Sub(v.Started.AsTime()).Round(time.Millisecond))
	}
	return msg
}
