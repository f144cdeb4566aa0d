// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/depbuild/internal/core/domain"
	"go.trai.ch/depbuild/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements ports.Telemetry by recording one progrock vertex per dependency build
// onto an in-memory tape.
type Recorder struct {
	tape *progrock.Tape
	rec  *progrock.Recorder
}

// New creates a Recorder with a fresh tape.
func New() *Recorder {
	tape := progrock.NewTape()
	return &Recorder{
		tape: tape,
		rec:  progrock.NewRecorder(tape),
	}
}

// Record starts recording a vertex named after the unit of work.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := r.rec.Vertex(digest.FromString(name), name)
	vertex := &Vertex{vertex: v}
	return ports.ContextWithVertex(ctx, vertex), vertex
}

// Summary reports the tape's vertex counts and how long it has been recording.
func (r *Recorder) Summary() domain.TelemetrySummary {
	return domain.TelemetrySummary{
		Total:     r.tape.TotalCount(),
		Completed: r.tape.CompletedCount(),
		Errored:   r.tape.ErroredCount(),
		Cached:    r.tape.CachedCount(),
		Duration:  r.tape.Duration(),
	}
}

// Close stops the tape's clock.
func (r *Recorder) Close() error {
	return r.tape.Close()
}
