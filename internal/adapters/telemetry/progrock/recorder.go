// Package progrock reports page render progress through a progrock tape.
package progrock

import (
	"context"
	"fmt"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/press/internal/core/ports"
)

// Tracer implements ports.Tracer by recording one progrock vertex per page.
type Tracer struct {
	w   progrock.Writer
	rec *progrock.Recorder
	log ports.Logger
}

// New creates a Tracer that prints progress through the given logger.
func New(log ports.Logger) *Tracer {
	t := NewTracer(newPrinter(log))
	t.log = log
	return t
}

// NewTracer creates a Tracer recording to the given writer.
func NewTracer(w progrock.Writer) *Tracer {
	return &Tracer{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Start records a new vertex for the named page.
func (t *Tracer) Start(ctx context.Context, name string, _ ...ports.SpanOption) (context.Context, ports.Span) {
	d := digest.FromString(name)
	v := t.rec.Vertex(d, name)
	return ctx, &Span{vertex: v}
}

// EmitPlan announces the pages about to render.
func (t *Tracer) EmitPlan(_ context.Context, pageNames []string) {
	if t.log == nil {
		return
	}
	t.log.Info(fmt.Sprintf("rendering %d pages", len(pageNames)))
}

// Close flushes and closes the recording session.
func (t *Tracer) Close() error {
	// If the writer implements Close, call it.
	if c, ok := t.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
