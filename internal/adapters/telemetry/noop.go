package telemetry

import (
	"context"

	"go.trai.ch/press/internal/core/ports"
)

var (
	_ ports.Tracer = (*NoOpTracer)(nil)
	_ ports.Span   = (*NoOpSpan)(nil)
)

// NoOpTracer drops all telemetry. It backs the "off" progress mode.
type NoOpTracer struct{}

// NewNoOpTracer creates a new NoOpTracer.
func NewNoOpTracer() *NoOpTracer {
	return &NoOpTracer{}
}

// Start returns a span that ignores everything recorded on it.
func (t *NoOpTracer) Start(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
	return ctx, NoOpSpan{}
}

// EmitPlan drops the plan.
func (t *NoOpTracer) EmitPlan(context.Context, []string) {}

// NoOpSpan ignores everything recorded on it.
type NoOpSpan struct{}

func (NoOpSpan) End()                        {}
func (NoOpSpan) RecordError(error)           {}
func (NoOpSpan) SetAttribute(string, any)    {}
func (NoOpSpan) Write(p []byte) (int, error) { return len(p), nil }
