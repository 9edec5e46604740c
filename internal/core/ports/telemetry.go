package ports

import (
	"context"
	"io"
)

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Tracer opens spans and announces the render plan.
type Tracer interface {
	// Start opens a span for one unit of work. The returned context carries
	// the span for nested instrumentation.
	Start(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span)
	// EmitPlan announces the pages about to be rendered, in plan order.
	EmitPlan(ctx context.Context, pageNames []string)
}

// Span is one traced unit of work. Writes carry free-form progress text,
// attributes carry structured results.
type Span interface {
	io.Writer
	// End closes the span.
	End()
	// RecordError attaches a failure to the span.
	RecordError(err error)
	// SetAttribute attaches a key-value pair to the span.
	SetAttribute(key string, value any)
}

// SpanConfig collects the effects of the options passed to Start.
type SpanConfig struct{}

// SpanOption configures a starting span.
type SpanOption func(*SpanConfig)
