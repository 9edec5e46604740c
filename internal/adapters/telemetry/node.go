package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/press/internal/adapters/logger"
	"go.trai.ch/press/internal/adapters/settings"
	"go.trai.ch/press/internal/adapters/telemetry/progrock"
	"go.trai.ch/press/internal/core/domain"
	"go.trai.ch/press/internal/core/ports"
)

// TracerNodeID is the unique identifier for the Telemetry adapter Graft node.
const TracerNodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{settings.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			cfg, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			switch cfg.Progress {
			case domain.ProgressOTel:
				provider := sdktrace.NewTracerProvider(
					sdktrace.WithSpanProcessor(NewLoggerBridge(log)),
				)
				otel.SetTracerProvider(provider)
				return &otelTracer{Tracer: NewOTelTracer("press"), provider: provider}, nil
			case domain.ProgressOff:
				return NewNoOpTracer(), nil
			default:
				return progrock.New(log), nil
			}
		},
	})
}

// otelTracer pairs the tracer with the provider owning its spans so Close
// can flush them on exit.
type otelTracer struct {
	ports.Tracer
	provider *sdktrace.TracerProvider
}

func (t *otelTracer) Close() error {
	return t.provider.Shutdown(context.Background())
}
