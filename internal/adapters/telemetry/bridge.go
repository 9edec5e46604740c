package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/press/internal/core/ports"
	"go.trai.ch/zerr"
)

// LoggerBridge implements sdktrace.SpanProcessor, forwarding span lifecycle
// events to the logger so span-based runs still produce readable output.
type LoggerBridge struct {
	log ports.Logger
}

// NewLoggerBridge returns a new LoggerBridge.
func NewLoggerBridge(log ports.Logger) *LoggerBridge {
	return &LoggerBridge{
		log: log,
	}
}

// OnStart logs the page whose span just opened.
func (b *LoggerBridge) OnStart(_ context.Context, s sdktrace.ReadWriteSpan) {
	if b.log == nil || !s.SpanContext().IsValid() {
		return
	}

	b.log.Info(fmt.Sprintf("render: %s", s.Name()))
}

// OnEnd logs the outcome: duration on success, the recorded error otherwise.
func (b *LoggerBridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.log == nil || !s.SpanContext().IsValid() {
		return
	}

	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "render failed"
		}
		b.log.Error(zerr.With(zerr.New(desc), "page", s.Name()))
		return
	}

	elapsed := s.EndTime().Sub(s.StartTime()).Round(time.Millisecond)
	b.log.Info(fmt.Sprintf("done: %s in %s", s.Name(), elapsed))
}

// ForceFlush does nothing; the bridge holds no buffered state.
func (b *LoggerBridge) ForceFlush(context.Context) error {
	return nil
}

// Shutdown does nothing; the bridge holds no buffered state.
func (b *LoggerBridge) Shutdown(context.Context) error {
	return nil
}
