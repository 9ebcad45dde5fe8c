package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/sherpa/internal/core/ports"
)

// Bridge implements sdktrace.SpanProcessor to bridge OTel spans to the
// Logger. Every healthy span reports its duration when it ends, which
// gives the operator per-stage timing for a compile pass.
type Bridge struct {
	logger ports.Logger
}

// NewBridge returns a new Bridge.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{
		logger: logger,
	}
}

// OnStart is called when a span starts.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd is called when a span ends.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil {
		return
	}

	sc := s.SpanContext()
	if !sc.IsValid() {
		return
	}

	// Failed stages are reported by their caller. The bridge only
	// narrates healthy timing.
	if s.Status().Code == codes.Error {
		return
	}

	duration := s.EndTime().Sub(s.StartTime())
	b.logger.Info(fmt.Sprintf("%s finished in %v", s.Name(), duration.Round(time.Microsecond)))
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}
