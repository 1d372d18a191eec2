package telemetry

import (
	"context"
	"fmt"

	"github.com/anvil-build/anvil/internal/core/ports"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// LogProcessor is a SpanProcessor that reports span lifecycle events to the
// application logger. It exists for trace-level debugging of resolution
// phases, not for export to a collector.
type LogProcessor struct {
	logger ports.Logger
}

var _ sdktrace.SpanProcessor = (*LogProcessor)(nil)

// NewLogProcessor creates a new LogProcessor.
func NewLogProcessor(logger ports.Logger) *LogProcessor {
	return &LogProcessor{logger: logger}
}

// OnStart logs the span start with its attributes.
func (p *LogProcessor) OnStart(_ context.Context, s sdktrace.ReadWriteSpan) {
	msg := "span start: " + s.Name()
	for _, attr := range s.Attributes() {
		msg += fmt.Sprintf(" %s=%s", attr.Key, attr.Value.Emit())
	}
	p.logger.Debug(msg)
}

// OnEnd logs the span completion with its duration.
func (p *LogProcessor) OnEnd(s sdktrace.ReadOnlySpan) {
	p.logger.Debug(fmt.Sprintf("span end: %s (%s)", s.Name(), s.EndTime().Sub(s.StartTime())))
}

// Shutdown implements sdktrace.SpanProcessor.
func (p *LogProcessor) Shutdown(_ context.Context) error { return nil }

// ForceFlush implements sdktrace.SpanProcessor.
func (p *LogProcessor) ForceFlush(_ context.Context) error { return nil }
