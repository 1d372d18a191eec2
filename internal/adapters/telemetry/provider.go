// Package telemetry wires resolution spans into the application logger.
package telemetry

import (
	"os"

	"github.com/anvil-build/anvil/internal/core/domain"
	"github.com/anvil-build/anvil/internal/core/ports"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Setup installs the global OpenTelemetry tracer provider. When ANVIL_TRACE
// is set, spans are logged through the application logger; otherwise the
// provider carries no processors and tracing costs nothing.
func Setup(logger ports.Logger) *sdktrace.TracerProvider {
	var opts []sdktrace.TracerProviderOption
	if os.Getenv(domain.VarTrace) != "" {
		opts = append(opts, sdktrace.WithSpanProcessor(NewLogProcessor(logger)))
	}

	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	return tp
}
