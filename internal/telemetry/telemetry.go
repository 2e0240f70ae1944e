// Package telemetry sets up OpenTelemetry tracing for a UI session.
package telemetry

import (
	"context"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const instrumentation = "sportui/ui"

// Telemetry owns the tracer provider of a session.
type Telemetry struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// Setup exports spans over OTLP/HTTP if OTEL_EXPORTER_OTLP_ENDPOINT is set.
// Otherwise the returned tracer is a no-op.
//
// The endpoint is a URL such as http://localhost:4318; the exporter reads it
// and the other OTEL_EXPORTER_OTLP_* variables itself.
func Setup(ctx context.Context) (*Telemetry, error) {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" &&
		os.Getenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT") == "" {
		return &Telemetry{tracer: noop.NewTracerProvider().Tracer(instrumentation)}, nil
	}

	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}
	return New(sdktrace.WithBatcher(exporter)), nil
}

// New builds a provider from opts and installs it as the global provider.
func New(opts ...sdktrace.TracerProviderOption) *Telemetry {
	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "sportui"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)
	provider := sdktrace.NewTracerProvider(append(opts, sdktrace.WithResource(res))...)
	otel.SetTracerProvider(provider)

	return &Telemetry{
		provider: provider,
		tracer:   provider.Tracer(instrumentation),
	}
}

// Enabled reports whether spans are exported.
func (t *Telemetry) Enabled() bool {
	return t != nil && t.provider != nil
}

// Tracer returns the tracer to hand to the UI driver.
func (t *Telemetry) Tracer() oteltrace.Tracer {
	if t == nil {
		return noop.NewTracerProvider().Tracer(instrumentation)
	}
	return t.tracer
}

// Shutdown flushes and closes the exporter.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	if !t.Enabled() {
		return nil
	}
	return t.provider.Shutdown(ctx)
}
