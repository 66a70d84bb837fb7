// Package telemetry provides OpenTelemetry tracing for mazeband.
package telemetry

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const (
	serviceName    = "mazeband"
	serviceVersion = "0.1.0"

	honeycombEndpoint = "https://api.honeycomb.io"
	defaultDataset    = "mazeband"
)

// Options selects where spans are exported.
type Options struct {
	// APIKey is the Honeycomb team key. Without it tracing stays disabled.
	APIKey string
	// Dataset is the Honeycomb dataset; defaults to "mazeband".
	Dataset string
}

// Enabled returns true if the options carry enough to export spans.
func (o Options) Enabled() bool {
	return o.APIKey != ""
}

// ExporterEnv returns the OTEL_* variables the OTLP exporter reads.
func (o Options) ExporterEnv() map[string]string {
	dataset := o.Dataset
	if dataset == "" {
		dataset = defaultDataset
	}
	return map[string]string{
		"OTEL_EXPORTER_OTLP_ENDPOINT": honeycombEndpoint,
		"OTEL_EXPORTER_OTLP_HEADERS": fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s",
			o.APIKey, dataset),
	}
}

// Setup initializes OpenTelemetry with an OTLP HTTP exporter pointed at
// Honeycomb. Until it succeeds every tracer is a no-op, which is what tests
// rely on.
//
// Returns a shutdown function that should be called on application exit.
func Setup(ctx context.Context, opts Options) (shutdown func(context.Context) error, err error) {
	if !opts.Enabled() {
		return nil, fmt.Errorf("telemetry disabled: no API key")
	}

	for key, value := range opts.ExporterEnv() {
		if err := os.Setenv(key, value); err != nil {
			return nil, fmt.Errorf("failed to set %s: %w", key, err)
		}
	}

	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
	}

	// Built without resource.Default() to avoid schema URL conflicts
	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("host.name", getHostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer returns a named tracer for the given component.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + name)
}

// getHostname returns the system hostname, or "unknown" if it cannot be determined.
func getHostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return hostname
}
