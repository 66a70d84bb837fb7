package telemetry

import (
	"context"
	"testing"
)

func TestOptionsExporterEnv(t *testing.T) {
	env := Options{APIKey: "abc"}.ExporterEnv()

	if got := env["OTEL_EXPORTER_OTLP_ENDPOINT"]; got != honeycombEndpoint {
		t.Errorf("endpoint = %q", got)
	}
	if got, want := env["OTEL_EXPORTER_OTLP_HEADERS"], "x-honeycomb-team=abc,x-honeycomb-dataset=mazeband"; got != want {
		t.Errorf("headers = %q, want %q", got, want)
	}

	env = Options{APIKey: "abc", Dataset: "ci"}.ExporterEnv()
	if got, want := env["OTEL_EXPORTER_OTLP_HEADERS"], "x-honeycomb-team=abc,x-honeycomb-dataset=ci"; got != want {
		t.Errorf("headers = %q, want %q", got, want)
	}
}

func TestSetupWithoutKeyIsDisabled(t *testing.T) {
	if (Options{}).Enabled() {
		t.Fatal("Options without an API key should be disabled")
	}

	shutdown, err := Setup(context.Background(), Options{})
	if err == nil || shutdown != nil {
		t.Error("Setup without an API key should fail without a shutdown func")
	}

	// Tracers still work and produce non-recording spans
	_, span := Tracer("test").Start(context.Background(), "noop")
	defer span.End()
	if span.IsRecording() {
		t.Error("Span should not record before telemetry is set up")
	}
}
