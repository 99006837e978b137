// Package telemetry exports one OTLP span per committed filter selection.
// It is off unless OTEL_EXPORTER_OTLP_ENDPOINT is set; a nil *Recorder is
// valid and records nothing.
package telemetry

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// SpanCommit names the span recorded for a committed selection.
const SpanCommit = "filter.commit"

const defaultService = "alphadash"

// Recorder records filter commits as spans.
type Recorder struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// NewOTLPRecorder creates a recorder exporting over OTLP/HTTP when
// OTEL_EXPORTER_OTLP_ENDPOINT is set. Returns nil when not configured.
func NewOTLPRecorder(ctx context.Context) (*Recorder, error) {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		return nil, nil
	}
	// The exporter reads the variable itself: a base URL such as
	// http://localhost:4318 whose scheme picks TLS, with /v1/traces appended.
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}
	return newRecorder(sdktrace.WithBatcher(exporter)), nil
}

// NewRecorder creates a recorder that hands every span to exporter as soon
// as it ends.
func NewRecorder(exporter sdktrace.SpanExporter) *Recorder {
	return newRecorder(sdktrace.WithSyncer(exporter))
}

func newRecorder(opt sdktrace.TracerProviderOption) *Recorder {
	service := os.Getenv("OTEL_SERVICE_NAME")
	if service == "" {
		service = defaultService
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(service),
	)
	provider := sdktrace.NewTracerProvider(opt, sdktrace.WithResource(res))
	return &Recorder{
		provider: provider,
		tracer:   provider.Tracer("alphadash/filter"),
	}
}

// RecordSelection records that value was committed to group on screen.
func (r *Recorder) RecordSelection(ctx context.Context, screen, group, value string) {
	if r == nil {
		return
	}
	_, span := r.tracer.Start(ctx, SpanCommit)
	span.SetAttributes(
		attribute.String("alphadash.screen", screen),
		attribute.String("alphadash.filter.group", group),
		attribute.String("alphadash.filter.value", value),
	)
	span.End()
}

// Shutdown flushes and closes the exporter.
func (r *Recorder) Shutdown(ctx context.Context) error {
	if r == nil {
		return nil
	}
	return r.provider.Shutdown(ctx)
}
