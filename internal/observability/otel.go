package observability

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

func newResource(serviceName, version string) (*resource.Resource, error) {
	res, err := resource.Merge(
		resource.Default(),
		resource.NewSchemaless(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(version),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("otel: create resource: %w", err)
	}
	return res, nil
}

// InitTracer sets up an OTel trace provider exporting over OTLP/HTTP to the
// endpoint named by the standard OTEL_EXPORTER_OTLP_* variables.
// Spans are exported as they end; the returned shutdown flushes the exporter.
func InitTracer(ctx context.Context, serviceName, version string) (func(context.Context) error, error) {
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("otel: create trace exporter: %w", err)
	}
	res, err := newResource(serviceName, version)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	slog.Debug("OpenTelemetry tracing initialized", "service", serviceName)
	return tp.Shutdown, nil
}

// InitMeter installs a global meter provider exporting over OTLP/HTTP, so the
// instruments from NewMetrics stop being no-ops. The periodic reader's
// interval never elapses in a single query; the returned shutdown performs
// the one collection and export.
func InitMeter(ctx context.Context, serviceName, version string) (func(context.Context) error, error) {
	exporter, err := otlpmetrichttp.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("otel: create metric exporter: %w", err)
	}
	res, err := newResource(serviceName, version)
	if err != nil {
		return nil, err
	}

	mp := installMeterProvider(sdkmetric.NewPeriodicReader(exporter), res)
	slog.Debug("OpenTelemetry metrics initialized", "service", serviceName)
	return mp.Shutdown, nil
}

func installMeterProvider(reader sdkmetric.Reader, res *resource.Resource) *sdkmetric.MeterProvider {
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(reader),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)
	return mp
}
