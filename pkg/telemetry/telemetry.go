package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/instrumentation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/cotadorplus/cotador/pkg/config"
)

const (
	// BudgetMeter is the instrumentation scope of the budget context's
	// instruments.
	BudgetMeter = "github.com/cotadorplus/cotador/services/budget"

	// BudgetValueInstrument records the total of every created budget, in BRL.
	BudgetValueInstrument = "budget_value"

	serviceNamespace = "cotador"
	scopeName        = "github.com/cotadorplus/cotador/pkg/telemetry"
)

// budgetValueBuckets are BRL boundaries sized for small-business quotes.
var budgetValueBuckets = []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000, 25000, 50000}

// Shutdown flushes and stops all OTel providers.
type Shutdown func(context.Context) error

// Setup installs the global tracer and meter providers and the W3C
// propagator used by otelhttp and the Temporal interceptor.
//
// The resource names the deployment (service, version, environment) and the
// BudgetCreated contract it emits. A Prometheus reader is always registered
// so /metrics works everywhere; OTLP exporters are added when
// cfg.OtelEndpoint is set. The returned handler serves /metrics.
func Setup(ctx context.Context, cfg *config.Config) (Shutdown, http.Handler, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.ServiceVersion),
			semconv.ServiceNamespace(serviceNamespace),
			semconv.DeploymentEnvironment(cfg.Environment),
			attribute.String("cotador.event.source", cfg.EventSource),
			attribute.String("cotador.event.schema_version", cfg.EventSchemaVersion),
		),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("otel resource: %w", err)
	}

	var tp *sdktrace.TracerProvider
	if cfg.OtelEndpoint != "" {
		traceExp, err := otlptracehttp.New(ctx,
			otlptracehttp.WithEndpoint(cfg.OtelEndpoint),
			otlptracehttp.WithInsecure(),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("otel trace exporter: %w", err)
		}
		tp = sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(traceExp),
			sdktrace.WithResource(res),
		)
	} else {
		tp = sdktrace.NewTracerProvider(sdktrace.WithResource(res))
	}
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	promExp, err := promexporter.New()
	if err != nil {
		return nil, nil, fmt.Errorf("prometheus exporter: %w", err)
	}

	mpOpts := []sdkmetric.Option{
		sdkmetric.WithReader(promExp),
		sdkmetric.WithResource(res),
		sdkmetric.WithView(budgetViews()...),
	}
	if cfg.OtelEndpoint != "" {
		metricExp, err := otlpmetrichttp.New(ctx,
			otlpmetrichttp.WithEndpoint(cfg.OtelEndpoint),
			otlpmetrichttp.WithInsecure(),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("otel metric exporter: %w", err)
		}
		mpOpts = append(mpOpts, sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExp)))
	}

	mp := sdkmetric.NewMeterProvider(mpOpts...)
	otel.SetMeterProvider(mp)

	if err := registerBuildInfo(mp, cfg); err != nil {
		return nil, nil, errors.Join(err, tp.Shutdown(ctx), mp.Shutdown(ctx))
	}

	shutdown := func(ctx context.Context) error {
		return errors.Join(tp.Shutdown(ctx), mp.Shutdown(ctx))
	}
	return shutdown, promhttp.Handler(), nil
}

// budgetViews buckets budget totals in BRL instead of the SDK's latency
// oriented defaults.
func budgetViews() []sdkmetric.View {
	return []sdkmetric.View{
		sdkmetric.NewView(
			sdkmetric.Instrument{
				Name:  BudgetValueInstrument,
				Scope: instrumentation.Scope{Name: BudgetMeter},
			},
			sdkmetric.Stream{
				Aggregation: sdkmetric.AggregationExplicitBucketHistogram{Boundaries: budgetValueBuckets},
			},
		),
	}
}

// registerBuildInfo exposes cotador_build_info, always 1, labelled with the
// running version and the event schema it emits.
func registerBuildInfo(mp metric.MeterProvider, cfg *config.Config) error {
	attrs := metric.WithAttributes(
		attribute.String("version", cfg.ServiceVersion),
		attribute.String("environment", cfg.Environment),
		attribute.String("event_schema_version", cfg.EventSchemaVersion),
	)
	_, err := mp.Meter(scopeName).Int64ObservableGauge("cotador_build_info",
		metric.WithDescription("Build and contract version of the running process"),
		metric.WithInt64Callback(func(_ context.Context, o metric.Int64Observer) error {
			o.Observe(1, attrs)
			return nil
		}),
	)
	if err != nil {
		return fmt.Errorf("register build info: %w", err)
	}
	return nil
}
