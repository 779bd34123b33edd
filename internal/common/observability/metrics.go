package observability

import (
	"context"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
)

// Observability records completion-service calls through an OpenTelemetry meter
// exported on the Prometheus default registry.
type Observability struct {
	meterProvider      *metric.MeterProvider
	meter              otelmetric.Meter
	completionCalls    otelmetric.Int64Counter
	completionDuration otelmetric.Float64Histogram
}

func New(serviceName string) *Observability {
	exporter, err := prometheus.New()
	if err != nil {
		log.Printf("Failed to create Prometheus exporter: %v", err)
		return &Observability{}
	}

	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	completionCalls, _ := meter.Int64Counter(
		"completion_calls",
		otelmetric.WithDescription("Number of completion service calls"),
	)

	completionDuration, _ := meter.Float64Histogram(
		"completion_duration",
		otelmetric.WithDescription("Completion service round trip duration"),
		otelmetric.WithUnit("ms"),
	)

	return &Observability{
		meterProvider:      provider,
		meter:              meter,
		completionCalls:    completionCalls,
		completionDuration: completionDuration,
	}
}

// RecordCompletion counts one completion call and its latency by model and outcome.
func (o *Observability) RecordCompletion(ctx context.Context, model, outcome string, duration time.Duration) {
	if o == nil {
		return
	}
	attrs := otelmetric.WithAttributes(
		attribute.String("model", model),
		attribute.String("outcome", outcome),
	)
	if o.completionCalls != nil {
		o.completionCalls.Add(ctx, 1, attrs)
	}
	if o.completionDuration != nil {
		o.completionDuration.Record(ctx, float64(duration.Milliseconds()), attrs)
	}
}

func (o *Observability) Shutdown() {
	if o != nil && o.meterProvider != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = o.meterProvider.Shutdown(ctx)
	}
}
