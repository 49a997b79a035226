package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// OTelExporter provides OpenTelemetry metrics export following OTel standards
type OTelExporter struct {
	meterProvider *sdkmetric.MeterProvider
	registry      *promclient.Registry
	collector     Collector

	meter           metric.Meter
	received        metric.Int64Counter
	attempts        metric.Int64Counter
	attemptDuration metric.Float64Histogram
	entityGauge     metric.Int64ObservableGauge
	deliveryGauge   metric.Int64ObservableGauge
	throughputGauge metric.Int64ObservableGauge
}

/* NewOTelExporter creates an exporter with its own Prometheus registry
 * collector may be nil, in which case only the counters are exported
 */
func NewOTelExporter(collector Collector, version string) (*OTelExporter, error) {
	registry := promclient.NewRegistry()

	exporter, err := prometheus.New(prometheus.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("creating prometheus exporter: %w", err)
	}

	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)

	meter := meterProvider.Meter(
		"hookdash",
		metric.WithInstrumentationVersion(version),
	)

	oe := &OTelExporter{
		meterProvider: meterProvider,
		registry:      registry,
		collector:     collector,
		meter:         meter,
	}

	if err := oe.registerInstruments(); err != nil {
		return nil, fmt.Errorf("registering instruments: %w", err)
	}

	return oe, nil
}

func (oe *OTelExporter) registerInstruments() error {
	var err error

	oe.received, err = oe.meter.Int64Counter(
		"hookdash.webhooks.received",
		metric.WithDescription("Number of webhooks accepted by the ingestion gateway"),
		metric.WithUnit("{webhooks}"),
	)
	if err != nil {
		return fmt.Errorf("creating received counter: %w", err)
	}

	oe.attempts, err = oe.meter.Int64Counter(
		"hookdash.forwarding.attempts",
		metric.WithDescription("Number of forwarding attempts by outcome"),
		metric.WithUnit("{attempts}"),
	)
	if err != nil {
		return fmt.Errorf("creating attempts counter: %w", err)
	}

	oe.attemptDuration, err = oe.meter.Float64Histogram(
		"hookdash.forwarding.duration",
		metric.WithDescription("Duration of forwarding attempts"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return fmt.Errorf("creating duration histogram: %w", err)
	}

	if oe.collector == nil {
		return nil
	}

	oe.entityGauge, err = oe.meter.Int64ObservableGauge(
		"hookdash.entities",
		metric.WithDescription("Number of stored rows per entity"),
		metric.WithUnit("{rows}"),
		metric.WithInt64Callback(oe.observeEntityCounts),
	)
	if err != nil {
		return fmt.Errorf("creating entity gauge: %w", err)
	}

	oe.deliveryGauge, err = oe.meter.Int64ObservableGauge(
		"hookdash.deliveries",
		metric.WithDescription("Number of logged forwarding attempts by result"),
		metric.WithUnit("{attempts}"),
		metric.WithInt64Callback(oe.observeDeliveryCounts),
	)
	if err != nil {
		return fmt.Errorf("creating delivery gauge: %w", err)
	}

	oe.throughputGauge, err = oe.meter.Int64ObservableGauge(
		"hookdash.throughput",
		metric.WithDescription("Number of webhooks received over time window"),
		metric.WithUnit("{webhooks}"),
		metric.WithInt64Callback(oe.observeThroughput),
	)
	if err != nil {
		return fmt.Errorf("creating throughput gauge: %w", err)
	}

	return nil
}

// RecordReceived counts one stored webhook
func (oe *OTelExporter) RecordReceived(ctx context.Context) {
	oe.received.Add(ctx, 1)
}

// RecordAttempt counts one forwarding attempt and its duration
func (oe *OTelExporter) RecordAttempt(ctx context.Context, outcome string, elapsed time.Duration) {
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))
	oe.attempts.Add(ctx, 1, attrs)
	oe.attemptDuration.Record(ctx, float64(elapsed)/float64(time.Millisecond), attrs)
}

func (oe *OTelExporter) observeEntityCounts(ctx context.Context, observer metric.Int64Observer) error {
	counts, err := oe.collector.GetEntityCounts(ctx)
	if err != nil {
		return err
	}

	for entity, count := range counts {
		observer.Observe(count, metric.WithAttributes(
			attribute.String("entity", entity),
		))
	}

	return nil
}

func (oe *OTelExporter) observeDeliveryCounts(ctx context.Context, observer metric.Int64Observer) error {
	counts, err := oe.collector.GetDeliveryCounts(ctx)
	if err != nil {
		return err
	}

	for result, count := range counts {
		observer.Observe(count, metric.WithAttributes(
			attribute.String("result", result),
		))
	}

	return nil
}

func (oe *OTelExporter) observeThroughput(ctx context.Context, observer metric.Int64Observer) error {
	throughput, err := oe.collector.GetThroughput(ctx)
	if err != nil {
		return err
	}

	observer.Observe(throughput.LastMinute, metric.WithAttributes(
		attribute.String("time.window", "1m"),
	))
	observer.Observe(throughput.LastFiveMinutes, metric.WithAttributes(
		attribute.String("time.window", "5m"),
	))
	observer.Observe(throughput.LastFifteenMinutes, metric.WithAttributes(
		attribute.String("time.window", "15m"),
	))

	return nil
}

// ServeHTTP serves Prometheus-formatted metrics from this exporter's registry
func (oe *OTelExporter) ServeHTTP() http.Handler {
	return promhttp.HandlerFor(oe.registry, promhttp.HandlerOpts{})
}

// Shutdown gracefully shuts down the meter provider
func (oe *OTelExporter) Shutdown(ctx context.Context) error {
	if oe.meterProvider != nil {
		return oe.meterProvider.Shutdown(ctx)
	}
	return nil
}
