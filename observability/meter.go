package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// InitMeter installs a periodic OTLP/HTTP meter provider as the otel global.
// The returned provider must be shut down on exit.
func InitMeter(ctx context.Context, cfg Config, res Resource) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	r, err := newResource(res)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	var readerOpts []sdkmetric.PeriodicReaderOption
	if cfg.MetricsInterval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(cfg.MetricsInterval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(r),
	)

	otel.SetMeterProvider(mp)
	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// ContainerMetrics holds the instruments recorded by the resolvers.
type ContainerMetrics struct {
	resolutions metric.Int64Counter
	duration    metric.Float64Histogram
}

// NewContainerMetrics creates container instruments on the given meter.
func NewContainerMetrics(meter metric.Meter) (*ContainerMetrics, error) {
	resolutions, err := meter.Int64Counter("di.resolutions",
		metric.WithDescription("Number of resolution requests by outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating di.resolutions counter: %w", err)
	}

	duration, err := meter.Float64Histogram("di.resolve.duration",
		metric.WithDescription("Duration of top-level resolutions in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating di.resolve.duration histogram: %w", err)
	}

	return &ContainerMetrics{resolutions: resolutions, duration: duration}, nil
}

// RecordResolution records one top-level resolution of key. A nil receiver is a no-op.
func (m *ContainerMetrics) RecordResolution(ctx context.Context, container, key, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.resolutions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("container", container),
		attribute.String(AttrBinding, key),
		attribute.String(AttrStatus, status),
	))
	m.duration.Record(ctx, d.Seconds(), metric.WithAttributes(
		attribute.String("container", container),
		attribute.String(AttrBinding, key),
	))
}
