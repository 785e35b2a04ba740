package inject

import (
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/weatherdi/logger"
	"github.com/kbukum/weatherdi/observability"
)

// Option configures a Registry.
type Option func(*options)

type options struct {
	logger         *logger.Logger
	tracerProvider trace.TracerProvider
	metrics        *observability.ContainerMetrics
}

// WithLogger sets the logger used by the registry and its resolvers.
// Defaults to the global logger tagged with component "inject".
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithTracerProvider sets the provider for resolution spans.
// Defaults to the otel global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) { o.tracerProvider = tp }
}

// WithMetrics sets the instruments recorded per resolution, labeled
// container="typed". Defaults to instruments on the otel global meter provider.
func WithMetrics(m *observability.ContainerMetrics) Option {
	return func(o *options) { o.metrics = m }
}
