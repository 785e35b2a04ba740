package provider

import (
	"context"
	"time"

	"github.com/kbukum/weatherdi/logger"
)

// WithLogging logs every call with the provider name and its duration.
// Failures are logged at warn level; the caller decides whether they are fatal.
func WithLogging[I, O any](log *logger.Logger) Middleware[I, O] {
	return func(inner RequestResponse[I, O]) RequestResponse[I, O] {
		return loggingRR[I, O]{wrapped: wrapped[I, O]{inner}, log: log}
	}
}

type loggingRR[I, O any] struct {
	wrapped[I, O]
	log *logger.Logger
}

func (l loggingRR[I, O]) Execute(ctx context.Context, input I) (O, error) {
	start := time.Now()
	out, err := l.inner.Execute(ctx, input)

	fields := logger.DurationFields("execute", time.Since(start))
	fields[logger.FieldProvider] = l.Name()
	if err != nil {
		l.log.WithError(err).Warn("Provider call failed", fields)
		return out, err
	}
	l.log.Debug("Provider call completed", fields)
	return out, nil
}
