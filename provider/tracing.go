package provider

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/weatherdi/observability"
)

// WithTracing opens a span named "<scope>.<provider name>" around each call.
func WithTracing[I, O any](scope string) Middleware[I, O] {
	return func(inner RequestResponse[I, O]) RequestResponse[I, O] {
		return tracingRR[I, O]{wrapped: wrapped[I, O]{inner}, scope: scope}
	}
}

type tracingRR[I, O any] struct {
	wrapped[I, O]
	scope string
}

func (t tracingRR[I, O]) Execute(ctx context.Context, input I) (out O, err error) {
	name := t.Name()
	ctx, span := observability.StartSpan(ctx, t.scope+"."+name,
		trace.WithAttributes(attribute.String(observability.AttrProvider, name)),
	)
	defer func() { observability.EndSpan(span, err) }()

	return t.inner.Execute(ctx, input)
}
