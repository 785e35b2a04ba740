package provider

import "context"

// Middleware decorates a RequestResponse.
type Middleware[I, O any] func(RequestResponse[I, O]) RequestResponse[I, O]

// Chain composes middlewares so the first listed sees each call first and
// the result last: Chain(a, b)(p) is a(b(p)).
func Chain[I, O any](middlewares ...Middleware[I, O]) Middleware[I, O] {
	return func(p RequestResponse[I, O]) RequestResponse[I, O] {
		for i := len(middlewares) - 1; i >= 0; i-- {
			p = middlewares[i](p)
		}
		return p
	}
}

// wrapped forwards identity and availability to the decorated provider.
type wrapped[I, O any] struct {
	inner RequestResponse[I, O]
}

func (w wrapped[I, O]) Name() string { return w.inner.Name() }

func (w wrapped[I, O]) IsAvailable(ctx context.Context) bool {
	return w.inner.IsAvailable(ctx)
}
