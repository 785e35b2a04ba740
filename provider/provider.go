package provider

import "context"

// Provider identifies a backend and reports whether it can serve calls.
type Provider interface {
	Name() string
	IsAvailable(ctx context.Context) bool
}

// RequestResponse is a Provider that maps one input to one output.
type RequestResponse[I, O any] interface {
	Provider
	Execute(ctx context.Context, input I) (O, error)
}

// Func wraps fn as a RequestResponse that is always available.
func Func[I, O any](name string, fn func(ctx context.Context, input I) (O, error)) RequestResponse[I, O] {
	return funcRR[I, O]{name: name, fn: fn}
}

type funcRR[I, O any] struct {
	name string
	fn   func(context.Context, I) (O, error)
}

func (f funcRR[I, O]) Name() string                   { return f.name }
func (funcRR[I, O]) IsAvailable(context.Context) bool { return true }

func (f funcRR[I, O]) Execute(ctx context.Context, input I) (O, error) {
	return f.fn(ctx, input)
}
