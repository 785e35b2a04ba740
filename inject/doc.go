// Package inject is a type-keyed container backed by go.uber.org/dig.
//
// Constructors are bound by the type they produce; their parameters are
// the types they depend on. Each resolution builds a new dig graph, so every
// call constructs fresh instances.
//
//	reg := inject.NewRegistry()
//	_ = inject.Bind[weather.Provider](reg, func() weather.Provider { return weather.NewStubProvider() })
//	_ = inject.Bind[*weather.Service](reg, weather.NewService)
//
//	err := inject.Scoped(ctx, reg, func(ctx context.Context, c *inject.Resolver) error {
//	    svc, err := inject.Resolve[*weather.Service](ctx, c)
//	    ...
//	})
package inject
