// Package di provides a string-keyed dependency injection container.
//
// Bindings declare the keys they require explicitly; the resolver walks those
// declarations depth-first instead of inspecting constructor signatures.
// Every resolution constructs fresh instances.
//
// # Registration
//
//	reg := di.NewRegistry()
//	_ = reg.Register("clock", func(di.Dependencies) (any, error) { return NewClock(), nil })
//	_ = di.Provide(reg, "scheduler", func(deps di.Dependencies) (*Scheduler, error) {
//	    clock, err := di.Dep[Clock](deps, "clock")
//	    if err != nil {
//	        return nil, err
//	    }
//	    return NewScheduler(clock), nil
//	}, "clock")
//
// # Resolution
//
//	err := di.Scoped(ctx, reg, func(ctx context.Context, c *di.Resolver) error {
//	    s, err := di.Resolve[*Scheduler](ctx, c, "scheduler")
//	    ...
//	})
package di
