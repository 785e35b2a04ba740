// Package bootstrap runs an entry point through a uniform lifecycle:
// bind dependencies, build the container, configure, start components,
// run (or block), then shut everything down in reverse.
//
//	app, err := bootstrap.NewApp(&cfg)
//	app.Bind(func(reg *di.Registry) error { return wiring.Keyed(reg, app.Logger) })
//	err = app.RunTask(ctx, func(ctx context.Context) error {
//	    svc, err := di.Resolve[*weather.Service](ctx, app.Container, wiring.Keys.WeatherService)
//	    ...
//	})
package bootstrap
