// Package observability wires OpenTelemetry tracing and metrics.
//
// Telemetry is off unless enabled in configuration; when off the otel
// globals stay no-op and every span or instrument call is free.
//
//	shutdown, err := observability.Init(ctx, cfg.Telemetry, observability.Resource{Name: "weather-di"})
//	defer shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, "weather.get_temperature")
//	defer span.End()
package observability
