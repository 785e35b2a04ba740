// Package provider defines swappable request/response backends and the
// middleware that wraps them.
//
// A backend implements RequestResponse[I, O]. Cross-cutting behavior is added
// by composing Middleware values with Chain:
//
//	wrapped := provider.Chain(
//	    provider.WithLogging[string, weather.Report](log),
//	    provider.WithTracing[string, weather.Report]("weather"),
//	)(raw)
package provider
