// Package wiring is the composition root: it binds the weather capabilities
// into both containers.
package wiring

import "github.com/kbukum/weatherdi/di"

// Keys holds the binding keys used with the keyed container.
var Keys = struct {
	WeatherProvider di.Key
	WeatherService  di.Key
}{
	WeatherProvider: "weather_provider",
	WeatherService:  "weather_service",
}
