// Package version reports build metadata for the weather binaries.
//
// Values are injected at link time:
//
//	go build -ldflags "-X github.com/kbukum/weatherdi/version.Version=1.0.0" ./cmd/weather-server
//
// Unset values fall back to the module's embedded VCS build settings.
package version
