// Package weather holds the temperature lookup domain: the Report value, the
// Provider capability with its stub backend, and the Service that callers
// resolve from a container.
package weather
