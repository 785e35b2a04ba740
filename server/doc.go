// Package server exposes the weather service over HTTP using Gin behind an
// h2c handler, so HTTP/1.1 and cleartext HTTP/2 share one port.
//
// Middleware (server/middleware): Recovery, RequestID, Tracing, RequestLogger.
// Endpoints: /health and /version (server/endpoint), and
// /v1/temperature/:city registered by the weather-server command.
package server
