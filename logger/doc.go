// Package logger provides structured logging over zerolog.
//
// It supports console and JSON output, level configuration and
// component-scoped loggers. Logs are written to stderr by default so
// command output on stdout stays clean.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.WithComponent("di")
//	log.Info("resolved", logger.Fields("binding", "weather_service"))
package logger
