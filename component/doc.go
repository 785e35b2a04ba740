// Package component defines lifecycle-managed pieces of a service (the HTTP
// server, for instance) and a registry that starts them in order and stops
// them in reverse.
package component
