// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by handlers.
// Store and message ports are implemented by outbound adapters and platform
// packages and called by the application layer.
package ports
