// Package ports defines interfaces between layers in the hexagonal architecture.
// Store ports are implemented by outbound adapters (gorm, remote registry) and
// called by the application workflows. The Dialog port is implemented by each
// inbound surface (HTTP, CLI) that hosts a form.
package ports
